package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "billing_gateway/internal/adapter/http/dto/request"
	response "billing_gateway/internal/adapter/http/dto/response"
	"billing_gateway/internal/usecase"
	"billing_gateway/pkg"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewCustomerHandler(uc usecase.IPaymentUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.CreateCustomer(c.Request.Context(), payload.ToNewCustomer()).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[customers][handler] create failed err=%v", err)
		writeError(c, err)
		return
	}
	log.Printf("[customers][handler] create success customer_id=%s", customer.ID)

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetCustomer(c.Request.Context(), c.Param("customer_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		// An absent body is not a binding failure here; it becomes a nil
		// update payload that the use case rejects by name.
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.UpdateCustomer(c.Request.Context(), c.Param("customer_id"), payload.ToCustomerUpdate()).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[customers][handler] update failed customer_id=%s err=%v", c.Param("customer_id"), err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customer, err := h.usecase.DeleteCustomer(c.Request.Context(), c.Param("customer_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	// The vendor soft-deletes; the returned record carries the flag.
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var query request.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customers, err := h.usecase.ListCustomers(c.Request.Context(), query.Limit).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(customers))
}
