package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "billing_gateway/internal/adapter/http/dto/request"
	response "billing_gateway/internal/adapter/http/dto/response"
	"billing_gateway/internal/usecase"
	"billing_gateway/pkg"
)

//go:generate mockgen -source=../../../usecase/payment_usecase.go -destination=mocks/payment_usecase_mock.go -package=mocks

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge payload", http.StatusBadRequest)

// ChargeHandler handles HTTP requests for charges.
type ChargeHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewChargeHandler(uc usecase.IPaymentUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var payload request.ChargeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	charge, err := h.usecase.CreateCharge(c.Request.Context(), payload.ToNewCharge()).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[charges][handler] create failed err=%v", err)
		writeError(c, err)
		return
	}
	log.Printf("[charges][handler] create success charge_id=%s", charge.ID)

	c.JSON(http.StatusCreated, charge)
}

func (h *ChargeHandler) GetCharge(c *gin.Context) {
	charge, err := h.usecase.GetCharge(c.Request.Context(), c.Param("charge_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, charge)
}

func (h *ChargeHandler) ListCharges(c *gin.Context) {
	var query request.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	charges, err := h.usecase.ListCharges(c.Request.Context(), query.Limit).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(charges))
}
