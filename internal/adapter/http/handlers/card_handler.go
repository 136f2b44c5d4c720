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

var errInvalidCardPayload = pkg.NewDomainErrorSimple("INVALID_CARD_INPUT", "Invalid card payload", http.StatusBadRequest)

// CardHandler handles HTTP requests for customer cards. All card routes
// are nested under a customer id.
type CardHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewCardHandler(uc usecase.IPaymentUseCase) *CardHandler {
	return &CardHandler{usecase: uc}
}

func (h *CardHandler) CreateCard(c *gin.Context) {
	var payload request.CardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCardPayload.HTTPStatus, errInvalidCardPayload.ToHTTPError())
		return
	}

	card, err := h.usecase.CreateCard(c.Request.Context(), c.Param("customer_id"), payload.ToCardDetails()).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[cards][handler] create failed customer_id=%s err=%v", c.Param("customer_id"), err)
		writeError(c, err)
		return
	}
	log.Printf("[cards][handler] create success customer_id=%s card_id=%s", c.Param("customer_id"), card.ID)

	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.usecase.GetCard(c.Request.Context(), c.Param("customer_id"), c.Param("card_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	card, err := h.usecase.DeleteCard(c.Request.Context(), c.Param("customer_id"), c.Param("card_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.usecase.ListCards(c.Request.Context(), c.Param("customer_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(cards))
}
