package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "billing_gateway/internal/adapter/http/dto/request"
	"billing_gateway/internal/usecase"
	"billing_gateway/pkg"
)

var errInvalidTokenPayload = pkg.NewDomainErrorSimple("INVALID_TOKEN_INPUT", "Invalid token payload", http.StatusBadRequest)

// TokenHandler handles HTTP requests for single-use card tokens. Raw card
// data passes through to the vendor and is never stored or logged.
type TokenHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewTokenHandler(uc usecase.IPaymentUseCase) *TokenHandler {
	return &TokenHandler{usecase: uc}
}

func (h *TokenHandler) CreateToken(c *gin.Context) {
	var payload request.CardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTokenPayload.HTTPStatus, errInvalidTokenPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.CreateToken(c.Request.Context(), payload.ToCardDetails()).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[tokens][handler] create failed err=%v", err)
		writeError(c, err)
		return
	}
	log.Printf("[tokens][handler] create success token_id=%s", token.ID)

	c.JSON(http.StatusCreated, token)
}

func (h *TokenHandler) GetToken(c *gin.Context) {
	token, err := h.usecase.GetToken(c.Request.Context(), c.Param("token_id")).Wait(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
