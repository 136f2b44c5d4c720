package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "billing_gateway/internal/adapter/http/dto/request"
	"billing_gateway/internal/usecase"
	"billing_gateway/pkg"
)

var errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)

// AccountHandler handles HTTP requests for vendor accounts. Create only;
// the vendor exposes no further account surface through this facade.
type AccountHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewAccountHandler(uc usecase.IPaymentUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var payload request.AccountCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	account, err := h.usecase.CreateAccount(c.Request.Context(), payload.ToNewAccount()).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[accounts][handler] create failed err=%v", err)
		writeError(c, err)
		return
	}
	log.Printf("[accounts][handler] create success account_id=%s", account.ID)

	c.JSON(http.StatusCreated, account)
}
