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

//go:generate mockgen -source=../../../usecase/template_usecase.go -destination=mocks/template_usecase_mock.go -package=mocks

var errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid template payload", http.StatusBadRequest)

// TemplateHandler handles HTTP requests for template rendering.
type TemplateHandler struct {
	usecase usecase.ITemplateContentUseCase
}

func NewTemplateHandler(uc usecase.ITemplateContentUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

func (h *TemplateHandler) RenderTemplate(c *gin.Context) {
	var payload request.TemplateRenderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}

	html, err := h.usecase.GetContent(c.Request.Context(), payload.ResolveTemplateName(), payload.Params).Wait(c.Request.Context())
	if err != nil {
		log.Printf("[templates][handler] render failed template=%s err=%v", payload.ResolveTemplateName(), err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TemplateContentResponse{HTML: html})
}
