package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"billing_gateway/internal/adapter/http/handlers/mocks"
	"billing_gateway/internal/async"
	"billing_gateway/internal/infrastructure/templates"
	"billing_gateway/internal/usecase"
)

func setupTemplateRouter(uc usecase.ITemplateContentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewTemplateHandler(uc)
	router.POST("/v1/templates/render", handler.RenderTemplate)
	return router
}

func TestTemplateHandler_RenderTemplate(t *testing.T) {
	t.Run("should return 200 with the rendered html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockITemplateContentUseCase(ctrl)
		uc.EXPECT().
			GetContent(gomock.Any(), "welcome", map[string]string{"name": "Ana"}).
			Return(async.Resolved("<p>Hello Ana</p>"))

		router := setupTemplateRouter(uc)
		body := `{"template_name":"welcome","params":{"name":"Ana"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/templates/render", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "Hello Ana") {
			t.Fatalf("expected rendered html in body, got %s", rec.Body.String())
		}
	})

	t.Run("should return 400 when the template name is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockITemplateContentUseCase(ctrl)
		uc.EXPECT().
			GetContent(gomock.Any(), "", gomock.Any()).
			Return(async.Rejected[string](usecase.ErrMissingTemplateName))

		router := setupTemplateRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/v1/templates/render", strings.NewReader(`{"params":{}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("should return 502 carrying the vendor error untranslated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		vendorErr := &templates.Error{
			Status:  "error",
			Code:    5,
			Name:    "Unknown_Template",
			Message: "No such template \"missing\"",
		}
		uc := mocks.NewMockITemplateContentUseCase(ctrl)
		uc.EXPECT().
			GetContent(gomock.Any(), "missing", gomock.Any()).
			Return(async.Rejected[string](vendorErr))

		router := setupTemplateRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/v1/templates/render", strings.NewReader(`{"template_name":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected status 502, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Unknown_Template") {
			t.Fatalf("expected vendor error name in body, got %s", rec.Body.String())
		}
	})
}
