package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v75"
	"go.uber.org/mock/gomock"

	"billing_gateway/internal/adapter/http/handlers/mocks"
	"billing_gateway/internal/async"
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/usecase"
)

func setupCustomerRouter(uc usecase.IPaymentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCustomerHandler(uc)
	router.POST("/v1/customers", handler.CreateCustomer)
	router.GET("/v1/customers/:customer_id", handler.GetCustomer)
	router.PATCH("/v1/customers/:customer_id", handler.UpdateCustomer)
	router.DELETE("/v1/customers/:customer_id", handler.DeleteCustomer)
	router.GET("/v1/customers", handler.ListCustomers)
	return router
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("should return 201 with the vendor customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			CreateCustomer(gomock.Any(), entities.NewCustomer{
				Email:    "ana@example.com",
				Metadata: map[string]string{"plan": "basic"},
			}).
			Return(async.Resolved(&stripe.Customer{ID: "cus_123"}))

		router := setupCustomerRouter(uc)
		body := `{"email":"ana@example.com","metadata":{"plan":"basic"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d body=%s", rec.Code, rec.Body.String())
		}
	})
}

func TestCustomerHandler_UpdateCustomer(t *testing.T) {
	t.Run("should forward a nil payload when the body is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			UpdateCustomer(gomock.Any(), "cus_123", (*entities.CustomerUpdate)(nil)).
			Return(async.Rejected[*stripe.Customer](usecase.ErrMissingUpdatePayload))

		router := setupCustomerRouter(uc)
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cus_123", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), usecase.ErrMissingUpdatePayload.Error()) {
			t.Fatalf("expected payload message in body, got %s", rec.Body.String())
		}
	})

	t.Run("should return 200 with the customer the vendor reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			UpdateCustomer(gomock.Any(), "cus_123", &entities.CustomerUpdate{Email: "novo@example.com"}).
			Return(async.Resolved(&stripe.Customer{ID: "cus_123", Email: "old@example.com"}))

		router := setupCustomerRouter(uc)
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/cus_123", strings.NewReader(`{"email":"novo@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
		}
	})
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	t.Run("should return 200 with the soft-deleted customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			DeleteCustomer(gomock.Any(), "cus_123").
			Return(async.Resolved(&stripe.Customer{ID: "cus_123", Deleted: true}))

		router := setupCustomerRouter(uc)
		req := httptest.NewRequest(http.MethodDelete, "/v1/customers/cus_123", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"deleted":true`) {
			t.Fatalf("expected deleted flag in body, got %s", rec.Body.String())
		}
	})
}
