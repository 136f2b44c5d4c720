package handlers

import (
	"context"
	"errors"
	"net/http"

	stripe "github.com/stripe/stripe-go/v75"

	"billing_gateway/internal/infrastructure/templates"
	"billing_gateway/internal/usecase"
	"billing_gateway/pkg"

	"github.com/gin-gonic/gin"
)

var validationErrors = []error{
	usecase.ErrInvalidAmount,
	usecase.ErrMissingSourceToken,
	usecase.ErrMissingChargeID,
	usecase.ErrMissingEmail,
	usecase.ErrMissingMetadata,
	usecase.ErrMissingCustomerID,
	usecase.ErrMissingUpdatePayload,
	usecase.ErrMissingCardNumber,
	usecase.ErrMissingCardCVC,
	usecase.ErrMissingCardExpMonth,
	usecase.ErrMissingCardExpYear,
	usecase.ErrMissingCardID,
	usecase.ErrMissingTokenID,
	usecase.ErrMissingTemplateName,
}

func isValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// mapFacadeError translates facade failures for HTTP without rewriting
// vendor errors: a payment-vendor failure keeps the vendor's own status
// code and error code so callers can inspect them.
func mapFacadeError(err error) *pkg.AppError {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		status := stripeErr.HTTPStatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		code := string(stripeErr.Code)
		if code == "" {
			code = "VENDOR_ERROR"
		}
		return pkg.NewDomainError(code, stripeErr.Msg, err, status)
	}
	var tplErr *templates.Error
	if errors.As(err, &tplErr) {
		return pkg.NewDomainError(tplErr.Name, tplErr.Message, err, http.StatusBadGateway)
	}
	if isValidationError(err) {
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return pkg.NewDomainError("REQUEST_ABORTED", "Request aborted", err, http.StatusGatewayTimeout)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, err error) {
	appErr := mapFacadeError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
