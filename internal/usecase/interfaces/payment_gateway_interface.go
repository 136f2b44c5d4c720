package interfaces

import (
	"context"

	stripe "github.com/stripe/stripe-go/v75"

	"billing_gateway/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_mock.go -package=mocks

// IPaymentGateway abstracts the external payment vendor (Stripe).
//
// Contract:
//   - every method issues exactly one vendor call;
//   - responses are returned exactly as the vendor produced them;
//   - list methods return the unwrapped result collection, never the
//     pagination envelope;
//   - vendor errors come back untranslated.
type IPaymentGateway interface {
	CreateCharge(ctx context.Context, in entities.NewCharge) (*stripe.Charge, error)
	GetCharge(ctx context.Context, chargeID string) (*stripe.Charge, error)
	ListCharges(ctx context.Context, limit int64) ([]*stripe.Charge, error)

	CreateCustomer(ctx context.Context, in entities.NewCustomer) (*stripe.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, in entities.CustomerUpdate) (*stripe.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (*stripe.Customer, error)
	ListCustomers(ctx context.Context, limit int64) ([]*stripe.Customer, error)

	CreateToken(ctx context.Context, card entities.CardDetails) (*stripe.Token, error)
	GetToken(ctx context.Context, tokenID string) (*stripe.Token, error)

	CreateAccount(ctx context.Context, in entities.NewAccount) (*stripe.Account, error)

	CreateCard(ctx context.Context, customerID string, card entities.CardDetails) (*stripe.Card, error)
	GetCard(ctx context.Context, customerID, cardID string) (*stripe.Card, error)
	DeleteCard(ctx context.Context, customerID, cardID string) (*stripe.Card, error)
	ListCards(ctx context.Context, customerID string) ([]*stripe.Card, error)
}
