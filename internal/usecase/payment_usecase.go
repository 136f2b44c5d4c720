package usecase

import (
	"context"
	"errors"
	"strings"

	stripe "github.com/stripe/stripe-go/v75"

	"billing_gateway/internal/async"
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/usecase/interfaces"
)

const (
	// DefaultCurrency is applied when a charge omits its currency.
	DefaultCurrency = "usd"
	// DefaultListLimit is the page size used when list callers pass no
	// limit. The vendor bounds the accepted range (1-100) itself.
	DefaultListLimit = 10
)

var (
	ErrInvalidAmount        = errors.New("amount is required and must be greater than zero")
	ErrMissingSourceToken   = errors.New("source token is required")
	ErrMissingChargeID      = errors.New("charge id is required")
	ErrMissingEmail         = errors.New("email is required")
	ErrMissingMetadata      = errors.New("metadata is required")
	ErrMissingCustomerID    = errors.New("customer id is required")
	ErrMissingUpdatePayload = errors.New("update payload is required")
	ErrMissingCardNumber    = errors.New("card number is required")
	ErrMissingCardCVC       = errors.New("card cvc is required")
	ErrMissingCardExpMonth  = errors.New("card expiration month is required")
	ErrMissingCardExpYear   = errors.New("card expiration year is required")
	ErrMissingCardID        = errors.New("card id is required")
	ErrMissingTokenID       = errors.New("token id is required")
)

// IPaymentUseCase exposes the payment facade operations.
//
// Shared contract, uniform across every operation:
//   - required arguments are checked synchronously, in declaration order;
//     the first missing/invalid one rejects the returned future with an
//     error naming that argument, and no vendor call is made;
//   - once preconditions pass, exactly one gateway call is issued and its
//     outcome settles the future, value or error untouched;
//   - the future is returned immediately; nothing here blocks on I/O.
type IPaymentUseCase interface {
	CreateCharge(ctx context.Context, in entities.NewCharge) *async.Future[*stripe.Charge]
	GetCharge(ctx context.Context, chargeID string) *async.Future[*stripe.Charge]
	ListCharges(ctx context.Context, limit int64) *async.Future[[]*stripe.Charge]

	CreateCustomer(ctx context.Context, in entities.NewCustomer) *async.Future[*stripe.Customer]
	GetCustomer(ctx context.Context, customerID string) *async.Future[*stripe.Customer]
	UpdateCustomer(ctx context.Context, customerID string, in *entities.CustomerUpdate) *async.Future[*stripe.Customer]
	DeleteCustomer(ctx context.Context, customerID string) *async.Future[*stripe.Customer]
	ListCustomers(ctx context.Context, limit int64) *async.Future[[]*stripe.Customer]

	CreateToken(ctx context.Context, card entities.CardDetails) *async.Future[*stripe.Token]
	GetToken(ctx context.Context, tokenID string) *async.Future[*stripe.Token]

	CreateAccount(ctx context.Context, in entities.NewAccount) *async.Future[*stripe.Account]

	CreateCard(ctx context.Context, customerID string, card entities.CardDetails) *async.Future[*stripe.Card]
	GetCard(ctx context.Context, customerID, cardID string) *async.Future[*stripe.Card]
	DeleteCard(ctx context.Context, customerID, cardID string) *async.Future[*stripe.Card]
	ListCards(ctx context.Context, customerID string) *async.Future[[]*stripe.Card]
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway}
}

func (u *PaymentUseCase) CreateCharge(ctx context.Context, in entities.NewCharge) *async.Future[*stripe.Charge] {
	if in.Amount <= 0 {
		return async.Rejected[*stripe.Charge](ErrInvalidAmount)
	}
	in.SourceToken = strings.TrimSpace(in.SourceToken)
	if in.SourceToken == "" {
		return async.Rejected[*stripe.Charge](ErrMissingSourceToken)
	}
	if in.Currency == "" {
		in.Currency = DefaultCurrency
	}
	return async.Go(func() (*stripe.Charge, error) {
		return u.gateway.CreateCharge(ctx, in)
	})
}

func (u *PaymentUseCase) GetCharge(ctx context.Context, chargeID string) *async.Future[*stripe.Charge] {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return async.Rejected[*stripe.Charge](ErrMissingChargeID)
	}
	return async.Go(func() (*stripe.Charge, error) {
		return u.gateway.GetCharge(ctx, chargeID)
	})
}

func (u *PaymentUseCase) ListCharges(ctx context.Context, limit int64) *async.Future[[]*stripe.Charge] {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return async.Go(func() ([]*stripe.Charge, error) {
		return u.gateway.ListCharges(ctx, limit)
	})
}

func (u *PaymentUseCase) CreateCustomer(ctx context.Context, in entities.NewCustomer) *async.Future[*stripe.Customer] {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return async.Rejected[*stripe.Customer](ErrMissingEmail)
	}
	if in.Metadata == nil {
		return async.Rejected[*stripe.Customer](ErrMissingMetadata)
	}
	return async.Go(func() (*stripe.Customer, error) {
		return u.gateway.CreateCustomer(ctx, in)
	})
}

func (u *PaymentUseCase) GetCustomer(ctx context.Context, customerID string) *async.Future[*stripe.Customer] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[*stripe.Customer](ErrMissingCustomerID)
	}
	return async.Go(func() (*stripe.Customer, error) {
		return u.gateway.GetCustomer(ctx, customerID)
	})
}

// UpdateCustomer forwards the update payload to the gateway. Note that the
// gateway deliberately reaches the vendor through its retrieve call; see
// StripeGateway.UpdateCustomer.
func (u *PaymentUseCase) UpdateCustomer(ctx context.Context, customerID string, in *entities.CustomerUpdate) *async.Future[*stripe.Customer] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[*stripe.Customer](ErrMissingCustomerID)
	}
	if in == nil {
		return async.Rejected[*stripe.Customer](ErrMissingUpdatePayload)
	}
	payload := *in
	return async.Go(func() (*stripe.Customer, error) {
		return u.gateway.UpdateCustomer(ctx, customerID, payload)
	})
}

func (u *PaymentUseCase) DeleteCustomer(ctx context.Context, customerID string) *async.Future[*stripe.Customer] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[*stripe.Customer](ErrMissingCustomerID)
	}
	return async.Go(func() (*stripe.Customer, error) {
		return u.gateway.DeleteCustomer(ctx, customerID)
	})
}

func (u *PaymentUseCase) ListCustomers(ctx context.Context, limit int64) *async.Future[[]*stripe.Customer] {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return async.Go(func() ([]*stripe.Customer, error) {
		return u.gateway.ListCustomers(ctx, limit)
	})
}

func (u *PaymentUseCase) CreateToken(ctx context.Context, card entities.CardDetails) *async.Future[*stripe.Token] {
	if err := validateCardDetails(card); err != nil {
		return async.Rejected[*stripe.Token](err)
	}
	return async.Go(func() (*stripe.Token, error) {
		return u.gateway.CreateToken(ctx, card)
	})
}

func (u *PaymentUseCase) GetToken(ctx context.Context, tokenID string) *async.Future[*stripe.Token] {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return async.Rejected[*stripe.Token](ErrMissingTokenID)
	}
	return async.Go(func() (*stripe.Token, error) {
		return u.gateway.GetToken(ctx, tokenID)
	})
}

// CreateAccount carries no preconditions: the vendor itself enforces the
// email requirement for non-managed accounts.
func (u *PaymentUseCase) CreateAccount(ctx context.Context, in entities.NewAccount) *async.Future[*stripe.Account] {
	return async.Go(func() (*stripe.Account, error) {
		return u.gateway.CreateAccount(ctx, in)
	})
}

func (u *PaymentUseCase) CreateCard(ctx context.Context, customerID string, card entities.CardDetails) *async.Future[*stripe.Card] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[*stripe.Card](ErrMissingCustomerID)
	}
	if err := validateCardForCustomer(card); err != nil {
		return async.Rejected[*stripe.Card](err)
	}
	return async.Go(func() (*stripe.Card, error) {
		return u.gateway.CreateCard(ctx, customerID, card)
	})
}

func (u *PaymentUseCase) GetCard(ctx context.Context, customerID, cardID string) *async.Future[*stripe.Card] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[*stripe.Card](ErrMissingCustomerID)
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return async.Rejected[*stripe.Card](ErrMissingCardID)
	}
	return async.Go(func() (*stripe.Card, error) {
		return u.gateway.GetCard(ctx, customerID, cardID)
	})
}

func (u *PaymentUseCase) DeleteCard(ctx context.Context, customerID, cardID string) *async.Future[*stripe.Card] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[*stripe.Card](ErrMissingCustomerID)
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return async.Rejected[*stripe.Card](ErrMissingCardID)
	}
	return async.Go(func() (*stripe.Card, error) {
		return u.gateway.DeleteCard(ctx, customerID, cardID)
	})
}

func (u *PaymentUseCase) ListCards(ctx context.Context, customerID string) *async.Future[[]*stripe.Card] {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return async.Rejected[[]*stripe.Card](ErrMissingCustomerID)
	}
	return async.Go(func() ([]*stripe.Card, error) {
		return u.gateway.ListCards(ctx, customerID)
	})
}

// validateCardDetails checks token-creation inputs in their declared
// order: number, cvc, expiration month, expiration year.
func validateCardDetails(card entities.CardDetails) error {
	if strings.TrimSpace(card.Number) == "" {
		return ErrMissingCardNumber
	}
	if strings.TrimSpace(card.CVC) == "" {
		return ErrMissingCardCVC
	}
	if card.ExpMonth <= 0 {
		return ErrMissingCardExpMonth
	}
	if card.ExpYear <= 0 {
		return ErrMissingCardExpYear
	}
	return nil
}

// validateCardForCustomer checks card-creation inputs in their declared
// order: number, expiration month, expiration year, cvc.
func validateCardForCustomer(card entities.CardDetails) error {
	if strings.TrimSpace(card.Number) == "" {
		return ErrMissingCardNumber
	}
	if card.ExpMonth <= 0 {
		return ErrMissingCardExpMonth
	}
	if card.ExpYear <= 0 {
		return ErrMissingCardExpYear
	}
	if strings.TrimSpace(card.CVC) == "" {
		return ErrMissingCardCVC
	}
	return nil
}
