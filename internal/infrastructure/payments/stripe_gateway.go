package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	stripe "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"

	"billing_gateway/internal/domain/entities"
)

var ErrMissingStripeAPIKey = errors.New("missing STRIPE_API_KEY")

// StripeGateway talks to Stripe through a client keyed at construction.
// The key lives on this instance, never in the SDK's package-level
// configuration, so gateways with different keys can coexist in one
// process.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(apiKey string) (*StripeGateway, error) {
	if apiKey == "" {
		log.Printf("[payments][gateway] missing STRIPE_API_KEY")
		return nil, ErrMissingStripeAPIKey
	}
	log.Printf("[payments][gateway] Stripe client initialized")
	return &StripeGateway{api: client.New(apiKey, nil)}, nil
}

func (g *StripeGateway) CreateCharge(ctx context.Context, in entities.NewCharge) (*stripe.Charge, error) {
	params := &stripe.ChargeParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(in.Amount),
		Currency: stripe.String(in.Currency),
	}
	if err := params.SetSource(in.SourceToken); err != nil {
		return nil, err
	}
	return g.api.Charges.New(params)
}

func (g *StripeGateway) GetCharge(ctx context.Context, chargeID string) (*stripe.Charge, error) {
	return g.api.Charges.Get(chargeID, &stripe.ChargeParams{Params: stripe.Params{Context: ctx}})
}

func (g *StripeGateway) ListCharges(ctx context.Context, limit int64) ([]*stripe.Charge, error) {
	params := &stripe.ChargeListParams{
		// Single keeps the iterator on one vendor page of exactly `limit`
		// results instead of auto-paginating.
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(limit), Single: true},
	}
	iter := g.api.Charges.List(params)
	charges := []*stripe.Charge{}
	for iter.Next() {
		charges = append(charges, iter.Charge())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return charges, nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, in entities.NewCustomer) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Params:      stripe.Params{Context: ctx},
		Email:       stripe.String(in.Email),
		Description: stripe.String(in.Description),
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	return g.api.Customers.New(params)
}

func (g *StripeGateway) GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	return g.api.Customers.Get(customerID, &stripe.CustomerParams{Params: stripe.Params{Context: ctx}})
}

// UpdateCustomer reaches the vendor through its *retrieve* call, carrying
// the update payload as retrieve options. This reproduces the traffic of
// the service this gateway replaced; integrations are known to depend on
// it, so switching to Customers.Update needs an explicit contract decision
// first (see DESIGN.md).
func (g *StripeGateway) UpdateCustomer(ctx context.Context, customerID string, in entities.CustomerUpdate) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{Params: stripe.Params{Context: ctx}}
	if in.Email != "" {
		params.Email = stripe.String(in.Email)
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	return g.api.Customers.Get(customerID, params)
}

// DeleteCustomer is a soft delete on the vendor side; the returned record
// carries the deleted flag.
func (g *StripeGateway) DeleteCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	return g.api.Customers.Del(customerID, &stripe.CustomerParams{Params: stripe.Params{Context: ctx}})
}

func (g *StripeGateway) ListCustomers(ctx context.Context, limit int64) ([]*stripe.Customer, error) {
	params := &stripe.CustomerListParams{
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(limit), Single: true},
	}
	iter := g.api.Customers.List(params)
	customers := []*stripe.Customer{}
	for iter.Next() {
		customers = append(customers, iter.Customer())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (g *StripeGateway) CreateToken(ctx context.Context, card entities.CardDetails) (*stripe.Token, error) {
	params := &stripe.TokenParams{
		Params: stripe.Params{Context: ctx},
		Card: &stripe.CardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.String(strconv.FormatInt(card.ExpMonth, 10)),
			ExpYear:  stripe.String(strconv.FormatInt(card.ExpYear, 10)),
			CVC:      stripe.String(card.CVC),
		},
	}
	return g.api.Tokens.New(params)
}

func (g *StripeGateway) GetToken(ctx context.Context, tokenID string) (*stripe.Token, error) {
	return g.api.Tokens.Get(tokenID, &stripe.TokenParams{Params: stripe.Params{Context: ctx}})
}

func (g *StripeGateway) CreateAccount(ctx context.Context, in entities.NewAccount) (*stripe.Account, error) {
	accountType := stripe.AccountTypeStandard
	if in.Managed {
		accountType = stripe.AccountTypeCustom
	}
	params := &stripe.AccountParams{
		Params: stripe.Params{Context: ctx},
		Type:   stripe.String(string(accountType)),
	}
	if in.Email != "" {
		params.Email = stripe.String(in.Email)
	}
	return g.api.Accounts.New(params)
}

func (g *StripeGateway) CreateCard(ctx context.Context, customerID string, card entities.CardDetails) (*stripe.Card, error) {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Number:   stripe.String(card.Number),
		ExpMonth: stripe.String(strconv.FormatInt(card.ExpMonth, 10)),
		ExpYear:  stripe.String(strconv.FormatInt(card.ExpYear, 10)),
		CVC:      stripe.String(card.CVC),
	}
	return g.api.Cards.New(params)
}

func (g *StripeGateway) GetCard(ctx context.Context, customerID, cardID string) (*stripe.Card, error) {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	}
	return g.api.Cards.Get(cardID, params)
}

func (g *StripeGateway) DeleteCard(ctx context.Context, customerID, cardID string) (*stripe.Card, error) {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	}
	return g.api.Cards.Del(cardID, params)
}

func (g *StripeGateway) ListCards(ctx context.Context, customerID string) ([]*stripe.Card, error) {
	params := &stripe.CardListParams{
		ListParams: stripe.ListParams{Context: ctx, Single: true},
		Customer:   stripe.String(customerID),
	}
	iter := g.api.Cards.List(params)
	cards := []*stripe.Card{}
	for iter.Next() {
		cards = append(cards, iter.Card())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}
