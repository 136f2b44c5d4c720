package request

import (
	"strings"

	"billing_gateway/internal/domain/entities"
)

// ChargeCreateRequest is the payload for charge creation. Required-ness is
// deliberately not enforced by binding tags: the use case owns precondition
// checks so that error messages name the offending argument.
type ChargeCreateRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	SourceToken string `json:"source_token"`
}

func (r ChargeCreateRequest) ToNewCharge() entities.NewCharge {
	return entities.NewCharge{
		Amount:      r.Amount,
		Currency:    strings.ToLower(strings.TrimSpace(r.Currency)),
		SourceToken: strings.TrimSpace(r.SourceToken),
	}
}

// ListQuery carries the optional page-size limit of list endpoints.
type ListQuery struct {
	Limit int64 `form:"limit"`
}
