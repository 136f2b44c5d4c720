package request

import (
	"strings"

	"billing_gateway/internal/domain/entities"
)

// CardRequest is shared by token creation and customer-card creation; both
// take the same four raw card fields.
type CardRequest struct {
	Number   string `json:"number"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
	CVC      string `json:"cvc"`
}

func (r CardRequest) ToCardDetails() entities.CardDetails {
	return entities.CardDetails{
		Number:   strings.TrimSpace(r.Number),
		ExpMonth: r.ExpMonth,
		ExpYear:  r.ExpYear,
		CVC:      strings.TrimSpace(r.CVC),
	}
}
