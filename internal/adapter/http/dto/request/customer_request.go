package request

import (
	"strings"

	"billing_gateway/internal/domain/entities"
)

type CustomerCreateRequest struct {
	Email       string            `json:"email"`
	Metadata    map[string]string `json:"metadata"`
	Description string            `json:"description"`
}

func (r CustomerCreateRequest) ToNewCustomer() entities.NewCustomer {
	return entities.NewCustomer{
		Email:       strings.TrimSpace(r.Email),
		Metadata:    r.Metadata,
		Description: strings.TrimSpace(r.Description),
	}
}

type CustomerUpdateRequest struct {
	Email       string            `json:"email"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

// IsEmpty reports whether the request carries no update at all, which the
// facade treats as a missing payload.
func (r CustomerUpdateRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Email) == "" &&
		strings.TrimSpace(r.Description) == "" &&
		r.Metadata == nil
}

func (r CustomerUpdateRequest) ToCustomerUpdate() *entities.CustomerUpdate {
	if r.IsEmpty() {
		return nil
	}
	return &entities.CustomerUpdate{
		Email:       strings.TrimSpace(r.Email),
		Description: strings.TrimSpace(r.Description),
		Metadata:    r.Metadata,
	}
}
