package request

import (
	"strings"

	"billing_gateway/internal/domain/entities"
)

type AccountCreateRequest struct {
	Managed bool   `json:"managed"`
	Email   string `json:"email"`
}

func (r AccountCreateRequest) ToNewAccount() entities.NewAccount {
	return entities.NewAccount{
		Managed: r.Managed,
		Email:   strings.TrimSpace(r.Email),
	}
}
