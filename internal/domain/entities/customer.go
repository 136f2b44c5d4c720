package entities

// NewCustomer is the input for creating a customer record at the payment
// vendor. Metadata is required (an empty map is acceptable, nil is not);
// Description defaults to the empty string.
type NewCustomer struct {
	Email       string            `json:"email"`
	Metadata    map[string]string `json:"metadata"`
	Description string            `json:"description"`
}

// CustomerUpdate carries the fields of a customer update request. Only set
// fields are forwarded to the vendor.
type CustomerUpdate struct {
	Email       string            `json:"email,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
