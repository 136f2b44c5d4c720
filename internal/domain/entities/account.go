package entities

// NewAccount is the input for creating a vendor account. The vendor itself
// enforces that Email is present for non-managed accounts; this layer
// forwards both fields unvalidated.
type NewAccount struct {
	Managed bool   `json:"managed"`
	Email   string `json:"email"`
}
