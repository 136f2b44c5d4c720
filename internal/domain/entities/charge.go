package entities

// NewCharge is the input for creating a charge against the payment vendor.
//
// Monetary representation:
//   - Amount is in minor currency units (e.g. cents).
//   - Currency is a lowercase 3-letter code; callers that omit it get the
//     facade default ("usd").
//
// SourceToken is the opaque single-use token identifying the payer's card;
// raw card data never reaches this operation.
type NewCharge struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	SourceToken string `json:"source_token"`
}
