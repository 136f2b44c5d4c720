package entities

// CardDetails holds raw card fields used to create single-use tokens and
// customer cards. All four fields are required; no format validation
// happens at this layer beyond presence (the vendor owns card validation).
//
// CardDetails is never persisted anywhere in this service.
type CardDetails struct {
	Number   string `json:"number"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
	CVC      string `json:"cvc"`
}
