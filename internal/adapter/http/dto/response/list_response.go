package response

// ListResponse wraps list results after the vendor's pagination envelope
// has been stripped. A nil collection serializes as an empty array.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items}
}
