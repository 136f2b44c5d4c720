package response

import (
	"encoding/json"
	"testing"
)

func TestNewListResponse_NilBecomesEmptyArray(t *testing.T) {
	b, err := json.Marshal(NewListResponse[string](nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"data":[]}` {
		t.Fatalf("expected empty data array, got %s", b)
	}
}

func TestNewListResponse_KeepsItems(t *testing.T) {
	r := NewListResponse([]int{1, 2, 3})
	if len(r.Data) != 3 || r.Data[2] != 3 {
		t.Fatalf("expected items preserved, got %v", r.Data)
	}
}
