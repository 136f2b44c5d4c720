package request

import "testing"

func TestChargeCreateRequest_ToNewCharge(t *testing.T) {
	r := ChargeCreateRequest{Amount: 500, Currency: " USD ", SourceToken: " tok_1 "}
	got := r.ToNewCharge()
	if got.Amount != 500 || got.Currency != "usd" || got.SourceToken != "tok_1" {
		t.Fatalf("unexpected command: %+v", got)
	}
}

func TestCustomerUpdateRequest_IsEmpty(t *testing.T) {
	if !(CustomerUpdateRequest{}).IsEmpty() {
		t.Fatal("expected zero request to be empty")
	}
	if (CustomerUpdateRequest{Email: "a@b.com"}).IsEmpty() {
		t.Fatal("expected request with email to be non-empty")
	}
	if (CustomerUpdateRequest{Metadata: map[string]string{}}).IsEmpty() {
		t.Fatal("expected request with metadata to be non-empty")
	}

	if got := (CustomerUpdateRequest{}).ToCustomerUpdate(); got != nil {
		t.Fatalf("expected nil update for empty request, got %+v", got)
	}
}

func TestTemplateRenderRequest_ResolveTemplateName(t *testing.T) {
	r := TemplateRenderRequest{TemplateName: "  welcome  "}
	if got := r.ResolveTemplateName(); got != "welcome" {
		t.Fatalf("expected welcome, got %q", got)
	}
}
