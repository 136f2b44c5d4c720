package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		apiKey:     "key_test",
		apiURL:     srv.URL,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestClient_TemplateInfo(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/templates/info.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed decoding request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"name": "welcome",
			"code": "<div>{{name}}</div>",
		})
	}))
	defer srv.Close()

	tpl, err := newTestClient(srv).TemplateInfo(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Code != "<div>{{name}}</div>" {
		t.Fatalf("expected template code, got %q", tpl.Code)
	}
	if gotBody["key"] != "key_test" || gotBody["name"] != "welcome" {
		t.Fatalf("expected key and name in request body, got %v", gotBody)
	}
}

func TestClient_Render(t *testing.T) {
	var gotBody struct {
		Key          string     `json:"key"`
		TemplateName string     `json:"template_name"`
		MergeVars    []MergeVar `json:"merge_vars"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/templates/render.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed decoding request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"html": "<div>Ana</div>"})
	}))
	defer srv.Close()

	html, err := newTestClient(srv).Render(context.Background(), "welcome", "<div>{{name}}</div>", []MergeVar{{Name: "name", Content: "Ana"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div>Ana</div>" {
		t.Fatalf("expected rendered html, got %q", html)
	}
	if gotBody.TemplateName != "welcome" {
		t.Fatalf("expected template_name welcome, got %q", gotBody.TemplateName)
	}
	if len(gotBody.MergeVars) != 1 || gotBody.MergeVars[0] != (MergeVar{Name: "name", Content: "Ana"}) {
		t.Fatalf("expected one merge var name=Ana, got %v", gotBody.MergeVars)
	}
}

func TestClient_VendorErrorUntranslated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"code":    5,
			"name":    "Unknown_Template",
			"message": "No such template \"welcome\"",
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv).TemplateInfo(context.Background(), "welcome")
	var vendorErr *Error
	if !errors.As(err, &vendorErr) {
		t.Fatalf("expected a vendor error, got %v", err)
	}
	if vendorErr.Name != "Unknown_Template" || vendorErr.Code != 5 {
		t.Fatalf("expected the vendor payload preserved, got %+v", vendorErr)
	}
}
