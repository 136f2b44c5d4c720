package templates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIURL = "https://mandrillapp.com/api/1.0"

// Client talks to the Mandrill template API. Mandrill has no maintained Go
// SDK, so this is a plain JSON-over-HTTP client; the vendor authenticates
// by a `key` field inside each request body rather than a header.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Error is the vendor's error payload. It is returned to callers exactly
// as received so vendor codes and names stay inspectable.
type Error struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Name, e.Message, e.Code)
}

// Template is the vendor's template record as returned by templates/info.
type Template struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	PublishCode string `json:"publish_code"`
	Subject     string `json:"subject"`
}

// MergeVar pairs a template placeholder name with its substitution value.
type MergeVar struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type templateInfoRequest struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type renderRequest struct {
	Key             string     `json:"key"`
	TemplateName    string     `json:"template_name"`
	TemplateContent []MergeVar `json:"template_content,omitempty"`
	MergeVars       []MergeVar `json:"merge_vars,omitempty"`
}

type renderResponse struct {
	HTML string `json:"html"`
}

// TemplateInfo looks a template up by name.
func (c *Client) TemplateInfo(ctx context.Context, name string) (*Template, error) {
	var tpl Template
	if err := c.post(ctx, "/templates/info.json", templateInfoRequest{Key: c.apiKey, Name: name}, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Render renders template code with the given merge variables and returns
// the resulting HTML.
func (c *Client) Render(ctx context.Context, templateName, templateContent string, mergeVars []MergeVar) (string, error) {
	body := renderRequest{
		Key:             c.apiKey,
		TemplateName:    templateName,
		TemplateContent: []MergeVar{{Name: "main", Content: templateContent}},
		MergeVars:       mergeVars,
	}
	var out renderResponse
	if err := c.post(ctx, "/templates/render.json", body, &out); err != nil {
		return "", err
	}
	return out.HTML, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		vendorErr := &Error{}
		if decodeErr := json.NewDecoder(resp.Body).Decode(vendorErr); decodeErr != nil {
			return fmt.Errorf("unexpected status: %s", resp.Status)
		}
		return vendorErr
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
