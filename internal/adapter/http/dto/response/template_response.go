package response

// TemplateContentResponse carries the rendered HTML of a template; the
// rest of the vendor's render payload never leaves the service.
type TemplateContentResponse struct {
	HTML string `json:"html"`
}
