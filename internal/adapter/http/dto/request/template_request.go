package request

import "strings"

// TemplateRenderRequest asks for a named template rendered with the given
// substitution variables.
type TemplateRenderRequest struct {
	TemplateName string            `json:"template_name"`
	Params       map[string]string `json:"params"`
}

func (r TemplateRenderRequest) ResolveTemplateName() string {
	return strings.TrimSpace(r.TemplateName)
}
