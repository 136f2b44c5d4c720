package interfaces

import (
	"context"

	"billing_gateway/internal/infrastructure/templates"
)

//go:generate mockgen -source=template_gateway_interface.go -destination=mocks/template_gateway_mock.go -package=mocks

// ITemplateGateway abstracts the external template-rendering vendor.
//
// TemplateInfo and Render are the vendor's two template calls; the use case
// composes them, this interface never does.
type ITemplateGateway interface {
	TemplateInfo(ctx context.Context, name string) (*templates.Template, error)
	Render(ctx context.Context, templateName, templateContent string, mergeVars []templates.MergeVar) (string, error)
}
