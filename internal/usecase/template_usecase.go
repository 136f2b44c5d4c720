package usecase

import (
	"context"
	"errors"
	"strings"

	"billing_gateway/internal/async"
	"billing_gateway/internal/infrastructure/templates"
	"billing_gateway/internal/usecase/interfaces"
)

var ErrMissingTemplateName = errors.New("template name is required")

// ITemplateContentUseCase renders a named vendor template with
// substitution variables.
type ITemplateContentUseCase interface {
	GetContent(ctx context.Context, templateName string, params map[string]string) *async.Future[string]
}

type TemplateContentUseCase struct {
	gateway interfaces.ITemplateGateway
}

var _ ITemplateContentUseCase = (*TemplateContentUseCase)(nil)

func NewTemplateContentUseCase(gateway interfaces.ITemplateGateway) *TemplateContentUseCase {
	return &TemplateContentUseCase{gateway: gateway}
}

// GetContent composes the vendor's two template calls, strictly in
// sequence: look the template up by name, then render its raw code with
// one merge variable per params entry. A lookup failure rejects the future
// with the lookup error and the render call is never issued. On success
// the future resolves with the rendered HTML only.
func (u *TemplateContentUseCase) GetContent(ctx context.Context, templateName string, params map[string]string) *async.Future[string] {
	templateName = strings.TrimSpace(templateName)
	if templateName == "" {
		return async.Rejected[string](ErrMissingTemplateName)
	}
	return async.Go(func() (string, error) {
		tpl, err := u.gateway.TemplateInfo(ctx, templateName)
		if err != nil {
			return "", err
		}
		mergeVars := make([]templates.MergeVar, 0, len(params))
		for name, content := range params {
			mergeVars = append(mergeVars, templates.MergeVar{Name: name, Content: content})
		}
		return u.gateway.Render(ctx, templateName, tpl.Code, mergeVars)
	})
}
