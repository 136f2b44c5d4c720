package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"billing_gateway/internal/infrastructure/templates"
	"billing_gateway/internal/usecase/interfaces/mocks"
)

func TestTemplateContentUseCase_GetContent(t *testing.T) {
	t.Run("missing template name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewTemplateContentUseCase(mocks.NewMockITemplateGateway(ctrl))

		_, err := uc.GetContent(context.Background(), "  ", nil).Wait(context.Background())
		if !errors.Is(err, ErrMissingTemplateName) {
			t.Fatalf("expected ErrMissingTemplateName, got %v", err)
		}
	})

	t.Run("lookup then render, html only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mocks.NewMockITemplateGateway(ctrl)
		uc := NewTemplateContentUseCase(gateway)

		lookup := gateway.EXPECT().
			TemplateInfo(gomock.Any(), "welcome").
			Return(&templates.Template{Name: "welcome", Code: "<div>{{name}}</div>"}, nil)
		gateway.EXPECT().
			Render(gomock.Any(), "welcome", "<div>{{name}}</div>", []templates.MergeVar{{Name: "name", Content: "Ana"}}).
			Return("<div>Ana</div>", nil).
			After(lookup)

		html, err := uc.GetContent(context.Background(), "welcome", map[string]string{"name": "Ana"}).Wait(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if html != "<div>Ana</div>" {
			t.Fatalf("expected rendered html, got %q", html)
		}
	})

	t.Run("lookup failure short-circuits render", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mocks.NewMockITemplateGateway(ctrl)
		uc := NewTemplateContentUseCase(gateway)

		lookupErr := &templates.Error{Status: "error", Code: 5, Name: "Unknown_Template", Message: "No such template"}
		gateway.EXPECT().TemplateInfo(gomock.Any(), "welcome").Return(nil, lookupErr)
		// No Render expectation: any render call fails the test.

		_, err := uc.GetContent(context.Background(), "welcome", map[string]string{"name": "Ana"}).Wait(context.Background())
		if !errors.Is(err, lookupErr) {
			t.Fatalf("expected the lookup error unchanged, got %v", err)
		}
	})

	t.Run("render failure surfaces unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mocks.NewMockITemplateGateway(ctrl)
		uc := NewTemplateContentUseCase(gateway)

		renderErr := errors.New("render blew up")
		gateway.EXPECT().TemplateInfo(gomock.Any(), "welcome").Return(&templates.Template{Code: "x"}, nil)
		gateway.EXPECT().Render(gomock.Any(), "welcome", "x", gomock.Any()).Return("", renderErr)

		_, err := uc.GetContent(context.Background(), "welcome", nil).Wait(context.Background())
		if !errors.Is(err, renderErr) {
			t.Fatalf("expected the render error unchanged, got %v", err)
		}
	})
}
