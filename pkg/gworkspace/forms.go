package gworkspace

import (
	"context"
	"fmt"

	"google.golang.org/api/forms/v1"
)

// FormsAPI is the subset of the Forms API used to publish quizzes.
type FormsAPI interface {
	Create(ctx context.Context, form *forms.Form) (*forms.Form, error)
	BatchUpdate(ctx context.Context, formID string, req *forms.BatchUpdateFormRequest) (*forms.BatchUpdateFormResponse, error)
}

type formsClient struct {
	svc *forms.Service
}

func NewFormsClient(ctx context.Context, creds *Credentials) (FormsAPI, error) {
	svc, err := forms.NewService(ctx, creds.ClientOption())
	if err != nil {
		return nil, fmt.Errorf("create forms service: %w", err)
	}
	return &formsClient{svc: svc}, nil
}

func (c *formsClient) Create(ctx context.Context, form *forms.Form) (*forms.Form, error) {
	return c.svc.Forms.Create(form).Context(ctx).Do()
}

func (c *formsClient) BatchUpdate(ctx context.Context, formID string, req *forms.BatchUpdateFormRequest) (*forms.BatchUpdateFormResponse, error) {
	return c.svc.Forms.BatchUpdate(formID, req).Context(ctx).Do()
}

func EditURL(formID string) string {
	return fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", formID)
}

func ViewURL(formID string) string {
	return fmt.Sprintf("https://docs.google.com/forms/d/%s/viewform", formID)
}
