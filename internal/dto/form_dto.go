package dto

import (
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/serverutils"
)

// FormResponse is the only shape a published form leaves the service in.
// It deliberately has no room for credentials.
type FormResponse struct {
	FormID  string `json:"form_id"`
	EditURL string `json:"edit_url"`
	ViewURL string `json:"view_url"`
	Title   string `json:"title"`
}

func NewFormResponse(r entity.FormRecord) FormResponse {
	return FormResponse{FormID: r.FormID, EditURL: r.EditURL, ViewURL: r.ViewURL, Title: r.Title}
}

type CreateFormRequest struct {
	QuizData []entity.QuizItem `json:"quiz_data"`
	Title    string            `json:"title"`
}

type CreateFormResponse struct {
	serverutils.Envelope
	Form      FormResponse `json:"form"`
	SessionID string       `json:"session_id,omitempty"`
}

type ShareFormRequest struct {
	FormID        string   `json:"form_id" validate:"required"`
	Emails        []string `json:"emails"`
	TrainerEmails []string `json:"trainer_emails"`
	SessionID     string   `json:"session_id"`
	Title         string   `json:"title"`
	EditURL       string   `json:"edit_url"`
	ViewURL       string   `json:"view_url"`
}

type ShareFormResponse struct {
	serverutils.Envelope
	FormID     string                    `json:"form_id"`
	SharedWith entity.NotificationResult `json:"shared_with"`
}

type CreateMultipleFormsRequest struct {
	QuizDataList  [][]entity.QuizItem `json:"quiz_data_list"`
	TitleTemplate string              `json:"title_template"`
	Type          string              `json:"type" validate:"omitempty,oneof=day section"`
}

type CreateMultipleFormsResponse struct {
	serverutils.Envelope
	Forms      []*FormResponse `json:"forms"`
	Errors     []string        `json:"errors"`
	Successful int             `json:"successful"`
	Total      int             `json:"total"`
}

// FormResponses maps a positional batch, keeping nil slots.
func FormResponses(records []*entity.FormRecord) []*FormResponse {
	out := make([]*FormResponse, len(records))
	for i, r := range records {
		if r == nil {
			continue
		}
		f := NewFormResponse(*r)
		out[i] = &f
	}
	return out
}
