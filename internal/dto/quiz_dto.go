package dto

import (
	"encoding/json"

	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/serverutils"
)

// GenerateQuizRequest.Content may be any JSON value; non-string content is
// serialised before it is embedded in the prompt.
type GenerateQuizRequest struct {
	Content json.RawMessage `json:"content"`
	Level   string          `json:"level"`
	NbrQst  FlexInt         `json:"nbr_qst"`
	Title   string          `json:"title"`
}

type GenerateQuizResponse struct {
	serverutils.Envelope
	QuizData []entity.QuizItem `json:"quiz_data"`
	QuizFile string            `json:"quiz_file,omitempty"`
	Title    string            `json:"title"`
}

type QuizWorkflowRequest struct {
	Content       json.RawMessage `json:"content"`
	Title         string          `json:"title"`
	Level         string          `json:"level"`
	NbrQst        FlexInt         `json:"nbr_qst"`
	Emails        []string        `json:"emails"`
	TrainerEmails []string        `json:"trainer_emails"`
}

type QuizWorkflowResponse struct {
	serverutils.Envelope
	QuizData   []entity.QuizItem         `json:"quiz_data"`
	Form       FormResponse              `json:"form"`
	SharedWith entity.NotificationResult `json:"shared_with"`
}

type GenerateDailyQuizzesRequest struct {
	DailyContent []json.RawMessage `json:"daily_content"`
	Level        string            `json:"level"`
	NbrQstPerDay FlexInt           `json:"nbr_qst_per_day"`
}

type GenerateSectionQuizzesRequest struct {
	SectionContent   []json.RawMessage `json:"section_content"`
	Level            string            `json:"level"`
	NbrQstPerSection FlexInt           `json:"nbr_qst_per_section"`
}

type QuizBatchResponse struct {
	serverutils.Envelope
	*entity.QuizBatch
}

type MultiQuizWorkflowRequest struct {
	ContentList   []json.RawMessage `json:"content_list"`
	Type          string            `json:"type" validate:"omitempty,oneof=day section"`
	TitleTemplate string            `json:"title_template"`
	Level         string            `json:"level"`
	NbrQst        FlexInt           `json:"nbr_qst"`
	Emails        []string          `json:"emails"`
	TrainerEmails []string          `json:"trainer_emails"`
}

type MultiQuizWorkflowResponse struct {
	serverutils.Envelope
	Quizzes    [][]entity.QuizItem         `json:"quizzes"`
	Forms      []*FormResponse             `json:"forms"`
	SharedWith []entity.NotificationResult `json:"shared_with"`
	Errors     []string                    `json:"errors"`
	Successful int                         `json:"successful"`
	Total      int                         `json:"total"`
}
