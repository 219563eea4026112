package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/logger"
)

// QuizWorkflowRequest chains quiz generation, form creation and sharing.
type QuizWorkflowRequest struct {
	Quiz          QuizRequest
	Title         string
	Emails        []string
	TrainerEmails []string
}

type QuizWorkflowResult struct {
	Quiz       []entity.QuizItem
	Form       entity.FormRecord
	SharedWith entity.NotificationResult
}

type MultiQuizWorkflowRequest struct {
	Blocks        []json.RawMessage
	Kind          entity.ItemKind
	TitleTemplate string
	Level         string
	Count         int
	Emails        []string
	TrainerEmails []string
}

// MultiQuizWorkflowResult is positionally aligned with the request blocks.
// Successful counts the blocks that ended with a published form.
type MultiQuizWorkflowResult struct {
	Quizzes    [][]entity.QuizItem
	Forms      []*entity.FormRecord
	SharedWith []entity.NotificationResult
	Errors     []string
	Successful int
	Total      int
}

type IWorkflowService interface {
	QuizWorkflow(ctx context.Context, req QuizWorkflowRequest) (*QuizWorkflowResult, error)
	MultiQuizWorkflow(ctx context.Context, req MultiQuizWorkflowRequest) (*MultiQuizWorkflowResult, error)
}

type workflowService struct {
	quiz         IQuizService
	forms        IFormService
	defaultTitle string
	logger       logger.ILogger
}

func NewWorkflowService(quiz IQuizService, forms IFormService, defaultTitle string, log logger.ILogger) IWorkflowService {
	return &workflowService{
		quiz:         quiz,
		forms:        forms,
		defaultTitle: defaultTitle,
		logger:       log,
	}
}

func (s *workflowService) QuizWorkflow(ctx context.Context, req QuizWorkflowRequest) (*QuizWorkflowResult, error) {
	items, err := s.quiz.CreateQuiz(ctx, req.Quiz)
	if err != nil {
		return nil, err
	}

	form, err := s.forms.PublishQuizForm(ctx, items, s.titleOrDefault(req.Title))
	if err != nil {
		return nil, err
	}

	shared, err := s.share(ctx, form, req.Emails, req.TrainerEmails)
	if err != nil {
		return nil, err
	}

	s.logger.Info("WorkflowService", "Quiz workflow completed", map[string]interface{}{
		"form_id":    form.Record.FormID,
		"successful": len(shared.Successful),
		"failed":     len(shared.Failed),
	})
	return &QuizWorkflowResult{Quiz: items, Form: form.Record, SharedWith: shared}, nil
}

func (s *workflowService) MultiQuizWorkflow(ctx context.Context, req MultiQuizWorkflowRequest) (*MultiQuizWorkflowResult, error) {
	if len(req.Blocks) == 0 {
		return nil, apperr.InvalidParameter("Missing content_list parameter")
	}
	kind := req.Kind
	if kind == "" {
		kind = entity.ItemKindDay
	}
	template := s.titleOrDefault(req.TitleTemplate)

	batch := s.quiz.GenerateQuizzes(ctx, req.Blocks, kind, req.Level, req.Count)
	result := &MultiQuizWorkflowResult{
		Quizzes:    batch.Quizzes,
		Forms:      make([]*entity.FormRecord, len(req.Blocks)),
		SharedWith: make([]entity.NotificationResult, len(req.Blocks)),
		Errors:     append([]string{}, batch.Errors...),
		Total:      len(req.Blocks),
	}

	for i, items := range batch.Quizzes {
		result.SharedWith[i] = entity.NewNotificationResult()
		if items == nil {
			continue
		}

		form, err := s.forms.PublishQuizForm(ctx, items, formTitle(template, kind, i+1))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %d: %v", kind.Label(), i+1, err))
			continue
		}
		record := form.Record
		result.Forms[i] = &record
		result.Successful++

		shared, err := s.share(ctx, form, req.Emails, req.TrainerEmails)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s %d: %v", kind.Label(), i+1, err))
			continue
		}
		result.SharedWith[i] = shared
	}

	if result.Successful == 0 {
		return result, apperr.Upstream("no quiz form could be created: "+strings.Join(result.Errors, "; "), nil)
	}

	s.logger.Info("WorkflowService", "Multi-quiz workflow completed", map[string]interface{}{
		"kind":       string(kind),
		"successful": result.Successful,
		"total":      result.Total,
	})
	return result, nil
}

// share is a no-op when nobody is to be notified.
func (s *workflowService) share(ctx context.Context, form *PublishedForm, emails, trainerEmails []string) (entity.NotificationResult, error) {
	if len(emails) == 0 && len(trainerEmails) == 0 {
		return entity.NewNotificationResult(), nil
	}
	return s.forms.ShareForm(ctx, ShareRequest{
		FormID:        form.Record.FormID,
		Emails:        emails,
		TrainerEmails: trainerEmails,
		Title:         form.Record.Title,
		EditURL:       form.Record.EditURL,
		ViewURL:       form.Record.ViewURL,
		Credentials:   form.Credentials,
	})
}

func (s *workflowService) titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return s.defaultTitle
	}
	return title
}
