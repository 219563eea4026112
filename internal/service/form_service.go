package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"presentation-builder-be/internal/constant"
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/pkg/mailer"
	"presentation-builder-be/internal/repository/contract"
	"presentation-builder-be/pkg/gworkspace"

	"github.com/google/uuid"
	"google.golang.org/api/forms/v1"
)

// GoogleWorkspace opens the Google API clients the form flow needs.
type GoogleWorkspace interface {
	Credentials(ctx context.Context) (*gworkspace.Credentials, error)
	Forms(ctx context.Context, creds *gworkspace.Credentials) (gworkspace.FormsAPI, error)
	Drive(ctx context.Context, creds *gworkspace.Credentials) (gworkspace.DriveAPI, error)
}

// PublishedForm pairs a form with the credentials that created it. The
// credentials stay server side: they are never serialised.
type PublishedForm struct {
	Record      entity.FormRecord
	Credentials *gworkspace.Credentials `json:"-"`
}

// ShareRequest shares a published form. When SessionID names a stored form
// session, its record replaces the URL fields given here.
type ShareRequest struct {
	FormID        string
	Emails        []string
	TrainerEmails []string
	SessionID     string
	Title         string
	EditURL       string
	ViewURL       string
	Credentials   *gworkspace.Credentials
}

type IFormService interface {
	PublishQuizForm(ctx context.Context, items []entity.QuizItem, title string) (*PublishedForm, error)
	// SaveSession stores the form record for a later share-form call and
	// returns the session id, or "" when it could not be written.
	SaveSession(ctx context.Context, form *PublishedForm) string
	GrantAccess(ctx context.Context, creds *gworkspace.Credentials, formID, email string) error
	ShareForm(ctx context.Context, req ShareRequest) (entity.NotificationResult, error)
	CreateForms(ctx context.Context, quizzes [][]entity.QuizItem, titleTemplate string, kind entity.ItemKind) (*entity.FormBatch, []*PublishedForm)
}

type formService struct {
	workspace    GoogleWorkspace
	notifier     INotificationService
	repo         contract.IArtifactRepository
	defaultTitle string
	logger       logger.ILogger
}

func NewFormService(workspace GoogleWorkspace, notifier INotificationService, repo contract.IArtifactRepository, defaultTitle string, log logger.ILogger) IFormService {
	return &formService{
		workspace:    workspace,
		notifier:     notifier,
		repo:         repo,
		defaultTitle: defaultTitle,
		logger:       log,
	}
}

func (s *formService) PublishQuizForm(ctx context.Context, items []entity.QuizItem, title string) (*PublishedForm, error) {
	if len(items) == 0 {
		return nil, apperr.InvalidParameter("Missing quiz_data parameter")
	}
	if strings.TrimSpace(title) == "" {
		title = s.defaultTitle
	}

	creds, err := s.workspace.Credentials(ctx)
	if err != nil {
		return nil, apperr.Upstream("load Google credentials", err)
	}
	api, err := s.workspace.Forms(ctx, creds)
	if err != nil {
		return nil, apperr.Upstream("open Forms API", err)
	}

	created, err := api.Create(ctx, &forms.Form{Info: &forms.Info{Title: title, DocumentTitle: title}})
	if err != nil {
		return nil, apperr.Upstream("create form", err)
	}
	formID := created.FormId

	if _, err := api.BatchUpdate(ctx, formID, &forms.BatchUpdateFormRequest{Requests: []*forms.Request{quizModeRequest()}}); err != nil {
		return nil, apperr.Upstream("enable quiz mode", err)
	}

	reqs := make([]*forms.Request, 0, len(items))
	for i, item := range items {
		reqs = append(reqs, createQuestionRequest(i, item))
	}
	resp, err := api.BatchUpdate(ctx, formID, &forms.BatchUpdateFormRequest{Requests: reqs})
	if err != nil {
		return nil, apperr.Upstream("add questions", err)
	}

	s.setAnswerKeys(ctx, api, formID, items, resp)

	viewURL := created.ResponderUri
	if viewURL == "" {
		viewURL = gworkspace.ViewURL(formID)
	}
	published := &PublishedForm{
		Record: entity.FormRecord{
			FormID:  formID,
			EditURL: gworkspace.EditURL(formID),
			ViewURL: viewURL,
			Title:   title,
		},
		Credentials: creds,
	}

	s.logger.Info("FormService", "Google Form created", map[string]interface{}{
		"form_id":   formID,
		"title":     title,
		"questions": len(items),
	})
	return published, nil
}

// setAnswerKeys is best effort: the form is usable without grading.
func (s *formService) setAnswerKeys(ctx context.Context, api gworkspace.FormsAPI, formID string, items []entity.QuizItem, resp *forms.BatchUpdateFormResponse) {
	if resp == nil || len(resp.Replies) != len(items) {
		s.logger.Warn("FormService", "Skipping answer keys: unexpected createItem replies", map[string]interface{}{"form_id": formID})
		return
	}

	reqs := make([]*forms.Request, 0, len(items))
	for i, item := range items {
		reply := resp.Replies[i].CreateItem
		if reply == nil || len(reply.QuestionId) == 0 {
			continue
		}
		answers := item.CorrectAnswers()
		if len(answers) == 0 {
			continue
		}
		reqs = append(reqs, gradingRequest(i, reply.ItemId, reply.QuestionId[0], item, answers))
	}
	if len(reqs) == 0 {
		return
	}

	if _, err := api.BatchUpdate(ctx, formID, &forms.BatchUpdateFormRequest{Requests: reqs}); err != nil {
		s.logger.Warn("FormService", "Failed to set correct answers", map[string]interface{}{
			"form_id": formID,
			"error":   err.Error(),
		})
	}
}

func (s *formService) SaveSession(ctx context.Context, form *PublishedForm) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	session := entity.FormSession{
		SessionID: id,
		Form:      form.Record,
		CreatedAt: time.Now().UTC(),
	}
	if form.Credentials != nil {
		session.Credentials = &entity.CredentialRef{
			Type:   form.Credentials.Type(),
			Source: form.Credentials.Source(),
			Scopes: form.Credentials.Scopes(),
		}
	}

	if saveArtifact(ctx, s.repo, s.logger, "FormService", fmt.Sprintf(constant.FormSessionFileFormat, id), session) == "" {
		return ""
	}
	return id
}

func (s *formService) GrantAccess(ctx context.Context, creds *gworkspace.Credentials, formID, email string) error {
	if creds == nil {
		var err error
		if creds, err = s.workspace.Credentials(ctx); err != nil {
			return apperr.Upstream("load Google credentials", err)
		}
	}
	api, err := s.workspace.Drive(ctx, creds)
	if err != nil {
		return apperr.Upstream("open Drive API", err)
	}
	if err := api.GrantWriter(ctx, formID, email); err != nil {
		s.logger.Error("FormService", "Failed to share form", map[string]interface{}{
			"form_id": formID,
			"email":   email,
			"error":   err.Error(),
		})
		return apperr.Upstream("share form with "+email, err)
	}

	s.logger.Info("FormService", "Form shared", map[string]interface{}{"form_id": formID, "email": email})
	return nil
}

func (s *formService) ShareForm(ctx context.Context, req ShareRequest) (entity.NotificationResult, error) {
	if strings.TrimSpace(req.FormID) == "" || (len(req.Emails) == 0 && len(req.TrainerEmails) == 0) {
		return entity.NewNotificationResult(), apperr.InvalidParameter("Missing required parameters (form_id, emails)")
	}

	record, err := s.resolveRecord(ctx, req)
	if err != nil {
		return entity.NewNotificationResult(), err
	}
	return s.shareAndNotify(ctx, req.Credentials, record, req.Emails, req.TrainerEmails), nil
}

// resolveRecord prefers the stored session over the fields of the request.
// The session must belong to the requested form.
func (s *formService) resolveRecord(ctx context.Context, req ShareRequest) (entity.FormRecord, error) {
	record := entity.FormRecord{
		FormID:  req.FormID,
		Title:   req.Title,
		EditURL: req.EditURL,
		ViewURL: req.ViewURL,
	}

	if req.SessionID != "" {
		var session entity.FormSession
		err := s.repo.Load(ctx, fmt.Sprintf(constant.FormSessionFileFormat, req.SessionID), &session)
		switch {
		case err == nil:
			if session.Form.FormID != "" && session.Form.FormID != req.FormID {
				return record, apperr.InvalidParameter("form_id %s does not match session %s", req.FormID, req.SessionID)
			}
			record = session.Form
			record.FormID = req.FormID
		case errors.Is(err, apperr.ErrNotFound):
			s.logger.Warn("FormService", "Form session not found, using request fields", map[string]interface{}{"session_id": req.SessionID})
		default:
			return record, err
		}
	}

	if record.Title == "" {
		record.Title = s.defaultTitle
	}
	if record.EditURL == "" {
		record.EditURL = gworkspace.EditURL(record.FormID)
	}
	if record.ViewURL == "" {
		record.ViewURL = gworkspace.ViewURL(record.FormID)
	}
	return record, nil
}

// shareAndNotify grants trainers edit access, then emails everyone. A
// trainer whose grant failed is reported as failed and not emailed.
func (s *formService) shareAndNotify(ctx context.Context, creds *gworkspace.Credentials, record entity.FormRecord, emails, trainerEmails []string) entity.NotificationResult {
	recipients := make([]entity.Recipient, 0, len(emails)+len(trainerEmails))
	var denied []string
	for _, email := range trainerEmails {
		if !mailer.ValidAddress(email) {
			denied = append(denied, email)
			continue
		}
		if err := s.GrantAccess(ctx, creds, record.FormID, email); err != nil {
			denied = append(denied, email)
			continue
		}
		recipients = append(recipients, entity.Recipient{Email: email, Trainer: true})
	}
	for _, email := range emails {
		recipients = append(recipients, entity.Recipient{Email: email})
	}

	result := s.notifier.Notify(ctx, record, recipients)
	result.Failed = append(result.Failed, denied...)
	return result
}

func (s *formService) CreateForms(ctx context.Context, quizzes [][]entity.QuizItem, titleTemplate string, kind entity.ItemKind) (*entity.FormBatch, []*PublishedForm) {
	if strings.TrimSpace(titleTemplate) == "" {
		titleTemplate = s.defaultTitle
	}

	batch := &entity.FormBatch{
		Forms:  make([]*entity.FormRecord, len(quizzes)),
		Errors: []string{},
		Total:  len(quizzes),
	}
	published := make([]*PublishedForm, len(quizzes))
	for i, items := range quizzes {
		if len(items) == 0 {
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s %d: missing quiz data", kind.Label(), i+1))
			continue
		}

		title := formTitle(titleTemplate, kind, i+1)
		form, err := s.PublishQuizForm(ctx, items, title)
		if err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s %d: %v", kind.Label(), i+1, err))
			s.logger.Warn("FormService", "Form creation failed", map[string]interface{}{
				"kind":  string(kind),
				"index": i + 1,
				"error": err.Error(),
			})
			continue
		}
		record := form.Record
		batch.Forms[i] = &record
		published[i] = form
		batch.Successful++
	}
	return batch, published
}

// formTitle names item n of a batch, e.g. "Go: Quiz du jour 2".
func formTitle(template string, kind entity.ItemKind, n int) string {
	return fmt.Sprintf("%s: %s", template, kind.FormTitleSuffix(n))
}

func quizModeRequest() *forms.Request {
	return &forms.Request{
		UpdateSettings: &forms.UpdateSettingsRequest{
			Settings:   &forms.FormSettings{QuizSettings: &forms.QuizSettings{IsQuiz: true}},
			UpdateMask: "quizSettings.isQuiz",
		},
	}
}

func questionType(item entity.QuizItem) string {
	if item.SingleAnswer() {
		return "RADIO"
	}
	return "CHECKBOX"
}

func choiceQuestion(item entity.QuizItem) *forms.ChoiceQuestion {
	opts := make([]*forms.Option, 0, 3)
	for _, c := range item.Choices() {
		opts = append(opts, &forms.Option{Value: c})
	}
	return &forms.ChoiceQuestion{
		Type:    questionType(item),
		Options: opts,
		Shuffle: true,
	}
}

// location pins an item index; index 0 must be sent explicitly.
func location(index int) *forms.Location {
	return &forms.Location{Index: int64(index), ForceSendFields: []string{"Index"}}
}

func createQuestionRequest(index int, item entity.QuizItem) *forms.Request {
	return &forms.Request{
		CreateItem: &forms.CreateItemRequest{
			Item: &forms.Item{
				Title: item.Question,
				QuestionItem: &forms.QuestionItem{
					Question: &forms.Question{
						Required:       true,
						ChoiceQuestion: choiceQuestion(item),
					},
				},
			},
			Location: location(index),
		},
	}
}

func gradingRequest(index int, itemID, questionID string, item entity.QuizItem, answers []string) *forms.Request {
	correct := make([]*forms.CorrectAnswer, 0, len(answers))
	for _, a := range answers {
		correct = append(correct, &forms.CorrectAnswer{Value: a})
	}
	return &forms.Request{
		UpdateItem: &forms.UpdateItemRequest{
			Item: &forms.Item{
				ItemId: itemID,
				Title:  item.Question,
				QuestionItem: &forms.QuestionItem{
					Question: &forms.Question{
						QuestionId:     questionID,
						Required:       true,
						ChoiceQuestion: choiceQuestion(item),
						Grading: &forms.Grading{
							PointValue:     1,
							CorrectAnswers: &forms.CorrectAnswers{Answers: correct},
						},
					},
				},
			},
			Location:   location(index),
			UpdateMask: "questionItem.question.grading",
		},
	}
}
