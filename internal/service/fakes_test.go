package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/pkg/mailer"
	"presentation-builder-be/internal/repository/contract"
	"presentation-builder-be/internal/repository/implementation"
	"presentation-builder-be/pkg/gworkspace"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/forms/v1"
)

const validQuiz = `[
	{"question": "Que fait go build ?", "choix_1": "Compile", "choix_2": "Teste", "choix_3": "Formate", "reponse": ["choix_1"]},
	{"question": "Types de base ?", "choix_1": "int", "choix_2": "string", "choix_3": "goroutine", "reponse": ["choix_1", "choix_2"]}
]`

var testQuizConfig = config.QuizConfig{
	DifficultyLevels:        []string{"debutant", "intermediaire", "avance"},
	DefaultDifficulty:       "intermediaire",
	DefaultQuestions:        5,
	DefaultQuestionsPerItem: 3,
	DefaultTitle:            "Quiz de formation",
}

func newTestRepo(t *testing.T) contract.IArtifactRepository {
	t.Helper()
	repo, err := implementation.NewArtifactRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

var nopLog = logger.NewNopLogger()

// fakeForms hands out sequential form ids and answers every createItem
// with item and question ids.
type fakeForms struct {
	mu         sync.Mutex
	created    []*forms.Form
	batches    map[string][]*forms.BatchUpdateFormRequest
	failCreate bool
	failBatch  map[int]bool // 1-based batch call number, per form
}

func newFakeForms() *fakeForms {
	return &fakeForms{batches: map[string][]*forms.BatchUpdateFormRequest{}, failBatch: map[int]bool{}}
}

func (f *fakeForms) Create(_ context.Context, form *forms.Form) (*forms.Form, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return nil, errors.New("forms: quota exceeded")
	}
	f.created = append(f.created, form)
	id := fmt.Sprintf("form-%d", len(f.created))
	return &forms.Form{FormId: id, Info: form.Info, ResponderUri: "https://docs.google.com/forms/d/e/" + id + "/viewform"}, nil
}

func (f *fakeForms) BatchUpdate(_ context.Context, formID string, req *forms.BatchUpdateFormRequest) (*forms.BatchUpdateFormResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches[formID] = append(f.batches[formID], req)
	if f.failBatch[len(f.batches[formID])] {
		return nil, errors.New("forms: backend error")
	}

	resp := &forms.BatchUpdateFormResponse{}
	for i, r := range req.Requests {
		reply := &forms.Response{}
		if r.CreateItem != nil {
			reply.CreateItem = &forms.CreateItemResponse{
				ItemId:     fmt.Sprintf("item-%d", i),
				QuestionId: []string{fmt.Sprintf("q-%d", i)},
			}
		}
		resp.Replies = append(resp.Replies, reply)
	}
	return resp, nil
}

type fakeDrive struct {
	granted []string
	fail    map[string]bool
}

func (d *fakeDrive) GrantWriter(_ context.Context, fileID, email string) error {
	if d.fail[email] {
		return errors.New("drive: invalid sharing request")
	}
	d.granted = append(d.granted, fileID+":"+email)
	return nil
}

type fakeWorkspace struct {
	forms     *fakeForms
	drive     *fakeDrive
	credsErr  error
	credsUsed []*gworkspace.Credentials
}

func newFakeWorkspace() *fakeWorkspace {
	return &fakeWorkspace{forms: newFakeForms(), drive: &fakeDrive{fail: map[string]bool{}}}
}

func (w *fakeWorkspace) Credentials(context.Context) (*gworkspace.Credentials, error) {
	if w.credsErr != nil {
		return nil, w.credsErr
	}
	return gworkspace.WrapCredentials(&google.Credentials{ProjectID: "test"}, "service_account", "/secret/sa.json", gworkspace.FormScopes...), nil
}

func (w *fakeWorkspace) Forms(_ context.Context, creds *gworkspace.Credentials) (gworkspace.FormsAPI, error) {
	w.credsUsed = append(w.credsUsed, creds)
	return w.forms, nil
}

func (w *fakeWorkspace) Drive(_ context.Context, creds *gworkspace.Credentials) (gworkspace.DriveAPI, error) {
	w.credsUsed = append(w.credsUsed, creds)
	return w.drive, nil
}

type sentEmail struct {
	to      string
	quiz    mailer.QuizLinks
	trainer bool
}

type fakeEmail struct {
	sent []sentEmail
	fail map[string]bool
}

func (e *fakeEmail) SendQuizInvitation(_ context.Context, to string, quiz mailer.QuizLinks, trainer bool) error {
	if e.fail[to] {
		return errors.New("smtp: mailbox unavailable")
	}
	e.sent = append(e.sent, sentEmail{to: to, quiz: quiz, trainer: trainer})
	return nil
}
