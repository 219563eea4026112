package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	sent []*gomail.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg *gomail.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendQuizInvitation_Trainer(t *testing.T) {
	sender := &recordingSender{}
	svc := NewEmailService(sender, "noreply@example.com", "")

	err := svc.SendQuizInvitation(context.Background(), "t@example.com", QuizLinks{
		Title: "Go", ViewURL: "https://view", EditURL: "https://edit",
	}, true)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"t@example.com"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Nouveau Quiz: Go"}, sender.sent[0].GetHeader("Subject"))
	assert.Contains(t, render(t, sender.sent[0]), "https://edit")
}

func TestSendQuizInvitation_ViewerHasNoEditLink(t *testing.T) {
	sender := &recordingSender{}
	svc := NewEmailService(sender, "noreply@example.com", "Formation")

	require.NoError(t, svc.SendQuizInvitation(context.Background(), "v@example.com", QuizLinks{
		Title: "Go", ViewURL: "https://view", EditURL: "https://edit",
	}, false))

	body := render(t, sender.sent[0])
	assert.Contains(t, body, "https://view")
	assert.NotContains(t, body, "https://edit")
}

func TestSendQuizInvitation_SenderError(t *testing.T) {
	svc := NewEmailService(&recordingSender{err: errors.New("smtp down")}, "a@b.c", "")

	err := svc.SendQuizInvitation(context.Background(), "v@example.com", QuizLinks{Title: "Go"}, false)
	assert.ErrorContains(t, err, "smtp down")
}

func TestValidAddress(t *testing.T) {
	for _, email := range []string{"formateur@example.com", " apprenant@example.fr "} {
		assert.True(t, ValidAddress(email), email)
	}
	for _, email := range []string{"", "pas-une-adresse", "formateur@", "a@b@c.com"} {
		assert.False(t, ValidAddress(email), email)
	}
}
