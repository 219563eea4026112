package entity

import (
	"strconv"
	"time"
)

type FormRecord struct {
	FormID  string `json:"form_id"`
	EditURL string `json:"edit_url"`
	ViewURL string `json:"view_url"`
	Title   string `json:"title"`
}

// CredentialRef identifies the credentials a form was created with without
// holding any secret material. It is only ever written to session files.
type CredentialRef struct {
	Type   string   `json:"type"`
	Source string   `json:"source"`
	Scopes []string `json:"scopes,omitempty"`
}

// FormSession is the persisted hand-off between create-google-form and
// share-form.
type FormSession struct {
	SessionID   string         `json:"session_id"`
	Form        FormRecord     `json:"form"`
	Credentials *CredentialRef `json:"credentials,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type Recipient struct {
	Email   string
	Trainer bool
}

type NotificationResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

func NewNotificationResult() NotificationResult {
	return NotificationResult{Successful: []string{}, Failed: []string{}}
}

// FormBatch is positionally aligned with the quizzes it was built from.
type FormBatch struct {
	Forms      []*FormRecord `json:"forms"`
	Errors     []string      `json:"errors"`
	Successful int           `json:"successful"`
	Total      int           `json:"total"`
}

func (b *FormBatch) Failed() bool {
	return b.Successful == 0
}

func itoa(n int) string { return strconv.Itoa(n) }
