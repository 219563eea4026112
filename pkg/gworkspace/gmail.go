package gworkspace

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"gopkg.in/gomail.v2"
)

// GmailSender sends composed messages through the Gmail API as the
// authorised user.
type GmailSender struct {
	svc *gmail.Service
}

// NewGmailSender builds a sender from an OAuth client secret file and a
// previously authorised token file. The token is refreshed as needed but
// never written back.
func NewGmailSender(ctx context.Context, clientSecretFile, tokenFile string) (*GmailSender, error) {
	secret, err := os.ReadFile(clientSecretFile)
	if err != nil {
		return nil, fmt.Errorf("read gmail client secret: %w", err)
	}
	conf, err := google.ConfigFromJSON(secret, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("parse gmail client secret: %w", err)
	}

	raw, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read gmail token: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("parse gmail token: %w", err)
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &GmailSender{svc: svc}, nil
}

func (s *GmailSender) Send(ctx context.Context, msg *gomail.Message) error {
	raw, err := EncodeRaw(msg)
	if err != nil {
		return err
	}
	_, err = s.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	return err
}

// EncodeRaw renders msg as RFC 2822 and encodes it the way the Gmail API
// expects its raw field.
func EncodeRaw(msg *gomail.Message) (string, error) {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("compose message: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}
