package mailer

import (
	"context"

	"gopkg.in/gomail.v2"
)

type smtpSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, username, password string) Sender {
	return &smtpSender{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *smtpSender) Send(_ context.Context, msg *gomail.Message) error {
	return s.dialer.DialAndSend(msg)
}
