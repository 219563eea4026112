package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"
)

// Sender delivers one composed message. SMTP and the Gmail API both
// implement it.
type Sender interface {
	Send(ctx context.Context, msg *gomail.Message) error
}

// QuizLinks is what a quiz invitation points at.
type QuizLinks struct {
	Title   string
	ViewURL string
	EditURL string
}

type IEmailService interface {
	// SendQuizInvitation emails one recipient. Trainers also receive the
	// edit link.
	SendQuizInvitation(ctx context.Context, toEmail string, quiz QuizLinks, trainer bool) error
}

type emailService struct {
	sender      Sender
	senderEmail string
	senderName  string
}

func NewEmailService(sender Sender, senderEmail, senderName string) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendQuizInvitation(ctx context.Context, toEmail string, quiz QuizLinks, trainer bool) error {
	m, err := s.quizMessage(toEmail, quiz, trainer)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, m); err != nil {
		return fmt.Errorf("send quiz invitation to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) quizMessage(toEmail string, quiz QuizLinks, trainer bool) (*gomail.Message, error) {
	data := quizEmailData{Title: quiz.Title, ViewURL: quiz.ViewURL}
	if trainer {
		data.EditURL = quiz.EditURL
	}

	var html bytes.Buffer
	if err := quizHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render quiz email: %w", err)
	}

	m := gomail.NewMessage()
	if s.senderName != "" {
		m.SetAddressHeader("From", s.senderEmail, s.senderName)
	} else {
		m.SetHeader("From", s.senderEmail)
	}
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Nouveau Quiz: "+quiz.Title)
	m.SetBody("text/plain", quizText(data))
	m.AddAlternative("text/html", html.String())
	return m, nil
}

type quizEmailData struct {
	Title   string
	ViewURL string
	EditURL string
}

func quizText(d quizEmailData) string {
	var b strings.Builder
	b.WriteString("Bonjour,\n\n")
	fmt.Fprintf(&b, "Un nouveau quiz intitulé \"%s\" a été créé.\n\n", d.Title)
	if d.EditURL != "" {
		fmt.Fprintf(&b, "Vous pouvez le modifier ici: %s\n", d.EditURL)
	}
	fmt.Fprintf(&b, "Vous pouvez y accéder ici: %s\n\n", d.ViewURL)
	b.WriteString("Merci,\nL'équipe de formation\n")
	return b.String()
}

var quizHTML = template.Must(template.New("quiz").Parse(`<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; background-color: #FF7900; color: white;
                  padding: 10px 20px; text-decoration: none; border-radius: 5px;
                  margin: 10px 0; }
        .footer { font-size: 12px; color: #777; margin-top: 30px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>Nouveau Quiz Disponible</h2>
        <p>Bonjour,</p>
        <p>Un nouveau quiz intitulé <strong>"{{.Title}}"</strong> a été créé.</p>
        {{if .EditURL}}<p>En tant que formateur, vous pouvez modifier ce quiz :</p>
        <p><a href="{{.EditURL}}" class="button">Modifier le Quiz</a></p>{{end}}
        <p>Pour accéder au quiz :</p>
        <p><a href="{{.ViewURL}}" class="button">Voir le Quiz</a></p>
        <div class="footer">
            <p>Merci,<br>L'équipe de formation</p>
        </div>
    </div>
</body>
</html>`))
