package service

import (
	"context"
	"strings"

	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/pkg/mailer"
)

type INotificationService interface {
	// Notify sends one email per recipient and reports each outcome.
	Notify(ctx context.Context, form entity.FormRecord, recipients []entity.Recipient) entity.NotificationResult
}

type notificationService struct {
	email  mailer.IEmailService
	logger logger.ILogger
}

func NewNotificationService(email mailer.IEmailService, log logger.ILogger) INotificationService {
	return &notificationService{
		email:  email,
		logger: log,
	}
}

func (s *notificationService) Notify(ctx context.Context, form entity.FormRecord, recipients []entity.Recipient) entity.NotificationResult {
	result := entity.NewNotificationResult()
	links := mailer.QuizLinks{Title: form.Title, ViewURL: form.ViewURL, EditURL: form.EditURL}

	for _, r := range recipients {
		email := strings.TrimSpace(r.Email)
		if email == "" {
			continue
		}
		if !mailer.ValidAddress(email) {
			s.logger.Warn("NotificationService", "Skipping invalid email address", map[string]interface{}{"email": email})
			result.Failed = append(result.Failed, email)
			continue
		}
		if err := s.email.SendQuizInvitation(ctx, email, links, r.Trainer); err != nil {
			s.logger.Error("NotificationService", "Failed to send quiz email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
			result.Failed = append(result.Failed, email)
			continue
		}
		s.logger.Info("NotificationService", "Quiz email sent", map[string]interface{}{"email": email, "trainer": r.Trainer})
		result.Successful = append(result.Successful, email)
	}
	return result
}
