package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/controller"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/pkg/mailer"
	"presentation-builder-be/internal/repository/implementation"
	"presentation-builder-be/internal/service"
	"presentation-builder-be/pkg/gworkspace"
	"presentation-builder-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	GenerationController controller.IGenerationController
	FileController       controller.IFileController
	QuizController       controller.IQuizController
	FormController       controller.IFormController
	HealthController     controller.IHealthController

	// Services (exposed for the CLI)
	DocumentService service.IDocumentService

	Logger logger.ILogger
}

func NewContainer(ctx context.Context, cfg *config.Config, log logger.ILogger, version string) (*Container, error) {
	// 1. Core facades
	provider, err := factory.NewLLMProvider(ctx, cfg.Ai)
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}

	artifactRepo, err := implementation.NewArtifactRepository(cfg.App.OutputFolder)
	if err != nil {
		return nil, err
	}

	sender, err := newMailSender(ctx, cfg)
	if err != nil {
		return nil, err
	}
	emailService := mailer.NewEmailService(sender, senderAddress(cfg), cfg.Mail.SenderName)
	workspace := gworkspace.NewConnector(cfg.Google.ServiceAccountFile)

	// 2. Services
	planService := service.NewPlanService(provider, artifactRepo, log)
	contentService := service.NewContentService(provider, artifactRepo, log)
	quizService := service.NewQuizService(provider, cfg.Ai.QuizModel, cfg.Quiz, artifactRepo, log)
	notificationService := service.NewNotificationService(emailService, log)
	formService := service.NewFormService(workspace, notificationService, artifactRepo, cfg.Quiz.DefaultTitle, log)
	workflowService := service.NewWorkflowService(quizService, formService, cfg.Quiz.DefaultTitle, log)
	documentService := service.NewDocumentService(cfg.App.OutputFolder, cfg.App.LogoPath, log)

	log.Info("Bootstrap", "Container ready", map[string]interface{}{
		"llm_provider": cfg.Ai.Provider,
		"model":        cfg.Ai.Model,
		"mail_backend": cfg.Mail.Backend,
		"output":       cfg.App.OutputFolder,
	})

	// 3. Controllers
	return &Container{
		GenerationController: controller.NewGenerationController(planService, contentService),
		FileController:       controller.NewFileController(documentService),
		QuizController:       controller.NewQuizController(quizService, workflowService, cfg.Quiz.DefaultTitle),
		FormController:       controller.NewFormController(formService),
		HealthController:     controller.NewHealthController(version),
		DocumentService:      documentService,
		Logger:               log,
	}, nil
}

func newMailSender(ctx context.Context, cfg *config.Config) (mailer.Sender, error) {
	switch strings.ToLower(cfg.Mail.Backend) {
	case "", "smtp":
		return mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password), nil
	case "gmail":
		sender, err := gworkspace.NewGmailSender(ctx, cfg.Google.GmailClientSecretFile, cfg.Google.GmailTokenFile)
		if err != nil {
			return nil, fmt.Errorf("init Gmail sender: %w", err)
		}
		return sender, nil
	default:
		return nil, fmt.Errorf("unknown MAIL_BACKEND %q", cfg.Mail.Backend)
	}
}

func senderAddress(cfg *config.Config) string {
	if cfg.Mail.Sender != "" {
		return cfg.Mail.Sender
	}
	return cfg.SMTP.Email
}
