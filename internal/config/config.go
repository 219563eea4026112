package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Ai      AIConfig
	Quiz    QuizConfig
	Google  GoogleConfig
	Mail    MailConfig
	SMTP    SMTPConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	OutputFolder       string
	UploadFolder       string
	LogoPath           string
	BodyLimit          int
}

type AIConfig struct {
	Provider        string // "openrouter", "openai", "anthropic", "gemini", "ollama"
	Model           string
	QuizModel       string
	APIKey          string
	BaseURL         string
	AnthropicAPIKey string
	GeminiAPIKey    string
	OllamaBaseURL   string
	MaxTokens       int
}

type QuizConfig struct {
	DifficultyLevels        []string
	DefaultDifficulty       string
	DefaultQuestions        int
	DefaultQuestionsPerItem int
	DefaultTitle            string
}

type GoogleConfig struct {
	ServiceAccountFile    string
	GmailClientSecretFile string
	GmailTokenFile        string
}

type MailConfig struct {
	Backend    string // "smtp" or "gmail"
	Sender     string
	SenderName string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	model := getEnv("LLM_MODEL", "deepseek/deepseek-chat-v3-0324:free")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			OutputFolder:       getEnv("OUTPUT_FOLDER", "./static/outputs"),
			UploadFolder:       getEnv("UPLOAD_FOLDER", "./static/uploads"),
			LogoPath:           getEnv("LOGO_PATH", "./static/images/logo.png"),
			BodyLimit:          getEnvAsInt("BODY_LIMIT_BYTES", 16*1024*1024),
		},
		Ai: AIConfig{
			Provider:        getEnv("LLM_PROVIDER", "openrouter"),
			Model:           model,
			QuizModel:       getEnv("LLM_QUIZ_MODEL", model),
			APIKey:          getEnv("LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:         getEnv("LLM_BASE_URL", ""),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 8192),
		},
		Quiz: QuizConfig{
			DifficultyLevels:        getEnvAsList("QUIZ_DIFFICULTY_LEVELS", []string{"debutant", "intermediaire", "avance"}),
			DefaultDifficulty:       getEnv("DEFAULT_QUIZ_DIFFICULTY", "intermediaire"),
			DefaultQuestions:        getEnvAsInt("DEFAULT_QUIZ_QUESTIONS", 5),
			DefaultQuestionsPerItem: getEnvAsInt("DEFAULT_QUIZ_QUESTIONS_PER_ITEM", 3),
			DefaultTitle:            getEnv("DEFAULT_QUIZ_TITLE", "Quiz de formation"),
		},
		Google: GoogleConfig{
			ServiceAccountFile:    getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", "credentials/service_account.json"),
			GmailClientSecretFile: getEnv("GMAIL_CLIENT_SECRET_FILE", "credentials/client_secret.json"),
			GmailTokenFile:        getEnv("GMAIL_TOKEN_FILE", "credentials/gmail_token.json"),
		},
		Mail: MailConfig{
			Backend:    getEnv("MAIL_BACKEND", "smtp"),
			Sender:     getEnv("EMAIL_SENDER", ""),
			SenderName: getEnv("EMAIL_SENDER_NAME", "Formation"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Email:    getEnv("SMTP_EMAIL", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "presentation-builder-backend"),
		},
	}
}

// Validate reports configuration values the services cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.App.OutputFolder) == "" {
		errs = append(errs, errors.New("OUTPUT_FOLDER must not be empty"))
	}
	if len(c.Quiz.DifficultyLevels) == 0 {
		errs = append(errs, errors.New("QUIZ_DIFFICULTY_LEVELS must list at least one level"))
	} else if !c.Quiz.HasLevel(c.Quiz.DefaultDifficulty) {
		errs = append(errs, fmt.Errorf("DEFAULT_QUIZ_DIFFICULTY %q is not one of %v", c.Quiz.DefaultDifficulty, c.Quiz.DifficultyLevels))
	}
	if c.Quiz.DefaultQuestions < 1 {
		errs = append(errs, errors.New("DEFAULT_QUIZ_QUESTIONS must be positive"))
	}
	if c.Quiz.DefaultQuestionsPerItem < 1 {
		errs = append(errs, errors.New("DEFAULT_QUIZ_QUESTIONS_PER_ITEM must be positive"))
	}
	return errors.Join(errs...)
}

func (q QuizConfig) HasLevel(level string) bool {
	for _, l := range q.DifficultyLevels {
		if l == level {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(strValue, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
