package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/constant"
	"presentation-builder-be/internal/dto"
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/fileutil"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/repository/contract"
	"presentation-builder-be/pkg/llm"
	"presentation-builder-be/pkg/llm/parse"
	"presentation-builder-be/pkg/prompt"
	"presentation-builder-be/pkg/quiz"
)

// QuizRequest is one quiz to generate. A Count below 1 means the configured
// default.
type QuizRequest struct {
	Content json.RawMessage
	Level   string
	Count   int
}

type IQuizService interface {
	CreateQuiz(ctx context.Context, req QuizRequest) ([]entity.QuizItem, error)
	// GenerateQuizzes builds one quiz per content block, in order. Failed
	// blocks leave a nil slot and an error string.
	GenerateQuizzes(ctx context.Context, blocks []json.RawMessage, kind entity.ItemKind, level string, count int) *entity.QuizBatch
	// SaveQuiz stores a quiz under a unique name derived from title and
	// returns that name, or "" when it could not be written.
	SaveQuiz(ctx context.Context, title string, items []entity.QuizItem) string
	NormalizeLevel(level string) string
}

type quizService struct {
	llm    llm.LLMProvider
	model  string
	cfg    config.QuizConfig
	repo   contract.IArtifactRepository
	logger logger.ILogger
}

func NewQuizService(provider llm.LLMProvider, quizModel string, cfg config.QuizConfig, repo contract.IArtifactRepository, log logger.ILogger) IQuizService {
	return &quizService{
		llm:    provider,
		model:  quizModel,
		cfg:    cfg,
		repo:   repo,
		logger: log,
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, req QuizRequest) ([]entity.QuizItem, error) {
	if dto.IsEmptyJSON(req.Content) {
		return nil, apperr.InvalidParameter("Missing content parameter")
	}

	level := s.NormalizeLevel(req.Level)
	count := req.Count
	if count < 1 {
		count = s.cfg.DefaultQuestions
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.QuizSystem()},
		{Role: llm.RoleUser, Content: prompt.Quiz(prompt.QuizParams{
			Content:   contentText(req.Content),
			Level:     level,
			Questions: count,
		})},
	}
	opts := []llm.Option{llm.WithTemperature(constant.QuizTemperature)}
	if s.model != "" {
		opts = append(opts, llm.WithModel(s.model))
	}

	text, err := complete(ctx, s.llm, messages, opts...)
	if err != nil {
		s.logger.Error("QuizService", "Quiz generation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	raw, err := parse.Normalize(text)
	if err != nil {
		s.logger.Error("QuizService", "Quiz output could not be parsed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if ok, msg := quiz.ValidateJSON(raw); !ok {
		s.logger.Warn("QuizService", "Generated quiz failed validation", map[string]interface{}{"reason": msg})
		return nil, apperr.Malformed("Invalid quiz format: "+msg, nil)
	}

	var items []entity.QuizItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.Malformed("quiz output does not have the expected shape", err)
	}
	if len(items) == 0 {
		return nil, apperr.Malformed("generated quiz is empty", nil)
	}

	s.logger.Info("QuizService", "Quiz generated", map[string]interface{}{
		"level":     level,
		"requested": count,
		"questions": len(items),
	})
	return items, nil
}

func (s *quizService) GenerateQuizzes(ctx context.Context, blocks []json.RawMessage, kind entity.ItemKind, level string, count int) *entity.QuizBatch {
	if count < 1 {
		count = s.cfg.DefaultQuestionsPerItem
	}

	batch := &entity.QuizBatch{
		Quizzes: make([][]entity.QuizItem, len(blocks)),
		Errors:  []string{},
		Total:   len(blocks),
	}
	for i, block := range blocks {
		items, err := s.CreateQuiz(ctx, QuizRequest{Content: block, Level: level, Count: count})
		if err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s %d: %v", kind.Label(), i+1, err))
			s.logger.Warn("QuizService", "Quiz item failed", map[string]interface{}{
				"kind":  string(kind),
				"index": i + 1,
				"error": err.Error(),
			})
			continue
		}
		batch.Quizzes[i] = items
		batch.Successful++
	}

	s.logger.Info("QuizService", "Quiz batch finished", map[string]interface{}{
		"kind":       string(kind),
		"successful": batch.Successful,
		"total":      batch.Total,
	})
	return batch
}

func (s *quizService) SaveQuiz(ctx context.Context, title string, items []entity.QuizItem) string {
	name := artifactName(constant.QuizFileFormat, fileutil.SafeFilename(title), fileutil.RandomHex(8))
	return saveArtifact(ctx, s.repo, s.logger, "QuizService", name, items)
}

var accentFolder = strings.NewReplacer("é", "e", "è", "e", "ê", "e", "É", "e", "à", "a", "â", "a")

// NormalizeLevel maps a requested level onto the configured enumeration,
// falling back to the default difficulty.
func (s *quizService) NormalizeLevel(level string) string {
	candidate := strings.ToLower(accentFolder.Replace(strings.TrimSpace(level)))
	if s.cfg.HasLevel(candidate) {
		return candidate
	}
	return s.cfg.DefaultDifficulty
}

// contentText embeds string content as is and any other JSON compactly.
func contentText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
