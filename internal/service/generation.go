package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/repository/contract"
	"presentation-builder-be/internal/tracer"
	"presentation-builder-be/pkg/llm"
)

// complete sends one prompt and wraps provider failures as upstream errors.
func complete(ctx context.Context, provider llm.LLMProvider, messages []llm.Message, opts ...llm.Option) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.chat")
	defer span.End()

	text, err := provider.Chat(ctx, messages, opts...)
	if err != nil {
		span.RecordError(err)
		return "", apperr.Upstream("LLM request failed", err)
	}
	return text, nil
}

// saveArtifact persists a debug artifact. Failures are logged, not returned.
func saveArtifact(ctx context.Context, repo contract.IArtifactRepository, log logger.ILogger, module, filename string, v any) string {
	path, err := repo.Save(ctx, filename, v)
	if err != nil {
		log.Warn(module, "Failed to save artifact", map[string]interface{}{
			"file":  filename,
			"error": err.Error(),
		})
		return ""
	}
	log.Debug(module, "Artifact saved", map[string]interface{}{"path": path})
	return filename
}

func isUpstream(err error) bool {
	return errors.Is(err, apperr.ErrUpstreamService)
}

func userMessage(prompt string) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: prompt}}
}

func artifactName(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func itoa(n int) string { return strconv.Itoa(n) }
