package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_MODEL", "test-model")
	t.Setenv("QUIZ_DIFFICULTY_LEVELS", "")

	cfg := Load()

	assert.Equal(t, "test-model", cfg.Ai.Model)
	assert.Equal(t, "test-model", cfg.Ai.QuizModel)
	assert.Equal(t, []string{"debutant", "intermediaire", "avance"}, cfg.Quiz.DifficultyLevels)
	assert.Equal(t, 5, cfg.Quiz.DefaultQuestions)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QUIZ_DIFFICULTY_LEVELS", " facile, difficile ,")
	t.Setenv("DEFAULT_QUIZ_DIFFICULTY", "facile")
	t.Setenv("DEFAULT_QUIZ_QUESTIONS", "8")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, []string{"facile", "difficile"}, cfg.Quiz.DifficultyLevels)
	assert.Equal(t, 8, cfg.Quiz.DefaultQuestions)
	assert.True(t, cfg.Tracing.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownDefaultLevel(t *testing.T) {
	cfg := &Config{
		App: AppConfig{OutputFolder: "out"},
		Quiz: QuizConfig{
			DifficultyLevels:        []string{"debutant"},
			DefaultDifficulty:       "expert",
			DefaultQuestions:        0,
			DefaultQuestionsPerItem: 3,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_QUIZ_DIFFICULTY")
	assert.Contains(t, err.Error(), "DEFAULT_QUIZ_QUESTIONS")
}
