package implementation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactRepository_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	repo, err := NewArtifactRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	plan := entity.Plan{Title: "Go", Sections: []entity.PlanSection{{Section: "Conclusion", Subsections: entity.NewSubsections()}}}
	path, err := repo.Save(ctx, "Go_plan.json", plan)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Go_plan.json"), path)
	assert.True(t, repo.Exists("Go_plan.json"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"subsections": "none"`)

	var loaded entity.Plan
	require.NoError(t, repo.Load(ctx, "Go_plan.json", &loaded))
	assert.Equal(t, plan, loaded)
}

func TestArtifactRepository_Errors(t *testing.T) {
	repo, err := NewArtifactRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	var v map[string]any
	assert.ErrorIs(t, repo.Load(ctx, "form_session_missing.json", &v), apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Load(ctx, "../escape.json", &v), apperr.ErrInvalidParameter)

	_, err = repo.Save(ctx, "a/b.json", v)
	assert.ErrorIs(t, err, apperr.ErrInvalidParameter)
	assert.False(t, repo.Exists("../escape.json"))
}
