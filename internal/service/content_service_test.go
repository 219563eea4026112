package service

import (
	"context"
	"testing"

	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/pkg/llm/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *entity.Plan {
	return &entity.Plan{
		Title: "Go",
		Sections: []entity.PlanSection{
			{Section: "Introduction", Subsections: entity.NewSubsections("Histoire", "Outils")},
			{Section: "Conclusion", Subsections: entity.NewSubsections()},
		},
	}
}

func TestContentService_GenerateContent(t *testing.T) {
	provider := mock.NewProvider(
		mock.Reply(`{"title": "Autre titre", "subsections": [{"title": "Histoire", "content": "Créé en 2009."}, {"title": "Outils", "content": "go build", "code": ["go build ./..."]}]}`),
		mock.Fail("timeout"),
	)
	repo := newTestRepo(t)
	svc := NewContentService(provider, repo, nopLog)

	nodes, err := svc.GenerateContent(context.Background(), "Informatique", "Go", testPlan())

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Introduction", nodes[0].Title)
	assert.Len(t, nodes[0].Subsections, 2)
	assert.True(t, nodes[1].IsPlaceholder())
	assert.Equal(t, "Conclusion", nodes[1].Subsections[0].Title)

	require.Equal(t, 2, provider.CallCount())
	opts := provider.Calls[0].Options
	require.NotNil(t, opts.Temperature)
	require.NotNil(t, opts.TopP)
	assert.InDelta(t, 0.3, *opts.Temperature, 1e-9)
	assert.InDelta(t, 0.9, *opts.TopP, 1e-9)
	assert.Contains(t, provider.Calls[1].Messages[0].Content, "Sous-sections : Conclusion")
	assert.True(t, repo.Exists("Go_content.json"))
}

func TestContentService_MergesArrayReply(t *testing.T) {
	provider := mock.NewProvider(
		mock.Reply(`[{"title": "A", "subsections": [{"title": "x", "content": "1"}]}, {"title": "B", "subsections": [{"title": "y", "content": "2"}]}]`),
		mock.Reply(`{"title": "Conclusion", "subsections": [{"title": "Conclusion", "content": "Fin."}]}`),
	)

	nodes, err := NewContentService(provider, newTestRepo(t), nopLog).GenerateContent(context.Background(), "Informatique", "Go", testPlan())

	require.NoError(t, err)
	assert.Equal(t, "Introduction", nodes[0].Title)
	assert.Len(t, nodes[0].Subsections, 2)
	assert.False(t, nodes[1].IsPlaceholder())
}

func TestContentService_MalformedNodeBecomesPlaceholder(t *testing.T) {
	provider := mock.NewProvider(
		mock.Reply(`{"title": "Introduction"}`),
		mock.Reply(`{"title": "Conclusion", "subsections": [{"title": "Conclusion", "content": "Fin."}]}`),
	)

	nodes, err := NewContentService(provider, newTestRepo(t), nopLog).GenerateContent(context.Background(), "Informatique", "Go", testPlan())

	require.NoError(t, err)
	assert.True(t, nodes[0].IsPlaceholder())
	assert.Len(t, nodes[0].Subsections, 2)
}

func TestContentService_AllUpstreamFailuresFail(t *testing.T) {
	provider := mock.NewProvider(mock.Fail("down"), mock.Fail("down"))

	_, err := NewContentService(provider, newTestRepo(t), nopLog).GenerateContent(context.Background(), "Informatique", "Go", testPlan())

	assert.ErrorIs(t, err, apperr.ErrUpstreamService)
}

func TestContentService_MissingParameters(t *testing.T) {
	svc := NewContentService(mock.NewProvider(), newTestRepo(t), nopLog)
	ctx := context.Background()

	_, err := svc.GenerateContent(ctx, "", "Go", testPlan())
	assert.ErrorIs(t, err, apperr.ErrInvalidParameter)

	_, err = svc.GenerateContent(ctx, "Informatique", "Go", &entity.Plan{})
	assert.ErrorIs(t, err, apperr.ErrInvalidParameter)

	_, err = svc.GenerateDailyContent(ctx, "Informatique", "Go", nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidParameter)
}

func TestContentService_GenerateDailyContent(t *testing.T) {
	provider := mock.NewProvider(
		mock.Reply(`{"title": "Bases", "subsections": [{"title": "Types", "content": "int, string"}]}`),
		mock.Reply(`{"title": "Concurrence", "subsections": [{"title": "Goroutines", "content": "go f()"}]}`),
	)
	repo := newTestRepo(t)
	days := []entity.DayPlan{
		{Sessions: []entity.Session{{Title: "Bases", Subsections: []string{"Types"}}}},
		{Day: 3, Sessions: []entity.Session{{Title: "Concurrence", Subsections: []string{"Goroutines"}}}},
	}

	out, err := NewContentService(provider, repo, nopLog).GenerateDailyContent(context.Background(), "Informatique", "Go", days)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Day)
	assert.Equal(t, 3, out[1].Day)
	assert.Equal(t, "Concurrence", out[1].Content[0].Title)
	assert.Contains(t, provider.Calls[1].Messages[0].Content, "jour 3")
	assert.True(t, repo.Exists("Go_contenu_jour.json"))
}
