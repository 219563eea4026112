package service

import (
	"context"
	"strings"

	"presentation-builder-be/internal/constant"
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/fileutil"
	"presentation-builder-be/internal/pkg/logger"
	"presentation-builder-be/internal/repository/contract"
	"presentation-builder-be/pkg/llm"
	"presentation-builder-be/pkg/llm/parse"
	"presentation-builder-be/pkg/prompt"
)

type IPlanService interface {
	GeneratePlan(ctx context.Context, params prompt.PlanParams) (*entity.Plan, error)
	GenerateDailyPlan(ctx context.Context, params prompt.PlanParams) ([]entity.DayPlan, error)
}

type planService struct {
	llm    llm.LLMProvider
	repo   contract.IArtifactRepository
	logger logger.ILogger
}

func NewPlanService(provider llm.LLMProvider, repo contract.IArtifactRepository, log logger.ILogger) IPlanService {
	return &planService{
		llm:    provider,
		repo:   repo,
		logger: log,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, params prompt.PlanParams) (*entity.Plan, error) {
	params, err := normalizePlanParams(params)
	if err != nil {
		return nil, err
	}

	text, err := complete(ctx, s.llm, userMessage(prompt.Plan(params)))
	if err != nil {
		s.logger.Error("PlanService", "Plan generation failed", map[string]interface{}{"subject": params.Subject, "error": err.Error()})
		return nil, err
	}

	var plan entity.Plan
	if err := parse.Decode(text, &plan); err != nil {
		s.logger.Error("PlanService", "Plan output could not be parsed", map[string]interface{}{"subject": params.Subject, "error": err.Error()})
		return nil, err
	}
	if len(plan.Sections) == 0 {
		return nil, apperr.Malformed("generated plan has no sections", nil)
	}
	if plan.Title == "" {
		plan.Title = params.Subject
	}
	dedupeSectionTitles(plan.Sections)

	saveArtifact(ctx, s.repo, s.logger, "PlanService",
		artifactName(constant.PlanFileFormat, fileutil.SafeFilename(params.Subject)), plan)

	s.logger.Info("PlanService", "Plan generated", map[string]interface{}{"subject": params.Subject, "sections": len(plan.Sections)})
	return &plan, nil
}

func (s *planService) GenerateDailyPlan(ctx context.Context, params prompt.PlanParams) ([]entity.DayPlan, error) {
	params, err := normalizePlanParams(params)
	if err != nil {
		return nil, err
	}

	p, err := prompt.DailyPlan(params)
	if err != nil {
		return nil, err
	}

	text, err := complete(ctx, s.llm, userMessage(p), llm.WithTemperature(constant.DailyPlanTemperature))
	if err != nil {
		s.logger.Error("PlanService", "Daily plan generation failed", map[string]interface{}{"subject": params.Subject, "error": err.Error()})
		return nil, err
	}

	days, err := decodeDays(text)
	if err != nil {
		s.logger.Error("PlanService", "Daily plan output could not be parsed", map[string]interface{}{"subject": params.Subject, "error": err.Error()})
		return nil, err
	}
	if len(days) == 0 {
		return nil, apperr.Malformed("generated plan has no days", nil)
	}
	for i := range days {
		if days[i].Day == 0 {
			days[i].Day = i + 1
		}
		dedupeSessionTitles(days[i].Sessions)
	}

	saveArtifact(ctx, s.repo, s.logger, "PlanService",
		artifactName(constant.DailyPlanFileFormat, fileutil.SafeFilename(params.Subject)), days)

	s.logger.Info("PlanService", "Daily plan generated", map[string]interface{}{"subject": params.Subject, "days": len(days)})
	return days, nil
}

// decodeDays accepts the day list itself or an object wrapping it.
func decodeDays(text string) ([]entity.DayPlan, error) {
	raw, err := parse.Normalize(text)
	if err != nil {
		return nil, err
	}

	var days []entity.DayPlan
	if err := parse.Decode(string(raw), &days); err == nil {
		return days, nil
	}

	var wrapped struct {
		PlanJour []entity.DayPlan `json:"plan_jour"`
		Days     []entity.DayPlan `json:"days"`
		Jours    []entity.DayPlan `json:"jours"`
	}
	if err := parse.Decode(string(raw), &wrapped); err != nil {
		return nil, err
	}
	switch {
	case len(wrapped.PlanJour) > 0:
		return wrapped.PlanJour, nil
	case len(wrapped.Days) > 0:
		return wrapped.Days, nil
	default:
		return wrapped.Jours, nil
	}
}

func normalizePlanParams(p prompt.PlanParams) (prompt.PlanParams, error) {
	p.Domain = strings.TrimSpace(p.Domain)
	p.Subject = strings.TrimSpace(p.Subject)
	if p.Domain == "" || p.Subject == "" {
		return p, apperr.InvalidParameter("Missing required parameters: domaine, sujet")
	}
	if strings.TrimSpace(p.Level) == "" {
		p.Level = constant.DefaultLearnerLevel
	}
	return p, nil
}

// dedupeSectionTitles keeps titles unique within the plan by numbering
// repeats.
func dedupeSectionTitles(sections []entity.PlanSection) {
	seen := make(map[string]int, len(sections))
	for i := range sections {
		sections[i].Section = uniqueTitle(seen, sections[i].Section)
	}
}

func dedupeSessionTitles(sessions []entity.Session) {
	seen := make(map[string]int, len(sessions))
	for i := range sessions {
		sessions[i].Title = uniqueTitle(seen, sessions[i].Title)
	}
}

func uniqueTitle(seen map[string]int, title string) string {
	seen[title]++
	if n := seen[title]; n > 1 {
		return title + " (" + itoa(n) + ")"
	}
	return title
}
