package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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

type IContentService interface {
	GenerateContent(ctx context.Context, domain, subject string, plan *entity.Plan) ([]entity.ContentNode, error)
	GenerateDailyContent(ctx context.Context, domain, subject string, days []entity.DayPlan) ([]entity.DayContent, error)
}

type contentService struct {
	llm    llm.LLMProvider
	repo   contract.IArtifactRepository
	logger logger.ILogger
}

func NewContentService(provider llm.LLMProvider, repo contract.IArtifactRepository, log logger.ILogger) IContentService {
	return &contentService{
		llm:    provider,
		repo:   repo,
		logger: log,
	}
}

// nodeTally counts per-node outcomes across one request.
type nodeTally struct {
	total    int
	upstream int
	lastErr  error
}

func (t *nodeTally) allUpstream() bool {
	return t.total > 0 && t.upstream == t.total
}

func (s *contentService) GenerateContent(ctx context.Context, domain, subject string, plan *entity.Plan) ([]entity.ContentNode, error) {
	domain, subject = strings.TrimSpace(domain), strings.TrimSpace(subject)
	if domain == "" || subject == "" {
		return nil, apperr.InvalidParameter("Missing required parameters: domaine, sujet")
	}
	if plan == nil || len(plan.Sections) == 0 {
		return nil, apperr.InvalidParameter("Missing required parameter: plan")
	}

	var tally nodeTally
	nodes := make([]entity.ContentNode, 0, len(plan.Sections))
	for i, section := range plan.Sections {
		subs := section.PromptSubsections()
		p := prompt.Content(prompt.ContentParams{
			Domain:      domain,
			Subject:     subject,
			Title:       section.Section,
			Subsections: subs,
		})
		nodes = append(nodes, s.generateNode(ctx, &tally, p, section.Section, subs, map[string]interface{}{"section": i + 1}))
	}

	if tally.allUpstream() {
		return nil, apperr.Upstream(fmt.Sprintf("content generation failed for all %d sections", tally.total), tally.lastErr)
	}

	saveArtifact(ctx, s.repo, s.logger, "ContentService",
		artifactName(constant.ContentFileFormat, fileutil.SafeFilename(subject)), nodes)

	s.logger.Info("ContentService", "Content generated", map[string]interface{}{
		"subject":  subject,
		"sections": tally.total,
	})
	return nodes, nil
}

func (s *contentService) GenerateDailyContent(ctx context.Context, domain, subject string, days []entity.DayPlan) ([]entity.DayContent, error) {
	domain, subject = strings.TrimSpace(domain), strings.TrimSpace(subject)
	if domain == "" || subject == "" {
		return nil, apperr.InvalidParameter("Missing required parameters: domaine, sujet")
	}
	if len(days) == 0 {
		return nil, apperr.InvalidParameter("Missing required parameter: plan_jour")
	}

	var tally nodeTally
	out := make([]entity.DayContent, 0, len(days))
	for i, day := range days {
		dayNumber := day.Day
		if dayNumber == 0 {
			dayNumber = i + 1
		}

		dc := entity.DayContent{Day: dayNumber, Content: make([]entity.ContentNode, 0, len(day.Sessions))}
		for j, session := range day.Sessions {
			subs := session.PromptSubsections()
			p := prompt.DailyContent(prompt.ContentParams{
				Domain:      domain,
				Subject:     subject,
				Title:       session.Title,
				Subsections: subs,
				Day:         dayNumber,
			})
			dc.Content = append(dc.Content, s.generateNode(ctx, &tally, p, session.Title, subs, map[string]interface{}{
				"day":     dayNumber,
				"session": j + 1,
			}))
		}
		out = append(out, dc)
	}

	if tally.allUpstream() {
		return nil, apperr.Upstream(fmt.Sprintf("content generation failed for all %d sessions", tally.total), tally.lastErr)
	}

	saveArtifact(ctx, s.repo, s.logger, "ContentService",
		artifactName(constant.DailyContentFileFormat, fileutil.SafeFilename(subject)), out)

	s.logger.Info("ContentService", "Daily content generated", map[string]interface{}{
		"subject":  subject,
		"days":     len(out),
		"sessions": tally.total,
	})
	return out, nil
}

// generateNode never fails: a node that cannot be generated becomes a
// placeholder and the tally records why.
func (s *contentService) generateNode(ctx context.Context, tally *nodeTally, promptText, title string, subs []string, where map[string]interface{}) entity.ContentNode {
	tally.total++

	text, err := complete(ctx, s.llm, userMessage(promptText),
		llm.WithTemperature(constant.ContentTemperature),
		llm.WithTopP(constant.ContentTopP),
	)
	if err == nil {
		var node entity.ContentNode
		node, err = decodeNode(text)
		if err == nil {
			node.Title = title
			return node
		}
	}

	if isUpstream(err) {
		tally.upstream++
	}
	tally.lastErr = err

	details := map[string]interface{}{"title": title, "error": err.Error()}
	for k, v := range where {
		details[k] = v
	}
	s.logger.Warn("ContentService", "Node generation failed, using placeholder", details)
	return entity.NewPlaceholderNode(title, subs)
}

// decodeNode reads one content node. An array of nodes is merged into the
// first one.
func decodeNode(text string) (entity.ContentNode, error) {
	raw, err := parse.Normalize(text)
	if err != nil {
		return entity.ContentNode{}, err
	}

	var node entity.ContentNode
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var nodes []entity.ContentNode
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return node, apperr.Malformed("content output does not have the expected shape", err)
		}
		for i, n := range nodes {
			if i == 0 {
				node.Title = n.Title
			}
			node.Subsections = append(node.Subsections, n.Subsections...)
		}
	} else if err := json.Unmarshal(trimmed, &node); err != nil {
		return node, apperr.Malformed("content output does not have the expected shape", err)
	}

	if len(node.Subsections) == 0 {
		return node, apperr.Malformed("content output has no sub-sections", nil)
	}
	return node, nil
}
