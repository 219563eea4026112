package controller

import (
	"encoding/json"
	"strings"

	"presentation-builder-be/internal/dto"
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/serverutils"
	"presentation-builder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	GenerateQuiz(ctx *fiber.Ctx) error
	QuizWorkflow(ctx *fiber.Ctx) error
	GenerateDailyQuizzes(ctx *fiber.Ctx) error
	GenerateSectionQuizzes(ctx *fiber.Ctx) error
	MultiQuizWorkflow(ctx *fiber.Ctx) error
}

type quizController struct {
	quizzes      service.IQuizService
	workflows    service.IWorkflowService
	defaultTitle string
}

func NewQuizController(quizzes service.IQuizService, workflows service.IWorkflowService, defaultTitle string) IQuizController {
	return &quizController{
		quizzes:      quizzes,
		workflows:    workflows,
		defaultTitle: defaultTitle,
	}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-quiz", c.GenerateQuiz)
	r.Post("/quiz-workflow", c.QuizWorkflow)
	r.Post("/generate-daily-quizzes", c.GenerateDailyQuizzes)
	r.Post("/generate-section-quizzes", c.GenerateSectionQuizzes)
	r.Post("/multi-quiz-workflow", c.MultiQuizWorkflow)
}

// GenerateQuiz builds a multiple-choice quiz from training content
// @Summary Generate a quiz
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Content and quiz options"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} serverutils.BaseResponse[any]
// @Failure 500 {object} serverutils.BaseResponse[any]
// @Router /api/generate-quiz [post]
func (c *quizController) GenerateQuiz(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}

	items, err := c.quizzes.CreateQuiz(ctx.UserContext(), service.QuizRequest{
		Content: req.Content,
		Level:   req.Level,
		Count:   req.NbrQst.Or(0),
	})
	if err != nil {
		return withContext("generating quiz", err)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = c.defaultTitle
	}

	return ctx.JSON(dto.GenerateQuizResponse{
		Envelope: serverutils.Success("Quiz generated successfully"),
		QuizData: items,
		QuizFile: c.quizzes.SaveQuiz(ctx.UserContext(), title, items),
		Title:    title,
	})
}

// QuizWorkflow generates a quiz, publishes it as a Google Form and shares it
// @Summary Run the full quiz workflow
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizWorkflowRequest true "Content, quiz options and recipients"
// @Success 200 {object} dto.QuizWorkflowResponse
// @Router /api/quiz-workflow [post]
func (c *quizController) QuizWorkflow(ctx *fiber.Ctx) error {
	var req dto.QuizWorkflowRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workflows.QuizWorkflow(ctx.UserContext(), service.QuizWorkflowRequest{
		Quiz: service.QuizRequest{
			Content: req.Content,
			Level:   req.Level,
			Count:   req.NbrQst.Or(0),
		},
		Title:         req.Title,
		Emails:        req.Emails,
		TrainerEmails: req.TrainerEmails,
	})
	if err != nil {
		return withContext("in quiz workflow", err)
	}

	return ctx.JSON(dto.QuizWorkflowResponse{
		Envelope:   serverutils.Success("Quiz workflow completed successfully"),
		QuizData:   res.Quiz,
		Form:       dto.NewFormResponse(res.Form),
		SharedWith: res.SharedWith,
	})
}

// GenerateDailyQuizzes builds one quiz per training day
// @Summary Generate one quiz per day
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateDailyQuizzesRequest true "Daily content blocks"
// @Success 200 {object} dto.QuizBatchResponse
// @Router /api/generate-daily-quizzes [post]
func (c *quizController) GenerateDailyQuizzes(ctx *fiber.Ctx) error {
	var req dto.GenerateDailyQuizzesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if len(req.DailyContent) == 0 {
		return apperr.InvalidParameter("Missing daily_content parameter")
	}

	return c.batch(ctx, req.DailyContent, entity.ItemKindDay, req.Level, req.NbrQstPerDay.Or(0))
}

// GenerateSectionQuizzes builds one quiz per content section
// @Summary Generate one quiz per section
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateSectionQuizzesRequest true "Section content blocks"
// @Success 200 {object} dto.QuizBatchResponse
// @Router /api/generate-section-quizzes [post]
func (c *quizController) GenerateSectionQuizzes(ctx *fiber.Ctx) error {
	var req dto.GenerateSectionQuizzesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if len(req.SectionContent) == 0 {
		return apperr.InvalidParameter("Missing section_content parameter")
	}

	return c.batch(ctx, req.SectionContent, entity.ItemKindSection, req.Level, req.NbrQstPerSection.Or(0))
}

func (c *quizController) batch(ctx *fiber.Ctx, blocks []json.RawMessage, kind entity.ItemKind, level string, count int) error {
	batch := c.quizzes.GenerateQuizzes(ctx.UserContext(), blocks, kind, level, count)
	if batch.Failed() {
		return apperr.Upstream("no quiz could be generated: "+strings.Join(batch.Errors, "; "), nil)
	}

	return ctx.JSON(dto.QuizBatchResponse{
		Envelope:  serverutils.Success("Quizzes generated successfully"),
		QuizBatch: batch,
	})
}

// MultiQuizWorkflow generates, publishes and shares one quiz form per block
// @Summary Run the quiz workflow for several blocks
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body dto.MultiQuizWorkflowRequest true "Content blocks, options and recipients"
// @Success 200 {object} dto.MultiQuizWorkflowResponse
// @Router /api/multi-quiz-workflow [post]
func (c *quizController) MultiQuizWorkflow(ctx *fiber.Ctx) error {
	var req dto.MultiQuizWorkflowRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.workflows.MultiQuizWorkflow(ctx.UserContext(), service.MultiQuizWorkflowRequest{
		Blocks:        req.ContentList,
		Kind:          entity.ItemKind(req.Type),
		TitleTemplate: req.TitleTemplate,
		Level:         req.Level,
		Count:         req.NbrQst.Or(0),
		Emails:        req.Emails,
		TrainerEmails: req.TrainerEmails,
	})
	if err != nil {
		return withContext("in multi quiz workflow", err)
	}

	return ctx.JSON(dto.MultiQuizWorkflowResponse{
		Envelope:   serverutils.Success("Multi quiz workflow completed"),
		Quizzes:    res.Quizzes,
		Forms:      dto.FormResponses(res.Forms),
		SharedWith: res.SharedWith,
		Errors:     res.Errors,
		Successful: res.Successful,
		Total:      res.Total,
	})
}
