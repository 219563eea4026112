package controller

import (
	"encoding/json"

	"presentation-builder-be/internal/dto"
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/serverutils"
	"presentation-builder-be/internal/service"
	"presentation-builder-be/pkg/prompt"

	"github.com/gofiber/fiber/v2"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	GeneratePlan(ctx *fiber.Ctx) error
	GenerateDailyPlan(ctx *fiber.Ctx) error
	GenerateContent(ctx *fiber.Ctx) error
	GenerateDailyContent(ctx *fiber.Ctx) error
}

type generationController struct {
	plans   service.IPlanService
	content service.IContentService
}

func NewGenerationController(plans service.IPlanService, content service.IContentService) IGenerationController {
	return &generationController{plans: plans, content: content}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-plan", c.GeneratePlan)
	r.Post("/generate-plan-jour", c.GenerateDailyPlan)
	r.Post("/generate-content", c.GenerateContent)
	r.Post("/generate-content-jour", c.GenerateDailyContent)
}

// GeneratePlan builds a section-based presentation plan
// @Summary Generate a presentation plan
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Training subject"
// @Success 200 {object} dto.GeneratePlanResponse
// @Failure 400 {object} serverutils.BaseResponse[any]
// @Failure 500 {object} serverutils.BaseResponse[any]
// @Router /api/generate-plan [post]
func (c *generationController) GeneratePlan(ctx *fiber.Ctx) error {
	var req dto.GeneratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	plan, err := c.plans.GeneratePlan(ctx.UserContext(), planParams(req))
	if err != nil {
		return withContext("generating plan", err)
	}

	return ctx.JSON(dto.GeneratePlanResponse{
		Envelope: serverutils.Success("Plan generated successfully"),
		Plan:     plan,
	})
}

// GenerateDailyPlan builds a plan organised by training day
// @Summary Generate a day-by-day plan
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateDailyPlanRequest true "Training subject and number of days"
// @Success 200 {object} dto.GenerateDailyPlanResponse
// @Failure 400 {object} serverutils.BaseResponse[any]
// @Router /api/generate-plan-jour [post]
func (c *generationController) GenerateDailyPlan(ctx *fiber.Ctx) error {
	var req dto.GenerateDailyPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !req.NombreJours.Present {
		return apperr.InvalidParameter("Missing required parameter: nombre_jours")
	}
	if !req.NombreJours.Valid || req.NombreJours.Value < 1 {
		return apperr.InvalidParameter("nombre_jours must be a positive integer")
	}

	params := planParams(req.GeneratePlanRequest)
	params.Days = req.NombreJours.Value

	days, err := c.plans.GenerateDailyPlan(ctx.UserContext(), params)
	if err != nil {
		return withContext("generating daily plan", err)
	}

	return ctx.JSON(dto.GenerateDailyPlanResponse{
		Envelope: serverutils.Success("Daily plan generated successfully"),
		PlanJour: days,
	})
}

// GenerateContent expands every plan section into teaching content
// @Summary Generate content for a plan
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateContentRequest true "Plan to expand"
// @Success 200 {object} dto.GenerateContentResponse
// @Router /api/generate-content [post]
func (c *generationController) GenerateContent(ctx *fiber.Ctx) error {
	var req dto.GenerateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if dto.IsEmptyJSON(req.Plan) {
		return apperr.InvalidParameter("Missing required parameter: plan")
	}

	var plan entity.Plan
	if err := json.Unmarshal(req.Plan, &plan); err != nil {
		return apperr.InvalidParameter("plan is not readable: %v", err)
	}

	content, err := c.content.GenerateContent(ctx.UserContext(), req.Domaine, req.Sujet, &plan)
	if err != nil {
		return withContext("generating content", err)
	}

	return ctx.JSON(dto.GenerateContentResponse{
		Envelope: serverutils.Success("Content generated successfully"),
		Content:  content,
	})
}

// GenerateDailyContent expands every session of a daily plan
// @Summary Generate content for a daily plan
// @Tags Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateDailyContentRequest true "Daily plan to expand"
// @Success 200 {object} dto.GenerateDailyContentResponse
// @Router /api/generate-content-jour [post]
func (c *generationController) GenerateDailyContent(ctx *fiber.Ctx) error {
	var req dto.GenerateDailyContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if dto.IsEmptyJSON(req.PlanJour) {
		return apperr.InvalidParameter("Missing required parameter: plan_jour")
	}

	var days []entity.DayPlan
	if err := json.Unmarshal(req.PlanJour, &days); err != nil {
		return apperr.InvalidParameter("plan_jour must be a list of days: %v", err)
	}

	content, err := c.content.GenerateDailyContent(ctx.UserContext(), req.Domaine, req.Sujet, days)
	if err != nil {
		return withContext("generating daily content", err)
	}

	return ctx.JSON(dto.GenerateDailyContentResponse{
		Envelope:    serverutils.Success("Daily content generated successfully"),
		ContenuJour: content,
	})
}

func planParams(req dto.GeneratePlanRequest) prompt.PlanParams {
	return prompt.PlanParams{
		Domain:      req.Domaine,
		Subject:     req.Sujet,
		Description: req.DescriptionSujet,
		Level:       req.NiveauApprenant,
	}
}
