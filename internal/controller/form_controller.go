package controller

import (
	"strings"

	"presentation-builder-be/internal/dto"
	"presentation-builder-be/internal/entity"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/serverutils"
	"presentation-builder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFormController interface {
	RegisterRoutes(r fiber.Router)
	CreateForm(ctx *fiber.Ctx) error
	ShareForm(ctx *fiber.Ctx) error
	CreateMultipleForms(ctx *fiber.Ctx) error
}

type formController struct {
	forms service.IFormService
}

func NewFormController(forms service.IFormService) IFormController {
	return &formController{forms: forms}
}

func (c *formController) RegisterRoutes(r fiber.Router) {
	r.Post("/create-google-form", c.CreateForm)
	r.Post("/share-form", c.ShareForm)
	r.Post("/create-multiple-forms", c.CreateMultipleForms)
}

// CreateForm publishes a quiz as a Google Form in quiz mode
// @Summary Create a Google Form from a quiz
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body dto.CreateFormRequest true "Quiz items and form title"
// @Success 200 {object} dto.CreateFormResponse
// @Failure 400 {object} serverutils.BaseResponse[any]
// @Failure 500 {object} serverutils.BaseResponse[any]
// @Router /api/create-google-form [post]
func (c *formController) CreateForm(ctx *fiber.Ctx) error {
	var req dto.CreateFormRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}

	form, err := c.forms.PublishQuizForm(ctx.UserContext(), req.QuizData, req.Title)
	if err != nil {
		return withContext("creating Google Form", err)
	}

	return ctx.JSON(dto.CreateFormResponse{
		Envelope:  serverutils.Success("Google Form created successfully"),
		Form:      dto.NewFormResponse(form.Record),
		SessionID: c.forms.SaveSession(ctx.UserContext(), form),
	})
}

// ShareForm grants trainers edit access and emails the form link
// @Summary Share a Google Form
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body dto.ShareFormRequest true "Form and recipients"
// @Success 200 {object} dto.ShareFormResponse
// @Failure 400 {object} serverutils.BaseResponse[any]
// @Router /api/share-form [post]
func (c *formController) ShareForm(ctx *fiber.Ctx) error {
	var req dto.ShareFormRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.forms.ShareForm(ctx.UserContext(), service.ShareRequest{
		FormID:        req.FormID,
		Emails:        req.Emails,
		TrainerEmails: req.TrainerEmails,
		SessionID:     req.SessionID,
		Title:         req.Title,
		EditURL:       req.EditURL,
		ViewURL:       req.ViewURL,
	})
	if err != nil {
		return withContext("sharing form", err)
	}

	return ctx.JSON(dto.ShareFormResponse{
		Envelope:   serverutils.Success("Form shared"),
		FormID:     req.FormID,
		SharedWith: result,
	})
}

// CreateMultipleForms publishes one form per quiz
// @Summary Create several Google Forms
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body dto.CreateMultipleFormsRequest true "Quizzes and title template"
// @Success 200 {object} dto.CreateMultipleFormsResponse
// @Router /api/create-multiple-forms [post]
func (c *formController) CreateMultipleForms(ctx *fiber.Ctx) error {
	var req dto.CreateMultipleFormsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if len(req.QuizDataList) == 0 {
		return apperr.InvalidParameter("Missing quiz_data_list parameter")
	}

	kind := entity.ItemKind(req.Type)
	if kind == "" {
		kind = entity.ItemKindDay
	}

	batch, _ := c.forms.CreateForms(ctx.UserContext(), req.QuizDataList, req.TitleTemplate, kind)
	if batch.Failed() {
		return apperr.Upstream("no form could be created: "+strings.Join(batch.Errors, "; "), nil)
	}

	return ctx.JSON(dto.CreateMultipleFormsResponse{
		Envelope:   serverutils.Success("Forms created"),
		Forms:      dto.FormResponses(batch.Forms),
		Errors:     batch.Errors,
		Successful: batch.Successful,
		Total:      batch.Total,
	})
}
