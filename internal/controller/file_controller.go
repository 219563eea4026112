package controller

import (
	"presentation-builder-be/internal/dto"
	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/serverutils"
	"presentation-builder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	GenerateFiles(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type fileController struct {
	documents service.IDocumentService
}

func NewFileController(documents service.IDocumentService) IFileController {
	return &fileController{documents: documents}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-files", c.GenerateFiles)
	r.Get("/download/:filename", c.Download)
}

// GenerateFiles renders content as PDF and/or PPTX
// @Summary Generate presentation files
// @Tags Files
// @Accept json
// @Produce json
// @Param request body dto.GenerateFilesRequest true "Content to render"
// @Success 200 {object} dto.GenerateFilesResponse
// @Router /api/generate-files [post]
func (c *fileController) GenerateFiles(ctx *fiber.Ctx) error {
	var req dto.GenerateFilesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.InvalidParameter("invalid JSON body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documents.GenerateFiles(ctx.UserContext(), service.FilesRequest{
		Subject: req.Sujet,
		Content: req.Contenu,
		Format:  req.Format,
		Trainer: req.TrainerName,
		Mode:    req.Mode,
	})
	if err != nil {
		return withContext("generating files", err)
	}

	return ctx.JSON(dto.GenerateFilesResponse{
		Envelope: serverutils.Success("Files generated successfully"),
		Files:    res.Files,
		Errors:   res.Errors,
	})
}

// Download streams a generated file as an attachment
// @Summary Download a generated file
// @Tags Files
// @Produce octet-stream
// @Param filename path string true "File name returned by generate-files"
// @Success 200 {file} file
// @Failure 404 {object} serverutils.BaseResponse[any]
// @Router /api/download/{filename} [get]
func (c *fileController) Download(ctx *fiber.Ctx) error {
	filename := ctx.Params("filename")
	path, err := c.documents.DownloadPath(filename)
	if err != nil {
		return err
	}
	return ctx.Download(path, filename)
}
