package controller

import (
	"presentation-builder-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	version string
}

func NewHealthController(version string) IHealthController {
	return &healthController{version: version}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health reports that the API is up
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} serverutils.BaseResponse[map[string]string]
// @Router /health [get]
func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", map[string]string{
		"status":  "healthy",
		"version": c.version,
	}))
}
