package server

import (
	"context"

	"presentation-builder-be/internal/bootstrap"
	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/pkg/serverutils"

	_ "presentation-builder-be/docs"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := newApp(cfg)

	app.Get("/swagger/*", swagger.HandlerDefault)

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// newApp builds the fiber app with the middleware chain shared by every route.
// recover sits inside the error handler so a panic still gets the JSON envelope.
func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.App.BodyLimit,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Content-Disposition",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Use(recover.New())

	return app
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Server is running", map[string]interface{}{
		"url": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)

	api := app.Group("/api")

	c.GenerationController.RegisterRoutes(api)
	c.FileController.RegisterRoutes(api)
	c.QuizController.RegisterRoutes(api)
	c.FormController.RegisterRoutes(api)
}
