package server

import (
	"log"

	"ouderschapsplan-api/internal/bootstrap"
	"ouderschapsplan-api/internal/config"
	"ouderschapsplan-api/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware
	// fiber refuses credentials together with a wildcard origin
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: cfg.App.CorsAllowedOrigins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + serverutils.LegacyIdHeader,
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	if cfg.Features.OtelEnabled {
		app.Use(otelfiber.Middleware())
	}

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"status": "ok"}))
	})

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	// Public
	c.LookupController.RegisterRoutes(api)
	c.PaymentController.RegisterRoutes(api)

	dossiers := api.Group("/dossiers", c.AuthMiddleware)
	c.DossierController.RegisterRoutes(dossiers)
	c.PartijController.RegisterRoutes(dossiers)
	c.KindController.RegisterRoutes(dossiers)
	c.OmgangController.RegisterRoutes(dossiers)
	c.ZorgController.RegisterRoutes(dossiers)
	c.OuderschapsplanController.RegisterRoutes(dossiers)

	gebruikers := api.Group("/gebruikers", c.AuthMiddleware)
	c.UserController.RegisterRoutes(gebruikers)
}
