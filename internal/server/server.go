package server

import (
	"log"

	"lira-support-be/internal/bootstrap"
	"lira-support-be/internal/config"
	"lira-support-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const audioPublicPath = "/static/tts"

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, chat payloads are small
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.SessionMiddleware(cfg.Session.Secret))

	// Generated audio artifacts
	app.Static(audioPublicPath, cfg.Speech.OutputDir)

	// Chat UI
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendFile("./web/index.html")
	})

	registerRoutes(app, container)

	return &Server{
		app: app,
		cfg: cfg,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.ChatController.RegisterRoutes(app)
	c.TTSController.RegisterRoutes(app)
}
