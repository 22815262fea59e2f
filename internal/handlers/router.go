package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/talent-analyzer/internal/models"
	"alfredoptarigan/talent-analyzer/web"
)

// NewApp creates the Fiber app with the shared middleware and error handling.
func NewApp(views fiber.Views, bodyLimit int64) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Talent Analyzer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(bodyLimit) + 1024*1024, // room for the other form fields
		Views:        views,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
	}))

	return app
}

func Register(app *fiber.App, analyzeHandler *AnalyzeHandler, provider string) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   web.Static(),
		MaxAge: 3600,
	}))

	// Pages
	app.Get("/", Page("index", "Home"))
	app.Get("/resume-screening", Page("resume_screening", "Resume Screening"))
	app.Get("/sentiment-analysis", Page("sentiment_analysis", "Sentiment Analysis"))
	app.Get("/about", Page("about", "About"))

	// Form posts, JSON for XHR callers
	app.Post("/analyze-resume", analyzeHandler.HandleResume)
	app.Post("/analyze-sentiment", analyzeHandler.HandleSentiment)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:   "healthy",
			Provider: provider,
		})
	})

	api.Post("/analyze/resume", analyzeHandler.HandleResume)
	api.Post("/analyze/sentiment", analyzeHandler.HandleSentiment)
}
