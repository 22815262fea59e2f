package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/template/html/v2"

	"alfredoptarigan/talent-analyzer/internal/config"
	"alfredoptarigan/talent-analyzer/internal/handlers"
	"alfredoptarigan/talent-analyzer/internal/services"
	"alfredoptarigan/talent-analyzer/web"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration:\n%v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewTextExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize LLM client
	client := services.NewRetryingClient(
		newProviderClient(cfg),
		cfg.LLM.MaxAttempts,
		cfg.LLM.RetryInitialDelay,
		cfg.LLM.Timeout,
	)
	log.Printf("✅ %s client initialized successfully", cfg.LLM.Provider)

	analyzer := services.NewAnalyzerService(extractor, client, cfg.APIKey())
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	engine := html.NewFileSystem(web.Templates(), ".html")
	engine.Reload(cfg.Server.Env == "development")

	app := handlers.NewApp(engine, cfg.Storage.MaxFileSize)
	handlers.Register(app, analyzeHandler, cfg.LLM.Provider)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newProviderClient(cfg *config.Config) services.AnalysisClient {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return services.NewOpenAIClient(services.OpenAIClientConfig{
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.LLM.Temperature,
			BaseURL:     cfg.OpenAI.BaseURL,
		})
	default:
		return services.NewGeminiClient(services.GeminiClientConfig{
			Model:       cfg.Gemini.Model,
			Temperature: cfg.LLM.Temperature,
		})
	}
}
