package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/api/handlers"
	"github.com/miriam-legal/backend/internal/chat"
	"github.com/miriam-legal/backend/internal/documents"
	"github.com/miriam-legal/backend/internal/knowledge"
	"github.com/miriam-legal/backend/internal/language"
	"github.com/miriam-legal/backend/internal/llm"
	"github.com/miriam-legal/backend/internal/metrics"
	"github.com/miriam-legal/backend/internal/middleware/ratelimit"
	"github.com/miriam-legal/backend/internal/middleware/security"
	"github.com/miriam-legal/backend/internal/middleware/validation"
	mongostore "github.com/miriam-legal/backend/internal/storage/mongo"
	"github.com/miriam-legal/backend/internal/translation"
	"github.com/miriam-legal/backend/pkg/config"
	appLogger "github.com/miriam-legal/backend/pkg/logger"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Miriam Legal Assistance API Server")

	metrics.Init()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	store, err := mongostore.NewClient(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		appLogger.Fatal("Failed to create MongoDB client", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		appLogger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	detector := language.NewDetector()

	llmClient, err := llm.New(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	knowledgeService := knowledge.NewService(store)
	if err := knowledgeService.Seed(ctx); err != nil {
		appLogger.Fatal("Failed to seed legal knowledge", zap.Error(err))
	}

	documentService := documents.NewService(store, detector)
	translationService := translation.NewService(store, detector)
	assistant := chat.NewAssistant(store, llmClient)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	rateLimiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.RateLimit.MaxRequestsPerMinute,
		Logger:               appLogger.GetLogger(),
	})
	defer rateLimiter.Stop()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))
	app.Use(metrics.Middleware())
	app.Use(rateLimiter.Middleware())
	app.Use(validation.Middleware(validation.Config{
		Logger: appLogger.GetLogger(),
	}))

	languageHandler := handlers.NewLanguageHandler(detector)
	translationHandler := handlers.NewTranslationHandler(translationService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	chatHandler := handlers.NewChatHandler(assistant)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService)
	statsHandler := handlers.NewStatsHandler(store)

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Miriam Legal Assistance API",
		})
	})

	api.Post("/detect-language", languageHandler.DetectLanguage)

	api.Post("/translate", translationHandler.Translate)
	api.Get("/translations", translationHandler.GetTranslations)

	api.Post("/documents/upload", documentHandler.UploadDocument)
	api.Get("/documents", documentHandler.GetDocuments)
	api.Get("/documents/:id", documentHandler.GetDocument)

	api.Post("/chat", chatHandler.Chat)
	api.Get("/chat/sessions/:id", chatHandler.GetSessionHistory)

	api.Get("/legal-knowledge", knowledgeHandler.SearchKnowledge)

	api.Get("/stats", statsHandler.GetStats)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
