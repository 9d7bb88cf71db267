package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizgenius/internal/config"
	"bizgenius/internal/database"
	"bizgenius/internal/database/migration"
	handlers "bizgenius/internal/http/handler"
	"bizgenius/internal/http/middleware"
	"bizgenius/internal/llm"
	"bizgenius/internal/otel"
	"bizgenius/internal/repository/postgres"
	"bizgenius/internal/service"
	"bizgenius/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	loc := time.UTC

	// Tracing is optional; a failed exporter degrades to noop
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Shared chat-completion client for plan generation and the mentor chat
	chatClient, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("failed to initialize llm client: %v", err)
	}

	// Initialize repositories and services
	planRepo := postgres.NewPlanPostgres(db)
	courseRepo := postgres.NewCoursePostgres(db)
	enrollmentRepo := postgres.NewEnrollmentPostgres(db)
	chatRepo := postgres.NewChatPostgres(db)
	userRepo := postgres.NewUserPostgres(db)

	svcs := handlers.Services{
		Plans:    service.NewPlanService(chatClient, planRepo, objStore),
		Chat:     service.NewChatService(chatClient, chatRepo, cfg.LLM.HistoryLimit),
		Courses:  service.NewCourseService(courseRepo),
		Progress: service.NewProgressService(enrollmentRepo, courseRepo),
		Users:    service.NewUserService(userRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// Server spans for every request, parenting the otelsql and storage spans
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
