package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"matchapi/internal/chat"
	"matchapi/internal/config"
	"matchapi/internal/database"
	"matchapi/internal/database/migration"
	handlers "matchapi/internal/http/handler"
	"matchapi/internal/http/middleware"
	"matchapi/internal/otel"
	"matchapi/internal/repository/postgres"
	"matchapi/internal/service"
	"matchapi/internal/storage"
	"matchapi/internal/token"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	shutdownTracing, err := otel.Init(context.Background(), loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(context.Background(), db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Redis backs both the token denylist and chat fan-out
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	tokens, err := token.NewManager(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}
	denylist := token.NewRedisDenylist(rdb)

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	profileRepo := postgres.NewProfilePostgres(db)
	verificationRepo := postgres.NewVerificationPostgres(db)
	messageRepo := postgres.NewMessagePostgres(db)

	authSvc := service.NewAuthService(userRepo, profileRepo, tokens, denylist)
	profileSvc := service.NewProfileService(profileRepo, objStore, cfg.MinIO.PresignExpiry)
	directorySvc := service.NewDirectoryService(profileRepo)
	verificationSvc := service.NewVerificationService(objStore, verificationRepo, cfg.MinIO.PresignExpiry)
	chatChannel := chat.NewChannel(messageRepo, chat.NewRedisPubSub(rdb))

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:           db,
		Tokens:       tokens,
		Denylist:     denylist,
		Users:        userRepo,
		Auth:         authSvc,
		Profile:      profileSvc,
		Directory:    directorySvc,
		Verification: verificationSvc,
		Chat:         chatChannel,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
