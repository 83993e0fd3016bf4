package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/sitetrack/backend/docs"
	"github.com/sitetrack/backend/internal/audit"
	"github.com/sitetrack/backend/internal/config"
	"github.com/sitetrack/backend/internal/database"
	"github.com/sitetrack/backend/internal/handlers"
	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/logger"
	mW "github.com/sitetrack/backend/internal/middleware"
	"github.com/sitetrack/backend/internal/models"
	"github.com/sitetrack/backend/internal/repository"
	"github.com/sitetrack/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title SiteTrack Backend API
// @version 1.0
// @description Workers, vendors and the payments made to them on construction sites
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port

	// Initialize storage
	db, err := database.InitDB(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.CloseDB(db, log)

	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}

	redisClient := database.InitRedis(ctx, cfg.Redis, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize services
	sqlxDB := sqlx.NewDb(db, "postgres")
	auditLogger := audit.NewLogger(log)
	ledgerStore := ledger.NewPostgresStore(db)
	coordinator := ledger.NewCoordinator(ledgerStore, auditLogger, log)

	analyticsService := services.NewAnalyticsService(sqlxDB, redisClient, cfg.Analytics.CacheTTL, log)
	payeeService := services.NewPayeeService(repository.NewPayeeRepository(sqlxDB), ledgerStore, analyticsService, auditLogger, log)
	paymentService := services.NewPaymentService(coordinator, analyticsService, log)

	workerHandler := handlers.NewPayeeHandler(models.PayeeKindWorker, payeeService, paymentService, log)
	vendorHandler := handlers.NewPayeeHandler(models.PayeeKindVendor, payeeService, paymentService, log)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, log)
	healthHandler := handlers.NewHealthHandler(db, cfg.Database.PingTimeout, log)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mW.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.Compress(5, "application/json"))
	r.Use(mW.SecurityHeaders)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	r.Get("/health", healthHandler.Health)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimit.RequestsPerSecond > 0 {
			r.Use(mW.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).Handler)
		}

		r.Get("/health", healthHandler.Health)
		r.Mount("/workers", workerHandler.Routes())
		r.Mount("/vendors", vendorHandler.Routes())
		r.Get("/analytics", analyticsHandler.GetAnalytics)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		log.Info("Server shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}
