package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tekki/docs"
	"tekki/internal/cache"
	"tekki/internal/cache/redis"
	"tekki/internal/catalog"
	"tekki/internal/config"
	"tekki/internal/database"
	"tekki/internal/database/migration"
	handlers "tekki/internal/http/handler"
	"tekki/internal/http/middleware"
	"tekki/internal/notify"
	"tekki/internal/otel"
	"tekki/internal/repository/postgres"
	"tekki/internal/service"
	"tekki/internal/storage"
	"tekki/internal/validation"
)

const shutdownTimeout = 10 * time.Second

// @title       TEKKI Studio API
// @version     1.0
// @description Marketing site content and back-office API for TEKKI Studio.
// @BasePath    /
//
// @securityDefinitions.apikey AdminToken
// @in                         header
// @name                       Authorization
func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := cfg.Location()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	var dashCache cache.Cache
	if cfg.Redis.Addr != "" {
		rc := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rc.Close()
		dashCache = rc
	} else {
		dashCache = cache.NewMemory()
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Webhook.URL != "" {
		notifier = notify.NewWebhookClient(cfg.Webhook.URL, cfg.Webhook.Secret, cfg.Webhook.Timeout)
	}

	validator, err := validation.New()
	if err != nil {
		return err
	}
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	jobRepo := postgres.NewJobPostgres(db)
	appRepo := postgres.NewApplicationPostgres(db)
	leadRepo := postgres.NewLeadPostgres(db)
	enrollRepo := postgres.NewEnrollmentPostgres(db)
	bizRepo := postgres.NewBusinessPostgres(db)
	brandRepo := postgres.NewBrandPostgres(db)

	dashSvc := service.NewDashboardService(jobRepo, appRepo, leadRepo, enrollRepo, bizRepo, dashCache, cfg.Redis.TTL, logger)

	deps := handlers.Deps{
		DB:      db,
		Catalog: cat,
		Jobs:    service.NewJobService(jobRepo, appRepo, objStore, validator, dashSvc, logger, loc),
		Applications: service.NewApplicationService(appRepo, jobRepo, objStore, validator, notifier, dashSvc, logger, service.ApplicationOptions{
			ResumeMaxBytes: cfg.ResumeMaxBytes,
			PresignExpiry:  cfg.PresignExpiry,
			Location:       loc,
		}),
		Leads:       service.NewLeadService(leadRepo, validator, cat, notifier, dashSvc, logger, loc),
		Enrollments: service.NewEnrollmentService(enrollRepo, validator, cat, notifier, dashSvc, logger, loc),
		Businesses:  service.NewBusinessService(bizRepo, objStore, validator, dashSvc, logger, loc, cfg.PresignExpiry),
		Brands:      service.NewBrandService(brandRepo, validator, dashSvc),
		Dashboard:   dashSvc,
		AdminToken:  cfg.AdminToken,
		Logger:      logger,
		Location:    loc,
	}

	bodyLimit := cfg.ResumeMaxBytes
	if bodyLimit < service.ImageMaxBytes {
		bodyLimit = service.ImageMaxBytes
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(bodyLimit) + 1<<20,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ":"+cfg.Port, "host", cfg.AppHost)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
