package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"usage-insights-service/internal/config"
	"usage-insights-service/internal/logger"

	metricsHttp "usage-insights-service/internal/metrics/adapters/http/fiber"
	metricsMemory "usage-insights-service/internal/metrics/adapters/memory"
	metricsRepoPg "usage-insights-service/internal/metrics/adapters/postgres"
	"usage-insights-service/internal/metrics/core/ports"
	metricsUsecase "usage-insights-service/internal/metrics/core/usecase"

	snapshotsHttp "usage-insights-service/internal/snapshots/adapters/http/fiber"
	snapshotsUsecase "usage-insights-service/internal/snapshots/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "usage-insights-service/docs"
)

// @title Usage Insights Service API
// @version 1.0
// @description Dimensional aggregation over daily per-user AI assistant usage records, with cached snapshots for paging.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppName, cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Record store: Postgres when a DSN is set, otherwise a JSON fixture.
	reader, db, err := openReader(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("failed to open metrics store", zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Usecases
	engine := metricsUsecase.NewMetricsEngine(reader, log.Named("engine"))
	cache := snapshotsUsecase.NewSnapshotCache(cfg.SnapshotCapacity, cfg.SnapshotTTL,
		snapshotsUsecase.WithMetrics(snapshotsUsecase.NewMetrics(reg)),
		snapshotsUsecase.WithLogger(log.Named("snapshots")),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	metricsHttp.NewMetricsHandler(engine, cache, log.Named("http")).Routes(app.Group("/metrics"))
	snapshotsHttp.NewSnapshotHandler(cache, log.Named("http")).Routes(app.Group("/snapshots"))

	app.Get("/internal/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
}

func openReader(ctx context.Context, cfg config.Config, log *zap.Logger) (ports.MetricsReaderPort, *sql.DB, error) {
	if cfg.PostgresDSN == "" {
		store, err := metricsMemory.LoadFile(cfg.FixturePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("serving records from fixture",
			zap.String("path", cfg.FixturePath),
			zap.Int("records", store.Len()),
		)
		return store, nil, nil
	}

	db, err := metricsRepoPg.Open(ctx, cfg.PostgresDSN, metricsRepoPg.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info("serving records from postgres", zap.String("table", cfg.MetricsTable))

	return metricsRepoPg.NewMetricsRepository(metricsRepoPg.NewSQLDB(db), cfg.MetricsTable), db, nil
}
