package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/zizaimai/rental-manager/internal/backend"
	"github.com/zizaimai/rental-manager/internal/config"
	"github.com/zizaimai/rental-manager/internal/database"
	"github.com/zizaimai/rental-manager/internal/handler"
	"github.com/zizaimai/rental-manager/internal/middleware"
	"github.com/zizaimai/rental-manager/internal/queue"
	"github.com/zizaimai/rental-manager/internal/repository"
	"github.com/zizaimai/rental-manager/internal/route"
	"github.com/zizaimai/rental-manager/internal/router"
	"github.com/zizaimai/rental-manager/internal/service"
	"github.com/zizaimai/rental-manager/internal/viewport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, ready, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		logger.Error("open catalog", "source", cfg.CatalogSource, "err", err)
		os.Exit(1)
	}
	defer closeCatalog()

	rdb, err := config.NewRedisClient(ctx)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "err", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	var publisher handler.EventPublisher
	if cfg.QueueEnabled {
		publisher = service.NewNavigationPublisher(cfg.RabbitMQURL, logger)
		go func() {
			if err := queue.StartNavigationConsumer(ctx, cfg.RabbitMQURL, logger); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("navigation consumer stopped", "err", err)
			}
		}()
	}

	renderer, err := handler.NewRenderer(cfg.BasePath)
	if err != nil {
		logger.Error("parse templates", "err", err)
		os.Exit(1)
	}

	table := route.Default()
	store := viewport.New(cfg.ViewportWidth)
	defer store.Dispose()

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDev()
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLogger(logger))

	deps := router.Deps{
		Config:    cfg,
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
		Table:     table,
		Pages:     handler.NewPageHandler(catalog, table, store, cfg.BasePath, cfg.SiteOwner, publisher, logger),
		Viewport:  &handler.ViewportHandler{Store: store},
		Ready:     ready,
		Logger:    logger,
	}
	router.RegisterRoutes(e, deps)
	router.RegisterPages(e, deps)

	addr := ":" + cfg.Port
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.Env, "base_path", cfg.BasePath, "catalog", cfg.CatalogSource)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

// catalogSource is what the views and the readiness probe need from either
// source.
type catalogSource interface {
	handler.Catalog
	handler.Pinger
}

// openCatalog builds the configured catalog source and the function that
// releases it.
func openCatalog(ctx context.Context, cfg config.Config) (handler.Catalog, handler.Pinger, func(), error) {
	var src catalogSource
	closeFn := func() {}
	switch cfg.CatalogSource {
	case config.SourceDB:
		db, err := database.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		d, _ := repository.DialectFor(cfg.DB.Driver)
		src = repository.NewCatalogRepo(db, d)
		closeFn = func() { _ = db.Close() }
	default:
		src = backend.New(backend.Options{
			BaseURL:   cfg.Backend.BaseURL,
			UserAgent: cfg.Backend.UserAgent,
			Timeout:   cfg.Backend.Timeout,
			RPS:       cfg.Backend.RPS,
			JWTSecret: cfg.Backend.JWTSecret,
			JWTTTL:    cfg.Backend.JWTTTL,
		})
	}
	return src, src, closeFn, nil
}
