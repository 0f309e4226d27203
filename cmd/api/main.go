package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-dashboard/internal/api/http"
	"github.com/spec-kit/employee-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/employee-dashboard/internal/auth"
	"github.com/spec-kit/employee-dashboard/internal/bookmark"
	"github.com/spec-kit/employee-dashboard/internal/config"
	"github.com/spec-kit/employee-dashboard/internal/directory"
	"github.com/spec-kit/employee-dashboard/internal/events"
	"github.com/spec-kit/employee-dashboard/internal/observability"
	"github.com/spec-kit/employee-dashboard/internal/persistence"
	"github.com/spec-kit/employee-dashboard/internal/repository"
	"github.com/spec-kit/employee-dashboard/internal/service"
	"github.com/spec-kit/employee-dashboard/internal/upstream"
	"github.com/spec-kit/employee-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	rosterCache := repository.NewRosterCache(redis.Client, cfg.Cache.RosterKey, cfg.Cache.RosterTTL())
	eventRepo := repository.NewBookmarkEventRepository(pg.PoolHandle())

	source := directory.NewCachedSource(upstream.NewClient(cfg.Upstream), rosterCache, logger)
	store := directory.NewStore(source, cfg.Upstream.PageLimit, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, eventRepo, logger))

	directoryService := service.NewDirectoryService(store, dispatcher, logger)
	bookmarkService := service.NewBookmarkService(store, dispatcher, logger)
	analyticsService := service.NewAnalyticsService(store, eventRepo, cfg.Analytics.TrendMonths)

	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Upstream.Timeout()+5*time.Second)
	if _, err := directoryService.Reload(loadCtx, "startup"); err != nil {
		logger.Error("initial roster load failed; serving empty roster", zap.Error(err))
	}
	loadCancel()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())
	sessions := bookmark.NewSessions()
	sessionMiddleware := auth.NewSessionMiddleware(tokens, sessions)
	go sessions.Run(ctx, time.Minute, func(removed int) {
		logger.Info("expired sessions swept", zap.Int("removed", removed))
	})
	if cfg.Auth.AdminKeyHash == "" {
		logger.Warn("ADMIN_KEY_HASH not provided; admin routes disabled")
	}

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, directoryService, pg, redis),
		Metrics:           handlers.NewMetricsHandler(metrics),
		Sessions:          handlers.NewSessionsHandler(tokens, sessions),
		Employees:         handlers.NewEmployeesHandler(directoryService),
		Bookmarks:         handlers.NewBookmarksHandler(bookmarkService),
		Analytics:         handlers.NewAnalyticsHandler(analyticsService),
		Admin:             handlers.NewAdminHandler(directoryService),
		SessionMiddleware: sessionMiddleware,
		AdminKeyHash:      cfg.Auth.AdminKeyHash,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
