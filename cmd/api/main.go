package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/clothes-service/internal/api/http"
	"github.com/spec-kit/clothes-service/internal/api/http/handlers"
	"github.com/spec-kit/clothes-service/internal/auth"
	"github.com/spec-kit/clothes-service/internal/config"
	"github.com/spec-kit/clothes-service/internal/events"
	"github.com/spec-kit/clothes-service/internal/observability"
	"github.com/spec-kit/clothes-service/internal/persistence"
	"github.com/spec-kit/clothes-service/internal/repository"
	"github.com/spec-kit/clothes-service/internal/service"
	"github.com/spec-kit/clothes-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	clothesRepo := repository.NewClothesRepository(pool)
	clothesCache := repository.NewClothesCache(redis.Client, cfg.Catalog.CacheTTL())

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartCatalogListener(service.NewCatalogListener(dispatcher, clothesCache, logger))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:   userRepo,
		Hasher:     auth.NewHasher(cfg.Auth.BcryptCost),
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	clothesService := service.NewClothesService(service.ClothesDependencies{
		ClothesRepo: clothesRepo,
		Cache:       clothesCache,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	authMiddleware := auth.NewAuthMiddleware(tokens, auth.NewIdentityResolver(userRepo), metrics)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		APIPrefix:      cfg.App.APIPrefix,
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Clothes:        handlers.NewClothesHandler(clothesService),
		AuthMiddleware: authMiddleware,
		Rejections:     metrics,
		Gatherer:       registry,
	})

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
