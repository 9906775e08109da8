package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/citizen-services/internal/api/http"
	"github.com/spec-kit/citizen-services/internal/api/http/handlers"
	"github.com/spec-kit/citizen-services/internal/auth"
	"github.com/spec-kit/citizen-services/internal/config"
	"github.com/spec-kit/citizen-services/internal/events"
	"github.com/spec-kit/citizen-services/internal/observability"
	"github.com/spec-kit/citizen-services/internal/persistence"
	"github.com/spec-kit/citizen-services/internal/repository"
	"github.com/spec-kit/citizen-services/internal/service"
	"github.com/spec-kit/citizen-services/internal/worker"
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
	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required")
	}

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var (
		redis   *persistence.Redis
		deskKV  persistence.KeyValueStore
		pingers = map[string]handlers.Pinger{"postgres": pg}
	)
	switch cfg.Desk.Backend {
	case config.DeskStoreMemory:
		logger.Info("desk tickets kept in memory")
		deskKV = persistence.NewMemoryKeyValueStore()
	default:
		redis = persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		deskKV = redis.KeyValueStore()
		pingers["redis"] = redis
	}

	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	schemeRepo := repository.NewSchemeRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	deskStore := repository.NewDeskTicketStore(deskKV, cfg.Desk.StoreKey)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Logger:   logger,
	})
	userService := service.NewUserService(service.UserDependencies{
		UserRepo:        userRepo,
		DocumentRepo:    documentRepo,
		ApplicationRepo: applicationRepo,
	})
	catalogService := service.NewCatalogService(categoryRepo, schemeRepo, logger)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		SeedDemo:   cfg.App.SeedDemoData,
		Logger:     logger,
	})
	deskService := service.NewDeskService(service.DeskDependencies{
		Store:      deskStore,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	if _, err := catalogService.Seed(ctx); err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}
	if cfg.App.SeedDemoData {
		if _, err := authService.SeedDemoUsers(ctx); err != nil {
			logger.Warn("demo user seeding failed", zap.Error(err))
		}
		if _, err := deskService.SeedDemo(ctx); err != nil {
			logger.Warn("desk ticket seeding failed", zap.Error(err))
		}
	}

	workers := worker.Start(ctx, worker.Workers{
		Notifications: service.NewNotificationService(dispatcher, logger, cfg.Notification),
		IssueSweeper:  worker.NewIssueSweeper(deskService, cfg.Desk.IssueSweepInterval(), logger),
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, pingers),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Desk:           handlers.NewDeskHandler(deskService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
	workers.Wait()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
