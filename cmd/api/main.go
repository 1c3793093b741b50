package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/VictorHerdz10/ACRP-API/internal/admission"
	httptransport "github.com/VictorHerdz10/ACRP-API/internal/api/http"
	"github.com/VictorHerdz10/ACRP-API/internal/api/http/handlers"
	"github.com/VictorHerdz10/ACRP-API/internal/auth"
	"github.com/VictorHerdz10/ACRP-API/internal/config"
	"github.com/VictorHerdz10/ACRP-API/internal/observability"
	"github.com/VictorHerdz10/ACRP-API/internal/persistence"
	"github.com/VictorHerdz10/ACRP-API/internal/ratelimit"
	"github.com/VictorHerdz10/ACRP-API/internal/repository"
	"github.com/VictorHerdz10/ACRP-API/internal/service"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	tokenMgr, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to build token manager", zap.Error(err))
	}

	var windowStore ratelimit.WindowStore
	switch cfg.RateLimit.Store {
	case "redis":
		windowStore = ratelimit.NewRedisStore(redis.Client, cfg.App.Name)
	default:
		windowStore = ratelimit.NewMemoryStore(cfg.RateLimit.MemoryStoreEntries)
	}
	limiter := ratelimit.New(windowStore)
	governor := admission.NewGovernor(limiter, tokenMgr)

	globalRule := ratelimit.Rule{
		Scope:         "global",
		Limit:         cfg.RateLimit.GlobalLimit,
		PeriodSeconds: cfg.RateLimit.GlobalPeriodSec,
	}
	loginRule := globalRule
	if cfg.RateLimit.LoginLimit > 0 && cfg.RateLimit.LoginPeriodSec > 0 {
		loginRule = ratelimit.Rule{
			Scope:         "login",
			Limit:         cfg.RateLimit.LoginLimit,
			PeriodSeconds: cfg.RateLimit.LoginPeriodSec,
		}
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	pageRepo := repository.NewPageRepository(pool)

	authService := service.NewAuthService(userRepo, tokenMgr, cfg.Auth.BcryptCost)
	sectionService := service.NewSectionService(sectionRepo)
	pageService := service.NewPageService(pageRepo, sectionRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:      handlers.NewUsersHandler(authService),
		Sections:   handlers.NewSectionsHandler(sectionService),
		Pages:      handlers.NewPagesHandler(pageService),
		Governor:   governor,
		GlobalRule: globalRule,
		LoginRule:  loginRule,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
