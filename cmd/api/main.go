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

	"github.com/gin-gonic/gin"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/sangkips/abs-inventory-api/internal/config"
	"github.com/sangkips/abs-inventory-api/internal/infrastructure/database"
	"github.com/sangkips/abs-inventory-api/internal/infrastructure/repository"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/handler"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/routes"
	"github.com/sangkips/abs-inventory-api/pkg/cache"
	"github.com/sangkips/abs-inventory-api/pkg/logger"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.App.Env, cfg.App.LogLevel)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Amounts are emitted as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Open(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		slog.Warn("failed to seed default data", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get database handle", "error", err)
		os.Exit(1)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Repositories
	districtRepo := repository.NewDistrictRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderLineRepo := repository.NewOrderLineRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	userRepo := repository.NewUserRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	uow := repository.NewOrderUnitOfWork(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	districtService := service.NewDistrictService(districtRepo)
	ledgerService := service.NewLedgerService(ledgerRepo, districtRepo)
	itemService := service.NewItemService(itemRepo, orderLineRepo)
	orderService := service.NewOrderService(uow, orderRepo, orderLineRepo, ledgerRepo, itemRepo)
	numberService := service.NewOrderNumberService(orderRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, ledgerRepo, itemRepo, districtRepo)

	if cfg.Cache.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisAddr, cfg.App.Name)
		if err != nil {
			slog.Warn("redis unavailable, dashboard stats are not cached", "addr", cfg.Cache.RedisAddr, "error", err)
		} else {
			defer redisCache.Close()
			dashboardService.WithCache(redisCache, cfg.Cache.DashboardTTL)
		}
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer rateLimiter.Stop()

	handlers := &routes.Handlers{
		Health:    handler.NewHealthHandler(cfg.App.Name, sqlDB),
		Auth:      handler.NewAuthHandler(authService),
		District:  handler.NewDistrictHandler(districtService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Item:      handler.NewItemHandler(itemService),
		Order:     handler.NewOrderHandler(orderService, numberService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "service", cfg.App.Name, "port", port, "env", cfg.App.Env, "db", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}
}
