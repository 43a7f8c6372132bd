package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jawharapos/pos-api/internal/application/analytics"
	"github.com/jawharapos/pos-api/internal/application/auth"
	"github.com/jawharapos/pos-api/internal/application/billing"
	"github.com/jawharapos/pos-api/internal/application/sales"
	"github.com/jawharapos/pos-api/internal/application/usecase"
	infracache "github.com/jawharapos/pos-api/internal/infrastructure/cache"
	infrapdf "github.com/jawharapos/pos-api/internal/infrastructure/pdf"
	"github.com/jawharapos/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jawharapos/pos-api/internal/interfaces/http"
	"github.com/jawharapos/pos-api/pkg/config"
	"github.com/jawharapos/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Analytics cache: enabled only when REDIS_ADDR is set. Without it
	// every dashboard request aggregates in the database.
	var analyticsCache analytics.Cache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable, analytics cache disabled")
		} else {
			analyticsCache = infracache.NewRedisCache(rdb)
			defer rdb.Close()
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, analyticsCache, log)
	saleUC := sales.NewSaleUseCase(saleRepo, productRepo, dashboardUC)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, saleRepo, settingsRepo, dashboardUC, log)
	receiptUC := billing.NewReceiptUseCase(invoiceRepo, saleRepo, settingsRepo, infrapdf.NewMarotoReceiptGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Jawhara POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SettingsUC:  settingsUC,
		SaleUC:      saleUC,
		DashboardUC: dashboardUC,
		InvoiceUC:   invoiceUC,
		ReceiptUC:   receiptUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
