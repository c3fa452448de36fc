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

	"github.com/restsystem/restaurant-api/internal/application/auth"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	infrapdf "github.com/restsystem/restaurant-api/internal/infrastructure/pdf"
	"github.com/restsystem/restaurant-api/internal/infrastructure/postgres"
	httpRouter "github.com/restsystem/restaurant-api/internal/interfaces/http"
	"github.com/restsystem/restaurant-api/pkg/config"
	"github.com/restsystem/restaurant-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("загрузка конфигурации: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("запуск приложения")

	if cfg.JWT.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET не задан, используется секрет разработки; не для production")
	}

	ctx := context.Background()

	// Миграции идут до открытия пула и приёма трафика.
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("миграции схемы")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("подключение к PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(employeeRepo, accountRepo, txRunner, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	}, cfg.Auth.DefaultUserPassword)
	orderUC := usecase.NewOrderUseCase(orderRepo, txRunner)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo, txRunner)
	reportUC := usecase.NewReportUseCase(reportRepo, infrapdf.NewMarotoSalesReport())

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
		Title:    "Restaurant Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		OrderUC:     orderUC,
		InventoryUC: inventoryUC,
		MenuUC:      menuUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-сервер завершился")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("получен сигнал остановки, закрываем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("остановка сервера")
	}

	log.Info().Msg("приложение остановлено")
}
