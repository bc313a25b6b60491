package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/mini-erp-api/internal/application/analytics"
	"github.com/jhoicas/mini-erp-api/internal/application/invoicing"
	"github.com/jhoicas/mini-erp-api/internal/application/ledger"
	"github.com/jhoicas/mini-erp-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/mini-erp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mini-erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mini-erp-api/internal/interfaces/http"
	"github.com/jhoicas/mini-erp-api/pkg/config"
	"github.com/jhoicas/mini-erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewUseCase(txRunner)
	ledgerQuery := ledger.NewQueryUseCase(saleRepo)
	productUC := usecase.NewProductUseCase(productRepo, saleRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	invoicePDFUC := invoicing.NewPDFUseCase(saleRepo, infrapdf.NewMarotoInvoiceGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ExpenseUC:   expenseUC,
		Ledger:      ledgerUC,
		LedgerQuery: ledgerQuery,
		DashboardUC: dashboardUC,
		InvoicePDF:  invoicePDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
