package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/usecase"
	infrapdf "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/infrastructure/pdf"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/interfaces/http"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/pkg/config"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	expenseRepo := postgres.NewExpenseRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	retaceoRepo := postgres.NewRetaceoRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	historyRepo := postgres.NewPriceHistoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	expenseUC := usecase.NewExpenseUseCase(expenseRepo, purchaseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo)

	calculateUC := appretaceo.NewCalculateUseCase(purchaseRepo, expenseRepo)
	lifecycleUC := appretaceo.NewLifecycleUseCase(txRunner, retaceoRepo, purchaseRepo, calculateUC)
	priceAnalysisUC := appretaceo.NewPriceAnalysisUseCase(txRunner, productRepo, historyRepo)

	// PDF: reporte imprimible del retaceo con sus detalles congelados
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := appretaceo.NewPDFUseCase(retaceoRepo, purchaseRepo, productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retaceo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ExpenseUC:       expenseUC,
		ProductUC:       productUC,
		PurchaseUC:      purchaseUC,
		CalculateUC:     calculateUC,
		LifecycleUC:     lifecycleUC,
		PriceAnalysisUC: priceAnalysisUC,
		PDFUC:           pdfUC,
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
