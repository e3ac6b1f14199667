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

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/application/ledger"
	"github.com/jhoicas/FarmaStock-api/internal/application/reports"
	"github.com/jhoicas/FarmaStock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/FarmaStock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/FarmaStock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/FarmaStock-api/internal/interfaces/http"
	"github.com/jhoicas/FarmaStock-api/pkg/config"
	"github.com/jhoicas/FarmaStock-api/pkg/logger"
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

	medicationRepo := postgres.NewMedicationRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewStockAlertRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Reloj explícito: time.Now en producción, fijo en tests.
	now := time.Now
	reconciler := alerts.NewReconciler()

	medicationUC := usecase.NewMedicationUseCase(txRunner, medicationRepo, movementRepo, alertRepo, reconciler, now)
	ledgerUC := ledger.NewStockLedgerUseCase(txRunner, movementRepo, reconciler, now)
	alertUC := alerts.NewAlertUseCase(alertRepo, now)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, movementRepo, alertRepo, now)
	reportUC := reports.NewReportUseCase(medicationRepo, movementRepo, reportRepo, infrapdf.NewStockSummaryGenerator(), now)

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
		Title:    "FarmaStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MedicationUC: medicationUC,
		LedgerUC:     ledgerUC,
		AlertUC:      alertUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
