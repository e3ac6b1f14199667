package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/application/ledger"
	"github.com/jhoicas/FarmaStock-api/internal/application/reports"
	"github.com/jhoicas/FarmaStock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MedicationUC *usecase.MedicationUseCase
	LedgerUC     *ledger.StockLedgerUseCase
	AlertUC      *alerts.AlertUseCase
	DashboardUC  *reports.DashboardUseCase
	ReportUC     *reports.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Toda la API requiere Bearer Token; las
// operaciones de escritura además exigen rol admin o farmaceutico (auxiliar es
// solo lectura) y el borrado queda reservado a admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	canWrite := RequireRole(RoleAdmin, RolePharmacist)
	adminOnly := RequireRole(RoleAdmin)

	// Medications
	medications := api.Group("/medications")
	medicationHandler := NewMedicationHandler(deps.MedicationUC)
	medications.Get("/", medicationHandler.List)
	medications.Get("/:id", medicationHandler.GetByID)
	medications.Post("/", canWrite, medicationHandler.Create)
	medications.Put("/:id", canWrite, medicationHandler.Update)
	medications.Delete("/:id", adminOnly, medicationHandler.Delete)

	// Stock movements (ledger)
	movements := api.Group("/stock-movements")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", canWrite, movementHandler.Register)

	// Alerts
	alertsGroup := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertsGroup.Get("/", alertHandler.List)
	alertsGroup.Patch("/:id/read", canWrite, alertHandler.MarkRead)
	alertsGroup.Patch("/:id/resolve", canWrite, alertHandler.Resolve)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Reports
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/stock-summary", reportHandler.StockSummary)
	reportsGroup.Get("/stock-summary/pdf", reportHandler.StockSummaryPDF)
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/expiry", reportHandler.Expiry)
}
