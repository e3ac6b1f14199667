// Package reports contiene los casos de uso read-only del dashboard y los
// reportes de inventario. No muta estado: todo corre sobre consultas del
// ReportRepository y los repos de lectura.
package reports

import (
	"context"
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

const (
	dashboardTopN      = 10 // filas por widget del dashboard
	dashboardTrendDays = 30
)

// DashboardUseCase arma el resumen del inventario: contadores, movimientos
// recientes, alertas abiertas, listas de stock bajo / por vencer y la tendencia
// de movimientos de los últimos 30 días.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	movRepo    repository.StockMovementRepository
	alertRepo  repository.StockAlertRepository
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	reportRepo repository.ReportRepository,
	movRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
	now func() time.Time,
) *DashboardUseCase {
	return &DashboardUseCase{
		reportRepo: reportRepo,
		movRepo:    movRepo,
		alertRepo:  alertRepo,
		now:        now,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas pesadas en paralelo (stats, tendencia, top-listas); los
// listados livianos de movimientos y alertas se leen en línea.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	type statsResult struct {
		stats *repository.InventoryStats
		err   error
	}
	type trendsResult struct {
		rows []repository.MovementTrendRow
		err  error
	}
	type listsResult struct {
		lowStock     []*entity.Medication
		expiringSoon []*entity.Medication
		err          error
	}

	statsCh := make(chan statsResult, 1)
	trendsCh := make(chan trendsResult, 1)
	listsCh := make(chan listsResult, 1)

	go func() {
		stats, err := uc.reportRepo.GetInventoryStats(ctx, now)
		statsCh <- statsResult{stats: stats, err: err}
	}()
	go func() {
		rows, err := uc.reportRepo.GetMovementTrends(ctx, now.AddDate(0, 0, -dashboardTrendDays))
		trendsCh <- trendsResult{rows: rows, err: err}
	}()
	go func() {
		low, err := uc.reportRepo.ListLowStock(ctx, dashboardTopN)
		if err != nil {
			listsCh <- listsResult{err: err}
			return
		}
		soon, err := uc.reportRepo.ListExpiringSoon(ctx, now, dashboardTopN)
		listsCh <- listsResult{lowStock: low, expiringSoon: soon, err: err}
	}()

	recentMovements, err := uc.movRepo.ListRecent(dashboardTopN)
	if err != nil {
		return nil, err
	}
	openAlerts, err := uc.alertRepo.ListUnresolved(dashboardTopN)
	if err != nil {
		return nil, err
	}

	statsRes := <-statsCh
	if statsRes.err != nil {
		return nil, statsRes.err
	}
	trendsRes := <-trendsCh
	if trendsRes.err != nil {
		return nil, trendsRes.err
	}
	listsRes := <-listsCh
	if listsRes.err != nil {
		return nil, listsRes.err
	}

	trends := make([]dto.MovementTrendDTO, 0, len(trendsRes.rows))
	for _, row := range trendsRes.rows {
		trends = append(trends, dto.MovementTrendDTO{
			Date:          row.Date.Format("2006-01-02"),
			Type:          row.Type,
			Count:         row.Count,
			TotalQuantity: row.TotalQuantity,
		})
	}

	return &dto.DashboardSummaryDTO{
		Stats: dto.DashboardStatsDTO{
			TotalMedications:  statsRes.stats.TotalMedications,
			LowStockCount:     statsRes.stats.LowStockCount,
			ExpiredCount:      statsRes.stats.ExpiredCount,
			ExpiringSoonCount: statsRes.stats.ExpiringSoonCount,
			TotalStockValue:   statsRes.stats.TotalStockValue,
		},
		RecentMovements: dto.ToStockMovementResponses(recentMovements),
		Alerts:          dto.ToStockAlertResponses(openAlerts),
		LowStock:        dto.ToMedicationResponses(listsRes.lowStock, now),
		ExpiringSoon:    dto.ToMedicationResponses(listsRes.expiringSoon, now),
		MovementTrends:  trends,
	}, nil
}
