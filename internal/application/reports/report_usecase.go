package reports

import (
	"context"
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// ReportUseCase reportes de inventario: resumen de stock, movimientos,
// stock bajo y vencimientos. El resumen de stock también se exporta a PDF.
type ReportUseCase struct {
	medRepo    repository.MedicationRepository
	movRepo    repository.StockMovementRepository
	reportRepo repository.ReportRepository
	pdfGen     StockSummaryPDFGenerator
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	medRepo repository.MedicationRepository,
	movRepo repository.StockMovementRepository,
	reportRepo repository.ReportRepository,
	pdfGen StockSummaryPDFGenerator,
	now func() time.Time,
) *ReportUseCase {
	return &ReportUseCase{
		medRepo:    medRepo,
		movRepo:    movRepo,
		reportRepo: reportRepo,
		pdfGen:     pdfGen,
		now:        now,
	}
}

// StockSummary resumen de stock de medicamentos activos, con búsqueda y los
// totales globales (valor a precio unitario y unidades).
func (uc *ReportUseCase) StockSummary(ctx context.Context, search string, limit, offset int) (*dto.StockSummaryReportDTO, error) {
	now := uc.now()
	list, total, err := uc.medRepo.List(repository.MedicationFilter{
		Search: search,
		Status: repository.MedicationStatusActive,
		Now:    now,
	}, limit, offset)
	if err != nil {
		return nil, err
	}
	stats, err := uc.reportRepo.GetInventoryStats(ctx, now)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryReportDTO{
		Medications: dto.ToMedicationResponses(list, now),
		TotalValue:  stats.TotalStockValue,
		TotalItems:  stats.TotalStockItems,
		Page:        dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// StockSummaryPDF genera el PDF del resumen de stock (todos los activos, sin paginar).
func (uc *ReportUseCase) StockSummaryPDF(ctx context.Context) ([]byte, error) {
	now := uc.now()
	// limit 0 = sin límite: el reporte imprime el inventario completo.
	list, _, err := uc.medRepo.List(repository.MedicationFilter{
		Status: repository.MedicationStatusActive,
		Now:    now,
	}, 0, 0)
	if err != nil {
		return nil, err
	}
	stats, err := uc.reportRepo.GetInventoryStats(ctx, now)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockSummaryPDF(ctx, list, stats.TotalStockValue, stats.TotalStockItems, now)
}

// MovementsReport movimientos filtrados más los totales por tipo del mismo rango.
func (uc *ReportUseCase) MovementsReport(ctx context.Context, filter repository.MovementFilter, limit, offset int) (*dto.MovementsReportDTO, error) {
	list, total, err := uc.movRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	summaryRows, err := uc.reportRepo.GetMovementSummary(ctx, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}
	summary := make([]dto.MovementSummaryDTO, 0, len(summaryRows))
	for _, row := range summaryRows {
		summary = append(summary, dto.MovementSummaryDTO{
			Type:              row.Type,
			TotalTransactions: row.TotalTransactions,
			TotalQuantity:     row.TotalQuantity,
		})
	}
	return &dto.MovementsReportDTO{
		Movements: dto.ToStockMovementResponses(list),
		Summary:   summary,
		Page:      dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// LowStockReport medicamentos activos en o por debajo del stock mínimo.
func (uc *ReportUseCase) LowStockReport(ctx context.Context, limit int) (*dto.LowStockReportDTO, error) {
	list, err := uc.reportRepo.ListLowStock(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.LowStockReportDTO{
		Medications: dto.ToMedicationResponses(list, uc.now()),
	}, nil
}

// ExpiryReport medicamentos vencidos y por vencer (30 días), ordenados por fecha.
func (uc *ReportUseCase) ExpiryReport(ctx context.Context) (*dto.ExpiryReportDTO, error) {
	now := uc.now()
	expired, err := uc.reportRepo.ListExpired(ctx, now, 0)
	if err != nil {
		return nil, err
	}
	expiringSoon, err := uc.reportRepo.ListExpiringSoon(ctx, now, 0)
	if err != nil {
		return nil, err
	}
	return &dto.ExpiryReportDTO{
		Expired:      dto.ToMedicationResponses(expired, now),
		ExpiringSoon: dto.ToMedicationResponses(expiringSoon, now),
		GeneratedAt:  now,
	}, nil
}
