package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

// InventoryStats contadores del dashboard sobre medicamentos activos.
type InventoryStats struct {
	TotalMedications  int
	LowStockCount     int
	ExpiredCount      int
	ExpiringSoonCount int
	TotalStockItems   int             // SUM(current_stock)
	TotalStockValue   decimal.Decimal // SUM(current_stock * unit_price)
}

// MovementTrendRow una fila de la tendencia de movimientos (por día y tipo).
type MovementTrendRow struct {
	Date          time.Time
	Type          string
	Count         int
	TotalQuantity int
}

// MovementSummaryRow totales por tipo de movimiento en un rango de fechas.
type MovementSummaryRow struct {
	Type              string
	TotalTransactions int
	TotalQuantity     int
}

// ReportRepository consultas read-only para dashboard y reportes.
// No muta estado; corre siempre sobre el pool, nunca dentro de la tx del ledger.
type ReportRepository interface {
	GetInventoryStats(ctx context.Context, now time.Time) (*InventoryStats, error)
	// GetMovementTrends agrupa movimientos por día y tipo desde la fecha dada.
	GetMovementTrends(ctx context.Context, from time.Time) ([]MovementTrendRow, error)
	GetMovementSummary(ctx context.Context, from, to *time.Time) ([]MovementSummaryRow, error)
	// ListLowStock medicamentos activos con stock <= mínimo, ordenados por stock ascendente.
	ListLowStock(ctx context.Context, limit int) ([]*entity.Medication, error)
	// ListExpiringSoon medicamentos activos por vencer, ordenados por fecha de vencimiento.
	ListExpiringSoon(ctx context.Context, now time.Time, limit int) ([]*entity.Medication, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*entity.Medication, error)
}
