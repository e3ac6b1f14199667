package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO contadores del encabezado del dashboard.
type DashboardStatsDTO struct {
	TotalMedications  int             `json:"total_medications"`
	LowStockCount     int             `json:"low_stock_count"`
	ExpiredCount      int             `json:"expired_count"`
	ExpiringSoonCount int             `json:"expiring_soon_count"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
}

// MovementTrendDTO tendencia de movimientos de un día (por tipo).
type MovementTrendDTO struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Type          string `json:"type"`
	Count         int    `json:"count"`
	TotalQuantity int    `json:"total_quantity"`
}

// DashboardSummaryDTO respuesta completa del dashboard.
type DashboardSummaryDTO struct {
	Stats           DashboardStatsDTO       `json:"stats"`
	RecentMovements []StockMovementResponse `json:"recent_movements"`
	Alerts          []StockAlertResponse    `json:"alerts"`
	LowStock        []MedicationResponse    `json:"low_stock_medications"`
	ExpiringSoon    []MedicationResponse    `json:"expiring_soon_medications"`
	MovementTrends  []MovementTrendDTO      `json:"movement_trends"`
}

// StockSummaryReportDTO reporte de resumen de stock.
type StockSummaryReportDTO struct {
	Medications []MedicationResponse `json:"medications"`
	TotalValue  decimal.Decimal      `json:"total_value"`
	TotalItems  int                  `json:"total_items"`
	Page        PageResponse         `json:"page"`
}

// MovementSummaryDTO totales por tipo de movimiento.
type MovementSummaryDTO struct {
	Type              string `json:"type"`
	TotalTransactions int    `json:"total_transactions"`
	TotalQuantity     int    `json:"total_quantity"`
}

// MovementsReportDTO reporte de movimientos con totales por tipo.
type MovementsReportDTO struct {
	Movements []StockMovementResponse `json:"movements"`
	Summary   []MovementSummaryDTO    `json:"summary"`
	Page      PageResponse            `json:"page"`
}

// ExpiryReportDTO reporte de vencimientos.
type ExpiryReportDTO struct {
	Expired      []MedicationResponse `json:"expired"`
	ExpiringSoon []MedicationResponse `json:"expiring_soon"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// LowStockReportDTO reporte de stock bajo.
type LowStockReportDTO struct {
	Medications []MedicationResponse `json:"medications"`
}
