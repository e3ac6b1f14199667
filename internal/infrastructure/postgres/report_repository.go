package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only para dashboard y reportes. Corre sobre el pool.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetInventoryStats calcula los contadores del dashboard en una sola pasada
// sobre medicamentos activos (FILTER por condición derivada).
func (r *ReportRepo) GetInventoryStats(ctx context.Context, now time.Time) (*repository.InventoryStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE current_stock <= minimum_stock),
			COUNT(*) FILTER (WHERE expiry_date IS NOT NULL AND expiry_date < $1),
			COUNT(*) FILTER (WHERE expiry_date IS NOT NULL AND expiry_date >= $1 AND expiry_date <= $2),
			COALESCE(SUM(current_stock), 0),
			COALESCE(SUM(current_stock * unit_price), 0)
		FROM medications
		WHERE is_active = true`
	var stats repository.InventoryStats
	err := r.q.QueryRow(ctx, query, now, now.Add(entity.ExpiringSoonWindow)).Scan(
		&stats.TotalMedications, &stats.LowStockCount, &stats.ExpiredCount,
		&stats.ExpiringSoonCount, &stats.TotalStockItems, &stats.TotalStockValue,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	return &stats, nil
}

// GetMovementTrends agrupa movimientos por día y tipo desde la fecha dada.
func (r *ReportRepo) GetMovementTrends(ctx context.Context, from time.Time) ([]repository.MovementTrendRow, error) {
	query := `
		SELECT DATE(movement_date), type, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE movement_date >= $1
		GROUP BY DATE(movement_date), type
		ORDER BY DATE(movement_date)`
	rows, err := r.q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("movement trends: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementTrendRow
	for rows.Next() {
		var row repository.MovementTrendRow
		if err := rows.Scan(&row.Date, &row.Type, &row.Count, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan trend row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetMovementSummary totales por tipo de movimiento en un rango de fechas opcional.
func (r *ReportRepo) GetMovementSummary(ctx context.Context, from, to *time.Time) ([]repository.MovementSummaryRow, error) {
	query := `
		SELECT type, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE ($1::timestamptz IS NULL OR movement_date >= $1)
		  AND ($2::timestamptz IS NULL OR movement_date <= $2)
		GROUP BY type`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementSummaryRow
	for rows.Next() {
		var row repository.MovementSummaryRow
		if err := rows.Scan(&row.Type, &row.TotalTransactions, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListLowStock medicamentos activos con stock <= mínimo, más críticos primero.
// limit <= 0 = sin límite.
func (r *ReportRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications
		WHERE is_active = true AND current_stock <= minimum_stock
		ORDER BY current_stock`
	return r.listMedications(ctx, query, nil, limit)
}

// ListExpiringSoon medicamentos activos que vencen dentro de la ventana de 30 días.
func (r *ReportRepo) ListExpiringSoon(ctx context.Context, now time.Time, limit int) ([]*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications
		WHERE is_active = true AND expiry_date IS NOT NULL
		  AND expiry_date >= $1 AND expiry_date <= $2
		ORDER BY expiry_date`
	return r.listMedications(ctx, query, []any{now, now.Add(entity.ExpiringSoonWindow)}, limit)
}

// ListExpired medicamentos activos ya vencidos, más antiguos primero.
func (r *ReportRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications
		WHERE is_active = true AND expiry_date IS NOT NULL AND expiry_date < $1
		ORDER BY expiry_date`
	return r.listMedications(ctx, query, []any{now}, limit)
}

func (r *ReportRepo) listMedications(ctx context.Context, query string, args []any, limit int) ([]*entity.Medication, error) {
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list medications report: %w", err)
	}
	defer rows.Close()

	list, err := scanMedications(rows)
	if err != nil {
		return nil, err
	}
	return list, rows.Err()
}
