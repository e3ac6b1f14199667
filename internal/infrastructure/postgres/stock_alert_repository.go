package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

const alertColumns = `id, medication_id, type, message, is_read, is_resolved,
	resolved_at, resolved_by, created_at, updated_at`

// StockAlertRepo implementación de StockAlertRepository sobre PostgreSQL
// (usable con pool o tx).
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// Create persiste una alerta nueva (abierta, sin leer).
func (r *StockAlertRepo) Create(alert *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	var resolvedBy any
	if alert.ResolvedBy != "" {
		resolvedBy = alert.ResolvedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.MedicationID, alert.Type, alert.Message,
		alert.IsRead, alert.IsResolved, alert.ResolvedAt, resolvedBy,
		alert.CreatedAt, alert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve (nil, nil) si no existe.
func (r *StockAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE id = $1`
	alert, err := scanAlertRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get stock alert: %w", err)
	}
	return alert, nil
}

// GetUnresolved busca la alerta abierta de un (medicamento, tipo).
// A lo sumo hay una por la semántica find-or-create del reconciliador.
func (r *StockAlertRepo) GetUnresolved(medicationID, alertType string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts
		WHERE medication_id = $1 AND type = $2 AND is_resolved = false
		ORDER BY created_at DESC LIMIT 1`
	alert, err := scanAlertRow(r.q.QueryRow(context.Background(), query, medicationID, alertType))
	if err != nil {
		return nil, fmt.Errorf("get unresolved alert: %w", err)
	}
	return alert, nil
}

// MarkRead marca la alerta como leída.
func (r *StockAlertRepo) MarkRead(id string, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_alerts SET is_read = true, updated_at = $2 WHERE id = $1`,
		id, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	return nil
}

// Resolve marca la alerta como resuelta. resolved_by queda NULL si resolvedBy es vacío.
func (r *StockAlertRepo) Resolve(id string, resolvedAt time.Time, resolvedBy string) error {
	var by any
	if resolvedBy != "" {
		by = resolvedBy
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_alerts SET is_resolved = true, resolved_at = $2, resolved_by = $3, updated_at = $2
		 WHERE id = $1`,
		id, resolvedAt, by,
	)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	return nil
}

// List lista alertas filtradas, más recientes primero. limit <= 0 = sin límite.
func (r *StockAlertRepo) List(filter repository.AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error) {
	where, args := alertConditions(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM stock_alerts` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock alerts: %w", err)
	}

	query := `SELECT ` + alertColumns + ` FROM stock_alerts` + where + ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock alerts: %w", err)
	}
	defer rows.Close()

	list, err := scanAlerts(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, rows.Err()
}

// ListUnresolved devuelve las últimas alertas abiertas para el dashboard.
func (r *StockAlertRepo) ListUnresolved(limit int) ([]*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts
		WHERE is_resolved = false ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()

	list, err := scanAlerts(rows)
	if err != nil {
		return nil, err
	}
	return list, rows.Err()
}

func alertConditions(filter repository.AlertFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.MedicationID != "" {
		args = append(args, filter.MedicationID)
		conds = append(conds, fmt.Sprintf("medication_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	switch filter.Status {
	case repository.AlertStatusUnread:
		conds = append(conds, "is_read = false")
	case repository.AlertStatusUnresolved:
		conds = append(conds, "is_resolved = false")
	case repository.AlertStatusResolved:
		conds = append(conds, "is_resolved = true")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanAlertRow escanea una fila; (nil, nil) si no hay filas.
func scanAlertRow(row pgx.Row) (*entity.StockAlert, error) {
	var a entity.StockAlert
	var resolvedBy *string
	err := row.Scan(
		&a.ID, &a.MedicationID, &a.Type, &a.Message, &a.IsRead, &a.IsResolved,
		&a.ResolvedAt, &resolvedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if resolvedBy != nil {
		a.ResolvedBy = *resolvedBy
	}
	return &a, nil
}

func scanAlerts(rows pgx.Rows) ([]*entity.StockAlert, error) {
	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		var resolvedBy *string
		if err := rows.Scan(
			&a.ID, &a.MedicationID, &a.Type, &a.Message, &a.IsRead, &a.IsResolved,
			&a.ResolvedAt, &resolvedBy, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock alert: %w", err)
		}
		if resolvedBy != nil {
			a.ResolvedBy = *resolvedBy
		}
		list = append(list, &a)
	}
	return list, nil
}
