package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, medication_id, user_id, type, quantity, previous_stock,
	new_stock, reason, notes, reference_number, movement_date, created_at`

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL
// (usable con pool o tx). Los movimientos son inmutables: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento con sus snapshots de stock.
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.MedicationID, mov.UserID, mov.Type, mov.Quantity,
		mov.PreviousStock, mov.NewStock, mov.Reason, mov.Notes, mov.ReferenceNumber,
		mov.MovementDate, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.MedicationID, &m.UserID, &m.Type, &m.Quantity,
		&m.PreviousStock, &m.NewStock, &m.Reason, &m.Notes, &m.ReferenceNumber,
		&m.MovementDate, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// List lista movimientos filtrados, más recientes primero. limit <= 0 = sin límite.
func (r *StockMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error) {
	where, args := movementConditions(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM stock_movements` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	query := `SELECT ` + movementColumns + ` FROM stock_movements` + where +
		` ORDER BY movement_date DESC, created_at DESC`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	list, err := scanMovements(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, rows.Err()
}

// ListRecent devuelve los últimos movimientos para el dashboard.
func (r *StockMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		ORDER BY movement_date DESC, created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()

	list, err := scanMovements(rows)
	if err != nil {
		return nil, err
	}
	return list, rows.Err()
}

func movementConditions(filter repository.MovementFilter) (string, []any) {
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
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("movement_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("movement_date <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.MedicationID, &m.UserID, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Reason, &m.Notes, &m.ReferenceNumber,
			&m.MovementDate, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, nil
}
