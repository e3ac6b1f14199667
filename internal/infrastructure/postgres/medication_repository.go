package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

var _ repository.MedicationRepository = (*MedicationRepo)(nil)

const medicationColumns = `id, name, generic_name, brand_name, dosage_form, strength,
	manufacturer, batch_number, expiry_date, current_stock, minimum_stock, unit_price,
	storage_conditions, description, is_active, created_at, updated_at`

// MedicationRepo implementación de MedicationRepository sobre PostgreSQL
// (usable con pool o tx).
type MedicationRepo struct {
	q Querier
}

// NewMedicationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicationRepository(q Querier) *MedicationRepo {
	return &MedicationRepo{q: q}
}

// Create persiste un nuevo medicamento.
func (r *MedicationRepo) Create(med *entity.Medication) error {
	query := `
		INSERT INTO medications (` + medicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		med.ID, med.Name, med.GenericName, med.BrandName, med.DosageForm, med.Strength,
		med.Manufacturer, med.BatchNumber, med.ExpiryDate, med.CurrentStock, med.MinimumStock,
		med.UnitPrice, med.StorageConditions, med.Description, med.IsActive,
		med.CreatedAt, med.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID. Devuelve (nil, nil) si no existe.
func (r *MedicationRepo) GetByID(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1`
	med, err := scanMedicationRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return med, nil
}

// GetForUpdate obtiene el medicamento y bloquea su fila (SELECT FOR UPDATE).
// Serializa los movimientos concurrentes sobre el mismo medicamento.
func (r *MedicationRepo) GetForUpdate(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1 FOR UPDATE`
	med, err := scanMedicationRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get medication for update: %w", err)
	}
	return med, nil
}

// Update actualiza los atributos del medicamento (incluido current_stock si el
// caso de uso lo permitió).
func (r *MedicationRepo) Update(med *entity.Medication) error {
	query := `
		UPDATE medications SET name = $2, generic_name = $3, brand_name = $4,
			dosage_form = $5, strength = $6, manufacturer = $7, batch_number = $8,
			expiry_date = $9, current_stock = $10, minimum_stock = $11, unit_price = $12,
			storage_conditions = $13, description = $14, is_active = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		med.ID, med.Name, med.GenericName, med.BrandName, med.DosageForm, med.Strength,
		med.Manufacturer, med.BatchNumber, med.ExpiryDate, med.CurrentStock, med.MinimumStock,
		med.UnitPrice, med.StorageConditions, med.Description, med.IsActive, med.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medication: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el contador de stock (usado por el ledger dentro de la tx).
func (r *MedicationRepo) UpdateStock(id string, newStock int, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE medications SET current_stock = $2, updated_at = $3 WHERE id = $1`,
		id, newStock, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medication stock: %w", err)
	}
	return nil
}

// List lista medicamentos con búsqueda y filtro de estado. limit <= 0 = sin límite.
func (r *MedicationRepo) List(filter repository.MedicationFilter, limit, offset int) ([]*entity.Medication, int, error) {
	where, args := medicationConditions(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM medications` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medications: %w", err)
	}

	query := `SELECT ` + medicationColumns + ` FROM medications` + where + ` ORDER BY name`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	list, err := scanMedications(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, rows.Err()
}

// Delete elimina el medicamento; movimientos y alertas caen en cascada (FK).
func (r *MedicationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}

// medicationConditions arma el WHERE dinámico del listado.
func medicationConditions(filter repository.MedicationFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		conds = append(conds, "(name ILIKE "+p+" OR generic_name ILIKE "+p+" OR brand_name ILIKE "+p+")")
	}
	switch filter.Status {
	case repository.MedicationStatusActive:
		conds = append(conds, "is_active = true")
	case repository.MedicationStatusInactive:
		conds = append(conds, "is_active = false")
	case repository.MedicationStatusLowStock:
		conds = append(conds, "current_stock <= minimum_stock")
	case repository.MedicationStatusExpired:
		args = append(args, filter.Now)
		conds = append(conds, fmt.Sprintf("expiry_date IS NOT NULL AND expiry_date < $%d", len(args)))
	case repository.MedicationStatusExpiringSoon:
		args = append(args, filter.Now, filter.Now.Add(entity.ExpiringSoonWindow))
		conds = append(conds, fmt.Sprintf(
			"expiry_date IS NOT NULL AND expiry_date >= $%d AND expiry_date <= $%d",
			len(args)-1, len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanMedicationRow escanea una fila; (nil, nil) si no hay filas.
func scanMedicationRow(row pgx.Row) (*entity.Medication, error) {
	var m entity.Medication
	err := row.Scan(
		&m.ID, &m.Name, &m.GenericName, &m.BrandName, &m.DosageForm, &m.Strength,
		&m.Manufacturer, &m.BatchNumber, &m.ExpiryDate, &m.CurrentStock, &m.MinimumStock,
		&m.UnitPrice, &m.StorageConditions, &m.Description, &m.IsActive,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// scanMedications escanea todas las filas de un SELECT de medicamentos.
func scanMedications(rows pgx.Rows) ([]*entity.Medication, error) {
	var list []*entity.Medication
	for rows.Next() {
		var m entity.Medication
		if err := rows.Scan(
			&m.ID, &m.Name, &m.GenericName, &m.BrandName, &m.DosageForm, &m.Strength,
			&m.Manufacturer, &m.BatchNumber, &m.ExpiryDate, &m.CurrentStock, &m.MinimumStock,
			&m.UnitPrice, &m.StorageConditions, &m.Description, &m.IsActive,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		list = append(list, &m)
	}
	return list, nil
}
