package repository

import (
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

// Estados de filtro para el listado de medicamentos.
const (
	MedicationStatusActive       = "active"
	MedicationStatusInactive     = "inactive"
	MedicationStatusLowStock     = "low_stock"
	MedicationStatusExpired      = "expired"
	MedicationStatusExpiringSoon = "expiring_soon"
)

// MedicationFilter filtros para listar medicamentos.
// Now se usa para los filtros derivados de fecha (expired/expiring_soon).
type MedicationFilter struct {
	Search string // busca en name, generic_name y brand_name
	Status string // "" = todos
	Now    time.Time
}

// MedicationRepository define el puerto de persistencia para Medication (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el medicamento no existe.
type MedicationRepository interface {
	Create(med *entity.Medication) error
	GetByID(id string) (*entity.Medication, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de una tx.
	GetForUpdate(id string) (*entity.Medication, error)
	Update(med *entity.Medication) error
	// UpdateStock actualiza solo el contador current_stock (usado por el ledger).
	UpdateStock(id string, newStock int, updatedAt time.Time) error
	List(filter MedicationFilter, limit, offset int) ([]*entity.Medication, int, error)
	// Delete elimina el medicamento; movimientos y alertas caen en cascada (FK).
	Delete(id string) error
}
