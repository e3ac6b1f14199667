package repository

import (
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	MedicationID string
	Type         string // incoming, outgoing, "" = todos
	DateFrom     *time.Time
	DateTo       *time.Time
}

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
// Los movimientos son inmutables: solo Create y lecturas.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve movimientos ordenados por movement_date descendente.
	List(filter MovementFilter, limit, offset int) ([]*entity.StockMovement, int, error)
	ListRecent(limit int) ([]*entity.StockMovement, error)
}
