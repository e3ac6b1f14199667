package repository

import (
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

// Estados de filtro para el listado de alertas.
const (
	AlertStatusUnread     = "unread"
	AlertStatusUnresolved = "unresolved"
	AlertStatusResolved   = "resolved"
)

// AlertFilter filtros para listar alertas.
type AlertFilter struct {
	MedicationID string
	Type         string // low_stock, expired, expiring_soon, "" = todos
	Status       string // unread, unresolved, resolved, "" = todas
}

// StockAlertRepository define el puerto de persistencia para alertas de stock.
// GetByID y GetUnresolved devuelven (nil, nil) si no hay fila.
type StockAlertRepository interface {
	Create(alert *entity.StockAlert) error
	GetByID(id string) (*entity.StockAlert, error)
	// GetUnresolved busca la alerta abierta de un (medicamento, tipo).
	// Soporta la semántica find-or-create del reconciliador.
	GetUnresolved(medicationID, alertType string) (*entity.StockAlert, error)
	MarkRead(id string, updatedAt time.Time) error
	// Resolve marca la alerta como resuelta. resolvedBy puede ser vacío
	// (resolución automática sin usuario).
	Resolve(id string, resolvedAt time.Time, resolvedBy string) error
	// List devuelve alertas ordenadas por created_at descendente.
	List(filter AlertFilter, limit, offset int) ([]*entity.StockAlert, int, error)
	ListUnresolved(limit int) ([]*entity.StockAlert, error)
}
