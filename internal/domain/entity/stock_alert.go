package entity

import "time"

// Tipos de alerta de stock.
const (
	AlertTypeLowStock     = "low_stock"
	AlertTypeExpired      = "expired"
	AlertTypeExpiringSoon = "expiring_soon"
)

// AlertTypes lista los tipos en el orden en que los evalúa el reconciliador.
var AlertTypes = []string{AlertTypeLowStock, AlertTypeExpired, AlertTypeExpiringSoon}

// StockAlert representa una alerta derivada del estado de un medicamento.
// Invariante: a lo sumo una alerta sin resolver por (medicamento, tipo); el
// historial de alertas resueltas del mismo par puede acumularse libremente.
type StockAlert struct {
	ID           string
	MedicationID string
	Type         string // low_stock, expired, expiring_soon
	Message      string
	IsRead       bool
	IsResolved   bool
	ResolvedAt   *time.Time
	ResolvedBy   string // UserID; vacío si se resolvió automáticamente sin usuario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
