package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIncoming = "incoming" // entrada
	MovementTypeOutgoing = "outgoing" // salida
)

// ValidMovementType valida el tipo de movimiento.
func ValidMovementType(t string) bool {
	return t == MovementTypeIncoming || t == MovementTypeOutgoing
}

// StockMovement representa un movimiento de stock de un medicamento.
// Inmutable una vez creado: el core nunca lo actualiza ni lo borra.
// PreviousStock y NewStock son snapshots del contador al momento del movimiento.
type StockMovement struct {
	ID              string
	MedicationID    string
	UserID          string // usuario que registró el movimiento
	Type            string // incoming, outgoing
	Quantity        int    // siempre positivo; el tipo define el signo
	PreviousStock   int
	NewStock        int
	Reason          string // obligatorio: compra, venta, vencido, dañado, etc.
	Notes           string
	ReferenceNumber string // factura, orden de compra, etc.
	MovementDate    time.Time
	CreatedAt       time.Time
}
