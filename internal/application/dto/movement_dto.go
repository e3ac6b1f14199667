package dto

import "time"

// RegisterMovementRequest body para POST /api/stock-movements.
type RegisterMovementRequest struct {
	MedicationID    string    `json:"medication_id"`
	Type            string    `json:"type"` // incoming, outgoing
	Quantity        int       `json:"quantity"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes,omitempty"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	MovementDate    time.Time `json:"movement_date"`
}

// StockMovementResponse salida de un movimiento de stock.
type StockMovementResponse struct {
	ID              string    `json:"id"`
	MedicationID    string    `json:"medication_id"`
	UserID          string    `json:"user_id"`
	Type            string    `json:"type"`
	Quantity        int       `json:"quantity"`
	PreviousStock   int       `json:"previous_stock"`
	NewStock        int       `json:"new_stock"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes,omitempty"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	MovementDate    time.Time `json:"movement_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// StockMovementListResponse lista paginada de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
