package dto

import "time"

// StockAlertResponse salida de una alerta de stock.
type StockAlertResponse struct {
	ID           string     `json:"id"`
	MedicationID string     `json:"medication_id"`
	Type         string     `json:"type"`
	Message      string     `json:"message"`
	IsRead       bool       `json:"is_read"`
	IsResolved   bool       `json:"is_resolved"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy   string     `json:"resolved_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// StockAlertListResponse lista paginada de alertas.
type StockAlertListResponse struct {
	Items []StockAlertResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
