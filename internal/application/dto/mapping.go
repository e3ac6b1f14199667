package dto

import (
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

// ToMedicationResponse mapea la entidad calculando los derivados con el now recibido.
func ToMedicationResponse(m *entity.Medication, now time.Time) MedicationResponse {
	return MedicationResponse{
		ID:                m.ID,
		Name:              m.Name,
		GenericName:       m.GenericName,
		BrandName:         m.BrandName,
		DosageForm:        m.DosageForm,
		Strength:          m.Strength,
		Manufacturer:      m.Manufacturer,
		BatchNumber:       m.BatchNumber,
		ExpiryDate:        m.ExpiryDate,
		CurrentStock:      m.CurrentStock,
		MinimumStock:      m.MinimumStock,
		UnitPrice:         m.UnitPrice,
		StorageConditions: m.StorageConditions,
		Description:       m.Description,
		IsActive:          m.IsActive,
		IsLowStock:        m.IsLowStock(),
		IsExpired:         m.IsExpired(now),
		IsExpiringSoon:    m.IsExpiringSoon(now),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToMedicationResponses mapea un slice de entidades.
func ToMedicationResponses(list []*entity.Medication, now time.Time) []MedicationResponse {
	items := make([]MedicationResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMedicationResponse(m, now))
	}
	return items
}

// ToStockMovementResponse mapea un movimiento.
func ToStockMovementResponse(mov *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:              mov.ID,
		MedicationID:    mov.MedicationID,
		UserID:          mov.UserID,
		Type:            mov.Type,
		Quantity:        mov.Quantity,
		PreviousStock:   mov.PreviousStock,
		NewStock:        mov.NewStock,
		Reason:          mov.Reason,
		Notes:           mov.Notes,
		ReferenceNumber: mov.ReferenceNumber,
		MovementDate:    mov.MovementDate,
		CreatedAt:       mov.CreatedAt,
	}
}

// ToStockMovementResponses mapea un slice de movimientos.
func ToStockMovementResponses(list []*entity.StockMovement) []StockMovementResponse {
	items := make([]StockMovementResponse, 0, len(list))
	for _, mov := range list {
		items = append(items, ToStockMovementResponse(mov))
	}
	return items
}

// ToStockAlertResponse mapea una alerta.
func ToStockAlertResponse(a *entity.StockAlert) StockAlertResponse {
	return StockAlertResponse{
		ID:           a.ID,
		MedicationID: a.MedicationID,
		Type:         a.Type,
		Message:      a.Message,
		IsRead:       a.IsRead,
		IsResolved:   a.IsResolved,
		ResolvedAt:   a.ResolvedAt,
		ResolvedBy:   a.ResolvedBy,
		CreatedAt:    a.CreatedAt,
	}
}

// ToStockAlertResponses mapea un slice de alertas.
func ToStockAlertResponses(list []*entity.StockAlert) []StockAlertResponse {
	items := make([]StockAlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, ToStockAlertResponse(a))
	}
	return items
}
