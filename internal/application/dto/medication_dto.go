package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMedicationRequest entrada para crear un medicamento.
type CreateMedicationRequest struct {
	Name              string          `json:"name"`
	GenericName       string          `json:"generic_name"`
	BrandName         string          `json:"brand_name"`
	DosageForm        string          `json:"dosage_form"`
	Strength          string          `json:"strength"`
	Manufacturer      string          `json:"manufacturer"`
	BatchNumber       string          `json:"batch_number"`
	ExpiryDate        *time.Time      `json:"expiry_date"`
	CurrentStock      int             `json:"current_stock"`
	MinimumStock      int             `json:"minimum_stock"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	StorageConditions string          `json:"storage_conditions"`
	Description       string          `json:"description"`
	IsActive          *bool           `json:"is_active"`
}

// UpdateMedicationRequest entrada para actualizar un medicamento (campos opcionales).
// CurrentStock edita el contador sin pasar por el ledger: atajo heredado del
// formulario original, sin rastro en el historial de movimientos.
type UpdateMedicationRequest struct {
	Name              *string          `json:"name"`
	GenericName       *string          `json:"generic_name"`
	BrandName         *string          `json:"brand_name"`
	DosageForm        *string          `json:"dosage_form"`
	Strength          *string          `json:"strength"`
	Manufacturer      *string          `json:"manufacturer"`
	BatchNumber       *string          `json:"batch_number"`
	ExpiryDate        *time.Time       `json:"expiry_date"`
	ClearExpiryDate   bool             `json:"clear_expiry_date"`
	CurrentStock      *int             `json:"current_stock"`
	MinimumStock      *int             `json:"minimum_stock"`
	UnitPrice         *decimal.Decimal `json:"unit_price"`
	StorageConditions *string          `json:"storage_conditions"`
	Description       *string          `json:"description"`
	IsActive          *bool            `json:"is_active"`
}

// MedicationResponse salida de un medicamento, con los atributos derivados
// calculados al momento de la respuesta (nunca persistidos).
type MedicationResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	GenericName       string          `json:"generic_name,omitempty"`
	BrandName         string          `json:"brand_name,omitempty"`
	DosageForm        string          `json:"dosage_form"`
	Strength          string          `json:"strength"`
	Manufacturer      string          `json:"manufacturer,omitempty"`
	BatchNumber       string          `json:"batch_number,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	CurrentStock      int             `json:"current_stock"`
	MinimumStock      int             `json:"minimum_stock"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	StorageConditions string          `json:"storage_conditions,omitempty"`
	Description       string          `json:"description,omitempty"`
	IsActive          bool            `json:"is_active"`
	IsLowStock        bool            `json:"is_low_stock"`
	IsExpired         bool            `json:"is_expired"`
	IsExpiringSoon    bool            `json:"is_expiring_soon"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// MedicationListResponse lista paginada de medicamentos.
type MedicationListResponse struct {
	Items []MedicationResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// MedicationDetailResponse medicamento con su historial reciente y alertas abiertas.
type MedicationDetailResponse struct {
	Medication MedicationResponse      `json:"medication"`
	Movements  []StockMovementResponse `json:"movements"`
	Alerts     []StockAlertResponse    `json:"alerts"`
}
