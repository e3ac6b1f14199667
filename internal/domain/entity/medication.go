package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ventana de alerta de vencimiento próximo.
const ExpiringSoonWindow = 30 * 24 * time.Hour

// Medication representa un medicamento del inventario de la farmacia.
// CurrentStock solo lo muta el motor de movimientos (ledger); la edición directa
// vía formulario existe pero no deja rastro en el historial de movimientos.
type Medication struct {
	ID                string
	Name              string
	GenericName       string
	BrandName         string
	DosageForm        string // tableta, jarabe, cápsula, etc.
	Strength          string // 500mg, 5ml, etc.
	Manufacturer      string
	BatchNumber       string
	ExpiryDate        *time.Time
	CurrentStock      int
	MinimumStock      int
	UnitPrice         decimal.Decimal
	StorageConditions string
	Description       string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
// Derivado: se calcula siempre sobre los campos almacenados, nunca se persiste.
func (m *Medication) IsLowStock() bool {
	return m.CurrentStock <= m.MinimumStock
}

// IsExpired indica si el medicamento ya venció (fecha estrictamente en el pasado).
func (m *Medication) IsExpired(now time.Time) bool {
	return m.ExpiryDate != nil && m.ExpiryDate.Before(now)
}

// IsExpiringSoon indica si vence dentro de los próximos 30 días.
// Un medicamento ya vencido no cuenta como "por vencer".
func (m *Medication) IsExpiringSoon(now time.Time) bool {
	if m.ExpiryDate == nil || m.ExpiryDate.Before(now) {
		return false
	}
	return !m.ExpiryDate.After(now.Add(ExpiringSoonWindow))
}

// StockValue devuelve el valor del stock a precio unitario (CurrentStock * UnitPrice).
func (m *Medication) StockValue() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(int64(m.CurrentStock)))
}
