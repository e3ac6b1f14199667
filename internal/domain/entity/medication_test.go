package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

func medWithExpiry(expiry *time.Time) *entity.Medication {
	return &entity.Medication{
		ID:           "med-1",
		Name:         "Amoxicilina",
		CurrentStock: 50,
		MinimumStock: 10,
		ExpiryDate:   expiry,
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

// ──────────────────────────────────────────────────────────────────────────────
// IsLowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name    string
		current int
		minimum int
		want    bool
	}{
		{"por encima del mínimo", 11, 10, false},
		{"exactamente en el mínimo", 10, 10, true},
		{"por debajo del mínimo", 9, 10, true},
		{"stock cero", 0, 10, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			med := &entity.Medication{CurrentStock: tc.current, MinimumStock: tc.minimum}
			assert.Equal(t, tc.want, med.IsLowStock())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// IsExpired / IsExpiringSoon — bordes de la ventana de 30 días
// ──────────────────────────────────────────────────────────────────────────────

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("sin fecha de vencimiento nunca vence", func(t *testing.T) {
		med := medWithExpiry(nil)
		assert.False(t, med.IsExpired(now))
	})

	t.Run("vencido un segundo atrás", func(t *testing.T) {
		med := medWithExpiry(ptrTime(now.Add(-time.Second)))
		assert.True(t, med.IsExpired(now))
	})

	t.Run("vence exactamente ahora no cuenta como vencido", func(t *testing.T) {
		med := medWithExpiry(ptrTime(now))
		assert.False(t, med.IsExpired(now))
	})

	t.Run("vence mañana", func(t *testing.T) {
		med := medWithExpiry(ptrTime(now.AddDate(0, 0, 1)))
		assert.False(t, med.IsExpired(now))
	})
}

func TestIsExpiringSoon(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("sin fecha de vencimiento", func(t *testing.T) {
		med := medWithExpiry(nil)
		assert.False(t, med.IsExpiringSoon(now))
	})

	t.Run("exactamente a 30 días está dentro de la ventana", func(t *testing.T) {
		med := medWithExpiry(ptrTime(now.Add(entity.ExpiringSoonWindow)))
		assert.True(t, med.IsExpiringSoon(now))
	})

	t.Run("un segundo después de 30 días queda fuera", func(t *testing.T) {
		med := medWithExpiry(ptrTime(now.Add(entity.ExpiringSoonWindow + time.Second)))
		assert.False(t, med.IsExpiringSoon(now))
	})

	t.Run("vencido no es por vencer", func(t *testing.T) {
		// Estados mutuamente excluyentes: vencido nunca reporta expiring_soon.
		med := medWithExpiry(ptrTime(now.Add(-time.Second)))
		assert.True(t, med.IsExpired(now))
		assert.False(t, med.IsExpiringSoon(now))
	})

	t.Run("vence mañana", func(t *testing.T) {
		med := medWithExpiry(ptrTime(now.AddDate(0, 0, 1)))
		assert.True(t, med.IsExpiringSoon(now))
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// StockValue
// ──────────────────────────────────────────────────────────────────────────────

func TestStockValue(t *testing.T) {
	med := &entity.Medication{
		CurrentStock: 3,
		UnitPrice:    decimal.RequireFromString("12.50"),
	}
	assert.True(t, decimal.RequireFromString("37.50").Equal(med.StockValue()),
		"valor = stock * precio unitario")
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeIncoming))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeOutgoing))
	assert.False(t, entity.ValidMovementType("transfer"))
	assert.False(t, entity.ValidMovementType(""))
}
