package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// Reconciler mantiene las alertas abiertas en sincronía con el estado derivado
// del medicamento. Cada tipo (low_stock, expired, expiring_soon) se evalúa de
// forma independiente: un medicamento puede tener varias alertas abiertas a la vez.
//
// Semántica find-or-create: a lo sumo una alerta sin resolver por (medicamento, tipo);
// el historial de alertas resueltas se acumula sin restricción.
type Reconciler struct{}

// NewReconciler construye el reconciliador.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile compara el estado derivado contra las alertas abiertas y crea o
// resuelve según corresponda. Idempotente: dos llamadas seguidas sin cambios de
// estado no producen filas nuevas ni resoluciones adicionales.
//
// La resolución automática es simétrica para los tres tipos: apenas la condición
// deja de cumplirse, la alerta abierta se resuelve con resolvedBy = actingUserID
// (vacío si la operación no tiene usuario asociado).
//
// Se invoca con los repos de la transacción en curso: sus escrituras comparten
// la atomicidad de la operación que disparó la reconciliación.
func (r *Reconciler) Reconcile(
	repo repository.StockAlertRepository,
	med *entity.Medication,
	actingUserID string,
	now time.Time,
) error {
	for _, alertType := range entity.AlertTypes {
		breach := breached(alertType, med, now)
		open, err := repo.GetUnresolved(med.ID, alertType)
		if err != nil {
			return fmt.Errorf("buscar alerta abierta %s: %w", alertType, err)
		}
		switch {
		case breach && open == nil:
			alert := &entity.StockAlert{
				ID:           uuid.New().String(),
				MedicationID: med.ID,
				Type:         alertType,
				Message:      alertMessage(alertType, med),
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := repo.Create(alert); err != nil {
				return fmt.Errorf("crear alerta %s: %w", alertType, err)
			}
		case !breach && open != nil:
			if err := repo.Resolve(open.ID, now, actingUserID); err != nil {
				return fmt.Errorf("resolver alerta %s: %w", alertType, err)
			}
		}
		// breach con alerta abierta: no-op (no duplica ni reescribe el mensaje).
	}
	return nil
}

// breached evalúa la condición del tipo de alerta sobre el estado actual.
func breached(alertType string, med *entity.Medication, now time.Time) bool {
	switch alertType {
	case entity.AlertTypeLowStock:
		return med.IsLowStock()
	case entity.AlertTypeExpired:
		return med.IsExpired(now)
	case entity.AlertTypeExpiringSoon:
		return med.IsExpiringSoon(now)
	}
	return false
}

// alertMessage arma el mensaje legible de la alerta con los datos del medicamento.
func alertMessage(alertType string, med *entity.Medication) string {
	switch alertType {
	case entity.AlertTypeLowStock:
		return fmt.Sprintf("Stock de %s bajo (%d restantes, mínimo %d)",
			med.Name, med.CurrentStock, med.MinimumStock)
	case entity.AlertTypeExpired:
		return fmt.Sprintf("%s venció el %s", med.Name, med.ExpiryDate.Format("02/01/2006"))
	case entity.AlertTypeExpiringSoon:
		return fmt.Sprintf("%s vence el %s", med.Name, med.ExpiryDate.Format("02/01/2006"))
	}
	return ""
}
