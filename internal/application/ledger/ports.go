package ledger

import (
	"context"

	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del ledger: movimiento,
// contador de stock y alertas se aplican todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medRepo repository.MedicationRepository,
		movRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error) error
}
