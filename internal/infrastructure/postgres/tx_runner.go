package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/FarmaStock-api/internal/application/ledger"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit
// o Rollback. Es la frontera de atomicidad del ledger: movimiento, contador y
// alertas se confirman juntos o no se confirma ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	medRepo repository.MedicationRepository,
	movRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	medRepo := NewMedicationRepository(tx)
	movRepo := NewStockMovementRepository(tx)
	alertRepo := NewStockAlertRepository(tx)

	if err := fn(medRepo, movRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
