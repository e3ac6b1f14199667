package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// StockLedgerUseCase es la única autoridad para mutar current_stock y registrar
// el porqué. Cada movimiento corre en una transacción con bloqueo de fila
// (SELECT FOR UPDATE) sobre el medicamento: dos salidas concurrentes contra el
// mismo stock no pueden ambas pasar la verificación de no-negatividad.
type StockLedgerUseCase struct {
	txRunner   TxRunner
	movRepo    repository.StockMovementRepository
	reconciler *alerts.Reconciler
	now        func() time.Time
}

// NewStockLedgerUseCase construye el caso de uso. movRepo se usa solo para
// lecturas fuera de transacción; now se inyecta para mantener el reloj explícito.
func NewStockLedgerUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	reconciler *alerts.Reconciler,
	now func() time.Time,
) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner:   txRunner,
		movRepo:    movRepo,
		reconciler: reconciler,
		now:        now,
	}
}

// MovementInput entrada para registrar un movimiento de stock.
// UserID es el usuario que ejecuta la operación; lo aporta el caller (nunca se
// lee identidad ambiente dentro del caso de uso).
type MovementInput struct {
	MedicationID    string
	UserID          string
	Type            string // incoming, outgoing
	Quantity        int
	Reason          string
	Notes           string
	ReferenceNumber string
	MovementDate    time.Time
}

// RecordMovement registra un movimiento: valida la entrada, bloquea la fila del
// medicamento, calcula el nuevo stock, rechaza sobregiros, persiste snapshot y
// contador, y reconcilia alertas dentro de una sola transacción.
//
// Si el nuevo stock quedaría negativo devuelve *domain.InsufficientStockError
// con el stock disponible, sin escribir nada.
func (uc *StockLedgerUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if input.MedicationID == "" || input.UserID == "" || input.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.MovementDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	var created *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicationRepository,
		movRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		// Bloquea la fila del medicamento (SELECT FOR UPDATE): serializa los
		// movimientos concurrentes sobre el mismo medicamento.
		med, err := medRepo.GetForUpdate(input.MedicationID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}

		previousStock := med.CurrentStock
		newStock := previousStock + input.Quantity
		if input.Type == entity.MovementTypeOutgoing {
			newStock = previousStock - input.Quantity
		}
		if newStock < 0 {
			return &domain.InsufficientStockError{CurrentStock: previousStock}
		}

		mov := &entity.StockMovement{
			ID:              uuid.New().String(),
			MedicationID:    input.MedicationID,
			UserID:          input.UserID,
			Type:            input.Type,
			Quantity:        input.Quantity,
			PreviousStock:   previousStock,
			NewStock:        newStock,
			Reason:          input.Reason,
			Notes:           input.Notes,
			ReferenceNumber: input.ReferenceNumber,
			MovementDate:    input.MovementDate,
			CreatedAt:       now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := medRepo.UpdateStock(med.ID, newStock, now); err != nil {
			return err
		}

		med.CurrentStock = newStock
		med.UpdatedAt = now
		if err := uc.reconciler.Reconcile(alertRepo, med, input.UserID, now); err != nil {
			return err
		}

		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMovements lista movimientos con filtros (medicamento, tipo, rango de fechas).
func (uc *StockLedgerUseCase) ListMovements(filter repository.MovementFilter, limit, offset int) (*dto.StockMovementListResponse, error) {
	list, total, err := uc.movRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.StockMovementListResponse{
		Items: dto.ToStockMovementResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// GetMovement obtiene un movimiento por ID.
func (uc *StockLedgerUseCase) GetMovement(id string) (*dto.StockMovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToStockMovementResponse(mov)
	return &out, nil
}
