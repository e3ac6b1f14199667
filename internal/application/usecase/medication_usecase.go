package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/application/ledger"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// Historial reciente incluido en el detalle de un medicamento.
const detailRecentMovements = 20

// MedicationUseCase casos de uso CRUD para medicamentos. Crear y actualizar
// reconcilian alertas dentro de la misma transacción, así el estado derivado
// nunca queda desfasado de los campos almacenados.
type MedicationUseCase struct {
	txRunner   ledger.TxRunner
	medRepo    repository.MedicationRepository
	movRepo    repository.StockMovementRepository
	alertRepo  repository.StockAlertRepository
	reconciler *alerts.Reconciler
	now        func() time.Time
}

// NewMedicationUseCase construye el caso de uso.
func NewMedicationUseCase(
	txRunner ledger.TxRunner,
	medRepo repository.MedicationRepository,
	movRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
	reconciler *alerts.Reconciler,
	now func() time.Time,
) *MedicationUseCase {
	return &MedicationUseCase{
		txRunner:   txRunner,
		medRepo:    medRepo,
		movRepo:    movRepo,
		alertRepo:  alertRepo,
		reconciler: reconciler,
		now:        now,
	}
}

// Create crea un medicamento y reconcilia sus alertas (un medicamento puede
// nacer ya en stock bajo o vencido).
func (uc *MedicationUseCase) Create(ctx context.Context, actingUserID string, in dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	if in.Name == "" || in.DosageForm == "" || in.Strength == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinimumStock < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	med := &entity.Medication{
		ID:                uuid.New().String(),
		Name:              in.Name,
		GenericName:       in.GenericName,
		BrandName:         in.BrandName,
		DosageForm:        in.DosageForm,
		Strength:          in.Strength,
		Manufacturer:      in.Manufacturer,
		BatchNumber:       in.BatchNumber,
		ExpiryDate:        in.ExpiryDate,
		CurrentStock:      in.CurrentStock,
		MinimumStock:      in.MinimumStock,
		UnitPrice:         in.UnitPrice,
		StorageConditions: in.StorageConditions,
		Description:       in.Description,
		IsActive:          isActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicationRepository,
		_ repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		if err := medRepo.Create(med); err != nil {
			return err
		}
		return uc.reconciler.Reconcile(alertRepo, med, actingUserID, now)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToMedicationResponse(med, now)
	return &out, nil
}

// Update actualiza atributos del medicamento y reconcilia alertas.
// CurrentStock se aplica tal cual si el caller lo envía: edición directa del
// contador sin movimiento asociado (atajo heredado del formulario original).
func (uc *MedicationUseCase) Update(ctx context.Context, actingUserID, id string, in dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	if in.CurrentStock != nil && *in.CurrentStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinimumStock != nil && *in.MinimumStock < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	var updated *entity.Medication

	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicationRepository,
		_ repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		med, err := medRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}

		applyMedicationUpdate(med, in)
		med.UpdatedAt = now
		if err := medRepo.Update(med); err != nil {
			return err
		}
		if err := uc.reconciler.Reconcile(alertRepo, med, actingUserID, now); err != nil {
			return err
		}
		updated = med
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToMedicationResponse(updated, now)
	return &out, nil
}

// Get devuelve el medicamento con su historial reciente y alertas abiertas.
func (uc *MedicationUseCase) Get(id string) (*dto.MedicationDetailResponse, error) {
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	movements, _, err := uc.movRepo.List(repository.MovementFilter{MedicationID: id}, detailRecentMovements, 0)
	if err != nil {
		return nil, err
	}
	openAlerts, _, err := uc.alertRepo.List(repository.AlertFilter{
		MedicationID: id,
		Status:       repository.AlertStatusUnresolved,
	}, detailRecentMovements, 0)
	if err != nil {
		return nil, err
	}
	return &dto.MedicationDetailResponse{
		Medication: dto.ToMedicationResponse(med, uc.now()),
		Movements:  dto.ToStockMovementResponses(movements),
		Alerts:     dto.ToStockAlertResponses(openAlerts),
	}, nil
}

// List lista medicamentos con búsqueda y filtro de estado.
func (uc *MedicationUseCase) List(filter repository.MedicationFilter, limit, offset int) (*dto.MedicationListResponse, error) {
	now := uc.now()
	filter.Now = now
	list, total, err := uc.medRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.MedicationListResponse{
		Items: dto.ToMedicationResponses(list, now),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina el medicamento; movimientos y alertas caen en cascada.
func (uc *MedicationUseCase) Delete(id string) error {
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return err
	}
	if med == nil {
		return domain.ErrNotFound
	}
	return uc.medRepo.Delete(id)
}

// applyMedicationUpdate aplica los campos presentes del request sobre la entidad.
func applyMedicationUpdate(med *entity.Medication, in dto.UpdateMedicationRequest) {
	if in.Name != nil {
		med.Name = *in.Name
	}
	if in.GenericName != nil {
		med.GenericName = *in.GenericName
	}
	if in.BrandName != nil {
		med.BrandName = *in.BrandName
	}
	if in.DosageForm != nil {
		med.DosageForm = *in.DosageForm
	}
	if in.Strength != nil {
		med.Strength = *in.Strength
	}
	if in.Manufacturer != nil {
		med.Manufacturer = *in.Manufacturer
	}
	if in.BatchNumber != nil {
		med.BatchNumber = *in.BatchNumber
	}
	if in.ExpiryDate != nil {
		med.ExpiryDate = in.ExpiryDate
	}
	if in.ClearExpiryDate {
		med.ExpiryDate = nil
	}
	if in.CurrentStock != nil {
		med.CurrentStock = *in.CurrentStock
	}
	if in.MinimumStock != nil {
		med.MinimumStock = *in.MinimumStock
	}
	if in.UnitPrice != nil {
		med.UnitPrice = *in.UnitPrice
	}
	if in.StorageConditions != nil {
		med.StorageConditions = *in.StorageConditions
	}
	if in.Description != nil {
		med.Description = *in.Description
	}
	if in.IsActive != nil {
		med.IsActive = *in.IsActive
	}
}
