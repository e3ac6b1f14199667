package alerts

import (
	"time"

	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// AlertUseCase gestión manual de alertas: listar, marcar leída, resolver.
// La creación y resolución automática viven en el Reconciler.
type AlertUseCase struct {
	repo repository.StockAlertRepository
	now  func() time.Time
}

// NewAlertUseCase construye el caso de uso. now se inyecta para mantener el
// reloj explícito (time.Now en producción, fijo en tests).
func NewAlertUseCase(repo repository.StockAlertRepository, now func() time.Time) *AlertUseCase {
	return &AlertUseCase{repo: repo, now: now}
}

// List lista alertas con filtros de tipo y estado.
func (uc *AlertUseCase) List(filter repository.AlertFilter, limit, offset int) (*dto.StockAlertListResponse, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.StockAlertListResponse{
		Items: dto.ToStockAlertResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// MarkRead marca la alerta como leída. Cambio de estado puro, sin efectos en cascada.
func (uc *AlertUseCase) MarkRead(alertID string) error {
	alert, err := uc.repo.GetByID(alertID)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	return uc.repo.MarkRead(alertID, uc.now())
}

// Resolve resuelve la alerta manualmente, aunque la condición siga vigente.
// Override explícito: si la condición persiste, la próxima reconciliación
// creará una alerta nueva en lugar de revivir esta fila.
func (uc *AlertUseCase) Resolve(alertID, actingUserID string) error {
	alert, err := uc.repo.GetByID(alertID)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	if alert.IsResolved {
		return domain.ErrConflict
	}
	return uc.repo.Resolve(alertID, uc.now(), actingUserID)
}
