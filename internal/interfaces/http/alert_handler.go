package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FarmaStock-api/internal/application/alerts"
	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// AlertHandler maneja las peticiones HTTP para alertas de stock (protegido).
type AlertHandler struct {
	uc *alerts.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        medication_id  query  string  false  "Filtrar por medicamento"
// @Param        type           query  string  false  "low_stock|expired|expiring_soon"
// @Param        status         query  string  false  "unread|unresolved|resolved"
// @Param        limit          query  int     false  "Límite"   default(20)
// @Param        offset         query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockAlertListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	filter := repository.AlertFilter{
		MedicationID: c.Query("medication_id"),
		Type:         c.Query("type"),
		Status:       c.Query("status"),
	}
	switch filter.Type {
	case "", entity.AlertTypeLowStock, entity.AlertTypeExpired, entity.AlertTypeExpiringSoon:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type desconocido"})
	}
	switch filter.Status {
	case "", repository.AlertStatusUnread, repository.AlertStatusUnresolved, repository.AlertStatusResolved:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconocido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar alerta como leída
// @Tags         alerts
// @Security     Bearer
// @Param        id   path  string  true  "ID de la alerta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/read [patch]
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkRead(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Resolve godoc
// @Summary      Resolver alerta manualmente
// @Tags         alerts
// @Security     Bearer
// @Param        id   path  string  true  "ID de la alerta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Ya estaba resuelta"
// @Router       /api/alerts/{id}/resolve [patch]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Resolve(id, GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RESOLVED", Message: "la alerta ya estaba resuelta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
