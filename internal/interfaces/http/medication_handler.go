package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/application/usecase"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// MedicationHandler maneja las peticiones HTTP para Medication (protegido).
type MedicationHandler struct {
	uc *usecase.MedicationUseCase
}

// NewMedicationHandler construye el handler.
func NewMedicationHandler(uc *usecase.MedicationUseCase) *MedicationHandler {
	return &MedicationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear medicamento
// @Tags         medications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicationRequest  true  "Datos del medicamento"
// @Success      201   {object}  dto.MedicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/medications [post]
func (h *MedicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, dosage_form y strength son requeridos; minimum_stock >= 1"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "medicamento duplicado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener medicamento con historial reciente y alertas abiertas
// @Tags         medications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.MedicationDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{id} [get]
func (h *MedicationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar medicamentos
// @Tags         medications
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en name, generic_name y brand_name"
// @Param        status  query  string  false  "active|inactive|low_stock|expired|expiring_soon"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MedicationListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/medications [get]
func (h *MedicationHandler) List(c *fiber.Ctx) error {
	filter := repository.MedicationFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	switch filter.Status {
	case "", repository.MedicationStatusActive, repository.MedicationStatusInactive,
		repository.MedicationStatusLowStock, repository.MedicationStatusExpired,
		repository.MedicationStatusExpiringSoon:
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

// Update godoc
// @Summary      Actualizar medicamento
// @Tags         medications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del medicamento"
// @Param        body  body  dto.UpdateMedicationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MedicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medications/{id} [put]
func (h *MedicationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar medicamento (movimientos y alertas caen en cascada)
// @Tags         medications
// @Security     Bearer
// @Param        id   path  string  true  "ID del medicamento"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{id} [delete]
func (h *MedicationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lee limit/offset con los mismos topes en todos los listados.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	return page.Limit, page.Offset
}
