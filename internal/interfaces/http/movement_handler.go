package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/application/ledger"
	"github.com/jhoicas/FarmaStock-api/internal/domain"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP para movimientos de stock (protegido).
type MovementHandler struct {
	uc *ledger.StockLedgerUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.StockLedgerUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// insufficientStockResponse cuerpo del 409 por sobregiro: incluye el stock
// disponible para que el cliente muestre cuánto queda.
type insufficientStockResponse struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	CurrentStock int    `json:"current_stock"`
}

// Register godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Tags         stock-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente; incluye current_stock"
// @Router       /api/stock-movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RecordMovement(c.Context(), ledger.MovementInput{
		MedicationID:    in.MedicationID,
		UserID:          GetUserID(c),
		Type:            in.Type,
		Quantity:        in.Quantity,
		Reason:          in.Reason,
		Notes:           in.Notes,
		ReferenceNumber: in.ReferenceNumber,
		MovementDate:    in.MovementDate,
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusConflict).JSON(insufficientStockResponse{
				Code:         "INSUFFICIENT_STOCK",
				Message:      insufficient.Error(),
				CurrentStock: insufficient.CurrentStock,
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type incoming|outgoing, quantity >= 1, medication_id, reason y movement_date son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.ToStockMovementResponse(mov)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        medication_id  query  string  false  "Filtrar por medicamento"
// @Param        type           query  string  false  "incoming|outgoing"
// @Param        date_from      query  string  false  "RFC3339"
// @Param        date_to        query  string  false  "RFC3339"
// @Param        limit          query  int     false  "Límite"   default(20)
// @Param        offset         query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockMovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		MedicationID: c.Query("medication_id"),
		Type:         c.Query("type"),
	}
	var err error
	if filter.DateFrom, err = queryTime(c, "date_from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválido (RFC3339)"})
	}
	if filter.DateTo, err = queryTime(c, "date_to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválido (RFC3339)"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListMovements(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         stock-movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetMovement(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// queryTime parsea un query param RFC3339 opcional; nil si está ausente.
func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
