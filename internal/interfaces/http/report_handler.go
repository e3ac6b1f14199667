package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FarmaStock-api/internal/application/dto"
	"github.com/jhoicas/FarmaStock-api/internal/application/reports"
	"github.com/jhoicas/FarmaStock-api/internal/domain/repository"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockSummary godoc
// @Summary      Reporte de resumen de stock (activos, con totales globales)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en name, generic_name y brand_name"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockSummaryReportDTO
// @Router       /api/reports/stock-summary [get]
func (h *ReportHandler) StockSummary(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.StockSummary(c.Context(), c.Query("search"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockSummaryPDF godoc
// @Summary      Exportar el resumen de stock como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock-summary/pdf [get]
func (h *ReportHandler) StockSummaryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.StockSummaryPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-stock.pdf"`)
	c.Set(fiber.HeaderContentLength, fmt.Sprintf("%d", len(pdfBytes)))
	return c.Send(pdfBytes)
}

// Movements godoc
// @Summary      Reporte de movimientos con totales por tipo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        medication_id  query  string  false  "Filtrar por medicamento"
// @Param        type           query  string  false  "incoming|outgoing"
// @Param        date_from      query  string  false  "RFC3339"
// @Param        date_to        query  string  false  "RFC3339"
// @Param        limit          query  int     false  "Límite"   default(20)
// @Param        offset         query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementsReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
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
	out, err := h.uc.MovementsReport(c.Context(), filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Reporte de medicamentos en o por debajo del stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite (0 = todos)"  default(0)
// @Success      200  {object}  dto.LowStockReportDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	out, err := h.uc.LowStockReport(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Expiry godoc
// @Summary      Reporte de vencidos y por vencer (30 días)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpiryReportDTO
// @Router       /api/reports/expiry [get]
func (h *ReportHandler) Expiry(c *fiber.Ctx) error {
	out, err := h.uc.ExpiryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
