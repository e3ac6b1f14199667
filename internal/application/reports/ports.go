package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

// StockSummaryPDFGenerator genera la representación PDF del resumen de stock.
type StockSummaryPDFGenerator interface {
	GenerateStockSummaryPDF(
		ctx context.Context,
		medications []*entity.Medication,
		totalValue decimal.Decimal,
		totalItems int,
		generatedAt time.Time,
	) ([]byte, error)
}
