// Package pdf implementa la exportación PDF del reporte de resumen de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Medicamento | Presentación | Stock | Mín | P.Unit |  │
//	│         Valor                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades totales / valor total del inventario      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/FarmaStock-api/internal/application/reports"
	"github.com/jhoicas/FarmaStock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 84}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StockSummaryGenerator implementa reports.StockSummaryPDFGenerator usando Maroto v2.
type StockSummaryGenerator struct{}

// NewStockSummaryGenerator construye el generador.
func NewStockSummaryGenerator() *StockSummaryGenerator {
	return &StockSummaryGenerator{}
}

var _ reports.StockSummaryPDFGenerator = (*StockSummaryGenerator)(nil)

// GenerateStockSummaryPDF genera el PDF y devuelve sus bytes.
func (g *StockSummaryGenerator) GenerateStockSummaryPDF(
	_ context.Context,
	medications []*entity.Medication,
	totalValue decimal.Decimal,
	totalItems int,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, med := range medications {
		m.AddRows(medicationRow(med))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalValue, totalItems))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Resumen de Stock de Medicamentos", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(4, "Medicamento"),
		header(2, "Presentación"),
		header(1, "Stock"),
		header(1, "Mínimo"),
		header(2, "Precio Unit."),
		header(2, "Valor"),
	)
}

func medicationRow(med *entity.Medication) core.Row {
	cell := func(size int, value string, alignRight bool) core.Col {
		p := props.Text{Size: 8}
		if alignRight {
			p.Align = align.Right
		}
		return col.New(size).Add(text.New(value, p))
	}
	name := med.Name
	if med.Strength != "" {
		name += " " + med.Strength
	}
	return row.New(5).Add(
		cell(4, name, false),
		cell(2, med.DosageForm, false),
		cell(1, fmt.Sprintf("%d", med.CurrentStock), true),
		cell(1, fmt.Sprintf("%d", med.MinimumStock), true),
		cell(2, "$ "+med.UnitPrice.StringFixed(2), true),
		cell(2, "$ "+med.StockValue().StringFixed(2), true),
	)
}

func totalsRow(totalValue decimal.Decimal, totalItems int) core.Row {
	return row.New(8).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Unidades totales: %d", totalItems), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Valor total: $ "+totalValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
