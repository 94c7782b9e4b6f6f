// Package pdf implementa el reporte imprimible del retaceo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código retaceo + Estado  │  N° Factura + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRA: proveedor / código / factura                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Cant | Costo Unit | Costo Total  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL RETACEADO                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa retaceo.RetaceoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ appretaceo.RetaceoPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRetaceoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRetaceoPDF(
	_ context.Context,
	ret *entity.Retaceo,
	purchase *entity.Purchase,
	rows []appretaceo.RetaceoRowForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Retaceo "+ret.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ret))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if purchase != nil {
		m.AddRows(purchaseRow(purchase))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(ret *entity.Retaceo) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Retaceo "+ret.Code, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+ret.Status, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Factura: "+ret.NumInvoice, props.Text{Size: 9, Top: 2, Align: align.Right}),
			text.New("Fecha: "+ret.Date.Format("02/01/2006"), props.Text{Size: 9, Top: 8, Align: align.Right}),
		),
	)
}

func purchaseRow(p *entity.Purchase) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Compra %s — %s — Factura %s", p.Code, p.SupplierName, p.NumInvoice),
				props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	hr := h
	hr.Align = align.Right
	return row.New(8).Add(
		col.New(2).Add(text.New("Código", h)),
		col.New(4).Add(text.New("Producto", h)),
		col.New(2).Add(text.New("Cantidad", hr)),
		col.New(2).Add(text.New("Costo Unit.", hr)),
		col.New(2).Add(text.New("Costo Total", hr)),
	)
}

func tableDetailRow(r appretaceo.RetaceoRowForPDF) core.Row {
	c := props.Text{Size: 8, Top: 1}
	cr := c
	cr.Align = align.Right
	return row.New(6).Add(
		col.New(2).Add(text.New(r.ProductCode, c)),
		col.New(4).Add(text.New(r.ProductName, c)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.Quantity), cr)),
		col.New(2).Add(text.New(r.UnitCost.StringFixed(4), cr)),
		col.New(2).Add(text.New(r.TotalCost.StringFixed(2), cr)),
	)
}

func totalRow(rows []appretaceo.RetaceoRowForPDF) core.Row {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalCost)
	}
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Align: align.Right,
		})),
		col.New(2).Add(text.New(total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Align: align.Right,
		})),
	)
}
