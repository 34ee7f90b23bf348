// Package pdf genera las salidas imprimibles con Maroto v2: el reporte de
// ventas de un período y el ticket de una venta.
//
// Reporte (A4):
//
//	┌──────────────────────────────────────────────┐
//	│  Reporte de Ventas            Período: a - b │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: # | Fecha | Cliente | Cajero | Total │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL DEL PERÍODO                           │
//	└──────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/infrastructure/export"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Generator genera los PDF del sistema.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// SalesReport genera el reporte tabular de un período y devuelve sus bytes.
func (g *Generator) SalesReport(sales []dto.SaleResponse, desde, hasta string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	if desde == "" {
		desde = "-"
	}
	if hasta == "" {
		hasta = "-"
	}
	m.AddRows(text.NewRow(10, "Reporte de Ventas", props.Text{
		Style: fontstyle.Bold, Size: 14, Color: colorPrimary,
	}))
	m.AddRows(text.NewRow(6, fmt.Sprintf("Período: %s a %s", desde, hasta), props.Text{
		Size: 9, Color: colorGray,
	}))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(reportHeaderRow())
	total := decimal.Zero
	for i, v := range sales {
		total = total.Add(v.Total)
		m.AddRows(reportDetailRow(i+1, v))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 10})),
		col.New(3).Add(text.New(export.FormatCurrency(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// Ticket genera el comprobante de una venta (reimpresión incluida).
func (g *Generator) Ticket(storeName string, sale *dto.SaleResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(9, storeName, props.Text{
		Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary,
	}))
	m.AddRows(text.NewRow(5, export.FormatDate(sale.Date), props.Text{
		Size: 8, Align: align.Center, Color: colorGray,
	}))
	m.AddRows(text.NewRow(5, "Cliente: "+sale.CustomerName, props.Text{Size: 9}))
	m.AddRows(text.NewRow(5, "Cajero: "+sale.Cashier, props.Text{Size: 9}))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	for _, it := range sale.Items {
		m.AddRows(row.New(5).Add(
			col.New(8).Add(text.New(fmt.Sprintf("%s x%d", it.Description, it.Quantity), props.Text{Size: 9})),
			col.New(4).Add(text.New(export.FormatCurrency(it.Subtotal), props.Text{Size: 9, Align: align.Right})),
		))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(ticketTotalRow("Total", export.FormatCurrency(sale.Total), true))
	m.AddRows(ticketTotalRow("Pago", export.FormatCurrency(sale.AmountTendered), false))
	m.AddRows(ticketTotalRow("Vuelto", export.FormatCurrency(sale.ChangeDue), false))
	m.AddRows(text.NewRow(8, "¡Gracias por su compra!", props.Text{
		Size: 9, Align: align.Center, Top: 3,
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Filas ─────────────────────────────────────────────────────────────────────

func reportHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(1).Add(text.New("#", header)),
		col.New(3).Add(text.New("Fecha", header)),
		col.New(3).Add(text.New("Cliente", header)),
		col.New(2).Add(text.New("Cajero", header)),
		col.New(3).Add(text.New("Total", headerRight)),
	)
}

func reportDetailRow(n int, v dto.SaleResponse) core.Row {
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", n), cell)),
		col.New(3).Add(text.New(export.FormatDate(v.Date), cell)),
		col.New(3).Add(text.New(v.CustomerName, cell)),
		col.New(2).Add(text.New(v.Cashier, cell)),
		col.New(3).Add(text.New(export.FormatCurrency(v.Total), cellRight)),
	)
}

func ticketTotalRow(label, amount string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(5).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Style: style})),
		col.New(4).Add(text.New(amount, props.Text{Size: 9, Style: style, Align: align.Right})),
	)
}
