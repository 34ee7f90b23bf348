// Package export genera los archivos de ventas para facturación: CSV,
// planilla XML (formato Excel 2003) y XLSX. Todos se derivan del listado de
// ventas ya filtrado; ninguno muta estado.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mialmacen/pos-api/internal/application/dto"
)

// Columnas compartidas por todos los formatos.
var columns = []string{"Fecha", "Cliente", "Cajero", "Detalle", "Total"}

var arPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatCurrency formatea un monto en pesos con separadores es-AR.
func FormatCurrency(d decimal.Decimal) string {
	f, _ := d.Float64()
	return arPrinter.Sprintf("$ %.2f", f)
}

// FormatDate formatea la fecha de una venta para los reportes.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// saleDetail arma el detalle de una venta: "desc xCant (importe); ...".
// Con currency el importe va formateado; si no, como número crudo.
func saleDetail(v dto.SaleResponse, currency bool) string {
	parts := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		amount := it.Subtotal.String()
		if currency {
			amount = FormatCurrency(it.Subtotal)
		}
		parts = append(parts, fmt.Sprintf("%s x%d (%s)", it.Description, it.Quantity, amount))
	}
	return strings.Join(parts, "; ")
}
