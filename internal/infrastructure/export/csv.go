package export

import (
	"encoding/csv"
	"io"

	"github.com/mialmacen/pos-api/internal/application/dto"
)

// WriteCSV escribe las ventas como CSV, una fila por venta, con el detalle
// de renglones unido en una sola celda.
func WriteCSV(w io.Writer, sales []dto.SaleResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, v := range sales {
		row := []string{
			FormatDate(v.Date),
			v.CustomerName,
			v.Cashier,
			saleDetail(v, true),
			v.Total.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
