package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mialmacen/pos-api/internal/application/dto"
)

const xlsxSheet = "Ventas"

// WriteXLSX escribe las ventas como libro XLSX moderno, mismas columnas que
// el CSV. El total va como número para que Excel pueda sumar.
func WriteXLSX(w io.Writer, sales []dto.SaleResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}

	for i, v := range sales {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		total, _ := v.Total.Float64()
		row := []interface{}{FormatDate(v.Date), v.CustomerName, v.Cashier, saleDetail(v, false), total}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
