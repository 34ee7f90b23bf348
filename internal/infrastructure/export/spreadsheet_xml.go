package export

import (
	"io"

	"github.com/beevik/etree"

	"github.com/mialmacen/pos-api/internal/application/dto"
)

// WriteSpreadsheetXML escribe las ventas como planilla XML Spreadsheet 2003,
// el formato .xls que Excel abre directo. Los totales van tipados como
// Number; el resto como String.
func WriteSpreadsheetXML(w io.Writer, sales []dto.SaleResponse) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	wb := doc.CreateElement("Workbook")
	wb.CreateAttr("xmlns", "urn:schemas-microsoft-com:office:spreadsheet")
	wb.CreateAttr("xmlns:o", "urn:schemas-microsoft-com:office:office")
	wb.CreateAttr("xmlns:x", "urn:schemas-microsoft-com:office:excel")
	wb.CreateAttr("xmlns:ss", "urn:schemas-microsoft-com:office:spreadsheet")

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", "Ventas")
	table := ws.CreateElement("Table")

	header := table.CreateElement("Row")
	for _, c := range columns {
		addCell(header, c, "String")
	}
	for _, v := range sales {
		row := table.CreateElement("Row")
		addCell(row, FormatDate(v.Date), "String")
		addCell(row, v.CustomerName, "String")
		addCell(row, v.Cashier, "String")
		addCell(row, saleDetail(v, false), "String")
		addCell(row, v.Total.String(), "Number")
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func addCell(row *etree.Element, value, ssType string) {
	data := row.CreateElement("Cell").CreateElement("Data")
	data.CreateAttr("ss:Type", ssType)
	data.SetText(value)
}
