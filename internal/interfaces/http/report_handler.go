package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/infrastructure/export"
	"github.com/mialmacen/pos-api/internal/infrastructure/pdf"
)

// ReportHandler maneja el tablero y las exportaciones de ventas. Todas las
// salidas se derivan del listado por rango; ninguna muta estado.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	pdf *pdf.Generator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, gen *pdf.Generator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: gen}
}

// Dashboard godoc
// @Summary      Tablero: totales, producto top, stock crítico y serie de 7 días
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}

// ExportCSV godoc
// @Summary      Exportar ventas como CSV
// @Tags         reports
// @Produce      text/csv
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/reports/export.csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	list, err := h.uc.SalesInRange(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, list.Items); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas_para_facturacion.csv"`)
	return c.Send(buf.Bytes())
}

// ExportXLS godoc
// @Summary      Exportar ventas como planilla XML (Excel 2003)
// @Tags         reports
// @Produce      application/vnd.ms-excel
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/reports/export.xls [get]
func (h *ReportHandler) ExportXLS(c *fiber.Ctx) error {
	list, err := h.uc.SalesInRange(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteSpreadsheetXML(&buf, list.Items); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.xls"`)
	return c.Send(buf.Bytes())
}

// ExportXLSX godoc
// @Summary      Exportar ventas como XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/reports/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	list, err := h.uc.SalesInRange(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, list.Items); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.xlsx"`)
	return c.Send(buf.Bytes())
}

// ExportPDF godoc
// @Summary      Exportar el reporte de ventas como PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/reports/export.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	desde, hasta := c.Query("desde"), c.Query("hasta")
	list, err := h.uc.SalesInRange(desde, hasta)
	if err != nil {
		return writeError(c, err)
	}
	raw, err := h.pdf.SalesReport(list.Items, desde, hasta)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_ventas.pdf"`)
	return c.Send(raw)
}
