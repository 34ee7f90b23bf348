package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/infrastructure/pdf"
)

// SaleHandler maneja las peticiones HTTP de ventas: commit del carrito,
// venta rápida, listado por rango y ticket.
type SaleHandler struct {
	sales    *usecase.SaleUseCase
	reports  *usecase.ReportUseCase
	settings *usecase.SettingsUseCase
	pdf      *pdf.Generator
}

// NewSaleHandler construye el handler.
func NewSaleHandler(sales *usecase.SaleUseCase, reports *usecase.ReportUseCase, settings *usecase.SettingsUseCase, gen *pdf.Generator) *SaleHandler {
	return &SaleHandler{sales: sales, reports: reports, settings: settings, pdf: gen}
}

// Commit godoc
// @Summary      Confirmar el carrito como venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitSaleRequest  true  "Cliente, cajero y monto entregado"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sales.Commit(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Quick godoc
// @Summary      Venta rápida de un solo producto
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuickSaleRequest  true  "Producto, cantidad, cliente y cajero"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/quick [post]
func (h *SaleHandler) Quick(c *fiber.Ctx) error {
	var in dto.QuickSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sales.QuickSale(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas por rango de fechas (bordes inclusivos)
// @Tags         sales
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200    {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.reports.SalesInRange(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una venta
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.sales.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Ticket godoc
// @Summary      Ticket PDF de una venta
// @Tags         sales
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/ticket [get]
func (h *SaleHandler) Ticket(c *fiber.Ctx) error {
	sale, err := h.sales.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	raw, err := h.pdf.Ticket(h.settings.Get().StoreName, sale)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket_`+sale.ID+`.pdf"`)
	return c.Send(raw)
}
