package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommitSaleRequest entrada para confirmar el carrito como venta.
type CommitSaleRequest struct {
	CustomerID     string          `json:"clienteId"`
	Cashier        string          `json:"cajero"`
	AmountTendered decimal.Decimal `json:"entregado"`
}

// QuickSaleRequest entrada para una venta rápida de un solo producto, sin
// pasar por el carrito. Sin Entregado, se asume pago exacto.
type QuickSaleRequest struct {
	ProductID      string           `json:"productoId"`
	Quantity       int              `json:"cantidad"`
	CustomerID     string           `json:"clienteId"`
	Cashier        string           `json:"cajero"`
	AmountTendered *decimal.Decimal `json:"entregado"`
}

// SaleItemResponse renglón de una venta.
type SaleItemResponse struct {
	ProductID   string          `json:"productoId"`
	Description string          `json:"descripcion"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int             `json:"cantidad"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta confirmada (ticket).
type SaleResponse struct {
	ID             string             `json:"id"`
	Date           time.Time          `json:"fecha"`
	CustomerID     string             `json:"clienteId"`
	CustomerName   string             `json:"cliente"`
	Cashier        string             `json:"cajero"`
	Items          []SaleItemResponse `json:"items"`
	Total          decimal.Decimal    `json:"total"`
	AmountTendered decimal.Decimal    `json:"entregado"`
	ChangeDue      decimal.Decimal    `json:"vuelto"`
}

// SaleListResponse listado de ventas con el acumulado del período.
type SaleListResponse struct {
	Items []SaleResponse  `json:"items"`
	Count int             `json:"cantidad"`
	Total decimal.Decimal `json:"montoAcumulado"`
}
