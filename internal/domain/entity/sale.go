package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es la copia inmutable de un renglón dentro de una venta. Editar o
// borrar el producto después no altera el histórico.
type SaleItem struct {
	ProductID   string          `json:"productoId"`
	Description string          `json:"descripcion"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int             `json:"cantidad"`
}

// Sale es una venta confirmada (ventas[]). Inmutable una vez creada; el
// histórico es append-only con la más reciente primero.
type Sale struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"fecha"`
	CustomerID     string          `json:"clienteId"`
	Cashier        string          `json:"cajero"`
	Items          []SaleItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	AmountTendered decimal.Decimal `json:"entregado"`
	ChangeDue      decimal.Decimal `json:"vuelto"`
}

// ChangeDue calcula el vuelto: max(entregado - total, 0). Un pago menor al
// total no bloquea la venta ni produce vuelto negativo.
func ChangeDue(tendered, total decimal.Decimal) decimal.Decimal {
	change := tendered.Sub(total)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}
