package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest entrada para agregar un producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"productoId"`
	Quantity  int    `json:"cantidad"`
}

// SetQuantityRequest entrada para cambiar la cantidad de un renglón.
type SetQuantityRequest struct {
	Quantity int `json:"cantidad"`
}

// CartLineResponse salida de un renglón del carrito.
type CartLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productoId"`
	Description string          `json:"descripcion"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int             `json:"cantidad"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse salida del carrito con el total calculado en fresco. Vuelto
// sólo viene cuando se consultó con un monto entregado.
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	ChangeDue *decimal.Decimal   `json:"vuelto,omitempty"`
}
