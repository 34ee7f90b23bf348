package entity

import "github.com/shopspring/decimal"

// CartLine es un renglón del carrito: producto + cantidad con descripción y
// precio congelados al momento de agregar.
type CartLine struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productoId"`
	Description string          `json:"descripcion"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int             `json:"cantidad"`
}

// Subtotal devuelve precio × cantidad del renglón.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartTotal suma precio × cantidad sobre todos los renglones. Se calcula
// siempre en fresco, nunca se cachea.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
