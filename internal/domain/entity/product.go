package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Los nombres JSON siguen el
// documento persistido (productos[]). El stock sólo lo descuenta el commit
// de una venta; las ediciones de metadatos no lo tocan.
type Product struct {
	ID            string          `json:"id"`
	Code          string          `json:"codigo,omitempty"`
	Description   string          `json:"descripcion"`
	PurchasePrice decimal.Decimal `json:"precioCompra"`
	SalePrice     decimal.Decimal `json:"precioVenta"`
	Stock         int             `json:"stock"`
	StockMin      int             `json:"stockMin"`
	Image         string          `json:"imagen,omitempty"`
}

// Critical indica si el producto está en stock crítico (stock <= stockMin).
func (p Product) Critical() bool {
	return p.Stock <= p.StockMin
}
