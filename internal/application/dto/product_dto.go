package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o reemplazar un producto. En reemplazo la
// operación es total: no hay merge parcial de campos.
type ProductRequest struct {
	Code          string          `json:"codigo"`
	Description   string          `json:"descripcion"`
	PurchasePrice decimal.Decimal `json:"precioCompra"`
	SalePrice     decimal.Decimal `json:"precioVenta"`
	Stock         int             `json:"stock"`
	StockMin      int             `json:"stockMin"`
	Image         string          `json:"imagen"`
}

// AdjustStockRequest entrada para fijar el stock de un producto. Operación
// separada de la edición de metadatos para que el ajuste sea deliberado.
type AdjustStockRequest struct {
	Stock int `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"codigo"`
	Description   string          `json:"descripcion"`
	PurchasePrice decimal.Decimal `json:"precioCompra"`
	SalePrice     decimal.Decimal `json:"precioVenta"`
	Stock         int             `json:"stock"`
	StockMin      int             `json:"stockMin"`
	Image         string          `json:"imagen,omitempty"`
	Critical      bool            `json:"stockCritico"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
