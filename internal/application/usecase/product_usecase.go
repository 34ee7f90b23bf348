package usecase

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// ProductUseCase operaciones del catálogo. El stock sólo se descuenta en el
// commit de una venta; acá se crea/reemplaza/borra y se ajusta en forma
// explícita vía AdjustStock.
type ProductUseCase struct {
	store *docstore.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *docstore.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el catálogo filtrado y ordenado. El filtro busca en
// descripción y código; el orden por defecto es descripción ascendente.
func (uc *ProductUseCase) List(in dto.ListRequest) *dto.ProductListResponse {
	var items []dto.ProductResponse
	uc.store.View(func(doc *entity.Document) {
		list := make([]entity.Product, 0, len(doc.Products))
		for _, p := range doc.Products {
			if matchesFilter(in.Query, p.Description, p.Code) {
				list = append(list, p)
			}
		}
		sortList(list, in.SortDir, productSortValue(in.SortKey))
		items = make([]dto.ProductResponse, 0, len(list))
		for _, p := range list {
			items = append(items, toProductResponse(p))
		}
	})
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Upsert crea un producto (id vacío) o lo reemplaza entero (id existente).
// El reemplazo es total, incluido el stock: no hay merge parcial de campos.
func (uc *ProductUseCase) Upsert(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.New().String()
	}
	product := entity.Product{
		ID:            id,
		Code:          strings.TrimSpace(in.Code),
		Description:   strings.TrimSpace(in.Description),
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Stock:         in.Stock,
		StockMin:      in.StockMin,
		Image:         strings.TrimSpace(in.Image),
	}
	err := uc.store.Mutate(func(doc *entity.Document) error {
		if idx := doc.FindProduct(id); idx >= 0 {
			doc.Products[idx] = product
		} else {
			doc.Products = append(doc.Products, product)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// AdjustStock fija el stock actual de un producto sin tocar sus metadatos.
func (uc *ProductUseCase) AdjustStock(id string, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var resp dto.ProductResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		idx := doc.FindProduct(id)
		if idx < 0 {
			return domain.ErrNotFound
		}
		doc.Products[idx].Stock = stock
		resp = toProductResponse(doc.Products[idx])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete elimina un producto; no hace nada si no existe. Las ventas
// históricas conservan sus copias de descripción y precio.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.store.Mutate(func(doc *entity.Document) error {
		idx := doc.FindProduct(id)
		if idx < 0 {
			return nil
		}
		doc.Products = append(doc.Products[:idx], doc.Products[idx+1:]...)
		return nil
	})
}

func validateProduct(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Description) == "" {
		return domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.StockMin < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func productSortValue(key string) func(entity.Product) string {
	return func(p entity.Product) string {
		switch key {
		case "codigo":
			return p.Code
		case "precioCompra":
			return p.PurchasePrice.String()
		case "precioVenta":
			return p.SalePrice.String()
		case "stock":
			return strconv.Itoa(p.Stock)
		case "stockMin":
			return strconv.Itoa(p.StockMin)
		default:
			return p.Description
		}
	}
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		StockMin:      p.StockMin,
		Image:         p.Image,
		Critical:      p.Critical(),
	}
}
