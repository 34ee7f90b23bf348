package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// CartUseCase carrito de la sesión activa: renglones con descripción y precio
// congelados al agregar. El carrito sólo se vacía con el commit de la venta.
type CartUseCase struct {
	store *docstore.Store
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(store *docstore.Store) *CartUseCase {
	return &CartUseCase{store: store}
}

// Get devuelve el carrito con el total recalculado. Con un monto entregado
// incluye además el vuelto previsto, para mostrarlo antes de confirmar.
func (uc *CartUseCase) Get(tendered *decimal.Decimal) *dto.CartResponse {
	var resp *dto.CartResponse
	uc.store.View(func(doc *entity.Document) {
		resp = toCartResponse(doc.Cart)
	})
	if tendered != nil {
		change := entity.ChangeDue(*tendered, resp.Total)
		resp.ChangeDue = &change
	}
	return resp
}

// Add agrega un producto al carrito. Si ya hay un renglón para ese producto
// se suma la cantidad en lugar de duplicarlo. El stock se chequea contra el
// catálogo al agregar; el commit vuelve a validar el carrito completo.
func (uc *CartUseCase) Add(in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	var resp *dto.CartResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		idx := doc.FindProduct(in.ProductID)
		if idx < 0 {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
		}
		p := doc.Products[idx]
		if in.Quantity > p.Stock {
			return fmt.Errorf("%w para %s", domain.ErrInsufficientStock, p.Description)
		}
		if li := doc.FindCartLineByProduct(in.ProductID); li >= 0 {
			doc.Cart[li].Quantity += in.Quantity
		} else {
			doc.Cart = append(doc.Cart, entity.CartLine{
				ID:          uuid.New().String(),
				ProductID:   p.ID,
				Description: p.Description,
				UnitPrice:   p.SalePrice,
				Quantity:    in.Quantity,
			})
		}
		resp = toCartResponse(doc.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SetQuantity cambia la cantidad de un renglón, con mínimo 1.
func (uc *CartUseCase) SetQuantity(lineID string, quantity int) (*dto.CartResponse, error) {
	if quantity < 1 {
		quantity = 1
	}
	var resp *dto.CartResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		idx := doc.FindCartLine(lineID)
		if idx < 0 {
			return domain.ErrNotFound
		}
		doc.Cart[idx].Quantity = quantity
		resp = toCartResponse(doc.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Remove saca un renglón del carrito; no hace nada si no existe.
func (uc *CartUseCase) Remove(lineID string) (*dto.CartResponse, error) {
	var resp *dto.CartResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		if idx := doc.FindCartLine(lineID); idx >= 0 {
			doc.Cart = append(doc.Cart[:idx], doc.Cart[idx+1:]...)
		}
		resp = toCartResponse(doc.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toCartResponse(lines []entity.CartLine) *dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.CartLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Description: l.Description,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal(),
		})
	}
	return &dto.CartResponse{Items: items, Total: entity.CartTotal(lines)}
}
