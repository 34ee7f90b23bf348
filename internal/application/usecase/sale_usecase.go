package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// SaleUseCase convierte el carrito en una venta confirmada: valida stock de
// punta a punta, lo descuenta, calcula total y vuelto, congela los renglones
// y antepone la venta al histórico. Todo o nada: un fallo de validación no
// descuenta nada ni toca el carrito.
type SaleUseCase struct {
	store *docstore.Store
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(store *docstore.Store) *SaleUseCase {
	return &SaleUseCase{store: store}
}

// Commit confirma el carrito completo como una venta.
func (uc *SaleUseCase) Commit(in dto.CommitSaleRequest) (*dto.SaleResponse, error) {
	var resp *dto.SaleResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		if len(doc.Cart) == 0 {
			return domain.ErrEmptyCart
		}
		sale, err := commitLines(doc, doc.Cart, in.CustomerID, in.Cashier, in.AmountTendered)
		if err != nil {
			return err
		}
		doc.Cart = []entity.CartLine{}
		resp = toSaleResponse(doc, sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// QuickSale vende un único producto sin pasar por el carrito, con las mismas
// reglas de validación, descuento y copia inmutable que el commit. Sin monto
// entregado se asume pago exacto (vuelto cero).
func (uc *SaleUseCase) QuickSale(in dto.QuickSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	var resp *dto.SaleResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		idx := doc.FindProduct(in.ProductID)
		if idx < 0 {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
		}
		p := doc.Products[idx]
		line := entity.CartLine{
			ID:          uuid.New().String(),
			ProductID:   p.ID,
			Description: p.Description,
			UnitPrice:   p.SalePrice,
			Quantity:    in.Quantity,
		}
		tendered := line.Subtotal()
		if in.AmountTendered != nil {
			tendered = *in.AmountTendered
		}
		sale, err := commitLines(doc, []entity.CartLine{line}, in.CustomerID, in.Cashier, tendered)
		if err != nil {
			return err
		}
		resp = toSaleResponse(doc, sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get busca una venta por id (reimpresión de ticket).
func (uc *SaleUseCase) Get(id string) (*dto.SaleResponse, error) {
	var resp *dto.SaleResponse
	uc.store.View(func(doc *entity.Document) {
		for i := range doc.Sales {
			if doc.Sales[i].ID == id {
				resp = toSaleResponse(doc, doc.Sales[i])
				return
			}
		}
	})
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	return resp, nil
}

// commitLines es el núcleo transaccional compartido por Commit y QuickSale.
// Primero valida cada renglón contra el stock vigente del catálogo; recién
// después descuenta, arma la venta y la antepone al histórico.
func commitLines(doc *entity.Document, lines []entity.CartLine, customerID, cashier string, tendered decimal.Decimal) (entity.Sale, error) {
	for _, l := range lines {
		idx := doc.FindProduct(l.ProductID)
		if idx < 0 {
			return entity.Sale{}, fmt.Errorf("%w para %s", domain.ErrInsufficientStock, l.Description)
		}
		if l.Quantity > doc.Products[idx].Stock {
			return entity.Sale{}, fmt.Errorf("%w para %s", domain.ErrInsufficientStock, doc.Products[idx].Description)
		}
	}

	for _, l := range lines {
		idx := doc.FindProduct(l.ProductID)
		doc.Products[idx].Stock -= l.Quantity
	}

	if strings.TrimSpace(customerID) == "" {
		customerID = entity.WalkInCustomerID
	}
	cashier = strings.TrimSpace(cashier)
	if cashier == "" {
		if len(doc.Settings.Cashiers) > 0 {
			cashier = doc.Settings.Cashiers[0]
		} else {
			cashier = entity.DefaultCashier
		}
	}

	items := make([]entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.SaleItem{
			ProductID:   l.ProductID,
			Description: l.Description,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	total := entity.CartTotal(lines)
	sale := entity.Sale{
		ID:             uuid.New().String(),
		Date:           time.Now(),
		CustomerID:     customerID,
		Cashier:        cashier,
		Items:          items,
		Total:          total,
		AmountTendered: tendered,
		ChangeDue:      entity.ChangeDue(tendered, total),
	}
	doc.Sales = append([]entity.Sale{sale}, doc.Sales...)
	return sale, nil
}

// CustomerDisplayName resuelve el nombre a mostrar para una venta.
func customerDisplayName(doc *entity.Document, customerID string) string {
	if idx := doc.FindCustomer(customerID); idx >= 0 {
		return doc.Customers[idx].Name
	}
	return "Mostrador"
}

func toSaleResponse(doc *entity.Document, v entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return &dto.SaleResponse{
		ID:             v.ID,
		Date:           v.Date,
		CustomerID:     v.CustomerID,
		CustomerName:   customerDisplayName(doc, v.CustomerID),
		Cashier:        v.Cashier,
		Items:          items,
		Total:          v.Total,
		AmountTendered: v.AmountTendered,
		ChangeDue:      v.ChangeDue,
	}
}

func toSaleListResponse(doc *entity.Document, sales []entity.Sale) *dto.SaleListResponse {
	items := make([]dto.SaleResponse, 0, len(sales))
	total := decimal.Zero
	for _, v := range sales {
		items = append(items, *toSaleResponse(doc, v))
		total = total.Add(v.Total)
	}
	return &dto.SaleListResponse{Items: items, Count: len(items), Total: total}
}
