package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// CustomerUseCase registro de clientes. El cliente mostrador es un registro
// reservado: se sintetiza si falta y su borrado siempre se rechaza.
type CustomerUseCase struct {
	store *docstore.Store
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store *docstore.Store) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// List devuelve los clientes filtrados y ordenados (nombre/teléfono).
func (uc *CustomerUseCase) List(in dto.ListRequest) *dto.CustomerListResponse {
	var items []dto.CustomerResponse
	uc.store.View(func(doc *entity.Document) {
		list := make([]entity.Customer, 0, len(doc.Customers))
		for _, c := range doc.Customers {
			if matchesFilter(in.Query, c.Name, c.Phone) {
				list = append(list, c)
			}
		}
		sortList(list, in.SortDir, customerSortValue(in.SortKey))
		items = make([]dto.CustomerResponse, 0, len(list))
		for _, c := range list {
			items = append(items, toCustomerResponse(c))
		}
	})
	return &dto.CustomerListResponse{Items: items, Total: len(items)}
}

// Upsert crea un cliente (id vacío) o lo reemplaza entero.
func (uc *CustomerUseCase) Upsert(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if id == "" {
		id = uuid.New().String()
	}
	customer := entity.Customer{ID: id, Name: name, Phone: strings.TrimSpace(in.Phone)}
	err := uc.store.Mutate(func(doc *entity.Document) error {
		if idx := doc.FindCustomer(id); idx >= 0 {
			doc.Customers[idx] = customer
		} else {
			doc.Customers = append(doc.Customers, customer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente. El mostrador nunca puede eliminarse; un id
// inexistente no hace nada.
func (uc *CustomerUseCase) Delete(id string) error {
	if id == entity.WalkInCustomerID {
		return domain.ErrProtectedEntity
	}
	return uc.store.Mutate(func(doc *entity.Document) error {
		idx := doc.FindCustomer(id)
		if idx < 0 {
			return nil
		}
		doc.Customers = append(doc.Customers[:idx], doc.Customers[idx+1:]...)
		return nil
	})
}

// EnsureDefault garantiza el cliente mostrador. Idempotente; se invoca en
// cada arranque y tras importar un backup.
func (uc *CustomerUseCase) EnsureDefault() error {
	return uc.store.Mutate(func(doc *entity.Document) error {
		doc.EnsureWalkInCustomer()
		return nil
	})
}

// History devuelve las ventas de un cliente, de la más reciente a la más
// antigua.
func (uc *CustomerUseCase) History(customerID string) (*dto.SaleListResponse, error) {
	var out *dto.SaleListResponse
	var found bool
	uc.store.View(func(doc *entity.Document) {
		if doc.FindCustomer(customerID) < 0 {
			return
		}
		found = true
		sales := make([]entity.Sale, 0)
		for _, v := range doc.Sales {
			if v.CustomerID == customerID {
				sales = append(sales, v)
			}
		}
		out = toSaleListResponse(doc, sales)
	})
	if !found {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func customerSortValue(key string) func(entity.Customer) string {
	return func(c entity.Customer) string {
		switch key {
		case "telefono":
			return c.Phone
		default:
			return c.Name
		}
	}
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}
