package entity

import "github.com/shopspring/decimal"

func init() {
	// El documento persistido serializa los montos como números JSON,
	// igual que el formato original del slot posDataV3.
	decimal.MarshalJSONWithoutQuotes = true
}

// Valores por defecto de la configuración del comercio.
const (
	DefaultStoreName = "Mi Almacén"
	DefaultCashier   = "Caja 1"
)

// Settings configuración del comercio. Cajeros es un conjunto ordenado:
// importa el orden de inserción y no se admiten duplicados.
type Settings struct {
	StoreName string   `json:"storeName"`
	Cashiers  []string `json:"cajeros"`
}

// DefaultSettings devuelve la configuración inicial.
func DefaultSettings() Settings {
	return Settings{StoreName: DefaultStoreName, Cashiers: []string{DefaultCashier}}
}

// Document es el agregado completo que se persiste como una sola unidad:
// catálogo, clientes, histórico de ventas, configuración y carrito.
type Document struct {
	Products  []Product  `json:"productos"`
	Customers []Customer `json:"clientes"`
	Sales     []Sale     `json:"ventas"`
	Settings  Settings   `json:"settings"`
	Cart      []CartLine `json:"cart"`
}

// NewDocument devuelve un documento vacío con defaults y mostrador presente.
func NewDocument() *Document {
	doc := &Document{
		Products:  []Product{},
		Customers: []Customer{},
		Sales:     []Sale{},
		Settings:  DefaultSettings(),
		Cart:      []CartLine{},
	}
	doc.EnsureWalkInCustomer()
	return doc
}

// Normalize repara un documento deserializado: colecciones ausentes quedan
// vacías, settings ausentes toman los defaults y el mostrador se garantiza.
// Deserializar un documento incompleto nunca debe fallar.
func (d *Document) Normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Customers == nil {
		d.Customers = []Customer{}
	}
	if d.Sales == nil {
		d.Sales = []Sale{}
	}
	if d.Cart == nil {
		d.Cart = []CartLine{}
	}
	if d.Settings.StoreName == "" {
		d.Settings.StoreName = DefaultStoreName
	}
	if len(d.Settings.Cashiers) == 0 {
		d.Settings.Cashiers = []string{DefaultCashier}
	}
	d.EnsureWalkInCustomer()
}

// EnsureWalkInCustomer garantiza el cliente mostrador. Idempotente: nunca
// inserta un segundo registro reservado.
func (d *Document) EnsureWalkInCustomer() {
	for _, c := range d.Customers {
		if c.ID == WalkInCustomerID {
			return
		}
	}
	d.Customers = append([]Customer{WalkInCustomer()}, d.Customers...)
}

// FindProduct devuelve el índice del producto o -1 si no existe.
func (d *Document) FindProduct(id string) int {
	for i, p := range d.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FindCustomer devuelve el índice del cliente o -1 si no existe.
func (d *Document) FindCustomer(id string) int {
	for i, c := range d.Customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// FindCartLine devuelve el índice del renglón del carrito o -1 si no existe.
func (d *Document) FindCartLine(id string) int {
	for i, l := range d.Cart {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// FindCartLineByProduct devuelve el índice del renglón para un producto o -1.
func (d *Document) FindCartLineByProduct(productID string) int {
	for i, l := range d.Cart {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
