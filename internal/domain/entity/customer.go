package entity

// WalkInCustomerID es el id reservado del cliente mostrador. Siempre debe
// existir y nunca puede eliminarse.
const WalkInCustomerID = "mostrador"

// Customer representa un cliente del comercio (clientes[]).
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Phone string `json:"telefono,omitempty"`
}

// WalkInCustomer devuelve el registro reservado del mostrador.
func WalkInCustomer() Customer {
	return Customer{ID: WalkInCustomerID, Name: "Mostrador", Phone: ""}
}
