package dto

// CustomerRequest entrada para crear o reemplazar un cliente.
type CustomerRequest struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Phone string `json:"telefono,omitempty"`
}

// CustomerListResponse listado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
