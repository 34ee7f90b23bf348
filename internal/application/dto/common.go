package dto

// ListRequest filtro y orden para listados (productos y clientes).
type ListRequest struct {
	Query   string `query:"q"`
	SortKey string `query:"sort"`
	SortDir string `query:"dir"` // asc | desc
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
