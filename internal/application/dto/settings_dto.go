package dto

// SettingsResponse configuración vigente del comercio.
type SettingsResponse struct {
	StoreName string   `json:"storeName"`
	Cashiers  []string `json:"cajeros"`
}

// UpdateSettingsRequest entrada para cambiar el nombre del comercio.
type UpdateSettingsRequest struct {
	StoreName string `json:"storeName"`
}

// AddCashierRequest entrada para registrar un cajero.
type AddCashierRequest struct {
	Name string `json:"nombre"`
}
