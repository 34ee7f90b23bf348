package dto

import "github.com/shopspring/decimal"

// TopProductResponse producto más vendido del mes por cantidad.
type TopProductResponse struct {
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
}

// DayTotalResponse total vendido de un día (serie del dashboard).
type DayTotalResponse struct {
	Date  string          `json:"fecha"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse proyecciones de sólo lectura para el tablero.
type DashboardResponse struct {
	TodayTotal    decimal.Decimal     `json:"totalHoy"`
	MonthTotal    decimal.Decimal     `json:"totalMes"`
	MonthTickets  int                 `json:"ticketsMes"`
	TopProduct    *TopProductResponse `json:"productoTop,omitempty"`
	CriticalStock []ProductResponse   `json:"stockCritico"`
	Last7Days     []DayTotalResponse  `json:"ultimos7Dias"`
}
