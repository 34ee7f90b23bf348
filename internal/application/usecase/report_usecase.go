package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// dateLayout de los parámetros desde/hasta.
const dateLayout = "2006-01-02"

// ReportUseCase proyecciones de sólo lectura sobre el histórico de ventas.
// Ninguna operación de este caso de uso muta estado.
type ReportUseCase struct {
	store *docstore.Store
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store *docstore.Store) *ReportUseCase {
	return &ReportUseCase{store: store, now: time.Now}
}

// SalesInRange devuelve las ventas del rango [desde, hasta] con ambos bordes
// inclusivos por día calendario; cualquier borde vacío queda abierto. El
// orden de llegada (más reciente primero) se conserva.
func (uc *ReportUseCase) SalesInRange(desde, hasta string) (*dto.SaleListResponse, error) {
	var start, end *time.Time
	if desde != "" {
		d, err := time.ParseInLocation(dateLayout, desde, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: desde=%q", domain.ErrInvalidInput, desde)
		}
		start = &d
	}
	if hasta != "" {
		d, err := time.ParseInLocation(dateLayout, hasta, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: hasta=%q", domain.ErrInvalidInput, hasta)
		}
		next := d.AddDate(0, 0, 1) // fin de día inclusivo = antes del día siguiente
		end = &next
	}

	var out *dto.SaleListResponse
	uc.store.View(func(doc *entity.Document) {
		sales := make([]entity.Sale, 0)
		for _, v := range doc.Sales {
			if start != nil && v.Date.Before(*start) {
				continue
			}
			if end != nil && !v.Date.Before(*end) {
				continue
			}
			sales = append(sales, v)
		}
		out = toSaleListResponse(doc, sales)
	})
	return out, nil
}

// DailyTotal suma los totales de las ventas del día calendario de date.
func (uc *ReportUseCase) DailyTotal(date time.Time) decimal.Decimal {
	var total decimal.Decimal
	uc.store.View(func(doc *entity.Document) {
		total = dailyTotal(doc, date)
	})
	return total
}

// MonthlyTotal suma los totales del mes calendario que contiene a date.
func (uc *ReportUseCase) MonthlyTotal(date time.Time) decimal.Decimal {
	var total decimal.Decimal
	uc.store.View(func(doc *entity.Document) {
		total = monthlyTotal(doc, date)
	})
	return total
}

// TopProductThisMonth agrega cantidades vendidas por descripción (la copia de
// la venta, no el producto vivo) sobre el mes en curso y devuelve la mayor.
// Ante empate gana la primera descripción que alcanzó el máximo durante la
// agregación; no es una regla de negocio, cualquier entrada máxima vale.
func (uc *ReportUseCase) TopProductThisMonth() *dto.TopProductResponse {
	start := startOfMonth(uc.now())
	end := start.AddDate(0, 1, 0)

	var top *dto.TopProductResponse
	uc.store.View(func(doc *entity.Document) {
		top = topProductBetween(doc, start, end)
	})
	return top
}

// CriticalStock devuelve los productos con stock en o bajo su mínimo, en el
// orden del catálogo.
func (uc *ReportUseCase) CriticalStock() []dto.ProductResponse {
	var items []dto.ProductResponse
	uc.store.View(func(doc *entity.Document) {
		items = criticalStock(doc)
	})
	return items
}

// Last7Days devuelve exactamente siete totales diarios, del más antiguo al
// más reciente, terminando hoy.
func (uc *ReportUseCase) Last7Days() []dto.DayTotalResponse {
	today := startOfDay(uc.now())
	var series []dto.DayTotalResponse
	uc.store.View(func(doc *entity.Document) {
		series = last7Days(doc, today)
	})
	return series
}

// Dashboard arma el tablero completo. Todas las proyecciones salen de una
// sola lectura del documento: una mutación concurrente nunca puede dejar un
// tablero internamente inconsistente (p. ej. el total de hoy distinto del
// último punto de la serie).
func (uc *ReportUseCase) Dashboard() *dto.DashboardResponse {
	now := uc.now()
	monthStart := startOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, 0)

	resp := &dto.DashboardResponse{}
	uc.store.View(func(doc *entity.Document) {
		resp.TodayTotal = dailyTotal(doc, now)
		resp.MonthTotal = monthlyTotal(doc, now)
		for _, v := range doc.Sales {
			if !v.Date.Before(monthStart) && v.Date.Before(monthEnd) {
				resp.MonthTickets++
			}
		}
		resp.TopProduct = topProductBetween(doc, monthStart, monthEnd)
		resp.CriticalStock = criticalStock(doc)
		resp.Last7Days = last7Days(doc, startOfDay(now))
	})
	return resp
}

// Proyecciones sobre un documento ya tomado bajo lock; las comparten las
// operaciones exportadas y el tablero.

func dailyTotal(doc *entity.Document, date time.Time) decimal.Decimal {
	start := startOfDay(date)
	return sumSalesBetween(doc.Sales, start, start.AddDate(0, 0, 1))
}

func monthlyTotal(doc *entity.Document, date time.Time) decimal.Decimal {
	start := startOfMonth(date)
	return sumSalesBetween(doc.Sales, start, start.AddDate(0, 1, 0))
}

func topProductBetween(doc *entity.Document, start, end time.Time) *dto.TopProductResponse {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, v := range doc.Sales {
		if v.Date.Before(start) || !v.Date.Before(end) {
			continue
		}
		for _, it := range v.Items {
			if _, seen := counts[it.Description]; !seen {
				order = append(order, it.Description)
			}
			counts[it.Description] += it.Quantity
		}
	}
	var top *dto.TopProductResponse
	max := 0
	for _, desc := range order {
		if counts[desc] > max {
			max = counts[desc]
			top = &dto.TopProductResponse{Description: desc, Quantity: max}
		}
	}
	return top
}

func criticalStock(doc *entity.Document) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0)
	for _, p := range doc.Products {
		if p.Critical() {
			items = append(items, toProductResponse(p))
		}
	}
	return items
}

func last7Days(doc *entity.Document, today time.Time) []dto.DayTotalResponse {
	series := make([]dto.DayTotalResponse, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		series = append(series, dto.DayTotalResponse{
			Date:  day.Format(dateLayout),
			Total: sumSalesBetween(doc.Sales, day, day.AddDate(0, 0, 1)),
		})
	}
	return series
}

func sumSalesBetween(sales []entity.Sale, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, v := range sales {
		if !v.Date.Before(start) && v.Date.Before(end) {
			total = total.Add(v.Total)
		}
	}
	return total
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
