// Package analytics contiene los casos de uso de analítica: ranking de
// reposición por urgencia, series de utilidad por período y el resumen del
// dashboard del administrador.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Períodos soportados por la serie de utilidad.
const (
	PeriodWeek  = "week"  // últimos 7 días, bucket por día
	PeriodMonth = "month" // últimos 31 días, bucket por día
	PeriodYear  = "year"  // últimos 12 meses, bucket por mes
)

// Formatos de bucket en notación to_char de PostgreSQL.
const (
	bucketDay   = "MM-DD"
	bucketMonth = "YYYY-MM"
)

const defaultMinStock = 20

const dashboardTopRestock = 5 // productos en el widget de reposición del dashboard

var one = decimal.NewFromInt(1)

// UseCase motor de analítica y recomendación. Solo lectura: trabaja sobre
// snapshots del ledger y agregados de pedidos, nunca muta estado.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	minStock      int
}

// NewUseCase construye el caso de uso. minStock es el umbral configurable de
// stock mínimo (need_restock); valores no positivos caen al default 20.
func NewUseCase(analyticsRepo repository.AnalyticsRepository, minStock int) *UseCase {
	if minStock <= 0 {
		minStock = defaultMinStock
	}
	return &UseCase{analyticsRepo: analyticsRepo, minStock: minStock}
}

// StockSellReport calcula el ranking de reposición. Por producto:
//
//	shortage = 1 si stock = 0 o stock/min_stock > 1 (los productos sobre el
//	           umbral puntúan con su sell), si no 1 - stock/min_stock
//	recommend_priority = round(shortage * sell, 2)
//	need_restock = stock <= min_stock
//
// Orden estable: prioridad descendente, empate por sell descendente. Restock
// es el subconjunto con need_restock, en el mismo orden. Solo admin.
func (uc *UseCase) StockSellReport(ctx context.Context, role string) (*dto.StockSellReportDTO, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.analyticsRepo.GetStockSell(ctx)
	if err != nil {
		return nil, err
	}

	minStock := decimal.NewFromInt(int64(uc.minStock))

	items := make([]dto.StockSellItemDTO, 0, len(rows))
	sellMax := ""
	maxSell := -1
	shortage := make([]string, 0)
	for _, r := range rows {
		items = append(items, dto.StockSellItemDTO{
			ProductsID:        r.ProductsID,
			Stock:             r.Stock,
			Sell:              r.Sell,
			RecommendPriority: restockPriority(r.Stock, r.Sell, minStock),
			NeedRestock:       r.Stock <= uc.minStock,
		})
		if r.Sell > maxSell {
			maxSell = r.Sell
			sellMax = r.ProductsID
		}
		if r.Stock <= uc.minStock {
			shortage = append(shortage, r.ProductsID)
		}
	}

	// Orden estable: dos productos con la misma prioridad y el mismo sell
	// conservan su orden de entrada.
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].RecommendPriority.Equal(items[j].RecommendPriority) {
			return items[i].RecommendPriority.GreaterThan(items[j].RecommendPriority)
		}
		return items[i].Sell > items[j].Sell
	})

	restock := make([]dto.StockSellItemDTO, 0, len(items))
	for _, it := range items {
		if it.NeedRestock {
			restock = append(restock, it)
		}
	}

	return &dto.StockSellReportDTO{
		Status:        "success",
		WarnThreshold: uc.minStock,
		SellMax:       sellMax,
		StockShortage: shortage,
		SortedPrice:   items,
		Restock:       restock,
	}, nil
}

// restockPriority calcula round(shortage * sell, 2) con aritmética decimal.
func restockPriority(stock, sell int, minStock decimal.Decimal) decimal.Decimal {
	shortage := one
	if stock > 0 {
		ratio := decimal.NewFromInt(int64(stock)).Div(minStock)
		if ratio.LessThanOrEqual(one) {
			shortage = one.Sub(ratio)
		}
	}
	return shortage.Mul(decimal.NewFromInt(int64(sell))).Round(2)
}

// ProfitSeries devuelve la utilidad agregada del período: end = hoy 23:59:59
// local, start = end - longitud del período. Los pedidos cancelados se
// excluyen. Un rango sin pedidos devuelve una serie vacía con status success.
// Solo admin.
func (uc *UseCase) ProfitSeries(ctx context.Context, role, period string) (*dto.ProfitSeriesDTO, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	start, end, bucket, err := timeRange(period, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetProfitSeries(ctx, start, end, bucket)
	if err != nil {
		return nil, fmt.Errorf("serie de utilidad (%s): %w", period, err)
	}

	data := make([]dto.ProfitPointDTO, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.ProfitPointDTO{TimeKey: r.TimeKey, Profit: r.Profit.Round(2)})
	}
	return &dto.ProfitSeriesDTO{Status: "success", Period: period, Data: data}, nil
}

// Dashboard resume la semana para el admin: utilidad acumulada de los últimos
// 7 días y los productos más urgentes de reponer.
func (uc *UseCase) Dashboard(ctx context.Context, role string) (*dto.DashboardDTO, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	series, err := uc.ProfitSeries(ctx, role, PeriodWeek)
	if err != nil {
		return nil, err
	}
	var weekProfit decimal.Decimal
	for _, p := range series.Data {
		weekProfit = weekProfit.Add(p.Profit)
	}

	report, err := uc.StockSellReport(ctx, role)
	if err != nil {
		return nil, err
	}
	top := report.Restock
	if len(top) > dashboardTopRestock {
		top = top[:dashboardTopRestock]
	}

	return &dto.DashboardDTO{
		Status:       "success",
		WeekProfit:   weekProfit.Round(2),
		RestockCount: len(report.Restock),
		TopRestock:   top,
	}, nil
}

// timeRange calcula el rango [start, end] y el formato de bucket del período.
// end es el día actual a las 23:59:59 hora local.
func timeRange(period string, now time.Time) (start, end time.Time, bucket string, err error) {
	end = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	switch period {
	case PeriodWeek:
		return end.AddDate(0, 0, -7), end, bucketDay, nil
	case PeriodMonth:
		return end.AddDate(0, 0, -31), end, bucketDay, nil
	case PeriodYear:
		return end.AddDate(0, -12, 0), end, bucketMonth, nil
	default:
		return time.Time{}, time.Time{}, "", domain.ErrInvalidInput
	}
}
