package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para la analítica.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetStockSell devuelve el snapshot stock/sell de todo el catálogo.
func (r *AnalyticsRepo) GetStockSell(ctx context.Context) ([]repository.StockSellResult, error) {
	query := `
		SELECT products_id, stock, sell
		FROM price ORDER BY products_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock/sell snapshot: %w", err)
	}
	defer rows.Close()
	var list []repository.StockSellResult
	for rows.Next() {
		var s repository.StockSellResult
		if err := rows.Scan(&s.ProductsID, &s.Stock, &s.Sell); err != nil {
			return nil, fmt.Errorf("scan stock/sell: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetProfitSeries agrega la utilidad (products_price - cost) * count de los
// pedidos no cancelados dentro del rango, agrupada por la clave de tiempo
// que produce to_char con bucketFormat ('MM-DD' o 'YYYY-MM'). Un rango sin
// pedidos devuelve una lista vacía.
func (r *AnalyticsRepo) GetProfitSeries(ctx context.Context, start, end time.Time, bucketFormat string) ([]repository.ProfitBucket, error) {
	query := `
		SELECT to_char(o.buy_time, $3) AS time_key,
		       SUM((p.products_price - p.cost) * o.count) AS profit
		FROM orders o
		JOIN price p ON p.products_id = o.products_id
		WHERE o.buy_time BETWEEN $1 AND $2
		  AND o.status <> $4
		GROUP BY time_key
		ORDER BY time_key`
	rows, err := r.q.Query(ctx, query, start, end, bucketFormat, entity.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("profit series: %w", err)
	}
	defer rows.Close()
	var list []repository.ProfitBucket
	for rows.Next() {
		var b repository.ProfitBucket
		if err := rows.Scan(&b.TimeKey, &b.Profit); err != nil {
			return nil, fmt.Errorf("scan profit bucket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
