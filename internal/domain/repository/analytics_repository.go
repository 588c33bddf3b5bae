package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockSellResult fila cruda del snapshot stock/sell para la analítica.
type StockSellResult struct {
	ProductsID string
	Stock      int
	Sell       int
}

// ProfitBucket utilidad agregada por clave de tiempo (día o mes según período).
type ProfitBucket struct {
	TimeKey string
	Profit  decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para la analítica.
//
// GetProfitSeries agrupa pedidos no cancelados por clave de tiempo
// (bucketFormat en notación to_char de PostgreSQL: 'MM-DD' o 'YYYY-MM')
// sumando (products_price - cost) * count. Un rango sin pedidos devuelve
// una serie vacía, no un error.
type AnalyticsRepository interface {
	GetStockSell(ctx context.Context) ([]StockSellResult, error)
	GetProfitSeries(ctx context.Context, start, end time.Time, bucketFormat string) ([]ProfitBucket, error)
}
