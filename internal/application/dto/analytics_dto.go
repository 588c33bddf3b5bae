package dto

import "github.com/shopspring/decimal"

// StockSellItemDTO producto anotado con su prioridad de reposición.
//
// Fórmula: shortage = 1 - stock/min_stock (1 si stock = 0);
// recommend_priority = round(shortage * sell, 2);
// need_restock = stock <= min_stock.
type StockSellItemDTO struct {
	ProductsID        string          `json:"products_id"`
	Stock             int             `json:"stock"`
	Sell              int             `json:"sell"`
	RecommendPriority decimal.Decimal `json:"recommend_priority"`
	NeedRestock       bool            `json:"need_restock"`
}

// StockSellReportDTO respuesta de GET /analyse/stock_sell.
// SortedPrice trae todos los productos ordenados por prioridad descendente
// (empate por sell descendente, orden estable); Restock es el subconjunto
// con need_restock en el mismo orden.
type StockSellReportDTO struct {
	Status        string             `json:"status"`
	WarnThreshold int                `json:"warn_threshold"`
	SellMax       string             `json:"sell_max,omitempty"` // products_id con mayor sell
	StockShortage []string           `json:"stock_shortage"`     // ids con stock <= umbral
	SortedPrice   []StockSellItemDTO `json:"sorted_price"`
	Restock       []StockSellItemDTO `json:"restock"`
}

// ProfitPointDTO un punto de la serie de utilidad.
type ProfitPointDTO struct {
	TimeKey string          `json:"time_key"`
	Profit  decimal.Decimal `json:"profit"`
}

// ProfitSeriesDTO respuesta de /analyse/weekly|onemonth|monthly.
// Un rango sin pedidos devuelve Data vacío con status success.
type ProfitSeriesDTO struct {
	Status string           `json:"status"`
	Period string           `json:"period"`
	Data   []ProfitPointDTO `json:"data"`
}

// DashboardDTO resumen de GET /analyse: reposición urgente + utilidad de la semana.
type DashboardDTO struct {
	Status       string             `json:"status"`
	WeekProfit   decimal.Decimal    `json:"week_profit"`
	RestockCount int                `json:"restock_count"`
	TopRestock   []StockSellItemDTO `json:"top_restock"`
}
