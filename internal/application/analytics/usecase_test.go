package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/analytics"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve datos fijos y captura los argumentos de la
// última consulta de utilidad.
type fakeAnalyticsRepo struct {
	stockSell []repository.StockSellResult
	profit    []repository.ProfitBucket

	lastStart  time.Time
	lastEnd    time.Time
	lastBucket string
}

func (f *fakeAnalyticsRepo) GetStockSell(_ context.Context) ([]repository.StockSellResult, error) {
	return f.stockSell, nil
}

func (f *fakeAnalyticsRepo) GetProfitSeries(_ context.Context, start, end time.Time, bucketFormat string) ([]repository.ProfitBucket, error) {
	f.lastStart, f.lastEnd, f.lastBucket = start, end, bucketFormat
	return f.profit, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking de reposición
// ──────────────────────────────────────────────────────────────────────────────

// Caso de referencia con min_stock = 20:
//
//	producto 1: stock 5,  sell 50 → prioridad (1 - 5/20)  * 50 = 37.5
//	producto 2: stock 5,  sell 50 → prioridad 37.5 (empate estable con 1)
//	producto 3: stock 25, sell 10 → prioridad 1 * 10 = 10 (stock sobre el umbral)
func TestStockSellReport_PrioridadesYOrdenEstable(t *testing.T) {
	repo := &fakeAnalyticsRepo{stockSell: []repository.StockSellResult{
		{ProductsID: "1", Stock: 5, Sell: 50},
		{ProductsID: "2", Stock: 5, Sell: 50},
		{ProductsID: "3", Stock: 25, Sell: 10},
	}}
	uc := analytics.NewUseCase(repo, 20)

	out, err := uc.StockSellReport(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)

	require.Len(t, out.SortedPrice, 3)
	assert.Equal(t, "1", out.SortedPrice[0].ProductsID, "empate 37.5/37.5: el orden de entrada se conserva")
	assert.Equal(t, "2", out.SortedPrice[1].ProductsID)
	assert.Equal(t, "3", out.SortedPrice[2].ProductsID)

	assert.True(t, decimal.NewFromFloat(37.5).Equal(out.SortedPrice[0].RecommendPriority))
	assert.True(t, decimal.NewFromFloat(37.5).Equal(out.SortedPrice[1].RecommendPriority))
	assert.True(t, decimal.NewFromInt(10).Equal(out.SortedPrice[2].RecommendPriority))

	assert.True(t, out.SortedPrice[0].NeedRestock)
	assert.True(t, out.SortedPrice[1].NeedRestock)
	assert.False(t, out.SortedPrice[2].NeedRestock, "stock 25 > umbral 20")

	require.Len(t, out.Restock, 2, "restock es el subconjunto con need_restock")
	assert.Equal(t, []string{"1", "2"}, []string{out.Restock[0].ProductsID, out.Restock[1].ProductsID})
	assert.Equal(t, []string{"1", "2"}, out.StockShortage)
}

func TestStockSellReport_StockCero_PrioridadIgualASell(t *testing.T) {
	repo := &fakeAnalyticsRepo{stockSell: []repository.StockSellResult{
		{ProductsID: "agotado", Stock: 0, Sell: 42},
	}}
	uc := analytics.NewUseCase(repo, 20)

	out, err := uc.StockSellReport(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, out.SortedPrice, 1)
	assert.True(t, decimal.NewFromInt(42).Equal(out.SortedPrice[0].RecommendPriority),
		"stock 0 implica shortage 1, prioridad = sell")
	assert.True(t, out.SortedPrice[0].NeedRestock)
}

func TestStockSellReport_EmpateEnPrioridad_DesempataPorSell(t *testing.T) {
	// Ambos con prioridad 0 (stock = umbral*... shortage 0): stock 20/min 20
	// da shortage 0; gana en orden el de mayor sell.
	repo := &fakeAnalyticsRepo{stockSell: []repository.StockSellResult{
		{ProductsID: "a", Stock: 20, Sell: 5},
		{ProductsID: "b", Stock: 20, Sell: 50},
	}}
	uc := analytics.NewUseCase(repo, 20)

	out, err := uc.StockSellReport(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "b", out.SortedPrice[0].ProductsID, "a igual prioridad, mayor sell primero")
	assert.Equal(t, "b", out.SellMax)
}

func TestStockSellReport_SoloAdmin(t *testing.T) {
	uc := analytics.NewUseCase(&fakeAnalyticsRepo{}, 20)

	_, err := uc.StockSellReport(context.Background(), entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStockSellReport_UmbralConfigurable(t *testing.T) {
	repo := &fakeAnalyticsRepo{stockSell: []repository.StockSellResult{
		{ProductsID: "x", Stock: 8, Sell: 10},
	}}
	uc := analytics.NewUseCase(repo, 5) // umbral 5: stock 8 no necesita reposición

	out, err := uc.StockSellReport(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, out.SortedPrice[0].NeedRestock)
	assert.Equal(t, 5, out.WarnThreshold)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie de utilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitSeries_RangosYBucketsPorPeriodo(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewUseCase(repo, 20)

	cases := []struct {
		period string
		days   int
		months int
		bucket string
	}{
		{analytics.PeriodWeek, 7, 0, "MM-DD"},
		{analytics.PeriodMonth, 31, 0, "MM-DD"},
		{analytics.PeriodYear, 0, 12, "YYYY-MM"},
	}
	for _, tc := range cases {
		_, err := uc.ProfitSeries(context.Background(), entity.RoleAdmin, tc.period)
		require.NoError(t, err, tc.period)

		assert.Equal(t, tc.bucket, repo.lastBucket, tc.period)
		assert.Equal(t, 23, repo.lastEnd.Hour(), "end debe ser hoy a las 23:59:59")
		assert.Equal(t, 59, repo.lastEnd.Minute())
		assert.Equal(t, 59, repo.lastEnd.Second())

		expectedStart := repo.lastEnd.AddDate(0, -tc.months, -tc.days)
		assert.Equal(t, expectedStart, repo.lastStart, tc.period)
	}
}

func TestProfitSeries_RangoSinPedidos_SerieVaciaConSuccess(t *testing.T) {
	uc := analytics.NewUseCase(&fakeAnalyticsRepo{}, 20)

	out, err := uc.ProfitSeries(context.Background(), entity.RoleAdmin, analytics.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, "success", out.Status)
	assert.Empty(t, out.Data, "sin pedidos la serie es vacía, no un error")
}

func TestProfitSeries_PeriodoInvalido(t *testing.T) {
	uc := analytics.NewUseCase(&fakeAnalyticsRepo{}, 20)

	_, err := uc.ProfitSeries(context.Background(), entity.RoleAdmin, "decade")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfitSeries_SoloAdmin(t *testing.T) {
	uc := analytics.NewUseCase(&fakeAnalyticsRepo{}, 20)

	_, err := uc.ProfitSeries(context.Background(), entity.RoleUser, analytics.PeriodWeek)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_SumaUtilidadYTopReposicion(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		profit: []repository.ProfitBucket{
			{TimeKey: "08-30", Profit: decimal.NewFromFloat(120.50)},
			{TimeKey: "08-31", Profit: decimal.NewFromFloat(79.50)},
		},
		stockSell: []repository.StockSellResult{
			{ProductsID: "1", Stock: 0, Sell: 5},
			{ProductsID: "2", Stock: 30, Sell: 9},
		},
	}
	uc := analytics.NewUseCase(repo, 20)

	out, err := uc.Dashboard(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(200).Equal(out.WeekProfit))
	assert.Equal(t, 1, out.RestockCount)
	require.Len(t, out.TopRestock, 1)
	assert.Equal(t, "1", out.TopRestock[0].ProductsID)
}

func TestDashboard_SoloAdmin(t *testing.T) {
	uc := analytics.NewUseCase(&fakeAnalyticsRepo{}, 20)

	_, err := uc.Dashboard(context.Background(), entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
