package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/analytics"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// brokenAnalyticsRepo simula una base de datos caída: todo falla con un error
// del driver que arrastra host y credenciales en el texto.
type brokenAnalyticsRepo struct {
	err error
}

func (r *brokenAnalyticsRepo) GetStockSell(ctx context.Context) ([]repository.StockSellResult, error) {
	return nil, r.err
}

func (r *brokenAnalyticsRepo) GetProfitSeries(ctx context.Context, start, end time.Time, bucketFormat string) ([]repository.ProfitBucket, error) {
	return nil, r.err
}

// Un fallo de persistencia debe responder 500 con el mensaje genérico: el
// detalle del driver (host, usuario, texto de autenticación) se queda en el
// log del servidor y nunca llega al cliente.
func TestErrorInterno_NoExponeDetalleAlCliente(t *testing.T) {
	driverErr := errors.New("failed to connect to `host=db-interno.local user=pedidos_rw`: server error (FATAL: password authentication failed (SQLSTATE 28P01))")

	uc := analytics.NewUseCase(&brokenAnalyticsRepo{err: driverErr}, 20)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	handler := apphttp.NewAnalyticsHandler(uc, log)

	app := fiber.New()
	app.Get("/analyse/stock_sell",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole("admin"),
		handler.StockSell,
	)

	req := httptest.NewRequest(http.MethodGet, "/analyse/stock_sell", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Equal(t, "error interno del servidor", body["message"],
		"el cliente solo debe ver el mensaje genérico")
	assert.NotContains(t, body["message"], "db-interno.local",
		"el host de la base de datos no debe llegar al cliente")
	assert.NotContains(t, body["message"], "password",
		"el texto de autenticación no debe llegar al cliente")
}
