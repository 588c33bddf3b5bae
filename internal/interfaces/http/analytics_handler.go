package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/analytics"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// AnalyticsHandler maneja las rutas de analítica (solo admin).
type AnalyticsHandler struct {
	uc  *analytics.UseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(uc *analytics.UseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// Dashboard godoc
// @Summary      Dashboard del administrador
// @Description  Utilidad de la última semana y productos más urgentes de reponer.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /analyse [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetRole(c))
	if err != nil {
		return h.writeAnalyticsError(c, err)
	}
	return c.JSON(out)
}

// Weekly godoc
// @Summary      Utilidad de la última semana (por día)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitSeriesDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /analyse/weekly [get]
func (h *AnalyticsHandler) Weekly(c *fiber.Ctx) error {
	return h.profitSeries(c, analytics.PeriodWeek)
}

// OneMonth godoc
// @Summary      Utilidad del último mes (por día)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitSeriesDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /analyse/onemonth [get]
func (h *AnalyticsHandler) OneMonth(c *fiber.Ctx) error {
	return h.profitSeries(c, analytics.PeriodMonth)
}

// Monthly godoc
// @Summary      Utilidad de los últimos doce meses (por mes)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfitSeriesDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /analyse/monthly [get]
func (h *AnalyticsHandler) Monthly(c *fiber.Ctx) error {
	return h.profitSeries(c, analytics.PeriodYear)
}

// StockSell godoc
// @Summary      Ranking de reposición
// @Description  Todos los productos con su prioridad de reposición, orden estable por prioridad y sell descendentes.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSellReportDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /analyse/stock_sell [get]
func (h *AnalyticsHandler) StockSell(c *fiber.Ctx) error {
	out, err := h.uc.StockSellReport(c.Context(), GetRole(c))
	if err != nil {
		return h.writeAnalyticsError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) profitSeries(c *fiber.Ctx, period string) error {
	out, err := h.uc.ProfitSeries(c.Context(), GetRole(c), period)
	if err != nil {
		return h.writeAnalyticsError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) writeAnalyticsError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el administrador puede consultar la analítica"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
	default:
		return writeInternal(c, h.log, err)
	}
}
