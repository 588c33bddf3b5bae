package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/export"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// ExportHandler entrega el listado de pedidos como archivo CSV o PDF.
type ExportHandler struct {
	uc  *export.UseCase
	log *logger.Logger
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(uc *export.UseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// CSV godoc
// @Summary      Exportar pedidos a CSV
// @Description  Descarga el listado de pedidos del solicitante (todos si es admin) como CSV.
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "archivo CSV"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /order/export [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	data, err := h.uc.CSV(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return writeInternal(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedidos_`+time.Now().Format("20060102")+`.csv"`)
	return c.Send(data)
}

// PDF godoc
// @Summary      Exportar pedidos a PDF
// @Description  Descarga el listado de pedidos del solicitante (todos si es admin) como PDF.
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "archivo PDF"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /transform/order/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	data, err := h.uc.PDF(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return writeInternal(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedidos_`+time.Now().Format("20060102")+`.pdf"`)
	return c.Send(data)
}
