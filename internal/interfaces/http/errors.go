package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// internalErrorMessage es lo único que ve el cliente en un 500: el detalle
// (DSN, hosts, texto del driver) se queda en el log del servidor.
const internalErrorMessage = "error interno del servidor"

// writeInternal registra el error con detalle y responde el mensaje genérico.
func writeInternal(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("user_id", GetUserID(c)).
		Msg("error no manejado atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: internalErrorMessage,
	})
}
