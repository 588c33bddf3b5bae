package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/message"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// MessageHandler maneja los mensajes usuario → administrador (protegido).
type MessageHandler struct {
	uc  *message.UseCase
	log *logger.Logger
}

// NewMessageHandler construye el handler de mensajes.
func NewMessageHandler(uc *message.UseCase, log *logger.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar mensajes
// @Description  El admin ve todos los mensajes con el remitente; un usuario solo los propios.
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /message [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), GetRole(c))
	if err != nil {
		return writeInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar mensaje
// @Description  Guarda un mensaje del usuario autenticado (máximo 100 caracteres).
// @Tags         messages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitMessageRequest  true  "message, type?"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /message/submit [post]
func (h *MessageHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Submit(GetUserID(c), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el mensaje no puede estar vacío ni superar 100 caracteres"})
		}
		return writeInternal(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "success", Message: "mensaje enviado"})
}

// Receive godoc
// @Summary      Bandeja del administrador
// @Description  Todos los mensajes recibidos, del más reciente al más antiguo. Solo admin.
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /message/receive [get]
func (h *MessageHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.Receive(GetRole(c))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el administrador puede leer la bandeja"})
		}
		return writeInternal(c, h.log, err)
	}
	return c.JSON(out)
}
