package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// OrderHandler maneja el ciclo de vida de pedidos (protegido).
type OrderHandler struct {
	uc  *order.UseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *order.UseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar pedidos
// @Description  El admin ve todos los pedidos con el contacto del comprador; un usuario solo los propios.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /order/manage [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return writeInternal(c, h.log, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar pedido (usuario)
// @Description  Crea un pedido del usuario autenticado. Descuenta stock e incrementa sell en la misma transacción.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitOrderRequest  true  "products_id, count"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /order/manage/submit [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ord, err := h.uc.Submit(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		return h.writeOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "success", Message: "pedido " + ord.ID + " creado"})
}

// Create godoc
// @Summary      Crear pedido (admin)
// @Description  Crea un pedido en nombre de un usuario. Mismo ajuste transaccional de ledger que submit.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminCreateOrderRequest  true  "user_id, products_id, count, status?, buy_time?"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /order/manage/create [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.AdminCreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ord, err := h.uc.AdminCreate(c.Context(), GetRole(c), in)
	if err != nil {
		return h.writeOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "success", Message: "pedido " + ord.ID + " creado"})
}

// Update godoc
// @Summary      Actualizar pedido (admin)
// @Description  Actualización parcial: solo status, products_id y count son mutables. No toca el ledger.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminUpdateOrderRequest  true  "id + campos a cambiar"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /order/manage/update [post]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.AdminUpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AdminUpdate(c.Context(), GetRole(c), in); err != nil {
		return h.writeOrderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "pedido actualizado"})
}

// Delete godoc
// @Summary      Eliminar pedido (admin)
// @Description  Borra el registro del pedido. No restaura stock ni sell.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderIDRequest  true  "id del pedido"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /order/manage/delete [post]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	var in dto.OrderIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AdminDelete(c.Context(), GetRole(c), in.ID); err != nil {
		return h.writeOrderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "pedido eliminado"})
}

// Cancel godoc
// @Summary      Cancelar pedido (usuario)
// @Description  Cancela un pedido propio no terminal: restaura stock, sell no se descuenta.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderIDRequest  true  "id del pedido"
// @Success      200   {object}  dto.StatusResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /order/manage/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	var in dto.OrderIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UserCancel(c.Context(), GetUserID(c), GetRole(c), in.ID); err != nil {
		return h.writeOrderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "pedido cancelado"})
}

// writeOrderError mapea errores de dominio del motor de pedidos a HTTP.
// Lo que no es un error de dominio se registra y se responde genérico.
func (h *OrderHandler) writeOrderError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido o producto no encontrado"})
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el usuario no existe"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case domain.ErrOrderClosed:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_CLOSED", Message: "el pedido ya está completado o cancelado"})
	default:
		return writeInternal(c, h.log, err)
	}
}
