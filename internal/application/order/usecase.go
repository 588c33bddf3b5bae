package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Formatos aceptados para buy_time en la creación por admin.
const (
	buyTimeLayout = "2006-01-02 15:04:05"
	buyDateLayout = "2006-01-02"
)

// UseCase motor de ciclo de vida de pedidos: submit, create, update, delete,
// cancel y listado. Toda ruta que muta stock corre dentro de una transacción
// con bloqueo de fila (SELECT FOR UPDATE) sobre price, de modo que la
// validación count <= stock y el descuento ocurren sobre la misma fila
// bloqueada y dos submits concurrentes no pueden sobrevender.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	priceRepo repository.PriceRepository
	userRepo  repository.UserRepository
}

// NewUseCase construye el motor de pedidos.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	priceRepo repository.PriceRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		priceRepo: priceRepo,
		userRepo:  userRepo,
	}
}

// Submit crea un pedido de un usuario final: valida producto y stock sobre la
// fila bloqueada, inserta el pedido (status pendiente) y ajusta el ledger
// (stock -= count, sell += count) en la misma transacción.
func (uc *UseCase) Submit(ctx context.Context, userID, role string, in dto.SubmitOrderRequest) (*entity.Order, error) {
	if role != entity.RoleUser {
		return nil, domain.ErrForbidden
	}
	if in.ProductsID == "" || in.Count <= 0 {
		return nil, domain.ErrInvalidInput
	}

	ord := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		ProductsID: in.ProductsID,
		Count:      in.Count,
		Status:     entity.StatusPending,
		BuyTime:    time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		priceRepo repository.PriceRepository,
		_ repository.UserRepository,
	) error {
		return insertWithLedger(orderRepo, priceRepo, ord)
	})
	if err != nil {
		return nil, err
	}
	return ord, nil
}

// AdminCreate crea un pedido en nombre de un usuario: valida que el usuario
// exista, normaliza buy_time (acepta fecha sola o timestamp completo) y aplica
// la misma mutación atómica de ledger que Submit.
func (uc *UseCase) AdminCreate(ctx context.Context, role string, in dto.AdminCreateOrderRequest) (*entity.Order, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.UserID == "" || in.ProductsID == "" || in.Count <= 0 {
		return nil, domain.ErrInvalidInput
	}

	status := entity.StatusPending
	if in.Status != nil {
		if !entity.IsValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}
	buyTime, err := parseBuyTime(in.BuyTime)
	if err != nil {
		return nil, err
	}

	ord := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		ProductsID: in.ProductsID,
		Count:      in.Count,
		Status:     status,
		BuyTime:    buyTime,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		priceRepo repository.PriceRepository,
		userRepo repository.UserRepository,
	) error {
		user, err := userRepo.GetByID(in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		return insertWithLedger(orderRepo, priceRepo, ord)
	})
	if err != nil {
		return nil, err
	}
	return ord, nil
}

// insertWithLedger bloquea la fila de price, valida stock suficiente sobre la
// fila bloqueada e inserta el pedido junto con el ajuste del ledger.
func insertWithLedger(
	orderRepo repository.OrderRepository,
	priceRepo repository.PriceRepository,
	ord *entity.Order,
) error {
	price, err := priceRepo.GetForUpdate(ord.ProductsID)
	if err != nil {
		return err
	}
	if price == nil {
		return domain.ErrNotFound
	}
	if ord.Count > price.Stock {
		return domain.ErrInsufficientStock
	}
	if err := orderRepo.Create(ord); err != nil {
		return err
	}
	return priceRepo.UpdateCounters(ord.ProductsID, price.Stock-ord.Count, price.Sell+ord.Count)
}

// AdminUpdate aplica un patch parcial {status, products_id, count} a un pedido.
// Al menos un campo debe venir. No toca el ledger: cambiar count después de la
// creación no reconcilia stock (brecha conocida, pendiente de decisión de
// producto; no "arreglar" en silencio).
func (uc *UseCase) AdminUpdate(ctx context.Context, role string, in dto.AdminUpdateOrderRequest) error {
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if in.ID == "" {
		return domain.ErrInvalidInput
	}
	patch := repository.OrderPatch{
		Status:     in.Status,
		ProductsID: in.ProductsID,
		Count:      in.Count,
	}
	if patch.IsEmpty() {
		return domain.ErrInvalidInput
	}
	if patch.Status != nil && !entity.IsValidStatus(*patch.Status) {
		return domain.ErrInvalidInput
	}
	if patch.Count != nil && *patch.Count <= 0 {
		return domain.ErrInvalidInput
	}
	if patch.ProductsID != nil && *patch.ProductsID == "" {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.PriceRepository,
		_ repository.UserRepository,
	) error {
		ord, err := orderRepo.GetByID(in.ID)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		return orderRepo.UpdatePartial(in.ID, patch)
	})
}

// AdminDelete elimina la fila del pedido incondicionalmente.
// No restaura stock: el borrado es administrativo, no una cancelación.
func (uc *UseCase) AdminDelete(ctx context.Context, role, id string) error {
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.PriceRepository,
		_ repository.UserRepository,
	) error {
		ord, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		return orderRepo.Delete(id)
	})
}

// UserCancel cancela un pedido propio. Política elegida: la cancelación marca
// status=cancelado y restaura stock (simétrico al descuento del submit); sell
// no se descuenta, queda como registro histórico de demanda. Ilegal sobre un
// pedido ya completado o cancelado, e ilegal sobre pedidos ajenos.
func (uc *UseCase) UserCancel(ctx context.Context, userID, role, id string) error {
	if role != entity.RoleUser {
		return domain.ErrForbidden
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		priceRepo repository.PriceRepository,
		_ repository.UserRepository,
	) error {
		ord, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		if ord.UserID != userID {
			return domain.ErrForbidden
		}
		if entity.IsTerminalStatus(ord.Status) {
			return domain.ErrOrderClosed
		}
		price, err := priceRepo.GetForUpdate(ord.ProductsID)
		if err != nil {
			return err
		}
		if price != nil {
			if err := priceRepo.UpdateCounters(ord.ProductsID, price.Stock+ord.Count, price.Sell); err != nil {
				return err
			}
		}
		return orderRepo.UpdateStatus(id, entity.StatusCancelled)
	})
}

// List devuelve los pedidos visibles para el solicitante: el admin ve todos
// (con el contacto del dueño), un usuario solo los propios. Orden buy_time
// descendente (decisión de usabilidad, no contrato).
func (uc *UseCase) List(ctx context.Context, userID, role string) (*dto.OrderListResponse, error) {
	var (
		rows []*entity.OrderWithUser
		err  error
	)
	if role == entity.RoleAdmin {
		rows, err = uc.orderRepo.ListAll()
	} else {
		rows, err = uc.orderRepo.ListByUser(userID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toListItem(r))
	}
	return &dto.OrderListResponse{Total: len(items), Orders: items}, nil
}

func toListItem(r *entity.OrderWithUser) dto.OrderListItem {
	return dto.OrderListItem{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductsID:  r.ProductsID,
		Count:       r.Count,
		Status:      r.Status,
		StatusLabel: entity.StatusLabel(r.Status),
		BuyTime:     r.BuyTime.Format(buyTimeLayout),
		UserName:    r.UserName,
		Address:     r.Address,
		Phone:       r.Phone,
	}
}

// parseBuyTime normaliza buy_time: vacío = ahora; acepta fecha sola
// (medianoche local) o timestamp completo.
func parseBuyTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.ParseInLocation(buyTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(buyDateLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}
