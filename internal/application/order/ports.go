package order

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de pedidos:
// la mutación del ledger (stock/sell) y la del pedido ocurren juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		priceRepo repository.PriceRepository,
		userRepo repository.UserRepository,
	) error) error
}
