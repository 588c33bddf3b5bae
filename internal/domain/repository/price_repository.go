package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// PriceRepository puerto del libro de inventario (tabla price).
//
// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) y solo tiene sentido
// dentro de una transacción; la validación de stock suficiente se hace en el
// caso de uso sobre la fila bloqueada, nunca en un round trip separado.
type PriceRepository interface {
	GetByProductID(productsID string) (*entity.Price, error)
	GetForUpdate(productsID string) (*entity.Price, error)
	UpdateCounters(productsID string, stock, sell int) error
	List() ([]*entity.Price, error)
}
