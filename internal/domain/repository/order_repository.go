package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// OrderPatch actualización parcial de un pedido (solo los campos mutables).
// Un puntero nil significa "no tocar". Campos no enumerados aquí se rechazan
// en la frontera HTTP, no se ignoran en silencio.
type OrderPatch struct {
	Status     *int
	ProductsID *string
	Count      *int
}

// IsEmpty indica si el patch no trae ningún campo reconocido.
func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.ProductsID == nil && p.Count == nil
}

// OrderRepository puerto de persistencia de pedidos.
// Las implementaciones devuelven (nil, nil) cuando el pedido no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetForUpdate(id string) (*entity.Order, error)
	UpdatePartial(id string, patch OrderPatch) error
	UpdateStatus(id string, status int) error
	Delete(id string) error
	ListAll() ([]*entity.OrderWithUser, error)
	ListByUser(userID string) ([]*entity.OrderWithUser, error)
}
