package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, products_id, count, status, buy_time)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.ProductsID, order.Count, order.Status, order.BuyTime,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, products_id, count, status, buy_time
		FROM orders WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene un pedido y bloquea la fila (SELECT FOR UPDATE).
// Serializa cancelaciones concurrentes del mismo pedido.
func (r *OrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, products_id, count, status, buy_time
		FROM orders WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

// UpdatePartial aplica un patch de campos mutables. Construye el SET solo
// con los campos presentes; un patch vacío es un no-op.
func (r *OrderRepo) UpdatePartial(id string, patch repository.OrderPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	sets := make([]string, 0, 3)
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ProductsID != nil {
		add("products_id", *patch.ProductsID)
	}
	if patch.Count != nil {
		add("count", *patch.Count)
	}

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $1", strings.Join(sets, ", "))
	tag, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order: pedido %s no existe", id)
	}
	return nil
}

// UpdateStatus cambia solo el estado del pedido.
func (r *OrderRepo) UpdateStatus(id string, status int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order status: pedido %s no existe", id)
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// ListAll lista todos los pedidos con los datos del comprador, del más
// reciente al más antiguo.
func (r *OrderRepo) ListAll() ([]*entity.OrderWithUser, error) {
	query := listQuery + ` ORDER BY o.buy_time DESC`
	return r.list(query)
}

// ListByUser lista los pedidos de un usuario, del más reciente al más antiguo.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.OrderWithUser, error) {
	query := listQuery + ` WHERE o.user_id = $1 ORDER BY o.buy_time DESC`
	return r.list(query, userID)
}

const listQuery = `
	SELECT o.id, o.user_id, o.products_id, o.count, o.status, o.buy_time,
	       u.user_name, u.address, u.phone
	FROM orders o
	JOIN users u ON u.id = o.user_id`

func (r *OrderRepo) list(query string, args ...any) ([]*entity.OrderWithUser, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderWithUser
	for rows.Next() {
		var o entity.OrderWithUser
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.ProductsID, &o.Count, &o.Status, &o.BuyTime,
			&o.UserName, &o.Address, &o.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *OrderRepo) scanOne(query, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.ProductsID, &o.Count, &o.Status, &o.BuyTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}
