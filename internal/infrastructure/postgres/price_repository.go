package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación del libro de inventario (tabla price) sobre
// PostgreSQL (usable con pool o tx).
type PriceRepo struct {
	q Querier
}

// NewPriceRepository construye el adaptador del libro de inventario.
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// GetByProductID obtiene la fila de un producto sin bloquearla.
func (r *PriceRepo) GetByProductID(productsID string) (*entity.Price, error) {
	query := `
		SELECT products_id, stock, sell, products_price, cost
		FROM price WHERE products_id = $1`
	return r.scanOne(query, productsID)
}

// GetForUpdate obtiene la fila de un producto y la bloquea (SELECT FOR
// UPDATE). Solo tiene sentido dentro de una transacción: el bloqueo
// serializa los pedidos concurrentes sobre el mismo producto.
func (r *PriceRepo) GetForUpdate(productsID string) (*entity.Price, error) {
	query := `
		SELECT products_id, stock, sell, products_price, cost
		FROM price WHERE products_id = $1
		FOR UPDATE`
	return r.scanOne(query, productsID)
}

// UpdateCounters fija stock y sell de un producto. Los valores ya vienen
// calculados por el caso de uso sobre la fila bloqueada.
func (r *PriceRepo) UpdateCounters(productsID string, stock, sell int) error {
	query := `UPDATE price SET stock = $2, sell = $3 WHERE products_id = $1`
	tag, err := r.q.Exec(context.Background(), query, productsID, stock, sell)
	if err != nil {
		return fmt.Errorf("update price counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update price counters: producto %s no existe", productsID)
	}
	return nil
}

// List devuelve el catálogo completo ordenado por producto.
func (r *PriceRepo) List() ([]*entity.Price, error) {
	query := `
		SELECT products_id, stock, sell, products_price, cost
		FROM price ORDER BY products_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list price: %w", err)
	}
	defer rows.Close()
	var list []*entity.Price
	for rows.Next() {
		var p entity.Price
		if err := rows.Scan(&p.ProductsID, &p.Stock, &p.Sell, &p.ProductsPrice, &p.Cost); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PriceRepo) scanOne(query, productsID string) (*entity.Price, error) {
	var p entity.Price
	err := r.q.QueryRow(context.Background(), query, productsID).Scan(
		&p.ProductsID, &p.Stock, &p.Sell, &p.ProductsPrice, &p.Cost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price: %w", err)
	}
	return &p, nil
}
