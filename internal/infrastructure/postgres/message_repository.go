package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL
// (usable con pool o tx).
type MessageRepo struct {
	q Querier
}

// NewMessageRepository construye el adaptador de persistencia para mensajes.
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// Create persiste un mensaje. Los mensajes son inmutables: no hay update ni
// delete.
func (r *MessageRepo) Create(message *entity.Message) error {
	query := `
		INSERT INTO messages (id, user_id, message, time, type)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		message.ID, message.UserID, message.Message, message.Time, message.Type,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListAll lista todos los mensajes con el nombre del remitente, del más
// reciente al más antiguo.
func (r *MessageRepo) ListAll() ([]*entity.MessageWithUser, error) {
	query := msgListQuery + ` ORDER BY m.time DESC`
	return r.list(query)
}

// ListByUser lista los mensajes de un usuario, del más reciente al más antiguo.
func (r *MessageRepo) ListByUser(userID string) ([]*entity.MessageWithUser, error) {
	query := msgListQuery + ` WHERE m.user_id = $1 ORDER BY m.time DESC`
	return r.list(query, userID)
}

const msgListQuery = `
	SELECT m.id, m.user_id, m.message, m.time, m.type, u.user_name
	FROM messages m
	JOIN users u ON u.id = m.user_id`

func (r *MessageRepo) list(query string, args ...any) ([]*entity.MessageWithUser, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.MessageWithUser
	for rows.Next() {
		var m entity.MessageWithUser
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message.Message, &m.Time, &m.Type, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
