package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// MessageRepository puerto de persistencia de mensajes.
type MessageRepository interface {
	Create(message *entity.Message) error
	ListAll() ([]*entity.MessageWithUser, error)
	ListByUser(userID string) ([]*entity.MessageWithUser, error)
}
