package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// Las implementaciones devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
}
