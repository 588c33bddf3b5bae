package entity

import "time"

// Roles válidos para User. El rol es inmutable después del registro.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario del sistema. El teléfono es la clave de acceso (único).
type User struct {
	ID           string
	Role         string // admin, user
	Phone        string // 11 dígitos, clave de login
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	UserName     string
	Address      string
	CreatedAt    time.Time
}
