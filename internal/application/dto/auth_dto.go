package dto

import "time"

// RegisterRequest cuerpo de POST /register.
type RegisterRequest struct {
	Role       string `json:"role"` // admin | user (por defecto user)
	Phone      string `json:"phone"`
	Pwd        string `json:"pwd"`
	ConfirmPwd string `json:"confirm_pwd"`
	UserName   string `json:"user_name"`
	Address    string `json:"address"`
}

// LoginRequest cuerpo de POST /login.
type LoginRequest struct {
	Phone string `json:"phone"`
	Pwd   string `json:"pwd"`
	Role  string `json:"role,omitempty"` // opcional: si viene, debe coincidir con el rol registrado
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	UserName  string    `json:"user_name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
