package auth

import (
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Reglas de registro.
const (
	phoneLen = 11
	pwdMin   = 6
	pwdMax   = 12
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login por teléfono.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida teléfono (11 dígitos), contraseña (6-12,
// debe coincidir con la confirmación), hashea con bcrypt y persiste. El rol
// queda fijado en el registro y es inmutable después.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !validPhone(in.Phone) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Pwd) < pwdMin || len(in.Pwd) > pwdMax {
		return nil, domain.ErrInvalidInput
	}
	if in.Pwd != in.ConfirmPwd {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPhoneAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Pwd), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.UserName
	if name == "" {
		name = in.Phone
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Role:         role,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		UserName:     name,
		Address:      in.Address,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica teléfono/contraseña, genera el JWT y retorna token + usuario.
// Si el request trae rol, debe coincidir con el registrado (el rol nunca se
// toma del formulario para decisiones de autorización).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Phone == "" || in.Pwd == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Pwd)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if in.Role != "" && in.Role != user.Role {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Phone, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func validPhone(phone string) bool {
	if len(phone) != phoneLen {
		return false
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Role:      u.Role,
		Phone:     u.Phone,
		UserName:  u.UserName,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}
