package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/pedidos-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo almacén de usuarios en memoria indexado por teléfono.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byPhone map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byPhone: make(map[string]*entity.User),
	}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byPhone[u.Phone]; ok {
		return domain.ErrPhoneAlreadyExists
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byPhone[u.Phone] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.byID[id], nil }

func (f *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) { return f.byPhone[phone], nil }

func newTestUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pedidos-api-test",
	})
	return uc, repo
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Phone:      "13800000001",
		Pwd:        "secreto1",
		ConfirmPwd: "secreto1",
		UserName:   "Ana",
		Address:    "Calle 1 #2-3",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_UsuarioValido(t *testing.T) {
	uc, repo := newTestUseCase()

	out, err := uc.Register(validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleUser, out.Role, "sin rol explícito se registra como user")
	assert.Equal(t, "13800000001", out.Phone)

	stored := repo.byPhone["13800000001"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto1", stored.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegister_TelefonoInvalido(t *testing.T) {
	uc, _ := newTestUseCase()

	for _, phone := range []string{"", "123", "1380000000a", "138000000012"} {
		in := validRegister()
		in.Phone = phone
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "teléfono %q debe rechazarse", phone)
	}
}

func TestRegister_PasswordFueraDeRango(t *testing.T) {
	uc, _ := newTestUseCase()

	for _, pwd := range []string{"corta", "demasiadolarga13"} {
		in := validRegister()
		in.Pwd, in.ConfirmPwd = pwd, pwd
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "pwd %q debe rechazarse", pwd)
	}
}

func TestRegister_ConfirmacionNoCoincide(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validRegister()
	in.ConfirmPwd = "otracosa1"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_TelefonoDuplicado(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, err = uc.Register(validRegister())
	assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
}

func TestRegister_RolDesconocido(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validRegister()
	in.Role = "superadmin"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_NombreVacio_UsaTelefono(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validRegister()
	in.UserName = ""
	out, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, in.Phone, out.UserName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteJWTConRol(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Phone: "13800000001", Pwd: "secreto1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, phone, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "13800000001", phone)
	assert.Equal(t, entity.RoleUser, role, "el rol del token sale del registro, no del request")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Phone: "13800000001", Pwd: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Login(dto.LoginRequest{Phone: "13899999999", Pwd: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_RolDelFormularioNoCoincide(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(validRegister()) // queda como user
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Phone: "13800000001", Pwd: "secreto1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"declararse admin en el login no eleva privilegios")
}

func TestLogin_SinCredenciales(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
