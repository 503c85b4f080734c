package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/solicitudes-api/internal/application/auth"
	"github.com/tu-usuario/solicitudes-api/internal/application/dto"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/solicitudes-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func buildAuthUC() (*auth.AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "solicitudes-api-test",
	})
	return uc, repo
}

func TestRegister(t *testing.T) {
	uc, repo := buildAuthUC()

	resp, err := uc.Register(dto.RegisterRequest{
		Email:    "admin@tienda.com.py",
		Password: "contraseña-larga",
		Name:     "Admin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "admin@tienda.com.py", resp.Email)

	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "contraseña-larga", repo.users[0].PasswordHash,
		"el password nunca se guarda en claro")
}

func TestRegister_EmailInvalido(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "sin-arroba", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "admin@tienda.com.py", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "admin@tienda.com.py", Password: "otro-pass"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_NombreVacioUsaEmail(t *testing.T) {
	uc, _ := buildAuthUC()
	resp, err := uc.Register(dto.RegisterRequest{Email: "x@y.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "x@y.com", resp.Name)
}

func TestLogin(t *testing.T) {
	uc, _ := buildAuthUC()
	registered, err := uc.Register(dto.RegisterRequest{
		Email: "admin@tienda.com.py", Password: "contraseña-larga",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{
		Email: "admin@tienda.com.py", Password: "contraseña-larga",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	userID, email, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err, "el token emitido debe validar con el mismo secret")
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "admin@tienda.com.py", email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "admin@tienda.com.py", Password: "correcta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@tienda.com.py", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioNoExiste(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "da-igual"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
