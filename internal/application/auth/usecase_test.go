package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/leave-tracker/internal/application/auth"
	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/mocks"
	"github.com/jhoicas/leave-tracker/pkg/jwt"
)

var cfg = auth.JWTConfig{Secret: "s3cret", ExpMinutes: 5, Issuer: "leave-tracker", InviteExpMinutes: 60}

func newAuth(t *testing.T) (*auth.AuthUseCase, *mocks.UserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := mocks.NewUserRepo(
		&entity.User{ID: "u-staff", Name: "Sam", Email: "sam@example.org", Role: access.Staff, PasswordHash: string(hash)},
		&entity.User{ID: "u-admin", Name: "Ada", Email: "ada@example.org", Role: access.Admin, PasswordHash: string(hash)},
	)
	return auth.NewAuthUseCase(repo, cfg), repo
}

func TestLogin_OK(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "sam@example.org", Password: "correct-horse"})
	require.NoError(t, err)

	userID, role, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-staff", userID)
	assert.Equal(t, "staff", role)
	assert.Equal(t, "staff", out.User.Role)
}

func TestLogin_MismoErrorParaEmailYPassword(t *testing.T) {
	uc, _ := newAuth(t)
	_, errPwd := uc.Login(context.Background(), dto.LoginRequest{Email: "sam@example.org", Password: "wrong"})
	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.org", Password: "wrong"})
	assert.ErrorIs(t, errPwd, domain.ErrUnauthorized)
	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
}

func TestInviteRegister(t *testing.T) {
	uc, repo := newAuth(t)
	admin := guard.Actor{ID: "u-admin", Role: access.Admin}
	inv, err := uc.Invite(context.Background(), admin, dto.InviteRequest{Email: "new@example.org", Role: "volunteer"}, "https://leave.example.org/")
	require.NoError(t, err)
	assert.Equal(t, "https://leave.example.org/register/"+inv.Token, inv.Link)

	user, err := uc.Register(context.Background(), inv.Token, dto.RegisterRequest{
		Name: "Nina", Email: "new@example.org", CountryCode: "ke", Password: "long-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, "volunteer", user.Role)
	assert.Equal(t, "KE", user.CountryCode)

	stored, err := repo.GetByEmail(context.Background(), "new@example.org")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long-enough")))

	_, err = uc.Register(context.Background(), inv.Token, dto.RegisterRequest{Name: "Nina", Email: "new@example.org", Password: "long-enough"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "la invitación no crea dos cuentas")
}

func TestInvite_SoloAdmin(t *testing.T) {
	uc, _ := newAuth(t)
	staff := guard.Actor{ID: "u-staff", Role: access.Staff}
	_, err := uc.Invite(context.Background(), staff, dto.InviteRequest{Email: "new@example.org", Role: "volunteer"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvite_EmailExistente(t *testing.T) {
	uc, _ := newAuth(t)
	admin := guard.Actor{ID: "u-admin", Role: access.Admin}
	_, err := uc.Invite(context.Background(), admin, dto.InviteRequest{Email: "sam@example.org", Role: "staff"}, "")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_TokenInvalidoOEmailDistinto(t *testing.T) {
	uc, _ := newAuth(t)
	in := dto.RegisterRequest{Name: "Nina", Email: "new@example.org", Password: "long-enough"}
	_, err := uc.Register(context.Background(), "not-a-token", in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	session, err := jwt.Generate(cfg.Secret, "u-staff", "staff", cfg.Issuer, 5)
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), session, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un token de sesión no sirve como invitación")

	token, _, err := jwt.GenerateInvite(cfg.Secret, "other@example.org", "volunteer", cfg.Issuer, 5)
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), token, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateAdmin(t *testing.T) {
	uc, _ := newAuth(t)
	out, err := uc.CreateAdmin(context.Background(), "Root", "root@example.org", "long-enough")
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)
}
