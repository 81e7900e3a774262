package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
	"github.com/jhoicas/leave-tracker/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret           string
	ExpMinutes       int
	Issuer           string
	InviteExpMinutes int
}

// AuthUseCase casos de uso de autenticación: login, invitación y registro.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Invite emite un token de registro para un email nuevo (solo Admin).
// linkBase es la URL absoluta a la que se concatena el token.
func (uc *AuthUseCase) Invite(ctx context.Context, actor guard.Actor, in dto.InviteRequest, linkBase string) (*dto.InviteResponse, error) {
	if d := guard.InviteUsers(actor); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("invite: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	token, exp, err := jwt.GenerateInvite(uc.jwtCfg.Secret, in.Email, in.Role, uc.jwtCfg.Issuer, uc.jwtCfg.InviteExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.InviteResponse{
		Email:     in.Email,
		Role:      in.Role,
		Token:     token,
		Link:      strings.TrimRight(linkBase, "/") + "/register/" + token,
		ExpiresAt: exp,
	}, nil
}

// Register crea el usuario invitado con el rol que fijó el admin.
// El email del formulario debe coincidir con el de la invitación.
func (uc *AuthUseCase) Register(ctx context.Context, token string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email, roleName, err := jwt.ParseInvite(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, ok := access.ParseRole(roleName)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(in.Email), email) {
		return nil, fmt.Errorf("%w: the email does not match the invitation", domain.ErrInvalidInput)
	}
	return uc.create(ctx, in.Name, email, in.Phone, in.CountryCode, in.Password, role)
}

// CreateAdmin alta directa de un administrador (arranque desde la CLI).
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, name, email, password string) (*dto.UserResponse, error) {
	in := dto.RegisterRequest{Name: name, Email: email, Password: password}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.create(ctx, name, email, "", "", password, access.Admin)
}

func (uc *AuthUseCase) create(ctx context.Context, name, email, phone, country, password string, role access.Role) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		CountryCode:  strings.ToUpper(country),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		CountryCode: u.CountryCode,
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
