package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

// Mensajes de las acciones sobre usuarios.
const (
	MsgProfileUpdated = "The profile has been updated."
	MsgUserDeleted    = "The user has been deleted."
	MsgEmailTaken     = "That email address is already in use."
)

// UserUseCase edición de perfiles y borrado de usuarios.
type UserUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, now: time.Now}
}

// ProfileHref ruta del perfil de un usuario.
func ProfileHref(userID string) string {
	return "/profile/" + userID
}

// UpdateProfile aplica los campos de in.New que difieren de in.Old. Cada campo cambiado debe
// estar en el conjunto permitido para el actor; si alguno no lo está no se aplica nada.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, actor guard.Actor, targetID string, in dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	if d := guard.ViewProfile(actor, targetID); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}
	if err := dto.Validate(in.New); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if user == nil {
		return nil, &domain.RedirectError{
			To:       navigation.HrefDashboard,
			FlashKey: flash.KeyDashboard,
			Flash:    &domain.Flash{Text: MsgProfileNotFound, Class: domain.FlashDanger},
			Err:      domain.ErrUserNotFound,
		}
	}

	allowed := guard.ProfileFields(actor, user)
	changed := changedFields(in.Old, in.New)
	for field := range changed {
		if !allowed[field] {
			return nil, &domain.RedirectError{
				To:       ProfileHref(user.ID),
				FlashKey: flash.KeyProfile,
				Flash:    &domain.Flash{Text: fmt.Sprintf("You do not have permission to change the %s of this user.", field), Class: domain.FlashDanger},
				Err:      domain.ErrForbidden,
			}
		}
	}

	if v, ok := changed[guard.FieldEmail]; ok && !strings.EqualFold(v, user.Email) {
		existing, err := uc.userRepo.GetByEmail(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	for field, v := range changed {
		switch field {
		case guard.FieldName:
			user.Name = v
		case guard.FieldEmail:
			user.Email = v
		case guard.FieldPhone:
			user.Phone = v
		case guard.FieldCountryCode:
			user.CountryCode = strings.ToUpper(v)
		case guard.FieldRole:
			role, ok := access.ParseRole(v)
			if !ok {
				return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, v)
			}
			user.Role = role
		}
	}
	if len(changed) > 0 {
		user.UpdatedAt = uc.now()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}
	return toUserResponse(user), nil
}

// changedFields campos presentes en next cuyo valor difiere de prev.
func changedFields(prev, next dto.ProfilePatch) map[guard.Field]string {
	out := make(map[guard.Field]string)
	pick := func(f guard.Field, p, n *string) {
		if n == nil {
			return
		}
		if p != nil && *p == *n {
			return
		}
		out[f] = strings.TrimSpace(*n)
	}
	pick(guard.FieldName, prev.Name, next.Name)
	pick(guard.FieldEmail, prev.Email, next.Email)
	pick(guard.FieldPhone, prev.Phone, next.Phone)
	pick(guard.FieldCountryCode, prev.CountryCode, next.CountryCode)
	pick(guard.FieldRole, prev.Role, next.Role)
	return out
}

// Delete elimina un usuario (solo Admin, nunca a sí mismo).
func (uc *UserUseCase) Delete(ctx context.Context, actor guard.Actor, userID string) error {
	if d := guard.DeleteUser(actor); !d.Allowed {
		return d.Err(flash.KeyDashboard)
	}
	if userID == "" {
		return fmt.Errorf("%w: userId is required", domain.ErrInvalidInput)
	}
	if userID == actor.ID {
		return fmt.Errorf("%w: you cannot delete your own account", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if user == nil {
		return &domain.RedirectError{
			To:       navigation.HrefUsers,
			FlashKey: flash.KeyUsers,
			Flash:    &domain.Flash{Text: MsgProfileNotFound, Class: domain.FlashDanger},
			Err:      domain.ErrUserNotFound,
		}
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
