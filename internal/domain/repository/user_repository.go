package repository

import (
	"context"

	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
)

// UserFilter criterios de búsqueda de usuarios. Campos vacíos no filtran.
type UserFilter struct {
	ID      string
	Email   string
	MaxRole access.Role // solo usuarios con rol <= MaxRole (0 = sin límite)
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Find(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
