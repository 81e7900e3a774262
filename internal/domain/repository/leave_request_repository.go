package repository

import (
	"context"

	"github.com/jhoicas/leave-tracker/internal/domain/entity"
)

// RequestFilter criterios de búsqueda de solicitudes. Campos vacíos/nil no filtran.
type RequestFilter struct {
	ID          string
	VolunteerID string
	IsPending   *bool
}

// LeaveRequestRepository define el puerto de persistencia para LeaveRequest (DIP).
// Los tramos se leen y escriben junto con la solicitud.
type LeaveRequestRepository interface {
	Find(ctx context.Context, filter RequestFilter) ([]*entity.LeaveRequest, error)
	GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error)
	Count(ctx context.Context, filter RequestFilter) (int, error)
	Create(ctx context.Context, req *entity.LeaveRequest) error
	Update(ctx context.Context, req *entity.LeaveRequest) error
}

// WarningRepository advertencias de viaje por código de país.
type WarningRepository interface {
	FindAll(ctx context.Context) (map[string][]string, error)
	ReplaceAll(ctx context.Context, byCountry map[string][]string) error
}
