package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/approval"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/legdate"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

// Mensajes de las acciones sobre solicitudes.
const (
	MsgRequestSubmitted = "Your leave request has been submitted."
	MsgRequestUpdated   = "The leave request has been updated."
	MsgRequestApproved  = "The request has been approved."
	MsgRequestDenied    = "The request has been denied."
	MsgRequestNotFound  = "The requested leave request could not be found."
	MsgAlreadyReviewed  = "This request has already been reviewed."
)

// RequestUseCase alta, edición y revisión de solicitudes. Toda escritura pasa por
// TxRunner: una solicitud y sus tramos se confirman juntos o no se confirman.
type RequestUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewRequestUseCase construye el caso de uso de solicitudes.
func NewRequestUseCase(txRunner TxRunner) *RequestUseCase {
	return &RequestUseCase{txRunner: txRunner, now: time.Now}
}

// Submit valida el formulario y registra la solicitud como pendiente.
// Staff o superior puede registrarla en nombre de un voluntario.
func (uc *RequestUseCase) Submit(ctx context.Context, actor guard.Actor, in dto.SubmitRequest) (*entity.LeaveRequest, error) {
	legs, err := parseLegs(in)
	if err != nil {
		return nil, err
	}
	volunteerID := guard.RequesteeFor(actor, in.Volunteer)
	now := uc.now()
	req := &entity.LeaveRequest{
		ID:                  uuid.New().String(),
		VolunteerID:         volunteerID,
		Legs:                legs,
		Status:              entity.RequestStatus{IsPending: true},
		CounterpartApproved: in.CounterpartOK(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	err = uc.txRunner.Run(ctx, func(requestRepo repository.LeaveRequestRepository, userRepo repository.UserRepository) error {
		if volunteerID != actor.ID {
			volunteer, err := userRepo.GetByID(ctx, volunteerID)
			if err != nil {
				return fmt.Errorf("buscar voluntario: %w", err)
			}
			if volunteer == nil || volunteer.Role != access.Volunteer {
				return fmt.Errorf("%w: the selected volunteer does not exist", domain.ErrInvalidInput)
			}
		}
		return requestRepo.Create(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	return req, nil
}

// Update reemplaza tramos y contraparte de una solicitud pendiente. La última escritura gana.
func (uc *RequestUseCase) Update(ctx context.Context, actor guard.Actor, requestID string, in dto.SubmitRequest) (*entity.LeaveRequest, error) {
	legs, err := parseLegs(in)
	if err != nil {
		return nil, err
	}
	var updated *entity.LeaveRequest
	err = uc.txRunner.Run(ctx, func(requestRepo repository.LeaveRequestRepository, _ repository.UserRepository) error {
		req, err := requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if d := guard.EditRequest(actor, req); !d.Allowed {
			return d.Err(flash.KeyDashboard)
		}
		req.Legs = legs
		req.CounterpartApproved = in.CounterpartOK()
		req.UpdatedAt = uc.now()
		if err := requestRepo.Update(ctx, req); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	return updated, nil
}

// Decide aprueba o deniega. El permiso por rol se consulta antes de cargar la solicitud;
// nadie revisa una solicitud propia.
func (uc *RequestUseCase) Decide(ctx context.Context, actor guard.Actor, requestID string, approve bool) (*entity.LeaveRequest, error) {
	if d := guard.ReviewRequest(actor); !d.Allowed {
		return nil, d.Err(flash.KeyDashboard)
	}
	var decided *entity.LeaveRequest
	err := uc.txRunner.RunStrict(ctx, func(requestRepo repository.LeaveRequestRepository, _ repository.UserRepository) error {
		req, err := requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return &domain.RedirectError{
				To:       navigation.HrefDashboard,
				FlashKey: flash.KeyDashboard,
				Flash:    &domain.Flash{Text: MsgRequestNotFound, Class: domain.FlashDanger},
				Err:      domain.ErrNotFound,
			}
		}
		if d := guard.DecideRequest(actor, req); !d.Allowed {
			return d.Err(flash.KeyApproval)
		}
		status, err := approval.Decide(req.Status, approve)
		if errors.Is(err, domain.ErrAlreadyDecided) {
			return &domain.RedirectError{
				To:       RequestHref(req.ID),
				FlashKey: flash.KeyApproval,
				Flash:    &domain.Flash{Text: MsgAlreadyReviewed, Class: domain.FlashDanger},
				Err:      err,
			}
		}
		now := uc.now()
		req.Status = status
		req.ReviewerID = actor.ID
		req.DecidedAt = &now
		req.UpdatedAt = now
		if err := requestRepo.Update(ctx, req); err != nil {
			return err
		}
		decided = req
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decide request: %w", err)
	}
	return decided, nil
}

// RequestHref ruta de la vista de aprobación de una solicitud.
func RequestHref(id string) string {
	return "/requests/" + id
}

// parseLegs valida el formulario y convierte las fechas a la codificación almacenada.
func parseLegs(in dto.SubmitRequest) ([]entity.Leg, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	legs := make([]entity.Leg, 0, len(in.Legs))
	for i, l := range in.Legs {
		start, err := legdate.ParseDisplay(l.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: leg %d has an invalid start date", domain.ErrInvalidInput, i+1)
		}
		end, err := legdate.ParseDisplay(l.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: leg %d has an invalid end date", domain.ErrInvalidInput, i+1)
		}
		startEnc, endEnc := legdate.ToStorage(start), legdate.ToStorage(end)
		if endEnc < startEnc {
			return nil, fmt.Errorf("%w: leg %d ends before it starts", domain.ErrInvalidInput, i+1)
		}
		legs = append(legs, entity.Leg{
			CountryCode: strings.ToUpper(l.Country),
			StartDate:   startEnc,
			EndDate:     endEnc,
		})
	}
	return legs, nil
}
