package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/domain/approval"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/legdate"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

var regionNamer = display.English.Regions()

// countryName nombre en inglés de un código ISO 3166-1 alfa-2; el propio código si no se reconoce.
func countryName(code string) string {
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil {
		return code
	}
	if name := regionNamer.Name(region); name != "" {
		return name
	}
	return code
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
		CountryName: countryName(u.CountryCode),
		Role:        u.Role.String(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out
}

// toLegInputs tramos almacenados en la forma que espera el formulario (fechas "M DD YYYY",
// countryCode expuesto como country).
func toLegInputs(legs []entity.Leg) []dto.LegInput {
	out := make([]dto.LegInput, 0, len(legs))
	for _, leg := range legs {
		out = append(out, dto.LegInput{
			Country:   leg.CountryCode,
			StartDate: legdate.ToDisplay(leg.StartDate).String(),
			EndDate:   legdate.ToDisplay(leg.EndDate).String(),
		})
	}
	return out
}

// userNames resuelve nombres de usuario con una caché por llamada.
type userNames struct {
	repo  repository.UserRepository
	cache map[string]string
}

func newUserNames(repo repository.UserRepository) *userNames {
	return &userNames{repo: repo, cache: make(map[string]string)}
}

func (n *userNames) summary(ctx context.Context, id string) (dto.UserSummary, error) {
	if name, ok := n.cache[id]; ok {
		return dto.UserSummary{ID: id, Name: name}, nil
	}
	u, err := n.repo.GetByID(ctx, id)
	if err != nil {
		return dto.UserSummary{}, err
	}
	name := ""
	if u != nil {
		name = u.Name
	}
	n.cache[id] = name
	return dto.UserSummary{ID: id, Name: name}, nil
}

func (n *userNames) requestView(ctx context.Context, req *entity.LeaveRequest) (dto.LeaveRequestView, error) {
	volunteer, err := n.summary(ctx, req.VolunteerID)
	if err != nil {
		return dto.LeaveRequestView{}, err
	}
	v := dto.LeaveRequestView{
		ID:                  req.ID,
		Volunteer:           volunteer,
		State:               approval.StateOf(req.Status).String(),
		IsPending:           req.Status.IsPending,
		IsApproved:          req.Status.IsApproved,
		CounterpartApproved: req.CounterpartApproved,
		CreatedAt:           req.CreatedAt,
		DecidedAt:           req.DecidedAt,
		Legs:                make([]dto.LegView, 0, len(req.Legs)),
	}
	if req.ReviewerID != "" {
		reviewer, err := n.summary(ctx, req.ReviewerID)
		if err != nil {
			return dto.LeaveRequestView{}, err
		}
		v.Reviewer = &reviewer
	}
	for _, leg := range req.Legs {
		v.Legs = append(v.Legs, dto.LegView{
			Country:     leg.CountryCode,
			CountryName: countryName(leg.CountryCode),
			StartDate:   legdate.ToDisplay(leg.StartDate).String(),
			EndDate:     legdate.ToDisplay(leg.EndDate).String(),
			Warnings:    leg.Warnings,
		})
	}
	return v, nil
}
