package usecase_test

import (
	"time"

	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/legdate"
)

var (
	volunteer = &entity.User{ID: "vol-1", Name: "Vera Volunteer", Email: "vera@example.org", CountryCode: "KE", Role: access.Volunteer}
	other     = &entity.User{ID: "vol-2", Name: "Otto Other", Email: "otto@example.org", Role: access.Volunteer}
	staff     = &entity.User{ID: "staff-1", Name: "Sam Staff", Email: "sam@example.org", Role: access.Staff}
	admin     = &entity.User{ID: "admin-1", Name: "Ada Admin", Email: "ada@example.org", Role: access.Admin}
)

func actorOf(u *entity.User) guard.Actor {
	return guard.Actor{ID: u.ID, Role: u.Role}
}

func allUsers() []*entity.User {
	return []*entity.User{volunteer, other, staff, admin}
}

// pendingRequest solicitud pendiente de 1 tramo a Francia, 5-20 de marzo de 2016.
func pendingRequest(id, volunteerID string) *entity.LeaveRequest {
	return &entity.LeaveRequest{
		ID:          id,
		VolunteerID: volunteerID,
		Legs: []entity.Leg{{
			CountryCode: "FR",
			StartDate:   legdate.Encode(2016, 2, 5),
			EndDate:     legdate.Encode(2016, 2, 20),
		}},
		Status:    entity.RequestStatus{IsPending: true},
		CreatedAt: time.Date(2016, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func decidedRequest(id, volunteerID string, approved bool) *entity.LeaveRequest {
	r := pendingRequest(id, volunteerID)
	r.Status = entity.RequestStatus{IsPending: false, IsApproved: approved}
	return r
}
