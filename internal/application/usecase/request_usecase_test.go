package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/legdate"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
	"github.com/jhoicas/leave-tracker/internal/mocks"
)

func newRequestUseCase(reqs ...*entity.LeaveRequest) (*usecase.RequestUseCase, *mocks.LeaveRequestRepo) {
	uc, requests, _ := newRequestUseCaseTx(reqs...)
	return uc, requests
}

func newRequestUseCaseTx(reqs ...*entity.LeaveRequest) (*usecase.RequestUseCase, *mocks.LeaveRequestRepo, *mocks.TxRunner) {
	users := mocks.NewUserRepo(allUsers()...)
	requests := mocks.NewLeaveRequestRepo(reqs...)
	tx := &mocks.TxRunner{Requests: requests, Users: users}
	return usecase.NewRequestUseCase(tx), requests, tx
}

func validSubmission() dto.SubmitRequest {
	return dto.SubmitRequest{
		Legs: []dto.LegInput{
			{Country: "fr", StartDate: "3 5 2016", EndDate: "3 20 2016"},
			{Country: "DE", StartDate: "3 21 2016", EndDate: "04 02 2016"},
		},
		CounterpartApproved: "true",
	}
}

func TestSubmit_VoluntarioCreaPendiente(t *testing.T) {
	uc, repo := newRequestUseCase()
	req, err := uc.Submit(context.Background(), actorOf(volunteer), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, volunteer.ID, req.VolunteerID)
	assert.True(t, req.Status.IsPending)
	assert.True(t, req.CounterpartApproved)
	require.Len(t, req.Legs, 2)
	assert.Equal(t, "FR", req.Legs[0].CountryCode)
	assert.Equal(t, legdate.Encode(2016, 2, 5), req.Legs[0].StartDate)
	assert.Equal(t, legdate.Encode(2016, 3, 2), req.Legs[1].EndDate)

	stored, err := repo.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestSubmit_VoluntarioNoEligeRequeriente(t *testing.T) {
	uc, _ := newRequestUseCase()
	in := validSubmission()
	in.Volunteer = other.ID
	req, err := uc.Submit(context.Background(), actorOf(volunteer), in)
	require.NoError(t, err)
	assert.Equal(t, volunteer.ID, req.VolunteerID)
}

func TestSubmit_StaffEnNombreDeVoluntario(t *testing.T) {
	uc, _ := newRequestUseCase()
	in := validSubmission()
	in.Volunteer = other.ID
	req, err := uc.Submit(context.Background(), actorOf(staff), in)
	require.NoError(t, err)
	assert.Equal(t, other.ID, req.VolunteerID)

	in.Volunteer = admin.ID
	_, err = uc.Submit(context.Background(), actorOf(staff), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "The selected volunteer does not exist", dto.UserMessage(err))
}

func TestSubmit_Invalido(t *testing.T) {
	uc, _ := newRequestUseCase()
	cases := map[string]dto.SubmitRequest{
		"sin tramos":      {},
		"país inválido":   {Legs: []dto.LegInput{{Country: "FRA", StartDate: "1 1 2016", EndDate: "1 2 2016"}}},
		"fecha ilegible":  {Legs: []dto.LegInput{{Country: "FR", StartDate: "2016-01-01", EndDate: "1 2 2016"}}},
		"fin antes":       {Legs: []dto.LegInput{{Country: "FR", StartDate: "2 1 2016", EndDate: "1 2 2016"}}},
		"contraparte rara": {Legs: []dto.LegInput{{Country: "FR", StartDate: "1 1 2016", EndDate: "1 2 2016"}}, CounterpartApproved: "maybe"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), actorOf(volunteer), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSubmit_FalloEnTramosNoDejaSolicitudHuerfana(t *testing.T) {
	uc, repo, tx := newRequestUseCaseTx()
	repo.LegsErr = mocks.ErrStore

	_, err := uc.Submit(context.Background(), actorOf(volunteer), validSubmission())
	require.ErrorIs(t, err, mocks.ErrStore)
	assert.Equal(t, 1, tx.Runs, "el alta debe ir dentro de una transacción")

	pending := true
	n, err := repo.Count(context.Background(), repository.RequestFilter{IsPending: &pending})
	require.NoError(t, err)
	assert.Zero(t, n, "ni la cabecera ni los tramos quedan confirmados")
}

func TestUpdate_UltimaEscrituraGana(t *testing.T) {
	uc, repo := newRequestUseCase(pendingRequest("r1", volunteer.ID))
	in := validSubmission()
	_, err := uc.Update(context.Background(), actorOf(volunteer), "r1", in)
	require.NoError(t, err)

	in.Legs = in.Legs[:1]
	in.CounterpartApproved = "false"
	_, err = uc.Update(context.Background(), actorOf(staff), "r1", in)
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), "r1")
	assert.Len(t, stored.Legs, 1)
	assert.False(t, stored.CounterpartApproved)
	assert.Equal(t, volunteer.ID, stored.VolunteerID)
}

func TestTransacciones_EdicionNormalDecisionEstricta(t *testing.T) {
	uc, _, tx := newRequestUseCaseTx(pendingRequest("r1", volunteer.ID))

	_, err := uc.Update(context.Background(), actorOf(volunteer), "r1", validSubmission())
	require.NoError(t, err)
	assert.Equal(t, 1, tx.Runs)
	assert.Zero(t, tx.StrictRuns, "las ediciones concurrentes no deben fallar por conflicto")

	_, err = uc.Decide(context.Background(), actorOf(staff), "r1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.StrictRuns)
}

func TestDecide_StaffNoRevisaSuPropiaSolicitud(t *testing.T) {
	uc, repo := newRequestUseCase(pendingRequest("r1", staff.ID))
	_, err := uc.Decide(context.Background(), actorOf(staff), "r1", true)
	re := redirectOf(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, guard.MsgOwnRequest, re.Flash.Text)
	assert.Equal(t, usecase.RequestHref("r1"), re.To)

	stored, _ := repo.GetByID(context.Background(), "r1")
	assert.True(t, stored.Status.IsPending)

	// Otro revisor sí puede.
	_, err = uc.Decide(context.Background(), actorOf(admin), "r1", true)
	require.NoError(t, err)
}

func TestUpdate_RevisadaNoSeEdita(t *testing.T) {
	uc, _ := newRequestUseCase(decidedRequest("r1", volunteer.ID, true))
	_, err := uc.Update(context.Background(), actorOf(volunteer), "r1", validSubmission())
	re := redirectOf(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, flash.KeyDashboard, re.FlashKey)
}

func TestUpdate_AjenaDenegada(t *testing.T) {
	uc, _ := newRequestUseCase(pendingRequest("r1", other.ID))
	_, err := uc.Update(context.Background(), actorOf(volunteer), "r1", validSubmission())
	re := redirectOf(t, err)
	assert.Equal(t, guard.MsgNoRequestAccess, re.Flash.Text)
}

func TestDecide_StaffAprueba(t *testing.T) {
	uc, repo := newRequestUseCase(pendingRequest("r1", volunteer.ID))
	req, err := uc.Decide(context.Background(), actorOf(staff), "r1", true)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatus{IsPending: false, IsApproved: true}, req.Status)
	assert.Equal(t, staff.ID, req.ReviewerID)
	require.NotNil(t, req.DecidedAt)

	stored, _ := repo.GetByID(context.Background(), "r1")
	assert.False(t, stored.Status.IsPending)
}

func TestDecide_VoluntarioNoCargaLaSolicitud(t *testing.T) {
	uc, repo := newRequestUseCase(pendingRequest("r1", volunteer.ID))
	repo.Err = mocks.ErrStore // cualquier carga fallaría
	_, err := uc.Decide(context.Background(), actorOf(volunteer), "r1", true)
	re := redirectOf(t, err)
	assert.Equal(t, guard.MsgNoReviewAccess, re.Flash.Text)
}

func TestDecide_YaRevisada(t *testing.T) {
	uc, _ := newRequestUseCase(decidedRequest("r1", volunteer.ID, false))
	_, err := uc.Decide(context.Background(), actorOf(admin), "r1", true)
	re := redirectOf(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyDecided)
	assert.Equal(t, usecase.RequestHref("r1"), re.To)
	assert.Equal(t, flash.KeyApproval, re.FlashKey)
}

func TestDecide_Inexistente(t *testing.T) {
	uc, _ := newRequestUseCase()
	_, err := uc.Decide(context.Background(), actorOf(admin), "nope", false)
	re := redirectOf(t, err)
	assert.Equal(t, usecase.MsgRequestNotFound, re.Flash.Text)
}
