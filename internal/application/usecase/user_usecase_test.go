package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/mocks"
)

func str(s string) *string { return &s }

func newUserUseCase() (*usecase.UserUseCase, *mocks.UserRepo) {
	repo := mocks.NewUserRepo(allUsers()...)
	return usecase.NewUserUseCase(repo), repo
}

func TestUpdateProfile_PropioSoloCamposCambiados(t *testing.T) {
	uc, repo := newUserUseCase()
	in := dto.ProfileUpdateRequest{
		Old: dto.ProfilePatch{Name: str("Vera Volunteer"), Phone: str("")},
		New: dto.ProfilePatch{Name: str("Vera Volunteer"), Phone: str("+254700000000")},
	}
	out, err := uc.UpdateProfile(context.Background(), actorOf(volunteer), volunteer.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "+254700000000", out.Phone)

	stored, _ := repo.GetByID(context.Background(), volunteer.ID)
	assert.Equal(t, "+254700000000", stored.Phone)
	assert.Equal(t, "Vera Volunteer", stored.Name)
}

func TestUpdateProfile_VoluntarioNoCambiaSuRol(t *testing.T) {
	uc, repo := newUserUseCase()
	in := dto.ProfileUpdateRequest{New: dto.ProfilePatch{Role: str("admin")}}
	_, err := uc.UpdateProfile(context.Background(), actorOf(volunteer), volunteer.ID, in)
	re := redirectOf(t, err)
	assert.Equal(t, usecase.ProfileHref(volunteer.ID), re.To)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := repo.GetByID(context.Background(), volunteer.ID)
	assert.Equal(t, access.Volunteer, stored.Role)
}

func TestUpdateProfile_AdminCambiaRol(t *testing.T) {
	uc, repo := newUserUseCase()
	in := dto.ProfileUpdateRequest{Old: dto.ProfilePatch{Role: str("volunteer")}, New: dto.ProfilePatch{Role: str("staff")}}
	_, err := uc.UpdateProfile(context.Background(), actorOf(admin), volunteer.ID, in)
	require.NoError(t, err)
	stored, _ := repo.GetByID(context.Background(), volunteer.ID)
	assert.Equal(t, access.Staff, stored.Role)
}

func TestUpdateProfile_StaffNoEditaAdmin(t *testing.T) {
	uc, _ := newUserUseCase()
	in := dto.ProfileUpdateRequest{New: dto.ProfilePatch{Name: str("X")}}
	_, err := uc.UpdateProfile(context.Background(), actorOf(staff), admin.ID, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProfile_EmailDuplicado(t *testing.T) {
	uc, _ := newUserUseCase()
	in := dto.ProfileUpdateRequest{New: dto.ProfilePatch{Email: str("otto@example.org")}}
	_, err := uc.UpdateProfile(context.Background(), actorOf(volunteer), volunteer.ID, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpdateProfile_VoluntarioAjeno(t *testing.T) {
	uc, _ := newUserUseCase()
	_, err := uc.UpdateProfile(context.Background(), actorOf(volunteer), other.ID, dto.ProfileUpdateRequest{})
	re := redirectOf(t, err)
	assert.Equal(t, "You do not have access to view this profile.", re.Flash.Text)
}

func TestDelete_SoloAdmin(t *testing.T) {
	uc, repo := newUserUseCase()
	err := uc.Delete(context.Background(), actorOf(staff), volunteer.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(context.Background(), actorOf(admin), volunteer.ID))
	stored, _ := repo.GetByID(context.Background(), volunteer.ID)
	assert.Nil(t, stored)
}

func TestDelete_NoASiMismoNiInexistente(t *testing.T) {
	uc, _ := newUserUseCase()
	assert.ErrorIs(t, uc.Delete(context.Background(), actorOf(admin), admin.ID), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Delete(context.Background(), actorOf(admin), "ghost"), domain.ErrUserNotFound)
}
