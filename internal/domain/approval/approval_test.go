package approval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/approval"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
)

func TestDeriveFlash(t *testing.T) {
	cases := []struct {
		name   string
		status entity.RequestStatus
		text   string
		class  string
	}{
		{"pendiente", entity.RequestStatus{IsPending: true}, "This request is currently pending.", "warning"},
		{"pendiente ignora isApproved", entity.RequestStatus{IsPending: true, IsApproved: true}, "This request is currently pending.", "warning"},
		{"aprobada", entity.RequestStatus{IsPending: false, IsApproved: true}, "This request has been approved.", "success"},
		{"denegada", entity.RequestStatus{IsPending: false, IsApproved: false}, "This request has been denied.", "danger"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := approval.DeriveFlash(tc.status)
			assert.Equal(t, tc.text, f.Text)
			assert.Equal(t, tc.class, f.Class)
		})
	}
}

func TestMergeWarnings(t *testing.T) {
	legs := []entity.Leg{
		{CountryCode: "FR", StartDate: 20240101, EndDate: 20240110},
		{CountryCode: "SY"},
		{CountryCode: "FR"},
	}
	byCountry := map[string][]string{"SY": {"Do not travel", "Border closed"}}

	out := approval.MergeWarnings(legs, byCountry)
	require.Len(t, out, 3)
	assert.Equal(t, "FR", out[0].CountryCode, "debe conservar el orden")
	assert.Equal(t, 20240101, out[0].StartDate)
	assert.NotNil(t, out[0].Warnings)
	assert.Empty(t, out[0].Warnings)
	assert.Equal(t, []string{"Do not travel", "Border closed"}, out[1].Warnings)
	assert.Nil(t, legs[1].Warnings, "no debe mutar la entrada")

	out[1].Warnings[0] = "changed"
	assert.Equal(t, "Do not travel", byCountry["SY"][0], "no debe compartir el slice del lookup")
}

func TestDecide(t *testing.T) {
	st, err := approval.Decide(entity.RequestStatus{IsPending: true}, true)
	require.NoError(t, err)
	assert.Equal(t, approval.Approved, approval.StateOf(st))

	st, err = approval.Decide(entity.RequestStatus{IsPending: true}, false)
	require.NoError(t, err)
	assert.Equal(t, approval.Denied, approval.StateOf(st))

	_, err = approval.Decide(st, true)
	assert.ErrorIs(t, err, domain.ErrAlreadyDecided, "un estado terminal no admite transición")
}
