package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "staff", "leave-tracker", 5)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "staff", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "staff", "leave-tracker", 5)
	require.NoError(t, err)
	_, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "staff", "leave-tracker", -1)
	require.NoError(t, err)
	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestInvite_NoSirveComoSesion(t *testing.T) {
	token, exp, err := jwt.GenerateInvite(secret, "new@example.org", "volunteer", "leave-tracker", 60)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	_, _, err = jwt.Parse(secret, token)
	assert.ErrorIs(t, err, jwt.ErrWrongPurpose)

	email, role, err := jwt.ParseInvite(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "new@example.org", email)
	assert.Equal(t, "volunteer", role)
}

func TestParseInvite_RechazaSesion(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "admin", "leave-tracker", 5)
	require.NoError(t, err)
	_, _, err = jwt.ParseInvite(secret, token)
	assert.ErrorIs(t, err, jwt.ErrWrongPurpose)
}
