package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/internal/application/draft"
	"github.com/jhoicas/leave-tracker/internal/mocks"
)

type submission struct {
	Volunteer string   `json:"volunteer"`
	Countries []string `json:"countries"`
}

func TestPeekAndClear_UnaSolaLectura(t *testing.T) {
	sess := mocks.NewMapSession()
	in := submission{Volunteer: "v1", Countries: []string{"FR", "DE"}}
	require.NoError(t, draft.Store(sess, draft.KindSubmission, in))

	got, ok := draft.PeekAndClear[submission](sess, draft.KindSubmission)
	require.True(t, ok)
	assert.Equal(t, in, got)

	_, ok = draft.PeekAndClear[submission](sess, draft.KindSubmission)
	assert.False(t, ok, "la segunda lectura no debe encontrar borrador")
}

func TestStore_UltimaEscrituraGana(t *testing.T) {
	sess := mocks.NewMapSession()
	require.NoError(t, draft.Store(sess, draft.KindSubmission, submission{Volunteer: "v1"}))
	require.NoError(t, draft.Store(sess, draft.KindSubmission, submission{Volunteer: "v2"}))

	got, ok := draft.PeekAndClear[submission](sess, draft.KindSubmission)
	require.True(t, ok)
	assert.Equal(t, "v2", got.Volunteer)
}

func TestPeekAndClear_SinBorrador(t *testing.T) {
	_, ok := draft.PeekAndClear[submission](mocks.NewMapSession(), draft.KindSubmission)
	assert.False(t, ok)
}

func TestPeekAndClear_FormaInvalidaEsAusente(t *testing.T) {
	sess := mocks.NewMapSession()
	sess.Set(draft.SessionKey, "{no es json")
	_, ok := draft.PeekAndClear[submission](sess, draft.KindSubmission)
	assert.False(t, ok)
	assert.Nil(t, sess.Get(draft.SessionKey), "el borrador corrupto también se elimina")

	sess.Set(draft.SessionKey, 42)
	_, ok = draft.PeekAndClear[submission](sess, draft.KindSubmission)
	assert.False(t, ok)

	sess.Set(draft.SessionKey, `{"kind":"submission","payload":{"volunteer":7}}`)
	_, ok = draft.PeekAndClear[submission](sess, draft.KindSubmission)
	assert.False(t, ok, "payload con tipos incorrectos se trata como ausente")
}

func TestPeekAndClear_OtroFormulario(t *testing.T) {
	sess := mocks.NewMapSession()
	require.NoError(t, draft.Store(sess, draft.KindLogin, map[string]string{"email": "a@b.c"}))

	_, ok := draft.PeekAndClear[submission](sess, draft.KindSubmission)
	assert.False(t, ok)
	assert.Nil(t, sess.Get(draft.SessionKey), "se consume igualmente")
}

func TestTakeOwn_ConservaBorradorAjeno(t *testing.T) {
	sess := mocks.NewMapSession()
	require.NoError(t, draft.Store(sess, draft.KindSubmission, submission{Volunteer: "v1"}))

	_, ok := draft.TakeOwn[map[string]string](sess, draft.KindLogin)
	assert.False(t, ok)
	assert.Equal(t, draft.KindSubmission, draft.Pending(sess), "el borrador de solicitud sigue en sesión")

	got, ok := draft.TakeOwn[submission](sess, draft.KindSubmission)
	require.True(t, ok)
	assert.Equal(t, "v1", got.Volunteer)
	assert.Equal(t, draft.Kind(""), draft.Pending(sess))
}
