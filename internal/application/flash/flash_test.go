package flash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/mocks"
)

func TestPushPop(t *testing.T) {
	sess := mocks.NewMapSession()
	flash.Push(sess, flash.KeyDashboard, domain.Flash{Text: "one", Class: "info"})
	flash.Push(sess, flash.KeyDashboard, domain.Flash{Text: "two", Class: "danger"})
	flash.Push(sess, flash.KeyLogin, domain.Flash{Text: "other", Class: "info"})

	msgs := flash.Pop(sess, flash.KeyDashboard)
	assert.Equal(t, []domain.Flash{{Text: "one", Class: "info"}, {Text: "two", Class: "danger"}}, msgs)
	assert.Empty(t, flash.Pop(sess, flash.KeyDashboard), "los mensajes se consumen una vez")
	assert.Len(t, flash.Pop(sess, flash.KeyLogin), 1, "las colas son independientes")
}

func TestPop_Vacio(t *testing.T) {
	msgs := flash.Pop(mocks.NewMapSession(), flash.KeyUsers)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}
