package flash

import (
	"encoding/json"

	"github.com/jhoicas/leave-tracker/internal/application/ports"
	"github.com/jhoicas/leave-tracker/internal/domain"
)

// Claves de cola por vista, una por formulario/página.
const (
	KeyLogin      = "loginFlash"
	KeyRegister   = "registerFlash"
	KeyReset      = "resetFlash"
	KeyDashboard  = "dashboardFlash"
	KeySubmission = "submissionFlash"
	KeyApproval   = "approvalFlash"
	KeyUsers      = "usersFlash"
	KeyProfile    = "profileFlash"
	KeyAddUsers   = "addUsersFlash"
)

const prefix = "flash:"

// Push encola un mensaje bajo key.
func Push(sess ports.Session, key string, msg domain.Flash) {
	msgs := read(sess, key)
	msgs = append(msgs, msg)
	data, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	sess.Set(prefix+key, string(data))
}

// Pop devuelve y elimina los mensajes encolados bajo key (nunca nil).
func Pop(sess ports.Session, key string) []domain.Flash {
	msgs := read(sess, key)
	sess.Delete(prefix + key)
	if msgs == nil {
		return []domain.Flash{}
	}
	return msgs
}

func read(sess ports.Session, key string) []domain.Flash {
	s, ok := sess.Get(prefix + key).(string)
	if !ok || s == "" {
		return nil
	}
	var msgs []domain.Flash
	if err := json.Unmarshal([]byte(s), &msgs); err != nil {
		return nil
	}
	return msgs
}
