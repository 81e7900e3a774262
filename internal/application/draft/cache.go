// Package draft conserva el formulario en curso a través de una redirección de
// autenticación. El borrador vive en la sesión y se consume en la primera lectura.
package draft

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/leave-tracker/internal/application/ports"
	"github.com/jhoicas/leave-tracker/internal/domain"
)

// SessionKey clave única de sesión para el borrador.
const SessionKey = "submission"

// Kind formulario de origen del borrador.
type Kind string

const (
	KindSubmission Kind = "submission"
	KindLogin      Kind = "login"
	KindRegister   Kind = "register"
	KindReset      Kind = "reset"
)

type envelope struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Store guarda el borrador, reemplazando cualquier borrador anterior.
// Se serializa a JSON para que el almacenamiento de sesión solo vea strings.
func Store(sess ports.Session, kind Kind, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("draft: serializar payload: %w", err)
	}
	data, err := json.Marshal(envelope{Kind: kind, Payload: raw})
	if err != nil {
		return fmt.Errorf("draft: serializar sobre: %w", err)
	}
	sess.Set(SessionKey, string(data))
	return nil
}

// PeekAndClear devuelve una copia del borrador del tipo pedido y lo elimina de la sesión.
// La sesión se limpia siempre, aunque el borrador sea de otro formulario o esté corrupto.
func PeekAndClear[T any](sess ports.Session, kind Kind) (T, bool) {
	var zero T
	v, err := take(sess, kind)
	if err != nil || v == nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		return zero, false
	}
	return out, true
}

// take extrae el payload crudo; ErrInvalidDraft cuando el valor no tiene la forma esperada.
func take(sess ports.Session, kind Kind) (json.RawMessage, error) {
	v := sess.Get(SessionKey)
	if v == nil {
		return nil, nil
	}
	sess.Delete(SessionKey)

	var data []byte
	switch s := v.(type) {
	case string:
		data = []byte(s)
	case []byte:
		data = s
	default:
		return nil, domain.ErrInvalidDraft
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, domain.ErrInvalidDraft
	}
	if env.Kind != kind || len(env.Payload) == 0 {
		return nil, nil
	}
	return env.Payload, nil
}

// Pending devuelve el tipo del borrador guardado sin consumirlo ("" si no hay o es ilegible).
// Los formularios de autenticación lo usan para no descartar un borrador de solicitud
// que debe sobrevivir al login.
func Pending(sess ports.Session) Kind {
	var data []byte
	switch s := sess.Get(SessionKey).(type) {
	case string:
		data = []byte(s)
	case []byte:
		data = s
	default:
		return ""
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	return env.Kind
}

// TakeOwn como PeekAndClear, pero deja en la sesión los borradores de otro formulario.
func TakeOwn[T any](sess ports.Session, kind Kind) (T, bool) {
	if Pending(sess) != kind {
		var zero T
		return zero, false
	}
	return PeekAndClear[T](sess, kind)
}
