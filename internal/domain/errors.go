package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAlreadyDecided     = errors.New("la solicitud ya fue revisada")
	ErrInvalidDraft       = errors.New("borrador de sesión con formato inválido")
	ErrConflict           = errors.New("la solicitud cambió durante la operación")
)

// Flash mensaje de una sola lectura que se muestra en el siguiente render.
type Flash struct {
	Text  string `json:"text"`
	Class string `json:"class"` // success | warning | danger | info
}

// Clases de flash usadas por las vistas.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// RedirectError representa un fallo visible para el usuario que se resuelve con
// redirección + flash (acceso denegado, recurso no encontrado). Nunca es fatal.
type RedirectError struct {
	To       string
	FlashKey string
	Flash    *Flash
	Err      error
}

func (e *RedirectError) Error() string {
	if e.Err != nil {
		return "redirect " + e.To + ": " + e.Err.Error()
	}
	return "redirect " + e.To
}

func (e *RedirectError) Unwrap() error { return e.Err }
