package access

import "strings"

// Role nivel de privilegio ordinal: Volunteer < Staff < Admin.
// El valor cero no es un rol válido (actor anónimo).
type Role int

const (
	Volunteer Role = iota + 1
	Staff
	Admin
)

// Roles enumera los roles válidos en orden ascendente.
var Roles = []Role{Volunteer, Staff, Admin}

// Compare devuelve -1, 0 o 1 según el orden de a respecto a b.
func Compare(a, b Role) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AtLeast informa si role alcanza el umbral indicado.
func AtLeast(role, threshold Role) bool {
	return Compare(role, threshold) >= 0
}

// Valid informa si r es uno de los tres roles conocidos.
func (r Role) Valid() bool {
	return r >= Volunteer && r <= Admin
}

func (r Role) String() string {
	switch r {
	case Volunteer:
		return "volunteer"
	case Staff:
		return "staff"
	case Admin:
		return "admin"
	default:
		return ""
	}
}

// ParseRole convierte la forma textual (tokens, DTOs) en Role. Devuelve false si no se reconoce.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volunteer":
		return Volunteer, true
	case "staff":
		return Staff, true
	case "admin":
		return Admin, true
	default:
		return 0, false
	}
}
