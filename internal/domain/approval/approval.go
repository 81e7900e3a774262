package approval

import (
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
)

// State estado derivado de RequestStatus.
type State int

const (
	Pending State = iota
	Approved
	Denied
)

func (s State) String() string {
	switch s {
	case Approved:
		return "approved"
	case Denied:
		return "denied"
	default:
		return "pending"
	}
}

// StateOf deriva el estado. Con IsPending=true se ignora IsApproved.
func StateOf(st entity.RequestStatus) State {
	if st.IsPending {
		return Pending
	}
	if st.IsApproved {
		return Approved
	}
	return Denied
}

// DeriveFlash mensaje que acompaña la vista de aprobación.
func DeriveFlash(st entity.RequestStatus) domain.Flash {
	switch StateOf(st) {
	case Approved:
		return domain.Flash{Text: "This request has been approved.", Class: domain.FlashSuccess}
	case Denied:
		return domain.Flash{Text: "This request has been denied.", Class: domain.FlashDanger}
	default:
		return domain.Flash{Text: "This request is currently pending.", Class: domain.FlashWarning}
	}
}

// MergeWarnings devuelve una copia de legs con las advertencias del país de cada tramo
// (slice vacío si el país no tiene advertencias). Conserva el orden.
func MergeWarnings(legs []entity.Leg, byCountry map[string][]string) []entity.Leg {
	out := make([]entity.Leg, len(legs))
	for i, leg := range legs {
		warnings := byCountry[leg.CountryCode]
		leg.Warnings = make([]string, len(warnings))
		copy(leg.Warnings, warnings)
		out[i] = leg
	}
	return out
}

// Decide aplica la única transición definida: pendiente -> aprobada/denegada.
func Decide(st entity.RequestStatus, approve bool) (entity.RequestStatus, error) {
	if StateOf(st) != Pending {
		return st, domain.ErrAlreadyDecided
	}
	return entity.RequestStatus{IsPending: false, IsApproved: approve}, nil
}
