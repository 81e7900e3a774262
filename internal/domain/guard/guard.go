// Package guard concentra las decisiones de visibilidad y permiso por acción.
// Todas son funciones puras sobre hechos ya cargados (actor, recurso, conteos): la carga
// de datos la hace el caso de uso, siempre después de consultar la decisión que no la requiere.
package guard

import (
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/entity"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
)

// Mensajes de denegación visibles para el usuario.
const (
	MsgNoProfileAccess = "You do not have access to view this profile."
	MsgNoRequestAccess = "You do not have access to view this request."
	MsgNoReviewAccess  = "You do not have access to review requests."
	MsgNoPageAccess    = "You do not have access to this page."
	MsgOwnRequest      = "You cannot review your own request."
)

// Actor quien ejecuta la acción. ID vacío = anónimo.
type Actor struct {
	ID   string
	Role access.Role
}

// Anonymous informa si no hay sesión autenticada.
func (a Actor) Anonymous() bool {
	return a.ID == "" || !a.Role.Valid()
}

// Decision resultado de una consulta al guard.
type Decision struct {
	Allowed  bool
	Redirect string
	Flash    *domain.Flash // nil en denegaciones silenciosas
}

// Allow decisión positiva.
func Allow() Decision { return Decision{Allowed: true} }

// Deny decisión negativa con redirección y flash opcional (danger).
func Deny(redirect, msg string) Decision {
	d := Decision{Redirect: redirect}
	if msg != "" {
		d.Flash = &domain.Flash{Text: msg, Class: domain.FlashDanger}
	}
	return d
}

// Err convierte una denegación en *domain.RedirectError para la capa HTTP.
func (d Decision) Err(flashKey string) error {
	if d.Allowed {
		return nil
	}
	return &domain.RedirectError{To: d.Redirect, FlashKey: flashKey, Flash: d.Flash, Err: domain.ErrForbidden}
}

// ViewProfile el propio perfil siempre; cualquier perfil con rol superior a Volunteer.
func ViewProfile(actor Actor, targetID string) Decision {
	if actor.Anonymous() {
		return Deny(navigation.HrefLogin, "")
	}
	if actor.ID == targetID || access.Compare(actor.Role, access.Volunteer) > 0 {
		return Allow()
	}
	return Deny(navigation.HrefDashboard, MsgNoProfileAccess)
}

// ViewUsers listado de usuarios: Staff o superior. La denegación es silenciosa
// (el menú ya oculta el enlace).
func ViewUsers(actor Actor) Decision {
	if access.AtLeast(actor.Role, access.Staff) {
		return Allow()
	}
	return Deny(navigation.HrefDashboard, "")
}

// AddUsersForm mismo criterio que el listado.
func AddUsersForm(actor Actor) Decision {
	return ViewUsers(actor)
}

// InviteUsers crear usuarios (invitaciones) es exclusivo de Admin.
func InviteUsers(actor Actor) Decision {
	if actor.Role == access.Admin {
		return Allow()
	}
	return Deny(navigation.HrefDashboard, MsgNoPageAccess)
}

// DeleteUser exclusivo de Admin.
func DeleteUser(actor Actor) Decision {
	return InviteUsers(actor)
}

// RequesteeFor devuelve para quién se registra la solicitud: Staff o superior puede elegir
// cualquier voluntario; en otro caso siempre es el propio actor.
func RequesteeFor(actor Actor, requested string) string {
	if access.AtLeast(actor.Role, access.Staff) && requested != "" {
		return requested
	}
	return actor.ID
}

// NeedsPendingCount informa si IndexTarget necesita el conteo de solicitudes pendientes.
func NeedsPendingCount(actor Actor) bool {
	return !actor.Anonymous() && actor.Role == access.Volunteer
}

// IndexTarget destino de la raíz: login para anónimos, formulario de envío para un voluntario
// sin solicitudes pendientes, dashboard en cualquier otro caso.
func IndexTarget(actor Actor, pendingCount int) string {
	if actor.Anonymous() {
		return navigation.HrefLogin
	}
	if actor.Role == access.Volunteer && pendingCount == 0 {
		return navigation.HrefSubmit
	}
	return navigation.HrefDashboard
}

// ViewRequest Staff o superior, o el voluntario dueño. Una solicitud inexistente se
// trata igual que una ajena para no revelar su existencia.
func ViewRequest(actor Actor, req *entity.LeaveRequest) Decision {
	if actor.Anonymous() {
		return Deny(navigation.HrefLogin, "")
	}
	if req != nil && (access.AtLeast(actor.Role, access.Staff) || req.VolunteerID == actor.ID) {
		return Allow()
	}
	return Deny(navigation.HrefDashboard, MsgNoRequestAccess)
}

// EditRequest como ViewRequest, y solo mientras la solicitud siga pendiente.
func EditRequest(actor Actor, req *entity.LeaveRequest) Decision {
	d := ViewRequest(actor, req)
	if !d.Allowed {
		return d
	}
	if !req.Status.IsPending {
		return Deny(navigation.HrefDashboard, "This request has already been reviewed and can no longer be edited.")
	}
	return d
}

// ReviewRequest aprobar o denegar: Staff o superior.
func ReviewRequest(actor Actor) Decision {
	if access.AtLeast(actor.Role, access.Staff) {
		return Allow()
	}
	return Deny(navigation.HrefDashboard, MsgNoReviewAccess)
}

// DecideRequest ReviewRequest sobre una solicitud ya cargada: el solicitante no se la revisa.
func DecideRequest(actor Actor, req *entity.LeaveRequest) Decision {
	if d := ReviewRequest(actor); !d.Allowed {
		return d
	}
	if req.VolunteerID == actor.ID {
		return Deny(requestHref(req.ID), MsgOwnRequest)
	}
	return Allow()
}

func requestHref(id string) string {
	return "/requests/" + id
}

// Field campo editable del perfil.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldCountryCode Field = "countryCode"
	FieldRole        Field = "role"
)

// FieldSet conjunto de campos permitidos.
type FieldSet map[Field]bool

// ProfileFields campos que actor puede modificar en target. Conjunto vacío = sin permiso.
func ProfileFields(actor Actor, target *entity.User) FieldSet {
	if actor.Anonymous() || target == nil {
		return FieldSet{}
	}
	if actor.ID == target.ID {
		return FieldSet{FieldName: true, FieldEmail: true, FieldPhone: true, FieldCountryCode: true}
	}
	if access.Compare(actor.Role, access.Volunteer) <= 0 || access.Compare(target.Role, actor.Role) > 0 {
		return FieldSet{}
	}
	set := FieldSet{FieldName: true, FieldPhone: true, FieldCountryCode: true}
	if actor.Role == access.Admin {
		set[FieldRole] = true
	}
	return set
}
