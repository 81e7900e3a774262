package dto

import (
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
)

// RenderModel modelo que recibe el renderer: nombre de vista, navegación, mensajes y datos propios.
type RenderModel struct {
	View       string               `json:"view"`
	Title      string               `json:"title"`
	Links      []navigation.NavLink `json:"links"`
	Messages   []domain.Flash       `json:"messages"`
	HideLogout bool                 `json:"hideLogout,omitempty"`
	Data       interface{}          `json:"data,omitempty"`
}

// LoginView datos de la vista de login.
type LoginView struct {
	Submission LoginDraft `json:"submission"`
}

// RegisterView datos de la vista de registro.
type RegisterView struct {
	Token      string        `json:"token"`
	Submission RegisterDraft `json:"submission"`
}

// ResetView datos de la vista de restablecimiento.
type ResetView struct {
	Submission ResetDraft `json:"submission"`
}

// DashboardView solicitudes visibles para el actor.
type DashboardView struct {
	Requests     []LeaveRequestView `json:"requests"`
	PendingCount int                `json:"pendingCount"`
}

// SubmitText textos del formulario de solicitud.
type SubmitText struct {
	Submit string `json:"submit"`
}

// SubmissionView formulario de solicitud (alta o edición).
type SubmissionView struct {
	RequestID             string         `json:"requestId,omitempty"`
	Submission            SubmitRequest  `json:"submission"`
	ShouldSelectRequestee bool           `json:"shouldSelectRequestee"`
	Volunteers            []UserResponse `json:"volunteers,omitempty"`
	Text                  SubmitText     `json:"text"`
}

// ApprovalView solicitud con avisos por tramo.
type ApprovalView struct {
	Request   LeaveRequestView `json:"request"`
	CanReview bool             `json:"canReview"`
}

// UsersView usuarios visibles agrupados por rol.
type UsersView struct {
	Query      string         `json:"q,omitempty"`
	Admins     []UserResponse `json:"admins"`
	Staff      []UserResponse `json:"staff"`
	Volunteers []UserResponse `json:"volunteers"`
}

// AddUsersView formulario de invitación.
type AddUsersView struct {
	Roles []string `json:"roles"`
}

// ProfileView perfil mostrado y campos editables por el actor.
type ProfileView struct {
	UserToShow     UserResponse `json:"userToShow"`
	ProfileClass   string       `json:"profileClass"`
	EditableFields []string     `json:"editableFields"`
	CanDelete      bool         `json:"canDelete"`
}
