package dto

import "time"

// LegInput tramo tal como llega del formulario; las fechas en formato "M D YYYY".
type LegInput struct {
	Country   string `json:"country" validate:"required,len=2,alpha"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// SubmitRequest formulario de solicitud de permiso. También es la forma del borrador
// que sobrevive a un redirect (login, validación fallida).
type SubmitRequest struct {
	Volunteer           string     `json:"volunteer,omitempty"`
	Reviewer            string     `json:"reviewer,omitempty"`
	Legs                []LegInput `json:"legs" validate:"required,min=1,dive"`
	CounterpartApproved string     `json:"counterpartApproved,omitempty" validate:"omitempty,oneof=true false"`
}

// CounterpartOK interpreta el checkbox serializado como texto.
func (r SubmitRequest) CounterpartOK() bool {
	return r.CounterpartApproved == "true"
}

// LegView tramo para mostrar: fechas en formato de visualización y nombre del país.
type LegView struct {
	Country     string   `json:"country"`
	CountryName string   `json:"countryName"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Warnings    []string `json:"warnings,omitempty"`
}

// UserSummary referencia corta a un usuario dentro de una solicitud.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeaveRequestView solicitud para las vistas de dashboard y aprobación.
type LeaveRequestView struct {
	ID                  string       `json:"id"`
	Volunteer           UserSummary  `json:"volunteer"`
	Reviewer            *UserSummary `json:"reviewer,omitempty"`
	Legs                []LegView    `json:"legs"`
	State               string       `json:"state"`
	IsPending           bool         `json:"isPending"`
	IsApproved          bool         `json:"isApproved"`
	CounterpartApproved bool         `json:"counterpartApproved"`
	CreatedAt           time.Time    `json:"createdAt"`
	DecidedAt           *time.Time   `json:"decidedAt,omitempty"`
}
