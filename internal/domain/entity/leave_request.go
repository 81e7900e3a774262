package entity

import "time"

// RequestStatus estado de revisión. IsApproved solo tiene sentido cuando IsPending es false.
type RequestStatus struct {
	IsPending  bool `json:"isPending"`
	IsApproved bool `json:"isApproved"`
}

// Leg tramo país/fechas de una solicitud. StartDate y EndDate usan la codificación
// YYYYMMDD con mes base cero (ver paquete legdate).
type Leg struct {
	CountryCode string
	StartDate   int
	EndDate     int
	Warnings    []string // derivado al mostrar, no se persiste
}

// LeaveRequest solicitud de viaje/ausencia de un voluntario.
type LeaveRequest struct {
	ID                  string
	VolunteerID         string
	ReviewerID          string // vacío hasta que un revisor decide
	Legs                []Leg
	Status              RequestStatus
	CounterpartApproved bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DecidedAt           *time.Time
}
