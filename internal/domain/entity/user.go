package entity

import (
	"time"

	"github.com/jhoicas/leave-tracker/internal/domain/access"
)

// User representa un voluntario, miembro del staff o administrador.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	CountryCode  string
	Role         access.Role
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
