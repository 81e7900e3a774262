package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CountryCode string    `json:"countryCode"`
	CountryName string    `json:"countryName,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginDraft lo que se conserva de un login fallido: nunca la contraseña.
type LoginDraft struct {
	Email string `json:"email"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// InviteRequest alta de usuario por un admin: genera un enlace de registro.
type InviteRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
	Role  string `json:"role" form:"role" validate:"required,oneof=volunteer staff admin"`
}

// InviteResponse token de invitación y enlace de registro.
type InviteResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRequest entrada del formulario de registro por invitación.
type RegisterRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"omitempty,e164"`
	CountryCode string `json:"countryCode" form:"countryCode" validate:"omitempty,len=2,alpha"`
	Password    string `json:"password" form:"password" validate:"required,min=8"`
}

// Draft copia del formulario sin la contraseña.
func (r RegisterRequest) Draft() RegisterDraft {
	return RegisterDraft{Name: r.Name, Email: r.Email, Phone: r.Phone, CountryCode: r.CountryCode}
}

// RegisterDraft borrador del formulario de registro.
type RegisterDraft struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
}

// ResetDraft borrador del formulario de restablecimiento.
type ResetDraft struct {
	Email string `json:"email"`
}

// ProfilePatch campos de perfil; nil significa "sin cambios".
type ProfilePatch struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,e164"`
	CountryCode *string `json:"countryCode,omitempty" validate:"omitempty,len=2,alpha"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=volunteer staff admin"`
}

// ProfileUpdateRequest cuerpo de POST /profile/:userId. Old es lo que el cliente mostraba;
// sólo se aplican los campos de New que difieren de Old.
type ProfileUpdateRequest struct {
	Old ProfilePatch `json:"old"`
	New ProfilePatch `json:"new"`
}

// DeleteUserRequest cuerpo de DELETE /api/users.
type DeleteUserRequest struct {
	UserID string `json:"userId" form:"userId" validate:"required"`
}
