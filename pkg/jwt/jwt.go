package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PurposeInvite marca los tokens de invitación; no sirven como sesión.
const PurposeInvite = "invite"

// ErrWrongPurpose el token es válido pero emitido para otro uso.
var ErrWrongPurpose = errors.New("jwt: propósito del token incorrecto")

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token para que el guard decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id,omitempty"`
	Role    string `json:"role"` // "volunteer" | "staff" | "admin"
	Email   string `json:"email,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// Generate genera un token de sesión firmado con userID y role.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	now := time.Now()
	return sign(secret, Claims{
		RegisteredClaims: registered(issuer, userID, now, expMinutes),
		UserID:           userID,
		Role:             role,
	})
}

// GenerateInvite genera un token de invitación para email con el rol asignado por el admin.
func GenerateInvite(secret, email, role, issuer string, expMinutes int) (string, time.Time, error) {
	now := time.Now()
	rc := registered(issuer, email, now, expMinutes)
	token, err := sign(secret, Claims{
		RegisteredClaims: rc,
		Role:             role,
		Email:            email,
		Purpose:          PurposeInvite,
	})
	return token, rc.ExpiresAt.Time, err
}

// Parse valida un token de sesión y devuelve userID y role.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o es una invitación.
func Parse(secret, tokenString string) (userID, role string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != "" {
		return "", "", ErrWrongPurpose
	}
	return claims.UserID, claims.Role, nil
}

// ParseInvite valida un token de invitación y devuelve email y role.
func ParseInvite(secret, tokenString string) (email, role string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	if claims.Purpose != PurposeInvite {
		return "", "", ErrWrongPurpose
	}
	return claims.Email, claims.Role, nil
}

func registered(issuer, subject string, now time.Time, expMinutes int) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
}

func sign(secret string, claims Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
