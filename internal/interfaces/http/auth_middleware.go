package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain/access"
	"github.com/jhoicas/leave-tracker/internal/domain/guard"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
	"github.com/jhoicas/leave-tracker/internal/domain/repository"
	"github.com/jhoicas/leave-tracker/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// CookieToken cookie http-only con el JWT de sesión.
const CookieToken = "token"

// AuthMiddleware lee el JWT (Bearer o cookie) y, si es válido, deja UserID y Role en c.Locals.
// El rol sale del usuario almacenado, no del claim: una degradación o un borrado aplican en
// la siguiente petición. Un token de un usuario inexistente equivale a no tener sesión.
// No corta la petición: sin token el actor es anónimo y cada ruta decide.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		fromCookie := false
		if tokenString == "" {
			tokenString = c.Cookies(CookieToken)
			fromCookie = true
		}
		if tokenString == "" {
			return c.Next()
		}
		userID, roleName, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if fromCookie {
				c.ClearCookie(CookieToken)
			}
			return c.Next()
		}
		if _, ok := access.ParseRole(roleName); !ok {
			return c.Next()
		}
		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			return fmt.Errorf("auth: cargar usuario: %w", err)
		}
		if user == nil || !user.Role.Valid() {
			if fromCookie {
				c.ClearCookie(CookieToken)
			}
			return c.Next()
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireActor exige actor autenticado. Bajo /api responde 401; en páginas guarda
// returnTo (solo GET) y redirige a /login.
func RequireActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetActor(c).Anonymous() {
			return c.Next()
		}
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		if c.Method() == fiber.MethodGet {
			if sess := GetSession(c); sess != nil {
				sess.Set(usecase.SessionReturnTo, c.OriginalURL())
			}
		}
		return c.Redirect(navigation.HrefLogin, fiber.StatusSeeOther)
	}
}

// GetUserID devuelve el UserID del contexto ("" si es anónimo).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del actor; Unknown si es anónimo.
func GetRole(c *fiber.Ctx) access.Role {
	r, _ := c.Locals(LocalRole).(access.Role)
	return r
}

// GetActor actor de la petición para el guard.
func GetActor(c *fiber.Ctx) guard.Actor {
	return guard.Actor{ID: GetUserID(c), Role: GetRole(c)}
}
