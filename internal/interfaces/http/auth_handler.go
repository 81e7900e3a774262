package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/leave-tracker/internal/application/auth"
	"github.com/jhoicas/leave-tracker/internal/application/draft"
	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
)

// Mensajes de los formularios de acceso.
const (
	MsgBadCredentials = "Invalid email or password."
	MsgInviteInvalid  = "This invitation link is invalid or has expired."
	MsgAccountCreated = "Your account has been created. Please log in."
)

// CookieConfig atributos de la cookie del token.
type CookieConfig struct {
	Secure     bool
	ExpMinutes int
}

// AuthHandler maneja login, logout y registro por invitación.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Emite el JWT en una cookie http-only. Los clientes JSON reciben también el token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Success      303
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sess := GetSession(c)
	out, err := h.uc.Login(c.UserContext(), in)
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidInput) {
		// Un borrador de solicitud pendiente tiene prioridad sobre el del login.
		if draft.Pending(sess) != draft.KindSubmission {
			if derr := draft.Store(sess, draft.KindLogin, dto.LoginDraft{Email: in.Email}); derr != nil {
				return derr
			}
		}
		flash.Push(sess, flash.KeyLogin, domain.Flash{Text: MsgBadCredentials, Class: domain.FlashDanger})
		if wantsJSON(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: MsgBadCredentials})
		}
		return c.Redirect(navigation.HrefLogin, fiber.StatusSeeOther)
	}
	if err != nil {
		return err
	}

	if rs, ok := c.Locals(localSession).(*session.Session); ok {
		if err := rs.Regenerate(); err != nil {
			return err
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cookie.ExpMinutes) * time.Minute),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if wantsJSON(c) {
		return c.JSON(out)
	}
	return c.Redirect(navigation.HrefDashboard, fiber.StatusSeeOther)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(CookieToken)
	if err := destroySession(c); err != nil {
		return err
	}
	return redirectTo(c, navigation.HrefLogin)
}

// Register godoc
// @Summary      Registro por invitación
// @Description  El rol lo fija la invitación; el email debe coincidir con el invitado.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path  string               true  "token de invitación"
// @Param        body   body  dto.RegisterRequest  true  "datos del usuario"
// @Success      303
// @Success      200  {object}  dto.RedirectResponse
// @Router       /register/{token} [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	token := c.Params("token")
	sess := GetSession(c)
	_, err := h.uc.Register(c.UserContext(), token, in)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			msg = MsgInviteInvalid
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			msg = usecase.MsgEmailTaken
		case errors.Is(err, domain.ErrInvalidInput):
			msg = dto.UserMessage(err)
		default:
			return err
		}
		if derr := draft.Store(sess, draft.KindRegister, in.Draft()); derr != nil {
			return derr
		}
		flash.Push(sess, flash.KeyRegister, domain.Flash{Text: msg, Class: domain.FlashDanger})
		return redirectTo(c, "/register/"+token)
	}
	flash.Push(sess, flash.KeyLogin, domain.Flash{Text: MsgAccountCreated, Class: domain.FlashSuccess})
	return redirectTo(c, navigation.HrefLogin)
}
