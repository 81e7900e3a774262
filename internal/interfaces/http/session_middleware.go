package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/application/ports"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/pkg/logger"
)

const (
	localSession   = "session"
	localDestroyed = "session_destroyed"
)

// SessionMiddleware carga la sesión, la deja en c.Locals y la persiste al terminar.
// Las *domain.RedirectError se resuelven aquí (flash + redirección) para que el flash
// se guarde con el resto de la sesión, antes de que el ErrorHandler vea el error.
func SessionMiddleware(store *session.Store, metrics *Metrics, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fmt.Errorf("session: cargar: %w", err)
		}
		c.Locals(localSession, sess)

		err = c.Next()

		var rerr *domain.RedirectError
		if errors.As(err, &rerr) {
			if errors.Is(rerr, domain.ErrForbidden) {
				actor := GetActor(c)
				metrics.Denied(c.Route().Path)
				log.Info().
					Str("action", c.Method()+" "+c.Route().Path).
					Str("actor_id", actor.ID).
					Str("role", actor.Role.String()).
					Msg("acceso denegado")
			}
			err = respondRedirect(c, sess, rerr)
		}

		if destroyed, _ := c.Locals(localDestroyed).(bool); destroyed {
			return err
		}
		if serr := sess.Save(); serr != nil && err == nil {
			return fmt.Errorf("session: guardar: %w", serr)
		}
		return err
	}
}

// GetSession sesión de la petición (nil fuera de SessionMiddleware).
func GetSession(c *fiber.Ctx) ports.Session {
	sess, ok := c.Locals(localSession).(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// destroySession borra la sesión del almacenamiento; el middleware ya no la guarda.
func destroySession(c *fiber.Ctx) error {
	sess, ok := c.Locals(localSession).(*session.Session)
	if !ok {
		return nil
	}
	c.Locals(localDestroyed, true)
	return sess.Destroy()
}

func respondRedirect(c *fiber.Ctx, sess ports.Session, rerr *domain.RedirectError) error {
	if rerr.Flash != nil && rerr.FlashKey != "" {
		flash.Push(sess, rerr.FlashKey, *rerr.Flash)
	}
	return redirectTo(c, rerr.To)
}

// redirectTo redirección 303 para navegadores; los clientes JSON reciben {redirect}.
func redirectTo(c *fiber.Ctx, to string) error {
	if wantsJSON(c) {
		return c.JSON(dto.RedirectResponse{Redirect: to})
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") || c.Is("json") {
		return true
	}
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
