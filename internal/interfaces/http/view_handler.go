package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-tracker/internal/application/usecase"
)

// ViewHandler páginas HTML (o su modelo JSON) del tracker.
type ViewHandler struct {
	uc       *usecase.ViewUseCase
	renderer Renderer
}

// NewViewHandler construye el handler de vistas; renderer nil usa JSONRenderer.
func NewViewHandler(uc *usecase.ViewUseCase, renderer Renderer) *ViewHandler {
	if renderer == nil {
		renderer = JSONRenderer{}
	}
	return &ViewHandler{uc: uc, renderer: renderer}
}

// Index godoc
// @Summary      Página raíz
// @Description  Redirige a login, al formulario de solicitud o al dashboard según el actor.
// @Tags         views
// @Success      303
// @Router       / [get]
func (h *ViewHandler) Index(c *fiber.Ctx) error {
	to, err := h.uc.Index(c.UserContext(), GetActor(c))
	if err != nil {
		return err
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

// Login godoc
// @Summary      Formulario de login
// @Tags         views
// @Produce      json
// @Success      200  {object}  dto.RenderModel
// @Router       /login [get]
func (h *ViewHandler) Login(c *fiber.Ctx) error {
	return h.renderer.Render(c, h.uc.Login(GetSession(c)))
}

// Register godoc
// @Summary      Formulario de registro por invitación
// @Tags         views
// @Produce      json
// @Param        token  path  string  true  "token de invitación"
// @Success      200  {object}  dto.RenderModel
// @Router       /register/{token} [get]
func (h *ViewHandler) Register(c *fiber.Ctx) error {
	return h.renderer.Render(c, h.uc.Register(GetSession(c), c.Params("token")))
}

// Reset godoc
// @Summary      Formulario de contraseña olvidada
// @Tags         views
// @Produce      json
// @Success      200  {object}  dto.RenderModel
// @Router       /forgot [get]
func (h *ViewHandler) Reset(c *fiber.Ctx) error {
	return h.renderer.Render(c, h.uc.Reset(GetSession(c)))
}

// Dashboard godoc
// @Summary      Dashboard
// @Description  Consume returnTo si existe; si no, lista solicitudes propias (voluntario) o pendientes (staff+).
// @Tags         views
// @Produce      json
// @Success      200  {object}  dto.RenderModel
// @Success      303
// @Router       /dashboard [get]
func (h *ViewHandler) Dashboard(c *fiber.Ctx) error {
	to, model, err := h.uc.Dashboard(c.UserContext(), GetActor(c), GetSession(c))
	if err != nil {
		return err
	}
	if to != "" {
		return c.Redirect(to, fiber.StatusSeeOther)
	}
	return h.renderer.Render(c, model)
}

// SubmitForm godoc
// @Summary      Formulario de nueva solicitud
// @Tags         views
// @Produce      json
// @Success      200  {object}  dto.RenderModel
// @Router       /dashboard/submit [get]
func (h *ViewHandler) SubmitForm(c *fiber.Ctx) error {
	model, err := h.uc.SubmitForm(c.UserContext(), GetActor(c), GetSession(c))
	if err != nil {
		return err
	}
	return h.renderer.Render(c, model)
}

// EditRequest godoc
// @Summary      Formulario de edición de una solicitud pendiente
// @Tags         views
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RenderModel
// @Success      303
// @Router       /requests/{id}/edit [get]
func (h *ViewHandler) EditRequest(c *fiber.Ctx) error {
	model, err := h.uc.EditRequest(c.UserContext(), GetActor(c), GetSession(c), c.Params("id"))
	if err != nil {
		return err
	}
	return h.renderer.Render(c, model)
}

// Approval godoc
// @Summary      Vista de aprobación de una solicitud
// @Description  Incluye las advertencias del país de cada tramo y el mensaje de estado.
// @Tags         views
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RenderModel
// @Success      303
// @Router       /requests/{id} [get]
func (h *ViewHandler) Approval(c *fiber.Ctx) error {
	model, err := h.uc.Approval(c.UserContext(), GetActor(c), GetSession(c), c.Params("id"))
	if err != nil {
		return err
	}
	return h.renderer.Render(c, model)
}

// Users godoc
// @Summary      Listado de usuarios
// @Tags         views
// @Produce      json
// @Param        q  query  string  false  "búsqueda aproximada por nombre o email"
// @Success      200  {object}  dto.RenderModel
// @Success      303
// @Router       /users [get]
func (h *ViewHandler) Users(c *fiber.Ctx) error {
	model, err := h.uc.Users(c.UserContext(), GetActor(c), GetSession(c), c.Query("q"))
	if err != nil {
		return err
	}
	return h.renderer.Render(c, model)
}

// AddUsers godoc
// @Summary      Formulario de alta de usuarios
// @Tags         views
// @Produce      json
// @Success      200  {object}  dto.RenderModel
// @Success      303
// @Router       /users/add [get]
func (h *ViewHandler) AddUsers(c *fiber.Ctx) error {
	model, err := h.uc.AddUsers(GetActor(c), GetSession(c))
	if err != nil {
		return err
	}
	return h.renderer.Render(c, model)
}

// Profile godoc
// @Summary      Perfil de usuario
// @Description  Sin userId muestra el propio perfil.
// @Tags         views
// @Produce      json
// @Param        userId  path  string  false  "ID del usuario"
// @Success      200  {object}  dto.RenderModel
// @Success      303
// @Router       /profile/{userId} [get]
func (h *ViewHandler) Profile(c *fiber.Ctx) error {
	model, err := h.uc.Profile(c.UserContext(), GetActor(c), GetSession(c), c.Params("userId"))
	if err != nil {
		return err
	}
	return h.renderer.Render(c, model)
}
