package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-tracker/internal/application/dto"
)

// Renderer puerto de presentación. Un motor de plantillas puede implementarlo usando
// m.View como nombre de plantilla.
type Renderer interface {
	Render(c *fiber.Ctx, m *dto.RenderModel) error
}

// JSONRenderer renderer por defecto: entrega el modelo como JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(c *fiber.Ctx, m *dto.RenderModel) error {
	return c.JSON(m)
}

// TemplateRenderer delega en el motor de vistas configurado en fiber.Config.Views.
type TemplateRenderer struct {
	Layout string
}

func (r TemplateRenderer) Render(c *fiber.Ctx, m *dto.RenderModel) error {
	if r.Layout == "" {
		return c.Render(m.View, m)
	}
	return c.Render(m.View, m, r.Layout)
}
