package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-tracker/internal/application/draft"
	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/application/ports"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
)

// MsgLoginToSubmit aviso al enviar una solicitud sin sesión; el formulario se conserva.
const MsgLoginToSubmit = "Please log in to finish submitting your leave request."

// RequestHandler envío, edición y revisión de solicitudes.
type RequestHandler struct {
	uc      *usecase.RequestUseCase
	metrics *Metrics
}

// NewRequestHandler construye el handler de solicitudes.
func NewRequestHandler(uc *usecase.RequestUseCase, metrics *Metrics) *RequestHandler {
	return &RequestHandler{uc: uc, metrics: metrics}
}

// Submit godoc
// @Summary      Enviar solicitud de permiso
// @Description  Sin sesión el formulario se guarda como borrador y se redirige a /login.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitRequest  true  "tramos (fechas M D YYYY, mes base 1) y contraparte"
// @Success      303
// @Success      200  {object}  dto.RedirectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/submit [post]
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sess := GetSession(c)
	actor := GetActor(c)
	if actor.Anonymous() {
		if err := draft.Store(sess, draft.KindSubmission, in); err != nil {
			return err
		}
		sess.Set(usecase.SessionReturnTo, navigation.HrefSubmit)
		flash.Push(sess, flash.KeyLogin, domain.Flash{Text: MsgLoginToSubmit, Class: domain.FlashInfo})
		return redirectTo(c, navigation.HrefLogin)
	}

	_, err := h.uc.Submit(c.UserContext(), actor, in)
	if errors.Is(err, domain.ErrInvalidInput) {
		return backToForm(c, sess, in, err, navigation.HrefSubmit)
	}
	if err != nil {
		return err
	}
	flash.Push(sess, flash.KeyDashboard, domain.Flash{Text: usecase.MsgRequestSubmitted, Class: domain.FlashSuccess})
	return redirectTo(c, navigation.HrefDashboard)
}

// Update godoc
// @Summary      Editar solicitud pendiente
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la solicitud"
// @Param        body  body  dto.SubmitRequest  true  "tramos y contraparte"
// @Success      303
// @Success      200  {object}  dto.RedirectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /requests/{id}/edit [post]
func (h *RequestHandler) Update(c *fiber.Ctx) error {
	var in dto.SubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	sess := GetSession(c)
	_, err := h.uc.Update(c.UserContext(), GetActor(c), id, in)
	if errors.Is(err, domain.ErrInvalidInput) {
		return backToForm(c, sess, in, err, usecase.RequestHref(id)+"/edit")
	}
	if err != nil {
		return err
	}
	flash.Push(sess, flash.KeyDashboard, domain.Flash{Text: usecase.MsgRequestUpdated, Class: domain.FlashSuccess})
	return redirectTo(c, navigation.HrefDashboard)
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      303
// @Success      200  {object}  dto.RedirectResponse
// @Router       /requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, true)
}

// Deny godoc
// @Summary      Denegar solicitud
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      303
// @Success      200  {object}  dto.RedirectResponse
// @Router       /requests/{id}/deny [post]
func (h *RequestHandler) Deny(c *fiber.Ctx) error {
	return h.decide(c, false)
}

func (h *RequestHandler) decide(c *fiber.Ctx, approve bool) error {
	if _, err := h.uc.Decide(c.UserContext(), GetActor(c), c.Params("id"), approve); err != nil {
		return err
	}
	h.metrics.Decided(approve)
	msg := domain.Flash{Text: usecase.MsgRequestDenied, Class: domain.FlashSuccess}
	if approve {
		msg.Text = usecase.MsgRequestApproved
	}
	flash.Push(GetSession(c), flash.KeyDashboard, msg)
	return redirectTo(c, navigation.HrefDashboard)
}

// backToForm conserva lo enviado como borrador y vuelve al formulario con el motivo.
func backToForm(c *fiber.Ctx, sess ports.Session, in dto.SubmitRequest, cause error, to string) error {
	if err := draft.Store(sess, draft.KindSubmission, in); err != nil {
		return err
	}
	flash.Push(sess, flash.KeySubmission, domain.Flash{Text: dto.UserMessage(cause), Class: domain.FlashDanger})
	return redirectTo(c, to)
}
