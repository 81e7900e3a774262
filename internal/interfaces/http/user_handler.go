package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leave-tracker/internal/application/auth"
	"github.com/jhoicas/leave-tracker/internal/application/dto"
	"github.com/jhoicas/leave-tracker/internal/application/flash"
	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
	"github.com/jhoicas/leave-tracker/internal/domain/navigation"
)

// MsgInviteCreated prefijo del flash con el enlace de registro.
const MsgInviteCreated = "Invitation created. Share this registration link: "

// UserHandler invitaciones, edición de perfil y borrado de cuentas.
type UserHandler struct {
	uc       *usecase.UserUseCase
	authUC   *auth.AuthUseCase
	linkBase string
}

// NewUserHandler construye el handler de usuarios. linkBase vacío usa la URL de la petición.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.AuthUseCase, linkBase string) *UserHandler {
	return &UserHandler{uc: uc, authUC: authUC, linkBase: linkBase}
}

// Invite godoc
// @Summary      Invitar usuario
// @Description  Solo Admin. Devuelve el token y el enlace de registro.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InviteRequest  true  "email y rol"
// @Success      201   {object}  dto.InviteResponse
// @Success      303
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users/add [post]
func (h *UserHandler) Invite(c *fiber.Ctx) error {
	var in dto.InviteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	linkBase := h.linkBase
	if linkBase == "" {
		linkBase = c.BaseURL()
	}
	out, err := h.authUC.Invite(c.UserContext(), GetActor(c), in, linkBase)
	if wantsJSON(c) {
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}

	sess := GetSession(c)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		flash.Push(sess, flash.KeyAddUsers, domain.Flash{Text: usecase.MsgEmailTaken, Class: domain.FlashDanger})
	case errors.Is(err, domain.ErrInvalidInput):
		flash.Push(sess, flash.KeyAddUsers, domain.Flash{Text: dto.UserMessage(err), Class: domain.FlashDanger})
	case err != nil:
		return err
	default:
		flash.Push(sess, flash.KeyAddUsers, domain.Flash{Text: MsgInviteCreated + out.Link, Class: domain.FlashSuccess})
	}
	return c.Redirect(navigation.HrefAddUsers, fiber.StatusSeeOther)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil
// @Description  Aplica solo los campos de "new" que difieren de "old" y que el actor puede cambiar.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path  string                    true  "ID del usuario"
// @Param        body    body  dto.ProfileUpdateRequest  true  "valores mostrados y nuevos"
// @Success      200     {object}  dto.RedirectResponse
// @Router       /profile/{userId} [post]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.ProfileUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	userID := c.Params("userId")
	back := usecase.ProfileHref(userID)
	sess := GetSession(c)

	_, err := h.uc.UpdateProfile(c.UserContext(), GetActor(c), userID, in)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		flash.Push(sess, flash.KeyProfile, domain.Flash{Text: usecase.MsgEmailTaken, Class: domain.FlashDanger})
	case errors.Is(err, domain.ErrInvalidInput):
		flash.Push(sess, flash.KeyProfile, domain.Flash{Text: dto.UserMessage(err), Class: domain.FlashDanger})
	case err != nil:
		return err
	default:
		flash.Push(sess, flash.KeyProfile, domain.Flash{Text: usecase.MsgProfileUpdated, Class: domain.FlashSuccess})
	}
	return c.JSON(dto.RedirectResponse{Redirect: back})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  Solo Admin; no puede eliminarse a sí mismo.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteUserRequest  true  "ID del usuario"
// @Success      200   {object}  dto.RedirectResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/users [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sess := GetSession(c)
	err := h.uc.Delete(c.UserContext(), GetActor(c), in.UserID)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		flash.Push(sess, flash.KeyUsers, domain.Flash{Text: dto.UserMessage(err), Class: domain.FlashDanger})
	case err != nil:
		return err
	default:
		flash.Push(sess, flash.KeyUsers, domain.Flash{Text: usecase.MsgUserDeleted, Class: domain.FlashSuccess})
	}
	return c.JSON(dto.RedirectResponse{Redirect: navigation.HrefUsers})
}
