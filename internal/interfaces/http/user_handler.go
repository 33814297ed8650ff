package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
)

// UserHandler administración de usuarios (rutas solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /api/users?limit=&offset=
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return err
	}
	list, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	u, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// UpdateAccess PATCH /api/users/:id
func (h *UserHandler) UpdateAccess(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateUserAccessRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	u, err := h.uc.UpdateAccess(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
