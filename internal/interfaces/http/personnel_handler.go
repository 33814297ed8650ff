package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// PersonnelHandler CRUD de personal.
type PersonnelHandler struct {
	uc *usecase.PersonnelUseCase
}

// NewPersonnelHandler construye el handler.
func NewPersonnelHandler(uc *usecase.PersonnelUseCase) *PersonnelHandler {
	return &PersonnelHandler{uc: uc}
}

// Create POST /api/personnel
func (h *PersonnelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonnelRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	p, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// List GET /api/personnel?status=active|inactive
func (h *PersonnelHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && status != entity.PersonnelStatusActive && status != entity.PersonnelStatusInactive {
		return domain.NewValidationError("status", "debe ser active o inactive")
	}
	list, err := h.uc.List(c.UserContext(), status)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetByID GET /api/personnel/:id
func (h *PersonnelHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	p, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Update PUT /api/personnel/:id
func (h *PersonnelHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdatePersonnelRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	p, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Delete DELETE /api/personnel/:id
func (h *PersonnelHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
