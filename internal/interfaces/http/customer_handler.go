package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List GET /api/customers?search=&type=&limit=20&offset=0
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.CustomerQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	list, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	customer, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateCustomerRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	customer, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id. 409 si el cliente tiene órdenes o cobros.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
