package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// WorkOrderHandler órdenes de trabajo. Crear aprobada y aprobar requieren admin o manager.
type WorkOrderHandler struct {
	uc *usecase.WorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *usecase.WorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create POST /api/work-orders
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	wo, err := h.uc.Create(c.UserContext(), in, canApprove(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(wo)
}

// List GET /api/work-orders?from=&to=&customer_id=&personnel_id=&status=
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	var q dto.WorkOrderQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	list, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetByID GET /api/work-orders/:id
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	wo, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(wo)
}

// Approve POST /api/work-orders/:id/approve
func (h *WorkOrderHandler) Approve(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	wo, err := h.uc.Approve(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(wo)
}

// UpdateStatus PATCH /api/work-orders/:id/status
func (h *WorkOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in dto.UpdateWorkOrderStatusRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if in.Status == entity.WorkOrderStatusApproved && !canApprove(c) {
		return domain.ErrForbidden
	}
	wo, err := h.uc.UpdateStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return err
	}
	return c.JSON(wo)
}

// Delete DELETE /api/work-orders/:id
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
