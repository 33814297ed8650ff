package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
)

// CashHandler cobros y gastos.
type CashHandler struct {
	uc *usecase.CashUseCase
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *usecase.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// CreateCollection POST /api/collections
func (h *CashHandler) CreateCollection(c *fiber.Ctx) error {
	var in dto.CreateCollectionRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.CreateCollection(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCollections GET /api/collections?from=&to=&customer_id=
func (h *CashHandler) ListCollections(c *fiber.Ctx) error {
	var q dto.CashQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	out, err := h.uc.ListCollections(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteCollection DELETE /api/collections/:id
func (h *CashHandler) DeleteCollection(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteCollection(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateExpense POST /api/expenses
func (h *CashHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.CreateExpense(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses GET /api/expenses?from=&to=&category=
func (h *CashHandler) ListExpenses(c *fiber.Ctx) error {
	var q dto.CashQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	out, err := h.uc.ListExpenses(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteExpense DELETE /api/expenses/:id
func (h *CashHandler) DeleteExpense(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteExpense(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
