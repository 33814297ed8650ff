package http

import (
	"github.com/gofiber/fiber/v2"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/application/dto"
)

// PayrollHandler escrituras de nómina y recálculo de saldos.
type PayrollHandler struct {
	uc *appledger.PayrollUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *appledger.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Upsert godoc
// @Summary      Crear o reemplazar el registro de nómina de (personal, fecha)
// @Description  Recalcula el saldo del personal desde su historial completo en la misma transacción.
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertPayrollRequest  true  "personnel_id, date, daily_wage, paid_amount"
// @Success      200  {object}  dto.PayrollUpsertResponse
// @Success      201  {object}  dto.PayrollUpsertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/payroll [put]
func (h *PayrollHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertPayrollRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if out.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// Delete godoc
// @Summary      Eliminar un registro de nómina
// @Tags         payroll
// @Produce      json
// @Param        id  path  string  true  "UUID del registro"
// @Success      200  {object}  dto.PayrollDeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/payroll/{id} [delete]
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	personnelID, balance, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.PayrollDeleteResponse{PersonnelID: personnelID, CurrentBalance: balance})
}

// History godoc
// @Summary      Historial de nómina con saldo acumulado
// @Tags         payroll
// @Produce      json
// @Param        personnel_id  query  string  true   "UUID"
// @Param        from          query  string  false  "YYYY-MM-DD"
// @Param        to            query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.PayrollHistoryResponse
// @Security     BearerAuth
// @Router       /api/payroll [get]
func (h *PayrollHandler) History(c *fiber.Ctx) error {
	var q dto.PayrollHistoryQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	out, err := h.uc.HistoryFor(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Recompute godoc
// @Summary      Recalcular el saldo cacheado de un personal (admin)
// @Tags         personnel
// @Produce      json
// @Param        id  path  string  true  "UUID del personal"
// @Success      200  {object}  dto.RecomputeResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/personnel/{id}/recompute-balance [post]
func (h *PayrollHandler) Recompute(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Recompute(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
