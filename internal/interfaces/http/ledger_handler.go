package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// LedgerHandler expone los tres motores de lectura: libro de personal, cobranzas y caja.
type LedgerHandler struct {
	personnel   *appledger.PersonnelLedgerUseCase
	receivables *appledger.ReceivablesUseCase
	register    *appledger.CashRegisterUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(
	personnel *appledger.PersonnelLedgerUseCase,
	receivables *appledger.ReceivablesUseCase,
	register *appledger.CashRegisterUseCase,
) *LedgerHandler {
	return &LedgerHandler{personnel: personnel, receivables: receivables, register: register}
}

// PersonnelLedger godoc
// @Summary      Libro diario de personal (devir, hakediş, ödenen, bakiye)
// @Tags         ledger
// @Produce      json
// @Param        date              query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Param        personnel_id      query  string  false  "UUID"
// @Param        only_outstanding  query  bool    false  "solo bakiye != 0"
// @Success      200  {object}  dto.PersonnelLedgerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ledger/personnel [get]
func (h *LedgerHandler) PersonnelLedger(c *fiber.Ctx) error {
	var q dto.PersonnelLedgerQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	out, err := h.personnel.Get(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExportPersonnelLedger godoc
// @Summary      Libro diario de personal en Excel
// @Tags         ledger
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date  query  string  false  "YYYY-MM-DD"
// @Success      200
// @Security     BearerAuth
// @Router       /api/ledger/personnel/export [get]
func (h *LedgerHandler) ExportPersonnelLedger(c *fiber.Ctx) error {
	var q dto.PersonnelLedgerQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	day, err := dateParam(q.Date)
	if err != nil {
		return err
	}
	content, filename, err := h.personnel.Export(c.UserContext(), appledger.LedgerQuery{
		Date: day, PersonnelID: q.PersonnelID, OnlyOutstanding: q.OnlyOutstanding,
	})
	if err != nil {
		return err
	}
	return sendAttachment(c, mimeXLSX, filename, content)
}

// Receivables godoc
// @Summary      Cobranzas pendientes de clientes con órdenes aprobadas próximas
// @Tags         ledger
// @Produce      json
// @Param        search  query  string  false  "subcadena del nombre"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.PendingCollectionsResponse
// @Security     BearerAuth
// @Router       /api/ledger/receivables [get]
func (h *LedgerHandler) Receivables(c *fiber.Ctx) error {
	var q dto.PendingCollectionsQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	out, err := h.receivables.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CustomerBalance godoc
// @Summary      Saldo general de un cliente
// @Tags         ledger
// @Produce      json
// @Param        id  path  string  true  "UUID del cliente"
// @Success      200  {object}  dto.CustomerBalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ledger/customers/{id}/balance [get]
func (h *LedgerHandler) CustomerBalance(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.receivables.CustomerBalance(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Resumen diario de caja (kasa)
// @Tags         ledger
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.CashRegisterResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ledger/register [get]
func (h *LedgerHandler) Register(c *fiber.Ctx) error {
	out, err := h.register.Get(c.UserContext(), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RegisterPDF godoc
// @Summary      Resumen diario de caja en PDF
// @Tags         ledger
// @Produce      application/pdf
// @Param        date  query  string  false  "YYYY-MM-DD"
// @Success      200
// @Security     BearerAuth
// @Router       /api/ledger/register/pdf [get]
func (h *LedgerHandler) RegisterPDF(c *fiber.Ctx) error {
	day, err := dateParam(c.Query("date"))
	if err != nil {
		return err
	}
	content, filename, err := h.register.DailyPDF(c.UserContext(), day)
	if err != nil {
		return err
	}
	return sendAttachment(c, mimePDF, filename, content)
}

// PaymentMethods godoc
// @Summary      Tabla de normalización de métodos de pago
// @Tags         ledger
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodDTO
// @Router       /api/payment-methods [get]
func (h *LedgerHandler) PaymentMethods(c *fiber.Ctx) error {
	return c.JSON(appledger.PaymentMethodTable())
}

// dateParam interpreta ?date; vacío devuelve el instante cero y el motor usa hoy.
func dateParam(s string) (day time.Time, err error) {
	if s == "" {
		return time.Time{}, nil
	}
	day, err = entity.ParseDay(s)
	if err != nil {
		return day, domain.NewValidationError("date", "debe tener formato YYYY-MM-DD")
	}
	return day, nil
}

func sendAttachment(c *fiber.Ctx, mime, filename string, content []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}
