package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

// CashRegisterUseCase resumen diario de caja (kasa).
type CashRegisterUseCase struct {
	collectionRepo repository.CollectionRepository
	expenseRepo    repository.ExpenseRepository
	payrollRepo    repository.PayrollRepository
	pdf            RegisterPDFGenerator
	clock          Clock
	metrics        Metrics
	log            *logger.Logger
}

// NewCashRegisterUseCase construye el caso de uso. pdf puede ser nil si no se imprime.
func NewCashRegisterUseCase(
	collectionRepo repository.CollectionRepository,
	expenseRepo repository.ExpenseRepository,
	payrollRepo repository.PayrollRepository,
	pdf RegisterPDFGenerator,
	clock Clock,
	metrics Metrics,
	log *logger.Logger,
) *CashRegisterUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &CashRegisterUseCase{
		collectionRepo: collectionRepo,
		expenseRepo:    expenseRepo,
		payrollRepo:    payrollRepo,
		pdf:            pdf,
		clock:          clock,
		metrics:        metrics,
		log:            log,
	}
}

// Daily calcula la caja del día. Date cero = hoy.
//
// Siete lecturas independientes en paralelo; si una falla, falla el resumen completo.
// Los pagos de nómina (ödenen) siempre cuentan como efectivo.
func (uc *CashRegisterUseCase) Daily(ctx context.Context, date time.Time) (reg *ledger.Register, err error) {
	defer func() { uc.metrics.ComputationObserved(EngineCashRegister, err) }()

	day := date
	if day.IsZero() {
		day = uc.clock.Today()
	}
	day = entity.Day(day)
	cashCodes := ledger.PaymentCash.Codes()

	in := ledger.RegisterInput{Date: day}
	g, gctx := errgroup.WithContext(ctx)
	sum := func(label string, dst *decimal.Decimal, fn func(context.Context) (decimal.Decimal, error)) {
		g.Go(func() error {
			v, err := fn(gctx)
			if err != nil {
				return fmt.Errorf("caja: %s: %w", label, err)
			}
			*dst = v
			return nil
		})
	}

	sum("cobros en efectivo anteriores", &in.PriorCashCollected, func(ctx context.Context) (decimal.Decimal, error) {
		return uc.collectionRepo.SumByMethodsBefore(ctx, day, cashCodes)
	})
	sum("gastos en efectivo anteriores", &in.PriorCashExpense, func(ctx context.Context) (decimal.Decimal, error) {
		return uc.expenseRepo.SumByMethodsBefore(ctx, day, cashCodes)
	})
	sum("pagos de nómina anteriores", &in.PriorPaidWages, func(ctx context.Context) (decimal.Decimal, error) {
		return uc.payrollRepo.SumPaidBefore(ctx, day)
	})
	sum("pagos de nómina del día", &in.TodayPaidWages, func(ctx context.Context) (decimal.Decimal, error) {
		return uc.payrollRepo.SumPaidOn(ctx, day)
	})
	sum("deuda salarial total", &in.TotalWageDebt, uc.payrollRepo.SumNetAll)
	g.Go(func() error {
		list, err := uc.collectionRepo.ListByDate(gctx, day)
		if err != nil {
			return fmt.Errorf("caja: cobros del día: %w", err)
		}
		in.Collections = list
		return nil
	})
	g.Go(func() error {
		list, err := uc.expenseRepo.ListByDate(gctx, day)
		if err != nil {
			return fmt.Errorf("caja: gastos del día: %w", err)
		}
		in.Expenses = list
		return nil
	})

	if err = g.Wait(); err != nil {
		uc.log.Error().Err(err).Str("date", day.Format(entity.DateLayout)).Msg("caja diaria no calculada")
		return nil, err
	}
	return ledger.ComputeRegister(in), nil
}

// Get resuelve la query HTTP y devuelve el DTO.
func (uc *CashRegisterUseCase) Get(ctx context.Context, date string) (*dto.CashRegisterResponse, error) {
	day, err := parseOptionalDay("date", date)
	if err != nil {
		return nil, err
	}
	reg, err := uc.Daily(ctx, day)
	if err != nil {
		return nil, err
	}
	return ToCashRegisterResponse(reg), nil
}

// DailyPDF calcula la caja y la renderiza en PDF. Solo se imprime un resumen calculado completo.
func (uc *CashRegisterUseCase) DailyPDF(ctx context.Context, date time.Time) (content []byte, filename string, err error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("caja: generador PDF no configurado")
	}
	reg, err := uc.Daily(ctx, date)
	if err != nil {
		return nil, "", err
	}
	content, err = uc.pdf.GenerateRegister(reg)
	if err != nil {
		return nil, "", fmt.Errorf("caja: generar pdf: %w", err)
	}
	return content, fmt.Sprintf("kasa-%s.pdf", reg.Date.Format(entity.DateLayout)), nil
}

// ToCashRegisterResponse convierte la caja de dominio en DTO.
func ToCashRegisterResponse(reg *ledger.Register) *dto.CashRegisterResponse {
	out := &dto.CashRegisterResponse{
		Date:               reg.Date.Format(entity.DateLayout),
		PreviousBalance:    reg.PreviousBalance,
		TodayCashCollected: reg.TodayCashCollected,
		TodayCashExpense:   reg.TodayCashExpense,
		TodayPaidWages:     reg.TodayPaidWages,
		TotalWageDebt:      reg.TotalWageDebt,
		Total:              reg.Total,
		TodayCollected:     reg.TodayCollected,
		TodayExpense:       reg.TodayExpense,
		ByMethod:           make([]dto.MethodTotalDTO, 0, len(reg.ByMethod)),
		Collections:        toRegisterLines(reg.Collections),
		Expenses:           toRegisterLines(reg.Expenses),
	}
	for _, m := range reg.ByMethod {
		out.ByMethod = append(out.ByMethod, dto.MethodTotalDTO{
			Method: string(m.Method), Label: m.Label, Collected: m.Collected, Expense: m.Expense,
		})
	}
	return out
}

func toRegisterLines(lines []ledger.RegisterLine) []dto.RegisterLineDTO {
	out := make([]dto.RegisterLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.RegisterLineDTO{
			ID:          l.ID,
			Amount:      l.Amount,
			Method:      string(l.Method),
			MethodLabel: l.MethodLabel,
			Cash:        l.Cash,
			Party:       l.Party,
			Description: l.Description,
		})
	}
	return out
}

// PaymentMethodTable tabla de normalización de métodos de pago.
func PaymentMethodTable() []dto.PaymentMethodDTO {
	methods := ledger.PaymentMethods()
	out := make([]dto.PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.PaymentMethodDTO{Code: string(m), Label: m.Label(), Codes: m.Codes(), Cash: m.IsCash()})
	}
	return out
}
