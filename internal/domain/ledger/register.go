package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// RegisterInput sumas históricas y movimientos del día ya leídos del almacén.
// Las sumas "Prior*" son de fechas < D; las de caja ya están filtradas por método efectivo.
type RegisterInput struct {
	Date               time.Time
	PriorCashCollected decimal.Decimal // Σ cobros en efectivo con fecha < D
	PriorCashExpense   decimal.Decimal // Σ gastos en efectivo con fecha < D
	PriorPaidWages     decimal.Decimal // Σ ödenen con fecha < D (siempre efectivo)
	TodayPaidWages     decimal.Decimal // Σ ödenen con fecha == D
	TotalWageDebt      decimal.Decimal // Σ (hakediş − ödenen) de todas las fechas
	Collections        []*entity.Collection
	Expenses           []*entity.Expense
}

// RegisterLine movimiento del día para mostrar (todos los métodos de pago).
type RegisterLine struct {
	ID          string
	Amount      decimal.Decimal
	Method      PaymentMethod
	MethodLabel string
	Cash        bool
	Party       string // cliente (cobros) o categoría (gastos)
	Description string
}

// MethodTotal totales del día por método de pago.
type MethodTotal struct {
	Method    PaymentMethod
	Label     string
	Collected decimal.Decimal
	Expense   decimal.Decimal
}

// Register resumen diario de caja (kasa).
type Register struct {
	Date               time.Time
	PreviousBalance    decimal.Decimal
	TodayCashCollected decimal.Decimal
	TodayCashExpense   decimal.Decimal
	TodayPaidWages     decimal.Decimal
	TotalWageDebt      decimal.Decimal
	Total              decimal.Decimal // PreviousBalance + cobros efectivo − gastos efectivo − ödenen de hoy
	TodayCollected     decimal.Decimal // todos los métodos
	TodayExpense       decimal.Decimal // todos los métodos
	ByMethod           []MethodTotal
	Collections        []RegisterLine
	Expenses           []RegisterLine
}

// ComputeRegister combina las sumas en el resumen del día.
//
//	previousBalance = cobros efectivo(<D) − gastos efectivo(<D) − ödenen(<D)
//	total           = previousBalance + cobros efectivo(D) − gastos efectivo(D) − ödenen(D)
func ComputeRegister(in RegisterInput) *Register {
	day := entity.Day(in.Date)
	out := &Register{
		Date: day,
		PreviousBalance: Balance([]Entry{
			{Kind: KindCollection, Amount: in.PriorCashCollected},
			{Kind: KindExpense, Amount: in.PriorCashExpense},
			{Kind: KindPayment, Amount: in.PriorPaidWages},
		}),
		TodayPaidWages:     in.TodayPaidWages,
		TotalWageDebt:      in.TotalWageDebt,
		TodayCashCollected: decimal.Zero,
		TodayCashExpense:   decimal.Zero,
		TodayCollected:     decimal.Zero,
		TodayExpense:       decimal.Zero,
		Collections:        make([]RegisterLine, 0, len(in.Collections)),
		Expenses:           make([]RegisterLine, 0, len(in.Expenses)),
	}

	byMethod := make(map[PaymentMethod]*MethodTotal)
	methodTotal := func(m PaymentMethod) *MethodTotal {
		mt, ok := byMethod[m]
		if !ok {
			mt = &MethodTotal{Method: m, Label: m.Label(), Collected: decimal.Zero, Expense: decimal.Zero}
			byMethod[m] = mt
		}
		return mt
	}

	today := make([]Entry, 0, len(in.Collections)+len(in.Expenses)+1)
	for _, c := range in.Collections {
		if c == nil {
			continue
		}
		m := NormalizePaymentMethod(c.PaymentMethod)
		out.TodayCollected = out.TodayCollected.Add(c.Amount)
		methodTotal(m).Collected = methodTotal(m).Collected.Add(c.Amount)
		if m.IsCash() {
			out.TodayCashCollected = out.TodayCashCollected.Add(c.Amount)
			today = append(today, Entry{Kind: KindCollection, Date: c.Date, Amount: c.Amount})
		}
		out.Collections = append(out.Collections, RegisterLine{
			ID: c.ID, Amount: c.Amount, Method: m, MethodLabel: m.Label(), Cash: m.IsCash(),
			Party: c.CustomerName, Description: c.Description,
		})
	}
	for _, e := range in.Expenses {
		if e == nil {
			continue
		}
		m := NormalizePaymentMethod(e.PaymentMethod)
		out.TodayExpense = out.TodayExpense.Add(e.Amount)
		methodTotal(m).Expense = methodTotal(m).Expense.Add(e.Amount)
		if m.IsCash() {
			out.TodayCashExpense = out.TodayCashExpense.Add(e.Amount)
			today = append(today, Entry{Kind: KindExpense, Date: e.Date, Amount: e.Amount})
		}
		out.Expenses = append(out.Expenses, RegisterLine{
			ID: e.ID, Amount: e.Amount, Method: m, MethodLabel: m.Label(), Cash: m.IsCash(),
			Party: e.Category, Description: e.Description,
		})
	}
	today = append(today, Entry{Kind: KindPayment, Date: day, Amount: in.TodayPaidWages})

	out.Total = out.PreviousBalance.Add(Balance(today))

	for _, m := range PaymentMethods() {
		if mt, ok := byMethod[m]; ok {
			out.ByMethod = append(out.ByMethod, *mt)
			delete(byMethod, m)
		}
	}
	// Códigos desconocidos al final, en el orden en que aparecieron.
	for _, l := range append(append([]RegisterLine{}, out.Collections...), out.Expenses...) {
		if mt, ok := byMethod[l.Method]; ok {
			out.ByMethod = append(out.ByMethod, *mt)
			delete(byMethod, l.Method)
		}
	}
	return out
}
