// Package ledger contiene la lógica de conciliación financiera (servicio de dominio puro):
// saldos de personal (devir / hakediş / ödenen / bakiye), cobranzas pendientes de clientes
// y el resumen diario de caja (kasa). No accede al almacén; recibe filas ya leídas.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// EntryKind tipo de movimiento del libro. El signo lo define el tipo, no la fila.
type EntryKind int

const (
	KindEarning    EntryKind = iota + 1 // hakediş: aumenta la deuda salarial
	KindPayment                         // ödenen: pago al personal, sale de caja
	KindCollection                      // cobro a cliente, entra a caja
	KindExpense                         // gasto, sale de caja
)

func (k EntryKind) String() string {
	switch k {
	case KindEarning:
		return "earning"
	case KindPayment:
		return "payment"
	case KindCollection:
		return "collection"
	case KindExpense:
		return "expense"
	}
	return "unknown"
}

// Entry movimiento etiquetado. Amount es siempre la magnitud (>= 0).
type Entry struct {
	Kind   EntryKind
	Date   time.Time
	Amount decimal.Decimal
}

// Signed devuelve el monto con el signo de su tipo: Earning y Collection suman,
// Payment y Expense restan.
func (e Entry) Signed() decimal.Decimal {
	switch e.Kind {
	case KindEarning, KindCollection:
		return e.Amount
	case KindPayment, KindExpense:
		return e.Amount.Neg()
	}
	return decimal.Zero
}

// Balance Σ Signed() de las entradas.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Signed())
	}
	return total
}

// BalanceBefore Σ Signed() de las entradas con fecha estrictamente anterior a day.
func BalanceBefore(entries []Entry, day time.Time) decimal.Decimal {
	day = entity.Day(day)
	total := decimal.Zero
	for _, e := range entries {
		if entity.Day(e.Date).Before(day) {
			total = total.Add(e.Signed())
		}
	}
	return total
}

// PayrollEntries convierte registros de nómina en un par Earning/Payment por registro.
func PayrollEntries(records []*entity.PayrollRecord) []Entry {
	out := make([]Entry, 0, len(records)*2)
	for _, r := range records {
		if r == nil {
			continue
		}
		out = append(out,
			Entry{Kind: KindEarning, Date: r.Date, Amount: r.DailyWage},
			Entry{Kind: KindPayment, Date: r.Date, Amount: r.PaidAmount},
		)
	}
	return out
}

// CarryoverByPersonnel devir por personal al día dado: Σ (hakediş − ödenen) de
// los registros anteriores a day. Personal sin registros no aparece (devir 0).
func CarryoverByPersonnel(records []*entity.PayrollRecord, day time.Time) map[string]decimal.Decimal {
	day = entity.Day(day)
	out := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r == nil || !entity.Day(r.Date).Before(day) {
			continue
		}
		out[r.PersonnelID] = out[r.PersonnelID].Add(r.Net())
	}
	return out
}

// RunningBalance fila de historial con el saldo acumulado después del día.
type RunningBalance struct {
	Record  *entity.PayrollRecord
	Balance decimal.Decimal
}

// RunningBalances acumula opening + Σ neto sobre registros ya ordenados por fecha.
func RunningBalances(opening decimal.Decimal, records []*entity.PayrollRecord) []RunningBalance {
	out := make([]RunningBalance, 0, len(records))
	acc := opening
	for _, r := range records {
		acc = acc.Add(r.Net())
		out = append(out, RunningBalance{Record: r, Balance: acc})
	}
	return out
}
