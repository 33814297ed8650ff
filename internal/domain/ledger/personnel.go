package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// InconsistencyDuplicatePayroll más de un registro de nómina para el mismo personal y día.
const InconsistencyDuplicatePayroll = "duplicate_payroll_record"

// Inconsistency estado detectado en lectura que no impide el cálculo pero debe reportarse.
type Inconsistency struct {
	Kind        string
	PersonnelID string
	Date        time.Time
	Count       int
}

// PersonnelLedgerInput datos ya leídos del almacén para un día D.
type PersonnelLedgerInput struct {
	Date       time.Time
	Personnel  []*entity.Personnel
	Carryover  map[string]decimal.Decimal // Σ (hakediş − ödenen) con fecha < D, por personal
	DayRecords []*entity.PayrollRecord    // registros con fecha == D
	DayOrders  []*entity.WorkOrder        // órdenes con fecha == D (con asignaciones)
}

// PersonnelLedgerOptions opciones de presentación.
type PersonnelLedgerOptions struct {
	OnlyOutstanding bool // descarta filas con bakiye == 0
}

// PersonnelLedgerRow fila del libro de un personal para el día.
type PersonnelLedgerRow struct {
	Personnel    *entity.Personnel
	Carryover    decimal.Decimal // devir
	DailyWage    decimal.Decimal // hakediş
	PaidAmount   decimal.Decimal // ödenen
	BalanceAfter decimal.Decimal // bakiye = devir + hakediş − ödenen
	RecordIDs    []string
	Description  string
	WorkOrders   []*entity.WorkOrder
}

// PersonnelLedgerTotals totales de las filas devueltas.
type PersonnelLedgerTotals struct {
	Carryover    decimal.Decimal
	DailyWage    decimal.Decimal
	PaidAmount   decimal.Decimal
	BalanceAfter decimal.Decimal
}

// PersonnelLedger resultado completo del motor de libro de personal.
type PersonnelLedger struct {
	Date            time.Time
	Rows            []PersonnelLedgerRow
	Totals          PersonnelLedgerTotals
	Inconsistencies []Inconsistency
}

// BuildPersonnelLedger arma una fila por personal:
//
//	devir    = Carryover[p] (0 si no hay historial)
//	hakediş  = Σ DailyWage de los registros del día (se suman duplicados)
//	ödenen   = Σ PaidAmount de los registros del día
//	bakiye   = devir + hakediş − ödenen
//
// Orden: primero quienes tienen órdenes asignadas ese día, luego bakiye != 0,
// luego por nombre (colación turca).
func BuildPersonnelLedger(in PersonnelLedgerInput, opts PersonnelLedgerOptions) *PersonnelLedger {
	day := entity.Day(in.Date)

	byPersonnel := make(map[string][]*entity.PayrollRecord)
	for _, r := range in.DayRecords {
		if r == nil || !entity.Day(r.Date).Equal(day) {
			continue
		}
		byPersonnel[r.PersonnelID] = append(byPersonnel[r.PersonnelID], r)
	}

	ordersByPersonnel := make(map[string][]*entity.WorkOrder)
	for _, wo := range in.DayOrders {
		if wo == nil {
			continue
		}
		for _, pid := range wo.PersonnelIDs {
			ordersByPersonnel[pid] = append(ordersByPersonnel[pid], wo)
		}
	}

	out := &PersonnelLedger{Date: day, Rows: make([]PersonnelLedgerRow, 0, len(in.Personnel))}

	for _, p := range in.Personnel {
		if p == nil {
			continue
		}
		row := PersonnelLedgerRow{
			Personnel:  p,
			Carryover:  in.Carryover[p.ID],
			DailyWage:  decimal.Zero,
			PaidAmount: decimal.Zero,
			WorkOrders: ordersByPersonnel[p.ID],
		}
		records := byPersonnel[p.ID]
		if len(records) > 1 {
			out.Inconsistencies = append(out.Inconsistencies, Inconsistency{
				Kind:        InconsistencyDuplicatePayroll,
				PersonnelID: p.ID,
				Date:        day,
				Count:       len(records),
			})
		}
		for _, r := range records {
			row.DailyWage = row.DailyWage.Add(r.DailyWage)
			row.PaidAmount = row.PaidAmount.Add(r.PaidAmount)
			row.RecordIDs = append(row.RecordIDs, r.ID)
			if row.Description == "" {
				row.Description = r.Description
			}
		}
		row.BalanceAfter = row.Carryover.Add(row.DailyWage).Sub(row.PaidAmount)

		if opts.OnlyOutstanding && row.BalanceAfter.IsZero() {
			continue
		}
		out.Rows = append(out.Rows, row)
	}

	sortPersonnelRows(out.Rows)

	for _, r := range out.Rows {
		out.Totals.Carryover = out.Totals.Carryover.Add(r.Carryover)
		out.Totals.DailyWage = out.Totals.DailyWage.Add(r.DailyWage)
		out.Totals.PaidAmount = out.Totals.PaidAmount.Add(r.PaidAmount)
		out.Totals.BalanceAfter = out.Totals.BalanceAfter.Add(r.BalanceAfter)
	}
	return out
}

func sortPersonnelRows(rows []PersonnelLedgerRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		aWorked, bWorked := len(a.WorkOrders) > 0, len(b.WorkOrders) > 0
		if aWorked != bWorked {
			return aWorked
		}
		aOwed, bOwed := !a.BalanceAfter.IsZero(), !b.BalanceAfter.IsZero()
		if aOwed != bOwed {
			return aOwed
		}
		return compareNames(a.Personnel.Name, b.Personnel.Name) < 0
	})
}
