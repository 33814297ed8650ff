package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

func person(id, name string) *entity.Personnel {
	return &entity.Personnel{ID: id, Name: name, Status: entity.PersonnelStatusActive}
}

// Escenario: Ali tiene 500/200 el 2024-01-01; el libro del 2024-01-02 da devir 300.
func TestBuildPersonnelLedger_DevirAli(t *testing.T) {
	history := []*entity.PayrollRecord{record("ali", "2024-01-01", 500, 200)}
	res := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:      day("2024-01-02"),
		Personnel: []*entity.Personnel{person("ali", "Ali")},
		Carryover: ledger.CarryoverByPersonnel(history, day("2024-01-02")),
	}, ledger.PersonnelLedgerOptions{})

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.True(t, row.Carryover.Equal(dec(300)))
	assert.True(t, row.DailyWage.IsZero())
	assert.True(t, row.PaidAmount.IsZero())
	assert.True(t, row.BalanceAfter.Equal(dec(300)))
	assert.Empty(t, res.Inconsistencies)
}

func TestBuildPersonnelLedger_BakiyeEsDevirMasHakedisMenosOdenen(t *testing.T) {
	res := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:      day("2024-02-01"),
		Personnel: []*entity.Personnel{person("a", "Ayşe"), person("b", "Berk"), person("c", "Cem")},
		Carryover: map[string]decimal.Decimal{"a": dec(1000), "b": dec(-50)},
		DayRecords: []*entity.PayrollRecord{
			record("a", "2024-02-01", 600, 1200),
			record("b", "2024-02-01", 400, 0),
		},
	}, ledger.PersonnelLedgerOptions{})

	require.Len(t, res.Rows, 3)
	for _, r := range res.Rows {
		assert.True(t, r.BalanceAfter.Equal(r.Carryover.Add(r.DailyWage).Sub(r.PaidAmount)), r.Personnel.Name)
	}
	// Personal sin historial: todo en cero.
	last := res.Rows[2]
	assert.Equal(t, "Cem", last.Personnel.Name)
	assert.True(t, last.BalanceAfter.IsZero())

	assert.True(t, res.Totals.BalanceAfter.Equal(dec(400+350)))
}

// Registros duplicados para el mismo personal y día se suman y se reportan.
func TestBuildPersonnelLedger_DuplicadosSeSumanYReportan(t *testing.T) {
	r1 := record("ali", "2024-01-05", 300, 100)
	r2 := record("ali", "2024-01-05", 200, 0)
	r2.ID = "dup"
	res := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:       day("2024-01-05"),
		Personnel:  []*entity.Personnel{person("ali", "Ali")},
		DayRecords: []*entity.PayrollRecord{r1, r2},
	}, ledger.PersonnelLedgerOptions{})

	require.Len(t, res.Rows, 1)
	assert.True(t, res.Rows[0].DailyWage.Equal(dec(500)))
	assert.True(t, res.Rows[0].PaidAmount.Equal(dec(100)))
	assert.Len(t, res.Rows[0].RecordIDs, 2)
	require.Len(t, res.Inconsistencies, 1)
	assert.Equal(t, ledger.InconsistencyDuplicatePayroll, res.Inconsistencies[0].Kind)
	assert.Equal(t, 2, res.Inconsistencies[0].Count)
}

func TestBuildPersonnelLedger_SoloPendientes(t *testing.T) {
	res := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:      day("2024-01-05"),
		Personnel: []*entity.Personnel{person("a", "Ali"), person("b", "Banu")},
		Carryover: map[string]decimal.Decimal{"a": dec(100)},
	}, ledger.PersonnelLedgerOptions{OnlyOutstanding: true})

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "a", res.Rows[0].Personnel.ID)
}

// Orden: con órdenes del día primero, luego bakiye != 0, luego nombre (colación turca).
func TestBuildPersonnelLedger_Orden(t *testing.T) {
	wo := &entity.WorkOrder{ID: "wo1", Date: day("2024-01-05"), PersonnelIDs: []string{"z"}}
	res := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date: day("2024-01-05"),
		Personnel: []*entity.Personnel{
			person("s", "Şule"),
			person("c", "Çağla"),
			person("d", "Deniz"),
			person("z", "Zeynep"),
			person("o", "Oya"),
		},
		Carryover: map[string]decimal.Decimal{"o": dec(50)},
		DayOrders: []*entity.WorkOrder{wo},
	}, ledger.PersonnelLedgerOptions{})

	names := make([]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		names = append(names, r.Personnel.Name)
	}
	assert.Equal(t, []string{"Zeynep", "Oya", "Çağla", "Deniz", "Şule"}, names)
	require.Len(t, res.Rows[0].WorkOrders, 1)
	assert.Equal(t, "wo1", res.Rows[0].WorkOrders[0].ID)
}

func TestBuildPersonnelLedger_IgnoraRegistrosDeOtroDia(t *testing.T) {
	res := ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:       day("2024-01-05"),
		Personnel:  []*entity.Personnel{person("ali", "Ali")},
		DayRecords: []*entity.PayrollRecord{record("ali", "2024-01-04", 999, 0)},
	}, ledger.PersonnelLedgerOptions{})

	require.Len(t, res.Rows, 1)
	assert.True(t, res.Rows[0].DailyWage.IsZero())
}
