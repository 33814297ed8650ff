package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	domledger "github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

func newCashRegister(s *memStore, pdf appledger.RegisterPDFGenerator, m appledger.Metrics) *appledger.CashRegisterUseCase {
	return appledger.NewCashRegisterUseCase(collectionRepo{s}, expenseRepo{s}, payrollRepo{s}, pdf,
		fixedClock{day: day("2024-03-10")}, m, nil)
}

func (s *memStore) addExpense(id, date, amount, method string) {
	s.expenses = append(s.expenses, &entity.Expense{ID: id, Date: day(date), Amount: dec(amount), PaymentMethod: method, Category: "malzeme"})
}

// Cobros en efectivo 1000 + 500, gastos 300 y ödenen 200 antes de D → saldo anterior 1000.
func TestCashRegister_SaldoAnterior(t *testing.T) {
	s := newMemStore()
	s.addPersonnel("p-ali", "Ali")
	s.addCollection("c1", "", "2024-03-01", "1000", "nakit")
	s.addCollection("c2", "", "2024-03-05", "500", "Cash")
	s.addCollection("c3", "", "2024-03-05", "900", "kredi_karti") // no es efectivo
	s.addExpense("e1", "2024-03-02", "300", "Nakit")
	s.addExpense("e2", "2024-03-02", "50", "havale")
	s.addPayroll("r1", "p-ali", day("2024-03-03"), "700", "200")

	s.addCollection("c4", "", "2024-03-10", "400", "nakit")
	s.addCollection("c5", "", "2024-03-10", "250", "eft")
	s.addExpense("e3", "2024-03-10", "100", "cash")
	s.addPayroll("r2", "p-ali", day("2024-03-10"), "500", "300")

	reg, err := newCashRegister(s, nil, nil).Daily(context.Background(), day("2024-03-10"))
	require.NoError(t, err)

	assert.True(t, reg.PreviousBalance.Equal(dec("1000")))
	assert.True(t, reg.TodayCashCollected.Equal(dec("400")))
	assert.True(t, reg.TodayCashExpense.Equal(dec("100")))
	assert.True(t, reg.TodayPaidWages.Equal(dec("300")))
	assert.True(t, reg.Total.Equal(dec("1000")), "1000 + 400 − 100 − 300")
	assert.True(t, reg.TotalWageDebt.Equal(dec("700")), "(700−200) + (500−300)")
	assert.True(t, reg.TodayCollected.Equal(dec("650")))
}

// Si cualquiera de las sumas falla, no hay resumen.
func TestCashRegister_FalloDeUnaSumaFallaElResumen(t *testing.T) {
	for _, op := range []string{
		"collection.SumByMethodsBefore",
		"expense.SumByMethodsBefore",
		"payroll.SumPaidBefore",
		"payroll.SumPaidOn",
		"payroll.SumNetAll",
		"collection.ListByDate",
		"expense.ListByDate",
	} {
		t.Run(op, func(t *testing.T) {
			s := newMemStore()
			s.addCollection("c1", "", "2024-03-01", "1000", "nakit")
			s.failOn(op)
			m := newRecordingMetrics()

			reg, err := newCashRegister(s, nil, m).Daily(context.Background(), day("2024-03-10"))
			assert.Nil(t, reg)
			require.ErrorIs(t, err, domain.ErrStoreUnavailable)
			assert.Equal(t, 1, m.failures[appledger.EngineCashRegister])
		})
	}
}

type fakeRegisterPDF struct{ calls int }

func (f *fakeRegisterPDF) GenerateRegister(*domledger.Register) ([]byte, error) {
	f.calls++
	return []byte("%PDF"), nil
}

func TestCashRegister_PDFDelDia(t *testing.T) {
	s := newMemStore()
	pdf := &fakeRegisterPDF{}
	content, name, err := newCashRegister(s, pdf, nil).DailyPDF(context.Background(), day("2024-03-09"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), content)
	assert.Equal(t, "kasa-2024-03-09.pdf", name)
	assert.Equal(t, 1, pdf.calls)
}

func TestCashRegister_GetFechaVaciaEsHoy(t *testing.T) {
	resp, err := newCashRegister(newMemStore(), nil, nil).Get(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", resp.Date)
	assert.NotNil(t, resp.Collections)
}

func TestPaymentMethodTable_ExponeCodigosHistoricos(t *testing.T) {
	table := appledger.PaymentMethodTable()
	require.Len(t, table, 3)
	assert.Equal(t, "nakit", table[0].Code)
	assert.True(t, table[0].Cash)
	assert.Contains(t, table[2].Codes, "eft")
}
