package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0,00 ₺",
		"999.9":   "999,90 ₺",
		"1234.5":  "1.234,50 ₺",
		"1000000": "1.000.000,00 ₺",
		"-25000":  "-25.000,00 ₺",
		"-0.004":  "0,00 ₺",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateRegister_GeneraPDF(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	reg := ledger.ComputeRegister(ledger.RegisterInput{
		Date:               day,
		PriorCashCollected: decimal.NewFromInt(1500),
		PriorCashExpense:   decimal.NewFromInt(300),
		PriorPaidWages:     decimal.NewFromInt(200),
		TodayPaidWages:     decimal.NewFromInt(100),
		Collections: []*entity.Collection{
			{ID: "c1", Date: day, Amount: decimal.NewFromInt(400), PaymentMethod: "nakit", CustomerName: "Kaya"},
			{ID: "c2", Date: day, Amount: decimal.NewFromInt(250), PaymentMethod: "kart"},
		},
		Expenses: []*entity.Expense{
			{ID: "e1", Date: day, Amount: decimal.NewFromInt(50), PaymentMethod: "nakit", Category: "malzeme"},
		},
	})

	out, err := NewMarotoRegisterGenerator("Temizlik").GenerateRegister(reg)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateRegister_Nil(t *testing.T) {
	_, err := NewMarotoRegisterGenerator("").GenerateRegister(nil)
	assert.Error(t, err)
}
