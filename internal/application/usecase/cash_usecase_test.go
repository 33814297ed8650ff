package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

func newCashUC() (*usecase.CashUseCase, *store) {
	s := newStore()
	s.customers[custID] = &entity.Customer{ID: custID, Name: "Ofis A.Ş."}
	return usecase.NewCashUseCase(&collectionRepo{s: s}, &expenseRepo{s: s}, &customerRepo{s: s}), s
}

func TestCreateCollection_GuardaCodigoCanonico(t *testing.T) {
	uc, s := newCashUC()
	cid := custID

	out, err := uc.CreateCollection(context.Background(), dto.CreateCollectionRequest{
		CustomerID:    &cid,
		Date:          "2024-03-01",
		Amount:        decimal.NewFromInt(250),
		PaymentMethod: " Cash ",
	})
	require.NoError(t, err)

	assert.Equal(t, "nakit", out.PaymentMethod)
	assert.Equal(t, "Nakit", out.PaymentMethodLabel)
	assert.Equal(t, "Ofis A.Ş.", out.CustomerName)
	require.Contains(t, s.collections, out.ID)
	assert.Equal(t, "nakit", s.collections[out.ID].PaymentMethod)
}

func TestCreateCollection_SinCliente(t *testing.T) {
	uc, _ := newCashUC()

	out, err := uc.CreateCollection(context.Background(), dto.CreateCollectionRequest{
		Date: "2024-03-01", Amount: decimal.NewFromInt(10), PaymentMethod: "Havale/EFT",
	})
	require.NoError(t, err)
	assert.Nil(t, out.CustomerID)
	assert.Equal(t, "havale", out.PaymentMethod)
}

func TestCreateCollection_Rechazos(t *testing.T) {
	uc, s := newCashUC()
	ctx := context.Background()
	missing := "77777777-7777-7777-7777-777777777777"

	cases := map[string]dto.CreateCollectionRequest{
		"método desconocido": {Date: "2024-03-01", Amount: decimal.NewFromInt(10), PaymentMethod: "çek"},
		"monto cero":         {Date: "2024-03-01", Amount: decimal.Zero, PaymentMethod: "nakit"},
		"fecha inválida":     {Date: "2024/03/01", Amount: decimal.NewFromInt(10), PaymentMethod: "nakit"},
		"cliente inexistente": {
			CustomerID: &missing, Date: "2024-03-01", Amount: decimal.NewFromInt(10), PaymentMethod: "nakit",
		},
	}
	for name, in := range cases {
		_, err := uc.CreateCollection(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
	assert.Empty(t, s.collections)
}

func TestCreateExpense_YBorrado(t *testing.T) {
	uc, s := newCashUC()
	ctx := context.Background()

	out, err := uc.CreateExpense(ctx, dto.CreateExpenseRequest{
		Date: "2024-03-01", Amount: decimal.RequireFromString("99.90"), PaymentMethod: "Kredi Kartı", Category: "malzeme",
	})
	require.NoError(t, err)
	assert.Equal(t, "kredi_karti", out.PaymentMethod)
	assert.Equal(t, "malzeme", out.Category)

	require.NoError(t, uc.DeleteExpense(ctx, out.ID))
	assert.Empty(t, s.expenses)
	assert.ErrorIs(t, uc.DeleteExpense(ctx, out.ID), domain.ErrNotFound)
}

func TestDeleteCollection_Inexistente(t *testing.T) {
	uc, _ := newCashUC()
	err := uc.DeleteCollection(context.Background(), "88888888-8888-8888-8888-888888888888")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
