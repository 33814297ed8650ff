package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

func TestNormalizePaymentMethod_GrafiasHistoricas(t *testing.T) {
	cases := map[string]ledger.PaymentMethod{
		"nakit":         ledger.PaymentCash,
		"Nakit":         ledger.PaymentCash,
		"cash":          ledger.PaymentCash,
		" CASH ":        ledger.PaymentCash,
		"kredi_karti":   ledger.PaymentCard,
		"kart":          ledger.PaymentCard,
		"credit_card":   ledger.PaymentCard,
		"Kredi Kartı":   ledger.PaymentCard,
		"havale":        ledger.PaymentTransfer,
		"eft":           ledger.PaymentTransfer,
		"EFT":           ledger.PaymentTransfer,
		"bank_transfer": ledger.PaymentTransfer,
		"Havale/EFT":    ledger.PaymentTransfer,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ledger.NormalizePaymentMethod(raw), "raw=%q", raw)
	}
}

// Un cobro guardado como "eft" se clasifica igual que uno guardado como "havale".
func TestNormalizePaymentMethod_EftIgualHavale(t *testing.T) {
	assert.Equal(t, ledger.NormalizePaymentMethod("havale"), ledger.NormalizePaymentMethod("eft"))
	assert.False(t, ledger.NormalizePaymentMethod("eft").IsCash())
}

func TestNormalizePaymentMethod_DesconocidoPasaSinCambios(t *testing.T) {
	m := ledger.NormalizePaymentMethod("çek")
	assert.Equal(t, ledger.PaymentMethod("çek"), m)
	assert.False(t, m.Known())
	assert.Equal(t, "çek", m.Label())
	assert.Equal(t, []string{"çek"}, m.Codes())
}

func TestPaymentMethod_CodesIncluyeEtiqueta(t *testing.T) {
	codes := ledger.PaymentCash.Codes()
	assert.Contains(t, codes, "nakit")
	assert.Contains(t, codes, "cash")
	assert.Equal(t, "nakit", codes[0], "el primer código es el canónico")

	assert.Contains(t, ledger.PaymentTransfer.Codes(), "havale/eft")
	for _, c := range ledger.PaymentCard.Codes() {
		assert.Equal(t, ledger.PaymentCard, ledger.NormalizePaymentMethod(c))
	}
}

func TestPaymentMethods_Orden(t *testing.T) {
	assert.Equal(t,
		[]ledger.PaymentMethod{ledger.PaymentCash, ledger.PaymentCard, ledger.PaymentTransfer},
		ledger.PaymentMethods())
	assert.Equal(t, "Kredi Kartı", ledger.PaymentCard.Label())
}
