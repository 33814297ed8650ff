package ledger

import (
	"strings"
)

// PaymentMethod método de pago canónico. El valor es el código que se persiste.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "nakit"
	PaymentCard     PaymentMethod = "kredi_karti"
	PaymentTransfer PaymentMethod = "havale"
)

// paymentMethodTable tabla bidireccional etiqueta UI ↔ códigos almacenados.
// Incluye todas las grafías históricas; el primer código es el canónico.
var paymentMethodTable = []struct {
	method PaymentMethod
	label  string
	codes  []string
}{
	{PaymentCash, "Nakit", []string{"nakit", "cash"}},
	{PaymentCard, "Kredi Kartı", []string{"kredi_karti", "kart", "credit_card", "kredi kartı"}},
	{PaymentTransfer, "Havale/EFT", []string{"havale", "bank_transfer", "eft", "havale/eft"}},
}

var paymentMethodIndex = buildPaymentMethodIndex()

func buildPaymentMethodIndex() map[string]PaymentMethod {
	idx := make(map[string]PaymentMethod)
	for _, row := range paymentMethodTable {
		idx[normalizeKey(row.label)] = row.method
		for _, c := range row.codes {
			idx[normalizeKey(c)] = row.method
		}
	}
	return idx
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePaymentMethod convierte una etiqueta o código histórico a su método canónico.
// Los valores desconocidos se devuelven sin cambios.
func NormalizePaymentMethod(raw string) PaymentMethod {
	if m, ok := paymentMethodIndex[normalizeKey(raw)]; ok {
		return m
	}
	return PaymentMethod(raw)
}

// PaymentMethods métodos canónicos en orden de presentación.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, 0, len(paymentMethodTable))
	for _, row := range paymentMethodTable {
		out = append(out, row.method)
	}
	return out
}

// Known indica si m es uno de los métodos canónicos.
func (m PaymentMethod) Known() bool {
	for _, row := range paymentMethodTable {
		if row.method == m {
			return true
		}
	}
	return false
}

// Label etiqueta de UI; para métodos desconocidos devuelve el valor tal cual.
func (m PaymentMethod) Label() string {
	for _, row := range paymentMethodTable {
		if row.method == m {
			return row.label
		}
	}
	return string(m)
}

// Codes todas las grafías almacenadas (en minúsculas) que normalizan a m, incluida la etiqueta.
// Para un método desconocido devuelve solo su propio valor.
func (m PaymentMethod) Codes() []string {
	for _, row := range paymentMethodTable {
		if row.method == m {
			out := make([]string, 0, len(row.codes)+1)
			out = append(out, row.codes...)
			if k := normalizeKey(row.label); !contains(out, k) {
				out = append(out, k)
			}
			return out
		}
	}
	return []string{normalizeKey(string(m))}
}

// IsCash indica si el método cuenta para la caja (kasa).
func (m PaymentMethod) IsCash() bool { return m == PaymentCash }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
