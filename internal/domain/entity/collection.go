package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection cobro recibido. CustomerID es nil para entradas de caja sin cliente.
// PaymentMethod se guarda como código canónico (ver ledger.NormalizePaymentMethod),
// aunque filas históricas pueden contener otras grafías.
type Collection struct {
	ID            string
	CustomerID    *string
	CustomerName  string // solo lectura (join)
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	Description   string
	CreatedAt     time.Time
}
