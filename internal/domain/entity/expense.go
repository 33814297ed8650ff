package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto pagado por la empresa (sin cliente).
type Expense struct {
	ID            string
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod string
	Category      string
	ReceiptNo     string
	Description   string
	CreatedAt     time.Time
}
