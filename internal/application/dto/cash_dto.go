package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCollectionRequest body para POST /api/collections.
// payment_method acepta la etiqueta o cualquier código histórico; se guarda el código canónico.
type CreateCollectionRequest struct {
	CustomerID    *string         `json:"customer_id" validate:"omitempty,uuid"`
	Date          string          `json:"date" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
}

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Date          string          `json:"date" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	ReceiptNo     string          `json:"receipt_no" validate:"omitempty,max=100"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
}

// CashQuery query de GET /api/collections y /api/expenses.
type CashQuery struct {
	From       string `query:"from"`
	To         string `query:"to"`
	CustomerID string `query:"customer_id" validate:"omitempty,uuid"`
	Category   string `query:"category"`
	PageRequest
}

// CollectionResponse cobro en respuestas.
type CollectionResponse struct {
	ID                 string          `json:"id"`
	CustomerID         *string         `json:"customer_id,omitempty"`
	CustomerName       string          `json:"customer_name,omitempty"`
	Date               string          `json:"date"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodLabel string          `json:"payment_method_label"`
	Description        string          `json:"description,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID                 string          `json:"id"`
	Date               string          `json:"date"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentMethodLabel string          `json:"payment_method_label"`
	Category           string          `json:"category,omitempty"`
	ReceiptNo          string          `json:"receipt_no,omitempty"`
	Description        string          `json:"description,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
