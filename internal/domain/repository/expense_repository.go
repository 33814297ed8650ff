package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// ExpenseFilter filtro para listados de gastos.
type ExpenseFilter struct {
	DateRange
	Category string
	Limit    int
	Offset   int
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)
	ListByDate(ctx context.Context, date time.Time) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error

	// SumByMethodsBefore Σ amount con fecha < date y LOWER(payment_method) en codes.
	SumByMethodsBefore(ctx context.Context, date time.Time, codes []string) (decimal.Decimal, error)
}
