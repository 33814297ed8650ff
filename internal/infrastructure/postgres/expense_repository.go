package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, date, amount, payment_method, category, receipt_no, description, created_at`

// ExpenseRepo implementación de ExpenseRepository (pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create inserta un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		e.ID, entity.Day(e.Date), e.Amount, e.PaymentMethod, e.Category, e.ReceiptNo, e.Description, e.CreatedAt,
	)
	return storeErr("expenses.insert", err)
}

// GetByID obtiene un gasto; (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("expenses.get", err)
	}
	return e, nil
}

// List lista gastos por fecha descendente.
func (r *ExpenseRepo) List(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.From != nil {
		add("date >= $%d", entity.Day(*filter.From))
	}
	if filter.To != nil {
		add("date <= $%d", entity.Day(*filter.To))
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(ctx, "expenses.list", query, args...)
}

// ListByDate gastos del día en orden de carga.
func (r *ExpenseRepo) ListByDate(ctx context.Context, date time.Time) ([]*entity.Expense, error) {
	return r.list(ctx, "expenses.list_by_date",
		`SELECT `+expenseColumns+` FROM expenses WHERE date = $1 ORDER BY created_at, id`, entity.Day(date))
}

func (r *ExpenseRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		list = append(list, e)
	}
	return list, storeErr(op, rows.Err())
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return storeErr("expenses.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumByMethodsBefore Σ amount anterior a date con método en codes.
func (r *ExpenseRepo) SumByMethodsBefore(ctx context.Context, date time.Time, codes []string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses
		WHERE date < $1 AND LOWER(TRIM(payment_method)) = ANY($2)`,
		entity.Day(date), codes,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, storeErr("expenses.sum_before", err)
	}
	return total, nil
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Date, &e.Amount, &e.PaymentMethod, &e.Category, &e.ReceiptNo,
		&e.Description, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Date = entity.Day(e.Date)
	return &e, nil
}
