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

var _ repository.CollectionRepository = (*CollectionRepo)(nil)

const collectionSelect = `
	SELECT k.id, k.customer_id::text, COALESCE(c.name, ''), k.date, k.amount, k.payment_method,
	       k.description, k.created_at
	FROM collections k
	LEFT JOIN customers c ON c.id = k.customer_id`

// CollectionRepo implementación de CollectionRepository (pool o tx).
type CollectionRepo struct {
	q Querier
}

// NewCollectionRepository construye el adaptador.
func NewCollectionRepository(q Querier) *CollectionRepo {
	return &CollectionRepo{q: q}
}

// Create inserta un cobro. CustomerID nil = entrada de caja sin cliente.
func (r *CollectionRepo) Create(ctx context.Context, c *entity.Collection) error {
	query := `
		INSERT INTO collections (id, customer_id, date, amount, payment_method, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CustomerID, entity.Day(c.Date), c.Amount, c.PaymentMethod, c.Description, c.CreatedAt,
	)
	return storeErr("collections.insert", err)
}

// GetByID obtiene un cobro; (nil, nil) si no existe.
func (r *CollectionRepo) GetByID(ctx context.Context, id string) (*entity.Collection, error) {
	c, err := scanCollection(r.q.QueryRow(ctx, collectionSelect+` WHERE k.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("collections.get", err)
	}
	return c, nil
}

// List lista cobros por fecha descendente.
func (r *CollectionRepo) List(ctx context.Context, filter repository.CollectionFilter) ([]*entity.Collection, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.From != nil {
		add("k.date >= $%d", entity.Day(*filter.From))
	}
	if filter.To != nil {
		add("k.date <= $%d", entity.Day(*filter.To))
	}
	if filter.CustomerID != "" {
		add("k.customer_id = $%d", filter.CustomerID)
	}
	query := collectionSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY k.date DESC, k.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(ctx, "collections.list", query, args...)
}

// ListByDate cobros del día en orden de carga.
func (r *CollectionRepo) ListByDate(ctx context.Context, date time.Time) ([]*entity.Collection, error) {
	return r.list(ctx, "collections.list_by_date",
		collectionSelect+` WHERE k.date = $1 ORDER BY k.created_at, k.id`, entity.Day(date))
}

func (r *CollectionRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Collection, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		list = append(list, c)
	}
	return list, storeErr(op, rows.Err())
}

// Delete elimina un cobro.
func (r *CollectionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return storeErr("collections.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumByMethodsBefore Σ amount anterior a date con método en codes (comparación sin mayúsculas ni espacios).
func (r *CollectionRepo) SumByMethodsBefore(ctx context.Context, date time.Time, codes []string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM collections
		WHERE date < $1 AND LOWER(TRIM(payment_method)) = ANY($2)`,
		entity.Day(date), codes,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, storeErr("collections.sum_before", err)
	}
	return total, nil
}

// SumByCustomers Σ amount de todos los cobros de cada cliente.
func (r *CollectionRepo) SumByCustomers(ctx context.Context, customerIDs []string) (map[string]repository.CustomerTotal, error) {
	out := make(map[string]repository.CustomerTotal, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT customer_id::text, COALESCE(SUM(amount), 0), COUNT(*)
		FROM collections WHERE customer_id::text = ANY($1)
		GROUP BY customer_id`
	err := scanCustomerTotals(ctx, r.q, "collections.sum_by_customer", query, out, customerIDs)
	return out, err
}

func scanCollection(row pgx.Row) (*entity.Collection, error) {
	var c entity.Collection
	if err := row.Scan(&c.ID, &c.CustomerID, &c.CustomerName, &c.Date, &c.Amount, &c.PaymentMethod,
		&c.Description, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Date = entity.Day(c.Date)
	return &c, nil
}
