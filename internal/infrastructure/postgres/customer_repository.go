package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, addresses, type, balance, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	addresses, err := encodeAddresses(c.Addresses)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		c.ID, c.Name, c.Phone, addresses, c.Type, c.Balance, c.CreatedAt, c.UpdatedAt,
	)
	return storeErr("customers.insert", err)
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("customers.get", err)
	}
	return c, nil
}

// List lista clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	where, args := customerWhere(filter)
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM customers %s ORDER BY name, id LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("customers.list", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, storeErr("customers.scan", err)
		}
		list = append(list, c)
	}
	return list, storeErr("customers.list", rows.Err())
}

// Count total de clientes que cumplen el filtro (sin paginación).
func (r *CustomerRepo) Count(ctx context.Context, filter repository.CustomerFilter) (int, error) {
	where, args := customerWhere(filter)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers `+where, args...).Scan(&n); err != nil {
		return 0, storeErr("customers.count", err)
	}
	return n, nil
}

// Update actualiza los datos de contacto del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	addresses, err := encodeAddresses(c.Addresses)
	if err != nil {
		return err
	}
	query := `
		UPDATE customers SET name = $2, phone = $3, addresses = $4, type = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Phone, addresses, c.Type, c.UpdatedAt)
	if err != nil {
		return storeErr("customers.update", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Con órdenes o cobros asociados devuelve ErrConflict (FK).
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return storeErr("customers.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func customerWhere(filter repository.CustomerFilter) (string, []any) {
	var conds []string
	var args []any
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var addresses []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &addresses, &c.Type, &c.Balance, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if len(addresses) > 0 {
		if err := json.Unmarshal(addresses, &c.Addresses); err != nil {
			return nil, fmt.Errorf("customers.addresses %s: %w", c.ID, err)
		}
	}
	return &c, nil
}

func encodeAddresses(a entity.Addresses) ([]byte, error) {
	if a == nil {
		a = entity.Addresses{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, domain.NewValidationError("addresses", err.Error())
	}
	return b, nil
}
