package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// workOrderSelect incluye el nombre del cliente y las asignaciones agregadas.
const workOrderSelect = `
	SELECT w.id, w.customer_id, c.name, w.date, w.price, w.status, w.description, w.address,
	       COALESCE((SELECT array_agg(a.personnel_id::text ORDER BY a.personnel_id)
	                 FROM work_order_personnel a WHERE a.work_order_id = w.id), '{}') AS personnel_ids,
	       w.created_at, w.updated_at
	FROM work_orders w
	JOIN customers c ON c.id = w.customer_id`

// WorkOrderRepo implementación de WorkOrderRepository (pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create inserta la orden y sus asignaciones. Usar dentro de RunWorkOrder.
func (r *WorkOrderRepo) Create(ctx context.Context, wo *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, customer_id, date, price, status, description, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		wo.ID, wo.CustomerID, entity.Day(wo.Date), wo.Price, wo.Status, wo.Description, wo.Address,
		wo.CreatedAt, wo.UpdatedAt,
	)
	if err != nil {
		return storeErr("work_orders.insert", err)
	}
	for _, pid := range wo.PersonnelIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO work_order_personnel (work_order_id, personnel_id) VALUES ($1, $2)`, wo.ID, pid)
		if err != nil {
			return storeErr("work_orders.assign", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus asignaciones; (nil, nil) si no existe.
func (r *WorkOrderRepo) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	wo, err := scanWorkOrder(r.q.QueryRow(ctx, workOrderSelect+` WHERE w.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("work_orders.get", err)
	}
	return wo, nil
}

// List lista órdenes por fecha descendente.
func (r *WorkOrderRepo) List(ctx context.Context, filter repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.From != nil {
		add("w.date >= $%d", entity.Day(*filter.From))
	}
	if filter.To != nil {
		add("w.date <= $%d", entity.Day(*filter.To))
	}
	if filter.CustomerID != "" {
		add("w.customer_id = $%d", filter.CustomerID)
	}
	if filter.Status != "" {
		add("w.status = $%d", filter.Status)
	}
	if filter.PersonnelID != "" {
		add("EXISTS (SELECT 1 FROM work_order_personnel a WHERE a.work_order_id = w.id AND a.personnel_id = $%d)", filter.PersonnelID)
	}
	query := workOrderSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY w.date DESC, w.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(ctx, "work_orders.list", query, args...)
}

// ListByDate órdenes del día con sus asignaciones.
func (r *WorkOrderRepo) ListByDate(ctx context.Context, date time.Time) ([]*entity.WorkOrder, error) {
	return r.list(ctx, "work_orders.list_by_date",
		workOrderSelect+` WHERE w.date = $1 ORDER BY w.created_at, w.id`, entity.Day(date))
}

func (r *WorkOrderRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		list = append(list, wo)
	}
	return list, storeErr(op, rows.Err())
}

// UpdateStatus cambia el estado de la orden.
func (r *WorkOrderRepo) UpdateStatus(ctx context.Context, id, status string, now time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE work_orders SET status = $2, updated_at = $3 WHERE id = $1`, id, status, now)
	if err != nil {
		return storeErr("work_orders.update_status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la orden; las asignaciones caen por cascada.
func (r *WorkOrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return storeErr("work_orders.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListUpcomingApprovedCustomers clientes con al menos una orden aprobada con fecha >= today.
func (r *WorkOrderRepo) ListUpcomingApprovedCustomers(ctx context.Context, today time.Time) ([]repository.UpcomingCustomer, error) {
	query := `
		SELECT c.id, c.name, c.phone, MIN(w.date) AS next_date
		FROM work_orders w
		JOIN customers c ON c.id = w.customer_id
		WHERE w.status = $1 AND w.date >= $2
		GROUP BY c.id, c.name, c.phone
		ORDER BY next_date, c.name`
	rows, err := r.q.Query(ctx, query, entity.WorkOrderStatusApproved, entity.Day(today))
	if err != nil {
		return nil, storeErr("work_orders.upcoming", err)
	}
	defer rows.Close()
	var out []repository.UpcomingCustomer
	for rows.Next() {
		var u repository.UpcomingCustomer
		if err := rows.Scan(&u.CustomerID, &u.Name, &u.Phone, &u.NextOrderDate); err != nil {
			return nil, storeErr("work_orders.upcoming", err)
		}
		u.NextOrderDate = entity.Day(u.NextOrderDate)
		out = append(out, u)
	}
	return out, storeErr("work_orders.upcoming", rows.Err())
}

// SumPriceByCustomers Σ price de todas las órdenes de cada cliente, sin filtrar por estado.
func (r *WorkOrderRepo) SumPriceByCustomers(ctx context.Context, customerIDs []string) (map[string]repository.CustomerTotal, error) {
	out := make(map[string]repository.CustomerTotal, len(customerIDs))
	if len(customerIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT customer_id::text, COALESCE(SUM(price), 0), COUNT(*)
		FROM work_orders WHERE customer_id::text = ANY($1)
		GROUP BY customer_id`
	err := scanCustomerTotals(ctx, r.q, "work_orders.sum_by_customer", query, out, customerIDs)
	return out, err
}

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var wo entity.WorkOrder
	if err := row.Scan(&wo.ID, &wo.CustomerID, &wo.CustomerName, &wo.Date, &wo.Price, &wo.Status,
		&wo.Description, &wo.Address, &wo.PersonnelIDs, &wo.CreatedAt, &wo.UpdatedAt); err != nil {
		return nil, err
	}
	wo.Date = entity.Day(wo.Date)
	return &wo, nil
}

// scanCustomerTotals llena out con filas (customer_id, sum, count).
func scanCustomerTotals(ctx context.Context, q Querier, op, query string, out map[string]repository.CustomerTotal, args ...any) error {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return storeErr(op, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var t repository.CustomerTotal
		if err := rows.Scan(&id, &t.Amount, &t.Rows); err != nil {
			return storeErr(op, err)
		}
		out[id] = t
	}
	return storeErr(op, rows.Err())
}
