package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

const payrollColumns = `id, personnel_id, date, daily_wage, paid_amount, description, created_at, updated_at`

// PayrollRepo implementación de PayrollRepository (pool o tx).
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador.
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

// Create inserta un registro de nómina.
func (r *PayrollRepo) Create(ctx context.Context, rec *entity.PayrollRecord) error {
	query := `
		INSERT INTO payroll_records (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.PersonnelID, entity.Day(rec.Date), rec.DailyWage, rec.PaidAmount, rec.Description,
		rec.CreatedAt, rec.UpdatedAt,
	)
	return storeErr("payroll.insert", err)
}

// GetByID obtiene un registro; (nil, nil) si no existe.
func (r *PayrollRepo) GetByID(ctx context.Context, id string) (*entity.PayrollRecord, error) {
	return r.getOne(ctx, "payroll.get", `SELECT `+payrollColumns+` FROM payroll_records WHERE id = $1`, id)
}

// FindByPersonnelAndDate devuelve el registro más antiguo para (personal, día).
func (r *PayrollRepo) FindByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (*entity.PayrollRecord, error) {
	query := `
		SELECT ` + payrollColumns + ` FROM payroll_records
		WHERE personnel_id = $1 AND date = $2
		ORDER BY created_at, id LIMIT 1`
	return r.getOne(ctx, "payroll.find", query, personnelID, entity.Day(date))
}

func (r *PayrollRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.PayrollRecord, error) {
	rec, err := scanPayroll(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(op, err)
	}
	return rec, nil
}

// Update reemplaza montos y descripción.
func (r *PayrollRepo) Update(ctx context.Context, rec *entity.PayrollRecord) error {
	query := `
		UPDATE payroll_records SET daily_wage = $2, paid_amount = $3, description = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, rec.ID, rec.DailyWage, rec.PaidAmount, rec.Description, rec.UpdatedAt)
	if err != nil {
		return storeErr("payroll.update", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro.
func (r *PayrollRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return storeErr("payroll.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByPersonnel historial del personal ordenado por fecha.
func (r *PayrollRepo) ListByPersonnel(ctx context.Context, personnelID string, rng repository.DateRange) ([]*entity.PayrollRecord, error) {
	args := []any{personnelID}
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE personnel_id = $1`
	if rng.From != nil {
		args = append(args, entity.Day(*rng.From))
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if rng.To != nil {
		args = append(args, entity.Day(*rng.To))
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date, created_at, id"
	return r.list(ctx, "payroll.list_by_personnel", query, args...)
}

// ListByDate registros del día, opcionalmente de un solo personal.
func (r *PayrollRepo) ListByDate(ctx context.Context, date time.Time, personnelID string) ([]*entity.PayrollRecord, error) {
	args := []any{entity.Day(date)}
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE date = $1`
	if personnelID != "" {
		args = append(args, personnelID)
		query += " AND personnel_id = $2"
	}
	query += " ORDER BY personnel_id, created_at, id"
	return r.list(ctx, "payroll.list_by_date", query, args...)
}

func (r *PayrollRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.PayrollRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()
	var list []*entity.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, storeErr(op, err)
		}
		list = append(list, rec)
	}
	return list, storeErr(op, rows.Err())
}

// SumNetBefore Σ (daily_wage − paid_amount) anterior a date por personal.
func (r *PayrollRepo) SumNetBefore(ctx context.Context, date time.Time, personnelID string) (map[string]decimal.Decimal, error) {
	args := []any{entity.Day(date)}
	query := `
		SELECT personnel_id, COALESCE(SUM(daily_wage - paid_amount), 0)
		FROM payroll_records WHERE date < $1`
	if personnelID != "" {
		args = append(args, personnelID)
		query += " AND personnel_id = $2"
	}
	query += " GROUP BY personnel_id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("payroll.sum_net_before", err)
	}
	defer rows.Close()
	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var sum decimal.Decimal
		if err := rows.Scan(&id, &sum); err != nil {
			return nil, storeErr("payroll.sum_net_before", err)
		}
		out[id] = sum
	}
	return out, storeErr("payroll.sum_net_before", rows.Err())
}

// SumPaidBefore Σ paid_amount anterior a date.
func (r *PayrollRepo) SumPaidBefore(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, "payroll.sum_paid_before",
		`SELECT COALESCE(SUM(paid_amount), 0) FROM payroll_records WHERE date < $1`, entity.Day(date))
}

// SumPaidOn Σ paid_amount del día.
func (r *PayrollRepo) SumPaidOn(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, "payroll.sum_paid_on",
		`SELECT COALESCE(SUM(paid_amount), 0) FROM payroll_records WHERE date = $1`, entity.Day(date))
}

// SumNetAll Σ (daily_wage − paid_amount) de todos los registros.
func (r *PayrollRepo) SumNetAll(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "payroll.sum_net_all",
		`SELECT COALESCE(SUM(daily_wage - paid_amount), 0) FROM payroll_records`)
}

func (r *PayrollRepo) sum(ctx context.Context, op, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, storeErr(op, err)
	}
	return total, nil
}

func scanPayroll(row pgx.Row) (*entity.PayrollRecord, error) {
	var rec entity.PayrollRecord
	if err := row.Scan(&rec.ID, &rec.PersonnelID, &rec.Date, &rec.DailyWage, &rec.PaidAmount,
		&rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Date = entity.Day(rec.Date)
	return &rec, nil
}
