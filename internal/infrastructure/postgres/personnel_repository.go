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

var _ repository.PersonnelRepository = (*PersonnelRepo)(nil)

const personnelColumns = `id, name, phone, role, status, current_balance, created_at, updated_at`

// PersonnelRepo implementación de PersonnelRepository (pool o tx).
type PersonnelRepo struct {
	q Querier
}

// NewPersonnelRepository construye el adaptador.
func NewPersonnelRepository(q Querier) *PersonnelRepo {
	return &PersonnelRepo{q: q}
}

// Create persiste un nuevo personal.
func (r *PersonnelRepo) Create(ctx context.Context, p *entity.Personnel) error {
	query := `
		INSERT INTO personnel (` + personnelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Phone, p.Role, p.Status, p.CurrentBalance, p.CreatedAt, p.UpdatedAt,
	)
	return storeErr("personnel.insert", err)
}

// GetByID obtiene un personal por ID; (nil, nil) si no existe.
func (r *PersonnelRepo) GetByID(ctx context.Context, id string) (*entity.Personnel, error) {
	return r.getOne(ctx, "personnel.get", `SELECT `+personnelColumns+` FROM personnel WHERE id = $1`, id)
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la tx.
func (r *PersonnelRepo) GetForUpdate(ctx context.Context, id string) (*entity.Personnel, error) {
	return r.getOne(ctx, "personnel.lock", `SELECT `+personnelColumns+` FROM personnel WHERE id = $1 FOR UPDATE`, id)
}

func (r *PersonnelRepo) getOne(ctx context.Context, op, query, id string) (*entity.Personnel, error) {
	p, err := scanPersonnel(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(op, err)
	}
	return p, nil
}

// List lista el personal ordenado por nombre.
func (r *PersonnelRepo) List(ctx context.Context, filter repository.PersonnelFilter) ([]*entity.Personnel, error) {
	var conds []string
	var args []any
	if filter.ID != "" {
		args = append(args, filter.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + personnelColumns + ` FROM personnel`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name, id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("personnel.list", err)
	}
	defer rows.Close()
	var list []*entity.Personnel
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, storeErr("personnel.scan", err)
		}
		list = append(list, p)
	}
	return list, storeErr("personnel.list", rows.Err())
}

// Update actualiza los datos del personal; el saldo solo cambia con UpdateBalance.
func (r *PersonnelRepo) Update(ctx context.Context, p *entity.Personnel) error {
	query := `
		UPDATE personnel SET name = $2, phone = $3, role = $4, status = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Phone, p.Role, p.Status, p.UpdatedAt)
	if err != nil {
		return storeErr("personnel.update", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance persiste el saldo recalculado.
func (r *PersonnelRepo) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, now time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE personnel SET current_balance = $2, updated_at = $3 WHERE id = $1`, id, balance, now)
	if err != nil {
		return storeErr("personnel.update_balance", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el personal (cascada sobre nómina y asignaciones).
func (r *PersonnelRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return storeErr("personnel.delete", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPersonnel(row pgx.Row) (*entity.Personnel, error) {
	var p entity.Personnel
	if err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Role, &p.Status, &p.CurrentBalance, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
