package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// PersonnelFilter filtro para listados de personal. Campos vacíos no filtran.
type PersonnelFilter struct {
	ID     string
	Status string
}

// PersonnelRepository define el puerto de persistencia para Personnel.
type PersonnelRepository interface {
	Create(ctx context.Context, p *entity.Personnel) error
	GetByID(ctx context.Context, id string) (*entity.Personnel, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE). Solo tiene efecto dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Personnel, error)
	List(ctx context.Context, filter PersonnelFilter) ([]*entity.Personnel, error)
	Update(ctx context.Context, p *entity.Personnel) error
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, now time.Time) error
	Delete(ctx context.Context, id string) error
}
