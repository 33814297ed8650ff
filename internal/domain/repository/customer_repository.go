package repository

import (
	"context"

	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// CustomerFilter filtro para listados de clientes.
type CustomerFilter struct {
	Search string // subcadena del nombre (ILIKE)
	Type   string
	Limit  int
	Offset int
}

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) si no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, error)
	Count(ctx context.Context, filter CustomerFilter) (int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
