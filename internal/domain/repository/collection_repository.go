package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// CollectionFilter filtro para listados de cobros.
type CollectionFilter struct {
	DateRange
	CustomerID string
	Limit      int
	Offset     int
}

// CollectionRepository define el puerto de persistencia para Collection.
type CollectionRepository interface {
	Create(ctx context.Context, c *entity.Collection) error
	GetByID(ctx context.Context, id string) (*entity.Collection, error)
	List(ctx context.Context, filter CollectionFilter) ([]*entity.Collection, error)
	ListByDate(ctx context.Context, date time.Time) ([]*entity.Collection, error)
	Delete(ctx context.Context, id string) error

	// SumByMethodsBefore Σ amount con fecha < date y LOWER(payment_method) en codes.
	SumByMethodsBefore(ctx context.Context, date time.Time, codes []string) (decimal.Decimal, error)
	// SumByCustomers Σ amount de todos los cobros de cada cliente.
	SumByCustomers(ctx context.Context, customerIDs []string) (map[string]CustomerTotal, error)
}
