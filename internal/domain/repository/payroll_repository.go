package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// PayrollRepository define el puerto de persistencia para PayrollRecord.
// Todas las fechas son días de calendario (entity.Day).
type PayrollRepository interface {
	Create(ctx context.Context, r *entity.PayrollRecord) error
	GetByID(ctx context.Context, id string) (*entity.PayrollRecord, error)
	// FindByPersonnelAndDate búsqueda por clave compuesta; si hubiera duplicados devuelve el más antiguo.
	FindByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (*entity.PayrollRecord, error)
	Update(ctx context.Context, r *entity.PayrollRecord) error
	Delete(ctx context.Context, id string) error

	// ListByPersonnel historial completo ordenado por fecha.
	ListByPersonnel(ctx context.Context, personnelID string, rng DateRange) ([]*entity.PayrollRecord, error)
	// ListByDate registros del día; personnelID vacío = todo el personal.
	ListByDate(ctx context.Context, date time.Time, personnelID string) ([]*entity.PayrollRecord, error)

	// SumNetBefore Σ (daily_wage − paid_amount) con fecha < date, agrupado por personal.
	SumNetBefore(ctx context.Context, date time.Time, personnelID string) (map[string]decimal.Decimal, error)
	// SumPaidBefore Σ paid_amount con fecha < date (todo el personal).
	SumPaidBefore(ctx context.Context, date time.Time) (decimal.Decimal, error)
	// SumPaidOn Σ paid_amount con fecha == date.
	SumPaidOn(ctx context.Context, date time.Time) (decimal.Decimal, error)
	// SumNetAll Σ (daily_wage − paid_amount) de todos los registros.
	SumNetAll(ctx context.Context) (decimal.Decimal, error)
}
