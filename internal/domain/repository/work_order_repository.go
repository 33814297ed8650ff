package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// WorkOrderFilter filtro para listados de órdenes de trabajo.
type WorkOrderFilter struct {
	DateRange
	CustomerID  string
	PersonnelID string
	Status      string
	Limit       int
	Offset      int
}

// UpcomingCustomer cliente con órdenes aprobadas con fecha >= hoy.
type UpcomingCustomer struct {
	CustomerID    string
	Name          string
	Phone         string
	NextOrderDate time.Time // MIN(date) de esas órdenes
}

// WorkOrderRepository define el puerto de persistencia para WorkOrder y sus asignaciones.
type WorkOrderRepository interface {
	// Create inserta la orden y sus asignaciones (usar dentro de una tx para atomicidad).
	Create(ctx context.Context, wo *entity.WorkOrder) error
	GetByID(ctx context.Context, id string) (*entity.WorkOrder, error)
	List(ctx context.Context, filter WorkOrderFilter) ([]*entity.WorkOrder, error)
	// ListByDate órdenes del día con sus asignaciones.
	ListByDate(ctx context.Context, date time.Time) ([]*entity.WorkOrder, error)
	UpdateStatus(ctx context.Context, id, status string, now time.Time) error
	// Delete elimina la orden junto con sus asignaciones.
	Delete(ctx context.Context, id string) error

	// ListUpcomingApprovedCustomers clientes distintos con orden aprobada y fecha >= today.
	ListUpcomingApprovedCustomers(ctx context.Context, today time.Time) ([]UpcomingCustomer, error)
	// SumPriceByCustomers Σ price de TODAS las órdenes de cada cliente.
	SumPriceByCustomers(ctx context.Context, customerIDs []string) (map[string]CustomerTotal, error)
}
