package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// store almacén en memoria compartido por los repos falsos del paquete.
type store struct {
	mu          sync.Mutex
	customers   map[string]*entity.Customer
	personnel   map[string]*entity.Personnel
	workOrders  map[string]*entity.WorkOrder
	collections map[string]*entity.Collection
	expenses    map[string]*entity.Expense
	failWith    error // si no es nil, las escrituras fallan con este error
}

func newStore() *store {
	return &store{
		customers:   map[string]*entity.Customer{},
		personnel:   map[string]*entity.Personnel{},
		workOrders:  map[string]*entity.WorkOrder{},
		collections: map[string]*entity.Collection{},
		expenses:    map[string]*entity.Expense{},
	}
}

// RunWorkOrder no abre tx real; si fn falla no se aplica nada porque los repos
// de la tx escriben sobre una copia que solo se confirma al final.
func (s *store) RunWorkOrder(ctx context.Context, fn func(
	workOrderRepo repository.WorkOrderRepository,
	customerRepo repository.CustomerRepository,
	personnelRepo repository.PersonnelRepository,
) error) error {
	pending := &workOrderRepo{s: s, staged: map[string]*entity.WorkOrder{}}
	if err := fn(pending, &customerRepo{s: s}, &personnelRepo{s: s}); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, wo := range pending.staged {
		s.workOrders[id] = wo
	}
	return nil
}

type customerRepo struct {
	repository.CustomerRepository
	s *store
}

func (r *customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.customers[id], nil
}

type personnelRepo struct {
	repository.PersonnelRepository
	s *store
}

func (r *personnelRepo) GetByID(_ context.Context, id string) (*entity.Personnel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.personnel[id], nil
}

type workOrderRepo struct {
	repository.WorkOrderRepository
	s      *store
	staged map[string]*entity.WorkOrder
}

func (r *workOrderRepo) Create(_ context.Context, wo *entity.WorkOrder) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if r.staged != nil {
		r.staged[wo.ID] = wo
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.workOrders[wo.ID] = wo
	return nil
}

func (r *workOrderRepo) GetByID(_ context.Context, id string) (*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if wo, ok := r.s.workOrders[id]; ok {
		cp := *wo
		return &cp, nil
	}
	return nil, nil
}

func (r *workOrderRepo) UpdateStatus(_ context.Context, id, status string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wo, ok := r.s.workOrders[id]
	if !ok {
		return domain.ErrNotFound
	}
	wo.Status = status
	wo.UpdatedAt = now
	return nil
}

func (r *workOrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.workOrders, id)
	return nil
}

func (r *workOrderRepo) List(_ context.Context, f repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.WorkOrder
	for _, wo := range r.s.workOrders {
		if f.Status != "" && wo.Status != f.Status {
			continue
		}
		if f.From != nil && wo.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && wo.Date.After(*f.To) {
			continue
		}
		out = append(out, wo)
	}
	return out, nil
}

type collectionRepo struct {
	repository.CollectionRepository
	s *store
}

func (r *collectionRepo) Create(_ context.Context, c *entity.Collection) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.collections[c.ID] = c
	return nil
}

func (r *collectionRepo) GetByID(_ context.Context, id string) (*entity.Collection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.collections[id], nil
}

func (r *collectionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.collections, id)
	return nil
}

type expenseRepo struct {
	repository.ExpenseRepository
	s *store
}

func (r *expenseRepo) Create(_ context.Context, e *entity.Expense) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses[e.ID] = e
	return nil
}

func (r *expenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.expenses[id], nil
}

func (r *expenseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.expenses, id)
	return nil
}

func (r *expenseRepo) SumByMethodsBefore(context.Context, time.Time, []string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
