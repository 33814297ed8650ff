package ledger_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	domledger "github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los casos de uso
// ──────────────────────────────────────────────────────────────────────────────

var errConexion = errors.New("conexión rechazada")

type memStore struct {
	mu          sync.Mutex
	txMu        sync.Mutex // simula el bloqueo de fila del personal
	personnel   map[string]*entity.Personnel
	payroll     []*entity.PayrollRecord
	workOrders  []*entity.WorkOrder
	collections []*entity.Collection
	expenses    []*entity.Expense
	customers   map[string]*entity.Customer
	failures    map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		personnel: map[string]*entity.Personnel{},
		customers: map[string]*entity.Customer{},
		failures:  map[string]error{},
	}
}

// failOn hace que la operación op devuelva un StoreError.
func (s *memStore) failOn(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = domain.NewStoreError(op, errConexion)
}

func (s *memStore) check(op string) error {
	return s.failures[op]
}

func (s *memStore) addPersonnel(id, name string) *entity.Personnel {
	p := &entity.Personnel{ID: id, Name: name, Status: entity.PersonnelStatusActive, CurrentBalance: decimal.Zero}
	s.personnel[id] = p
	return p
}

func (s *memStore) addPayroll(id, personnelID string, date time.Time, wage, paid string) *entity.PayrollRecord {
	r := &entity.PayrollRecord{
		ID: id, PersonnelID: personnelID, Date: entity.Day(date),
		DailyWage: decimal.RequireFromString(wage), PaidAmount: decimal.RequireFromString(paid),
		CreatedAt: time.Now(),
	}
	s.payroll = append(s.payroll, r)
	return r
}

func (s *memStore) payrollFor(personnelID string) []*entity.PayrollRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PayrollRecord
	for _, r := range s.payroll {
		if r.PersonnelID == personnelID {
			out = append(out, r)
		}
	}
	return out
}

type snapshot struct {
	personnel map[string]entity.Personnel
	payroll   []entity.PayrollRecord
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{personnel: map[string]entity.Personnel{}}
	for id, p := range s.personnel {
		snap.personnel[id] = *p
	}
	for _, r := range s.payroll {
		snap.payroll = append(snap.payroll, *r)
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personnel = map[string]*entity.Personnel{}
	for id, p := range snap.personnel {
		cp := p
		s.personnel[id] = &cp
	}
	s.payroll = nil
	for _, r := range snap.payroll {
		cp := r
		s.payroll = append(s.payroll, &cp)
	}
}

// RunPayroll serializa las transacciones y hace rollback restaurando la foto previa.
func (s *memStore) RunPayroll(ctx context.Context, fn func(repository.PersonnelRepository, repository.PayrollRepository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(personnelRepo{s}, payrollRepo{s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// ── Personal ─────────────────────────────────────────────────────────────────

type personnelRepo struct{ s *memStore }

var _ repository.PersonnelRepository = personnelRepo{}

func (r personnelRepo) Create(_ context.Context, p *entity.Personnel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.personnel[p.ID] = p
	return nil
}

func (r personnelRepo) GetByID(_ context.Context, id string) (*entity.Personnel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("personnel.GetByID"); err != nil {
		return nil, err
	}
	if p, ok := r.s.personnel[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r personnelRepo) GetForUpdate(ctx context.Context, id string) (*entity.Personnel, error) {
	r.s.mu.Lock()
	err := r.s.check("personnel.GetForUpdate")
	r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r personnelRepo) List(_ context.Context, f repository.PersonnelFilter) ([]*entity.Personnel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("personnel.List"); err != nil {
		return nil, err
	}
	out := []*entity.Personnel{}
	for _, p := range r.s.personnel {
		if f.ID != "" && p.ID != f.ID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r personnelRepo) Update(_ context.Context, p *entity.Personnel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.personnel[p.ID] = p
	return nil
}

func (r personnelRepo) UpdateBalance(_ context.Context, id string, balance decimal.Decimal, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("personnel.UpdateBalance"); err != nil {
		return err
	}
	p, ok := r.s.personnel[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentBalance = balance
	p.UpdatedAt = now
	return nil
}

func (r personnelRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.personnel, id)
	return nil
}

// ── Nómina ───────────────────────────────────────────────────────────────────

type payrollRepo struct{ s *memStore }

var _ repository.PayrollRepository = payrollRepo{}

func (r payrollRepo) Create(_ context.Context, rec *entity.PayrollRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.Create"); err != nil {
		return err
	}
	cp := *rec
	r.s.payroll = append(r.s.payroll, &cp)
	return nil
}

func (r payrollRepo) GetByID(_ context.Context, id string) (*entity.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.payroll {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r payrollRepo) FindByPersonnelAndDate(_ context.Context, personnelID string, date time.Time) (*entity.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.FindByPersonnelAndDate"); err != nil {
		return nil, err
	}
	for _, rec := range r.s.payroll {
		if rec.PersonnelID == personnelID && rec.Date.Equal(entity.Day(date)) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r payrollRepo) Update(_ context.Context, rec *entity.PayrollRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.Update"); err != nil {
		return err
	}
	for i, cur := range r.s.payroll {
		if cur.ID == rec.ID {
			cp := *rec
			r.s.payroll[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r payrollRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, cur := range r.s.payroll {
		if cur.ID == id {
			r.s.payroll = append(r.s.payroll[:i], r.s.payroll[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r payrollRepo) ListByPersonnel(_ context.Context, personnelID string, rng repository.DateRange) ([]*entity.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.ListByPersonnel"); err != nil {
		return nil, err
	}
	var out []*entity.PayrollRecord
	for _, rec := range r.s.payroll {
		if rec.PersonnelID != personnelID {
			continue
		}
		if rng.From != nil && rec.Date.Before(*rng.From) {
			continue
		}
		if rng.To != nil && rec.Date.After(*rng.To) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r payrollRepo) ListByDate(_ context.Context, date time.Time, personnelID string) ([]*entity.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.ListByDate"); err != nil {
		return nil, err
	}
	var out []*entity.PayrollRecord
	for _, rec := range r.s.payroll {
		if rec.Date.Equal(entity.Day(date)) && (personnelID == "" || rec.PersonnelID == personnelID) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r payrollRepo) SumNetBefore(_ context.Context, date time.Time, personnelID string) (map[string]decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.SumNetBefore"); err != nil {
		return nil, err
	}
	var recs []*entity.PayrollRecord
	for _, rec := range r.s.payroll {
		if personnelID == "" || rec.PersonnelID == personnelID {
			recs = append(recs, rec)
		}
	}
	return domledger.CarryoverByPersonnel(recs, date), nil
}

func (r payrollRepo) sumPaid(op string, keep func(time.Time) bool) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(op); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, rec := range r.s.payroll {
		if keep(rec.Date) {
			total = total.Add(rec.PaidAmount)
		}
	}
	return total, nil
}

func (r payrollRepo) SumPaidBefore(_ context.Context, date time.Time) (decimal.Decimal, error) {
	return r.sumPaid("payroll.SumPaidBefore", func(d time.Time) bool { return d.Before(entity.Day(date)) })
}

func (r payrollRepo) SumPaidOn(_ context.Context, date time.Time) (decimal.Decimal, error) {
	return r.sumPaid("payroll.SumPaidOn", func(d time.Time) bool { return d.Equal(entity.Day(date)) })
}

func (r payrollRepo) SumNetAll(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("payroll.SumNetAll"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, rec := range r.s.payroll {
		total = total.Add(rec.Net())
	}
	return total, nil
}

// ── Órdenes de trabajo ───────────────────────────────────────────────────────

type workOrderRepo struct{ s *memStore }

var _ repository.WorkOrderRepository = workOrderRepo{}

func (r workOrderRepo) Create(_ context.Context, wo *entity.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.workOrders = append(r.s.workOrders, wo)
	return nil
}

func (r workOrderRepo) GetByID(_ context.Context, id string) (*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, wo := range r.s.workOrders {
		if wo.ID == id {
			return wo, nil
		}
	}
	return nil, nil
}

func (r workOrderRepo) List(_ context.Context, _ repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]*entity.WorkOrder{}, r.s.workOrders...), nil
}

func (r workOrderRepo) ListByDate(_ context.Context, date time.Time) ([]*entity.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("workorder.ListByDate"); err != nil {
		return nil, err
	}
	var out []*entity.WorkOrder
	for _, wo := range r.s.workOrders {
		if wo.Date.Equal(entity.Day(date)) {
			out = append(out, wo)
		}
	}
	return out, nil
}

func (r workOrderRepo) UpdateStatus(_ context.Context, id, status string, _ time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, wo := range r.s.workOrders {
		if wo.ID == id {
			wo.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r workOrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, wo := range r.s.workOrders {
		if wo.ID == id {
			r.s.workOrders = append(r.s.workOrders[:i], r.s.workOrders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r workOrderRepo) ListUpcomingApprovedCustomers(_ context.Context, today time.Time) ([]repository.UpcomingCustomer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("workorder.ListUpcomingApprovedCustomers"); err != nil {
		return nil, err
	}
	next := map[string]time.Time{}
	for _, wo := range r.s.workOrders {
		if !wo.IsApproved() || wo.Date.Before(today) {
			continue
		}
		if d, ok := next[wo.CustomerID]; !ok || wo.Date.Before(d) {
			next[wo.CustomerID] = wo.Date
		}
	}
	out := []repository.UpcomingCustomer{}
	for id, d := range next {
		c := r.s.customers[id]
		out = append(out, repository.UpcomingCustomer{CustomerID: id, Name: c.Name, Phone: c.Phone, NextOrderDate: d})
	}
	return out, nil
}

func (r workOrderRepo) SumPriceByCustomers(_ context.Context, ids []string) (map[string]repository.CustomerTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("workorder.SumPriceByCustomers"); err != nil {
		return nil, err
	}
	out := map[string]repository.CustomerTotal{}
	for _, wo := range r.s.workOrders {
		if contains(ids, wo.CustomerID) {
			t := out[wo.CustomerID]
			t.Amount = t.Amount.Add(wo.Price)
			t.Rows++
			out[wo.CustomerID] = t
		}
	}
	return out, nil
}

// ── Cobros ───────────────────────────────────────────────────────────────────

type collectionRepo struct{ s *memStore }

var _ repository.CollectionRepository = collectionRepo{}

func (r collectionRepo) Create(_ context.Context, c *entity.Collection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.collections = append(r.s.collections, c)
	return nil
}

func (r collectionRepo) GetByID(_ context.Context, id string) (*entity.Collection, error) {
	return nil, nil
}

func (r collectionRepo) List(_ context.Context, _ repository.CollectionFilter) ([]*entity.Collection, error) {
	return nil, nil
}

func (r collectionRepo) ListByDate(_ context.Context, date time.Time) ([]*entity.Collection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("collection.ListByDate"); err != nil {
		return nil, err
	}
	var out []*entity.Collection
	for _, c := range r.s.collections {
		if c.Date.Equal(entity.Day(date)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r collectionRepo) Delete(_ context.Context, _ string) error { return nil }

func (r collectionRepo) SumByMethodsBefore(_ context.Context, date time.Time, codes []string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("collection.SumByMethodsBefore"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, c := range r.s.collections {
		if c.Date.Before(entity.Day(date)) && contains(codes, lowerTrim(c.PaymentMethod)) {
			total = total.Add(c.Amount)
		}
	}
	return total, nil
}

func (r collectionRepo) SumByCustomers(_ context.Context, ids []string) (map[string]repository.CustomerTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("collection.SumByCustomers"); err != nil {
		return nil, err
	}
	out := map[string]repository.CustomerTotal{}
	for _, c := range r.s.collections {
		if c.CustomerID != nil && contains(ids, *c.CustomerID) {
			t := out[*c.CustomerID]
			t.Amount = t.Amount.Add(c.Amount)
			t.Rows++
			out[*c.CustomerID] = t
		}
	}
	return out, nil
}

// ── Gastos ───────────────────────────────────────────────────────────────────

type expenseRepo struct{ s *memStore }

var _ repository.ExpenseRepository = expenseRepo{}

func (r expenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses = append(r.s.expenses, e)
	return nil
}

func (r expenseRepo) GetByID(_ context.Context, _ string) (*entity.Expense, error) { return nil, nil }

func (r expenseRepo) List(_ context.Context, _ repository.ExpenseFilter) ([]*entity.Expense, error) {
	return nil, nil
}

func (r expenseRepo) ListByDate(_ context.Context, date time.Time) ([]*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("expense.ListByDate"); err != nil {
		return nil, err
	}
	var out []*entity.Expense
	for _, e := range r.s.expenses {
		if e.Date.Equal(entity.Day(date)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r expenseRepo) Delete(_ context.Context, _ string) error { return nil }

func (r expenseRepo) SumByMethodsBefore(_ context.Context, date time.Time, codes []string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("expense.SumByMethodsBefore"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range r.s.expenses {
		if e.Date.Before(entity.Day(date)) && contains(codes, lowerTrim(e.PaymentMethod)) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

type customerRepo struct{ s *memStore }

var _ repository.CustomerRepository = customerRepo{}

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID] = c
	return nil
}

func (r customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.customers[id], nil
}

func (r customerRepo) List(_ context.Context, _ repository.CustomerFilter) ([]*entity.Customer, error) {
	return nil, nil
}

func (r customerRepo) Count(_ context.Context, _ repository.CustomerFilter) (int, error) { return 0, nil }

func (r customerRepo) Update(_ context.Context, _ *entity.Customer) error { return nil }

func (r customerRepo) Delete(_ context.Context, _ string) error { return nil }

// ── Utilidades ───────────────────────────────────────────────────────────────

type fixedClock struct{ day time.Time }

func (c fixedClock) Today() time.Time { return c.day }

var _ appledger.Clock = fixedClock{}

// recordingMetrics cuenta observaciones para verificar el cableado.
type recordingMetrics struct {
	mu              sync.Mutex
	computations    map[string]int
	failures        map[string]int
	inconsistencies map[string]int
	recomputes      int
	recomputeErrors int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{computations: map[string]int{}, failures: map[string]int{}, inconsistencies: map[string]int{}}
}

func (m *recordingMetrics) ComputationObserved(engine string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computations[engine]++
	if err != nil {
		m.failures[engine]++
	}
}

func (m *recordingMetrics) InconsistencyObserved(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inconsistencies[kind]++
}

func (m *recordingMetrics) RecomputeObserved(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputes++
	if err != nil {
		m.recomputeErrors++
	}
}

func day(s string) time.Time {
	d, err := entity.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// lowerTrim reproduce LOWER(TRIM(payment_method)) de la consulta SQL.
func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
