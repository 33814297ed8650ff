package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// CashUseCase cobros (tahsilat) y gastos (gider). El método de pago se guarda siempre
// en su código canónico.
type CashUseCase struct {
	collectionRepo repository.CollectionRepository
	expenseRepo    repository.ExpenseRepository
	customerRepo   repository.CustomerRepository
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(
	collectionRepo repository.CollectionRepository,
	expenseRepo repository.ExpenseRepository,
	customerRepo repository.CustomerRepository,
) *CashUseCase {
	return &CashUseCase{collectionRepo: collectionRepo, expenseRepo: expenseRepo, customerRepo: customerRepo}
}

// CreateCollection registra un cobro. customer_id es opcional (cobros sueltos).
func (uc *CashUseCase) CreateCollection(ctx context.Context, in dto.CreateCollectionRequest) (*dto.CollectionResponse, error) {
	date, err := entity.ParseDay(in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "debe tener formato YYYY-MM-DD")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	method, err := canonicalMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	c := &entity.Collection{
		ID:            uuid.New().String(),
		Date:          date,
		Amount:        in.Amount,
		PaymentMethod: string(method),
		Description:   in.Description,
		CreatedAt:     time.Now(),
	}
	if in.CustomerID != nil && *in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.NewValidationError("customer_id", "el cliente no existe")
		}
		id := customer.ID
		c.CustomerID = &id
		c.CustomerName = customer.Name
	}
	if err := uc.collectionRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCollectionResponse(c), nil
}

// ListCollections lista cobros por rango de fechas y cliente.
func (uc *CashUseCase) ListCollections(ctx context.Context, q dto.CashQuery) ([]dto.CollectionResponse, error) {
	q.DefaultPage()
	rng, err := parseRange(q.From, q.To)
	if err != nil {
		return nil, err
	}
	list, err := uc.collectionRepo.List(ctx, repository.CollectionFilter{
		DateRange: rng, CustomerID: q.CustomerID, Limit: q.Limit, Offset: q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CollectionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCollectionResponse(c))
	}
	return out, nil
}

// DeleteCollection elimina un cobro.
func (uc *CashUseCase) DeleteCollection(ctx context.Context, id string) error {
	c, err := uc.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.collectionRepo.Delete(ctx, id)
}

// CreateExpense registra un gasto.
func (uc *CashUseCase) CreateExpense(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := entity.ParseDay(in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "debe tener formato YYYY-MM-DD")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	method, err := canonicalMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{
		ID:            uuid.New().String(),
		Date:          date,
		Amount:        in.Amount,
		PaymentMethod: string(method),
		Category:      in.Category,
		ReceiptNo:     in.ReceiptNo,
		Description:   in.Description,
		CreatedAt:     time.Now(),
	}
	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// ListExpenses lista gastos por rango de fechas y categoría.
func (uc *CashUseCase) ListExpenses(ctx context.Context, q dto.CashQuery) ([]dto.ExpenseResponse, error) {
	q.DefaultPage()
	rng, err := parseRange(q.From, q.To)
	if err != nil {
		return nil, err
	}
	list, err := uc.expenseRepo.List(ctx, repository.ExpenseFilter{
		DateRange: rng, Category: q.Category, Limit: q.Limit, Offset: q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// DeleteExpense elimina un gasto.
func (uc *CashUseCase) DeleteExpense(ctx context.Context, id string) error {
	e, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(ctx, id)
}

// canonicalMethod normaliza la entrada; en escrituras nuevas solo se aceptan métodos conocidos.
func canonicalMethod(raw string) (ledger.PaymentMethod, error) {
	m := ledger.NormalizePaymentMethod(raw)
	if !m.Known() {
		return "", domain.NewValidationError("payment_method", "método de pago desconocido: "+raw)
	}
	return m, nil
}

func toCollectionResponse(c *entity.Collection) *dto.CollectionResponse {
	m := ledger.NormalizePaymentMethod(c.PaymentMethod)
	return &dto.CollectionResponse{
		ID:                 c.ID,
		CustomerID:         c.CustomerID,
		CustomerName:       c.CustomerName,
		Date:               c.Date.Format(entity.DateLayout),
		Amount:             c.Amount,
		PaymentMethod:      string(m),
		PaymentMethodLabel: m.Label(),
		Description:        c.Description,
		CreatedAt:          c.CreatedAt,
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	m := ledger.NormalizePaymentMethod(e.PaymentMethod)
	return &dto.ExpenseResponse{
		ID:                 e.ID,
		Date:               e.Date.Format(entity.DateLayout),
		Amount:             e.Amount,
		PaymentMethod:      string(m),
		PaymentMethodLabel: m.Label(),
		Category:           e.Category,
		ReceiptNo:          e.ReceiptNo,
		Description:        e.Description,
		CreatedAt:          e.CreatedAt,
	}
}
