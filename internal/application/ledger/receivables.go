package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

// ReceivablesUseCase cuentas por cobrar: clientes con trabajo aprobado próximo y deuda pendiente.
type ReceivablesUseCase struct {
	customerRepo   repository.CustomerRepository
	workOrderRepo  repository.WorkOrderRepository
	collectionRepo repository.CollectionRepository
	clock          Clock
	metrics        Metrics
	log            *logger.Logger
	defaultLimit   int
}

// NewReceivablesUseCase construye el caso de uso. defaultLimit se aplica cuando la query no trae limit.
func NewReceivablesUseCase(
	customerRepo repository.CustomerRepository,
	workOrderRepo repository.WorkOrderRepository,
	collectionRepo repository.CollectionRepository,
	clock Clock,
	metrics Metrics,
	log *logger.Logger,
	defaultLimit int,
) *ReceivablesUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &ReceivablesUseCase{
		customerRepo:   customerRepo,
		workOrderRepo:  workOrderRepo,
		collectionRepo: collectionRepo,
		clock:          clock,
		metrics:        metrics,
		log:            log,
		defaultLimit:   defaultLimit,
	}
}

// PendingCollections devuelve la página de deudores.
//
// Candidatos: clientes con al menos una orden aprobada con fecha >= hoy. Para ellos se suman
// todas sus órdenes (facturado) y todos sus cobros (cobrado), sin importar la fecha.
// Saldos <= 0 se excluyen, no se recortan a cero.
func (uc *ReceivablesUseCase) PendingCollections(ctx context.Context, q ledger.PendingQuery) (page *ledger.PendingPage, err error) {
	defer func() { uc.metrics.ComputationObserved(EngineReceivables, err) }()

	if q.Limit <= 0 {
		q.Limit = uc.defaultLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	today := uc.clock.Today()
	upcoming, err := uc.workOrderRepo.ListUpcomingApprovedCustomers(ctx, today)
	if err != nil {
		uc.log.Error().Err(err).Msg("cuentas por cobrar: candidatos")
		return nil, fmt.Errorf("cuentas por cobrar: candidatos: %w", err)
	}
	if len(upcoming) == 0 {
		empty := ledger.BuildPendingCollections(nil, nil, nil, q)
		return &empty, nil
	}

	candidates := make([]ledger.Candidate, 0, len(upcoming))
	ids := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		candidates = append(candidates, ledger.Candidate{
			CustomerID:    u.CustomerID,
			Name:          u.Name,
			Phone:         u.Phone,
			NextOrderDate: u.NextOrderDate,
		})
		ids = append(ids, u.CustomerID)
	}

	billed, collected, err := uc.sums(ctx, ids)
	if err != nil {
		uc.log.Error().Err(err).Int("candidates", len(ids)).Msg("cuentas por cobrar: sumas")
		return nil, err
	}

	result := ledger.BuildPendingCollections(candidates, amounts(billed), amounts(collected), q)
	return &result, nil
}

// List resuelve la query HTTP y devuelve el DTO.
func (uc *ReceivablesUseCase) List(ctx context.Context, in dto.PendingCollectionsQuery) (*dto.PendingCollectionsResponse, error) {
	page, err := uc.PendingCollections(ctx, ledger.PendingQuery{Search: in.Search, Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.PendingCollectionsResponse{
		Items:        make([]dto.PendingCollectionDTO, 0, len(page.Items)),
		TotalPending: page.TotalPending,
		Page:         dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: page.Total},
	}
	for _, it := range page.Items {
		out.Items = append(out.Items, dto.PendingCollectionDTO{
			CustomerID:          it.CustomerID,
			Name:                it.Name,
			Phone:               it.Phone,
			Billed:              it.Billed,
			Collected:           it.Collected,
			Pending:             it.Pending,
			LastTransactionDate: it.LastTransactionDate.Format(entity.DateLayout),
		})
	}
	return out, nil
}

// CustomerBalance saldo general de un cliente sin el filtro de órdenes próximas.
// ErrNotFound si el cliente no existe; ValidationError si no tiene órdenes ni cobros.
func (uc *ReceivablesUseCase) CustomerBalance(ctx context.Context, customerID string) (*dto.CustomerBalanceResponse, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("customer_id", "es obligatorio")
	}
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("saldo cliente: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	billed, collected, err := uc.sums(ctx, []string{customerID})
	if err != nil {
		return nil, err
	}
	b, c := billed[customerID], collected[customerID]
	if b.Rows == 0 && c.Rows == 0 {
		return nil, domain.NewValidationError("customer_id", "el cliente no tiene órdenes ni cobros")
	}
	return &dto.CustomerBalanceResponse{
		CustomerID:     customer.ID,
		Name:           customer.Name,
		Billed:         b.Amount,
		Collected:      c.Amount,
		Balance:        b.Amount.Sub(c.Amount),
		WorkOrderCount: b.Rows,
		PaymentCount:   c.Rows,
	}, nil
}

// sums lee facturado y cobrado en paralelo; falla si cualquiera de las dos falla.
func (uc *ReceivablesUseCase) sums(ctx context.Context, ids []string) (billed, collected map[string]repository.CustomerTotal, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := uc.workOrderRepo.SumPriceByCustomers(gctx, ids)
		if err != nil {
			return fmt.Errorf("cuentas por cobrar: facturado: %w", err)
		}
		billed = m
		return nil
	})
	g.Go(func() error {
		m, err := uc.collectionRepo.SumByCustomers(gctx, ids)
		if err != nil {
			return fmt.Errorf("cuentas por cobrar: cobrado: %w", err)
		}
		collected = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return billed, collected, nil
}

func amounts(m map[string]repository.CustomerTotal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for id, t := range m {
		out[id] = t.Amount
	}
	return out
}
