package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

// LedgerQuery parámetros del libro diario de personal. Date cero = hoy.
type LedgerQuery struct {
	Date            time.Time
	PersonnelID     string
	OnlyOutstanding bool
}

// PersonnelLedgerUseCase arma el libro diario de personal (devir, hakediş, ödenen, bakiye).
type PersonnelLedgerUseCase struct {
	personnelRepo repository.PersonnelRepository
	payrollRepo   repository.PayrollRepository
	workOrderRepo repository.WorkOrderRepository
	workbook      LedgerWorkbookGenerator
	clock         Clock
	metrics       Metrics
	log           *logger.Logger
}

// NewPersonnelLedgerUseCase construye el caso de uso. workbook puede ser nil si no se exporta.
func NewPersonnelLedgerUseCase(
	personnelRepo repository.PersonnelRepository,
	payrollRepo repository.PayrollRepository,
	workOrderRepo repository.WorkOrderRepository,
	workbook LedgerWorkbookGenerator,
	clock Clock,
	metrics Metrics,
	log *logger.Logger,
) *PersonnelLedgerUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &PersonnelLedgerUseCase{
		personnelRepo: personnelRepo,
		payrollRepo:   payrollRepo,
		workOrderRepo: workOrderRepo,
		workbook:      workbook,
		clock:         clock,
		metrics:       metrics,
		log:           log,
	}
}

// Compute calcula el libro para q.Date.
//
// Cuatro lecturas en paralelo (sin dependencias entre sí):
//  1. personal (opcionalmente uno solo)
//  2. Σ (hakediş − ödenen) con fecha < D, por personal
//  3. registros de nómina con fecha == D
//  4. órdenes de trabajo con fecha == D y sus asignaciones
//
// Si cualquiera falla, falla todo el cálculo: nunca se devuelve un devir o un
// hakediş en cero que en realidad es "desconocido".
func (uc *PersonnelLedgerUseCase) Compute(ctx context.Context, q LedgerQuery) (result *ledger.PersonnelLedger, err error) {
	defer func() { uc.metrics.ComputationObserved(EnginePersonnelLedger, err) }()

	day := q.Date
	if day.IsZero() {
		day = uc.clock.Today()
	}
	day = entity.Day(day)

	var (
		personnel  []*entity.Personnel
		carryover  map[string]decimal.Decimal
		dayRecords []*entity.PayrollRecord
		dayOrders  []*entity.WorkOrder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.personnelRepo.List(gctx, repository.PersonnelFilter{ID: q.PersonnelID})
		if err != nil {
			return fmt.Errorf("libro personal: listar personal: %w", err)
		}
		personnel = list
		return nil
	})
	g.Go(func() error {
		sums, err := uc.payrollRepo.SumNetBefore(gctx, day, q.PersonnelID)
		if err != nil {
			return fmt.Errorf("libro personal: devir: %w", err)
		}
		carryover = sums
		return nil
	})
	g.Go(func() error {
		recs, err := uc.payrollRepo.ListByDate(gctx, day, q.PersonnelID)
		if err != nil {
			return fmt.Errorf("libro personal: nómina del día: %w", err)
		}
		dayRecords = recs
		return nil
	})
	g.Go(func() error {
		orders, err := uc.workOrderRepo.ListByDate(gctx, day)
		if err != nil {
			return fmt.Errorf("libro personal: órdenes del día: %w", err)
		}
		dayOrders = orders
		return nil
	})
	if err = g.Wait(); err != nil {
		uc.log.Error().Err(err).Str("date", day.Format(entity.DateLayout)).Msg("libro de personal no calculado")
		return nil, err
	}

	if q.PersonnelID != "" && len(personnel) == 0 {
		return nil, domain.ErrNotFound
	}

	result = ledger.BuildPersonnelLedger(ledger.PersonnelLedgerInput{
		Date:       day,
		Personnel:  personnel,
		Carryover:  carryover,
		DayRecords: dayRecords,
		DayOrders:  dayOrders,
	}, ledger.PersonnelLedgerOptions{OnlyOutstanding: q.OnlyOutstanding})

	for _, inc := range result.Inconsistencies {
		uc.metrics.InconsistencyObserved(inc.Kind)
		uc.log.Warn().
			Str("kind", inc.Kind).
			Str("personnel_id", inc.PersonnelID).
			Str("date", inc.Date.Format(entity.DateLayout)).
			Int("count", inc.Count).
			Msg("registros de nómina duplicados; se suman")
	}
	return result, nil
}

// Get resuelve la query HTTP y devuelve el DTO.
func (uc *PersonnelLedgerUseCase) Get(ctx context.Context, in dto.PersonnelLedgerQuery) (*dto.PersonnelLedgerResponse, error) {
	day, err := parseOptionalDay("date", in.Date)
	if err != nil {
		return nil, err
	}
	l, err := uc.Compute(ctx, LedgerQuery{Date: day, PersonnelID: in.PersonnelID, OnlyOutstanding: in.OnlyOutstanding})
	if err != nil {
		return nil, err
	}
	return ToPersonnelLedgerResponse(l), nil
}

// Export calcula el libro del día y lo devuelve como XLSX.
func (uc *PersonnelLedgerUseCase) Export(ctx context.Context, q LedgerQuery) (content []byte, filename string, err error) {
	if uc.workbook == nil {
		return nil, "", fmt.Errorf("libro personal: exportación no configurada")
	}
	l, err := uc.Compute(ctx, q)
	if err != nil {
		return nil, "", err
	}
	content, err = uc.workbook.GeneratePersonnelLedger(l)
	if err != nil {
		return nil, "", fmt.Errorf("libro personal: generar xlsx: %w", err)
	}
	return content, fmt.Sprintf("personel-defteri-%s.xlsx", l.Date.Format(entity.DateLayout)), nil
}

// ToPersonnelLedgerResponse convierte el libro de dominio en DTO.
func ToPersonnelLedgerResponse(l *ledger.PersonnelLedger) *dto.PersonnelLedgerResponse {
	out := &dto.PersonnelLedgerResponse{
		Date: l.Date.Format(entity.DateLayout),
		Rows: make([]dto.PersonnelLedgerRowDTO, 0, len(l.Rows)),
		Totals: dto.PersonnelLedgerTotals{
			Carryover:    l.Totals.Carryover,
			DailyWage:    l.Totals.DailyWage,
			PaidAmount:   l.Totals.PaidAmount,
			BalanceAfter: l.Totals.BalanceAfter,
		},
	}
	for _, r := range l.Rows {
		row := dto.PersonnelLedgerRowDTO{
			PersonnelID:  r.Personnel.ID,
			Name:         r.Personnel.Name,
			Phone:        r.Personnel.Phone,
			Status:       r.Personnel.Status,
			Carryover:    r.Carryover,
			DailyWage:    r.DailyWage,
			PaidAmount:   r.PaidAmount,
			BalanceAfter: r.BalanceAfter,
			Description:  r.Description,
			RecordIDs:    r.RecordIDs,
			WorkOrders:   make([]dto.WorkOrderSummaryDTO, 0, len(r.WorkOrders)),
		}
		for _, wo := range r.WorkOrders {
			row.WorkOrders = append(row.WorkOrders, dto.WorkOrderSummaryDTO{
				ID:           wo.ID,
				CustomerID:   wo.CustomerID,
				CustomerName: wo.CustomerName,
				Status:       wo.Status,
				Price:        wo.Price,
				Address:      wo.Address,
				Description:  wo.Description,
			})
		}
		out.Rows = append(out.Rows, row)
	}
	for _, inc := range l.Inconsistencies {
		out.Inconsistencies = append(out.Inconsistencies, dto.InconsistencyDTO{
			Kind:        inc.Kind,
			PersonnelID: inc.PersonnelID,
			Date:        inc.Date.Format(entity.DateLayout),
			Count:       inc.Count,
		})
	}
	return out
}

// parseOptionalDay interpreta YYYY-MM-DD; vacío devuelve el instante cero (= hoy).
func parseOptionalDay(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := entity.ParseDay(s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "debe tener formato YYYY-MM-DD")
	}
	return d, nil
}
