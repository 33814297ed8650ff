package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

// Pasos del recálculo, reportados en PayrollStepError.
const (
	StepLookup         = "lookup"
	StepWrite          = "write"
	StepReread         = "reread"
	StepPersistBalance = "persist_balance"
)

// PayrollStepError indica en qué paso falló una escritura de nómina.
// Como todo ocurre en una sola transacción, ningún paso queda confirmado a medias.
type PayrollStepError struct {
	Step string
	Err  error
}

func (e *PayrollStepError) Error() string {
	return fmt.Sprintf("nómina: paso %s: %v", e.Step, e.Err)
}

func (e *PayrollStepError) Unwrap() error { return e.Err }

func stepErr(step string, err error) error {
	return &PayrollStepError{Step: step, Err: err}
}

// UpsertPayrollInput datos de un día de nómina para un personal.
type UpsertPayrollInput struct {
	PersonnelID string
	Date        time.Time
	DailyWage   decimal.Decimal
	PaidAmount  decimal.Decimal
	Description string
}

// UpsertResult resultado de una escritura de nómina.
type UpsertResult struct {
	Record         *entity.PayrollRecord
	Created        bool
	CurrentBalance decimal.Decimal
}

// PayrollUseCase mantiene personnel.current_balance consistente con el historial de nómina.
//
// Cada escritura corre en una transacción que bloquea la fila del personal
// (SELECT ... FOR UPDATE); dos escrituras para el mismo personal se serializan.
type PayrollUseCase struct {
	tx            PayrollTxRunner
	personnelRepo repository.PersonnelRepository
	payrollRepo   repository.PayrollRepository
	metrics       Metrics
	log           *logger.Logger
	now           func() time.Time
}

// NewPayrollUseCase construye el caso de uso. Los repos sin tx se usan solo para lecturas.
func NewPayrollUseCase(
	tx PayrollTxRunner,
	personnelRepo repository.PersonnelRepository,
	payrollRepo repository.PayrollRepository,
	metrics Metrics,
	log *logger.Logger,
) *PayrollUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &PayrollUseCase{
		tx:            tx,
		personnelRepo: personnelRepo,
		payrollRepo:   payrollRepo,
		metrics:       metrics,
		log:           log,
		now:           time.Now,
	}
}

// Upsert crea o actualiza el registro de (personal, fecha) y recalcula el saldo:
//
//  1. bloquear la fila del personal
//  2. buscar el registro por (personnel_id, date)
//  3. insertar o actualizar daily_wage, paid_amount, description
//  4. releer todo el historial y calcular Σ (hakediş − ödenen)
//  5. persistir current_balance
//
// Todo en una transacción: si un paso falla no queda nada escrito.
func (uc *PayrollUseCase) Upsert(ctx context.Context, in UpsertPayrollInput) (res *UpsertResult, err error) {
	defer func() { uc.metrics.RecomputeObserved(err) }()

	now := uc.now()
	candidate := &entity.PayrollRecord{
		PersonnelID: in.PersonnelID,
		Date:        entity.Day(in.Date),
		DailyWage:   in.DailyWage,
		PaidAmount:  in.PaidAmount,
		Description: in.Description,
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	res = &UpsertResult{}
	err = uc.tx.RunPayroll(ctx, func(personnelRepo repository.PersonnelRepository, payrollRepo repository.PayrollRepository) error {
		if err := lockPersonnel(ctx, personnelRepo, in.PersonnelID); err != nil {
			return err
		}

		existing, err := payrollRepo.FindByPersonnelAndDate(ctx, candidate.PersonnelID, candidate.Date)
		if err != nil {
			return stepErr(StepLookup, err)
		}
		if existing == nil {
			candidate.ID = uuid.New().String()
			candidate.CreatedAt = now
			candidate.UpdatedAt = now
			if err := payrollRepo.Create(ctx, candidate); err != nil {
				return stepErr(StepWrite, err)
			}
			res.Record = candidate
			res.Created = true
		} else {
			existing.DailyWage = candidate.DailyWage
			existing.PaidAmount = candidate.PaidAmount
			existing.Description = candidate.Description
			existing.UpdatedAt = now
			if err := payrollRepo.Update(ctx, existing); err != nil {
				return stepErr(StepWrite, err)
			}
			res.Record = existing
		}

		balance, err := recomputeBalance(ctx, personnelRepo, payrollRepo, in.PersonnelID, now)
		if err != nil {
			return err
		}
		res.CurrentBalance = balance
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("personnel_id", in.PersonnelID).
			Str("date", candidate.Date.Format(entity.DateLayout)).Msg("nómina: upsert fallido")
		return nil, err
	}

	uc.log.Info().
		Str("personnel_id", in.PersonnelID).
		Str("record_id", res.Record.ID).
		Bool("created", res.Created).
		Str("current_balance", res.CurrentBalance.String()).
		Msg("nómina registrada")
	return res, nil
}

// Delete elimina un registro de nómina y recalcula el saldo de su personal.
func (uc *PayrollUseCase) Delete(ctx context.Context, recordID string) (personnelID string, balance decimal.Decimal, err error) {
	defer func() { uc.metrics.RecomputeObserved(err) }()

	if recordID == "" {
		return "", decimal.Zero, domain.NewValidationError("id", "es obligatorio")
	}
	now := uc.now()
	err = uc.tx.RunPayroll(ctx, func(personnelRepo repository.PersonnelRepository, payrollRepo repository.PayrollRepository) error {
		rec, err := payrollRepo.GetByID(ctx, recordID)
		if err != nil {
			return stepErr(StepLookup, err)
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		personnelID = rec.PersonnelID
		if err := lockPersonnel(ctx, personnelRepo, personnelID); err != nil {
			return err
		}
		if err := payrollRepo.Delete(ctx, recordID); err != nil {
			return stepErr(StepWrite, err)
		}
		balance, err = recomputeBalance(ctx, personnelRepo, payrollRepo, personnelID, now)
		return err
	})
	if err != nil {
		return "", decimal.Zero, err
	}
	uc.log.Info().Str("personnel_id", personnelID).Str("record_id", recordID).
		Str("current_balance", balance.String()).Msg("registro de nómina eliminado")
	return personnelID, balance, nil
}

// Recompute repara el saldo en caché de un personal desde su historial completo.
func (uc *PayrollUseCase) Recompute(ctx context.Context, personnelID string) (res *dto.RecomputeResultDTO, err error) {
	defer func() { uc.metrics.RecomputeObserved(err) }()

	now := uc.now()
	err = uc.tx.RunPayroll(ctx, func(personnelRepo repository.PersonnelRepository, payrollRepo repository.PayrollRepository) error {
		p, err := personnelRepo.GetForUpdate(ctx, personnelID)
		if err != nil {
			return stepErr(StepLookup, err)
		}
		if p == nil {
			return domain.ErrNotFound
		}
		balance, err := recomputeBalance(ctx, personnelRepo, payrollRepo, personnelID, now)
		if err != nil {
			return err
		}
		res = &dto.RecomputeResultDTO{PersonnelID: p.ID, Name: p.Name, Previous: p.CurrentBalance, Current: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.Previous.Equal(res.Current) {
		uc.log.Warn().Str("personnel_id", personnelID).
			Str("previous", res.Previous.String()).Str("current", res.Current.String()).
			Msg("saldo en caché desactualizado; reparado")
	}
	return res, nil
}

// RecomputeAll repara el saldo de todo el personal. Sigue con el resto si uno falla
// y devuelve los errores juntos.
func (uc *PayrollUseCase) RecomputeAll(ctx context.Context) ([]dto.RecomputeResultDTO, error) {
	list, err := uc.personnelRepo.List(ctx, repository.PersonnelFilter{})
	if err != nil {
		return nil, fmt.Errorf("nómina: listar personal: %w", err)
	}
	out := make([]dto.RecomputeResultDTO, 0, len(list))
	var errs []error
	for _, p := range list {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		r, err := uc.Recompute(ctx, p.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.ID, err))
			continue
		}
		out = append(out, *r)
	}
	return out, errors.Join(errs...)
}

// History lista los registros de un personal con el saldo acumulado día a día.
// El saldo de apertura es la suma de todo lo anterior a from.
func (uc *PayrollUseCase) History(ctx context.Context, personnelID string, from, to *time.Time) (*dto.PayrollHistoryResponse, error) {
	if personnelID == "" {
		return nil, domain.NewValidationError("personnel_id", "es obligatorio")
	}
	p, err := uc.personnelRepo.GetByID(ctx, personnelID)
	if err != nil {
		return nil, fmt.Errorf("nómina: obtener personal: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.NewValidationError("to", "no puede ser anterior a from")
	}

	var rng repository.DateRange
	if to != nil {
		d := entity.Day(*to)
		rng.To = &d
	}
	all, err := uc.payrollRepo.ListByPersonnel(ctx, personnelID, rng)
	if err != nil {
		return nil, fmt.Errorf("nómina: historial: %w", err)
	}

	opening := decimal.Zero
	records := all
	if from != nil {
		start := entity.Day(*from)
		opening = ledger.CarryoverByPersonnel(all, start)[personnelID]
		records = make([]*entity.PayrollRecord, 0, len(all))
		for _, r := range all {
			if !entity.Day(r.Date).Before(start) {
				records = append(records, r)
			}
		}
	}

	out := &dto.PayrollHistoryResponse{
		PersonnelID:    personnelID,
		OpeningBalance: opening,
		ClosingBalance: opening,
		Records:        make([]dto.PayrollRecordDTO, 0, len(records)),
	}
	for _, rb := range ledger.RunningBalances(opening, records) {
		b := rb.Balance
		rec := ToPayrollRecordDTO(rb.Record)
		rec.Balance = &b
		out.Records = append(out.Records, rec)
		out.ClosingBalance = b
	}
	return out, nil
}

// ToPayrollRecordDTO convierte un registro de nómina en DTO.
func ToPayrollRecordDTO(r *entity.PayrollRecord) dto.PayrollRecordDTO {
	return dto.PayrollRecordDTO{
		ID:          r.ID,
		PersonnelID: r.PersonnelID,
		Date:        r.Date.Format(entity.DateLayout),
		DailyWage:   r.DailyWage,
		PaidAmount:  r.PaidAmount,
		Description: r.Description,
	}
}

func lockPersonnel(ctx context.Context, repo repository.PersonnelRepository, id string) error {
	p, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return stepErr(StepLookup, err)
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}

// recomputeBalance relee el historial completo (ve la escritura de esta misma tx) y persiste el saldo.
func recomputeBalance(
	ctx context.Context,
	personnelRepo repository.PersonnelRepository,
	payrollRepo repository.PayrollRepository,
	personnelID string,
	now time.Time,
) (decimal.Decimal, error) {
	history, err := payrollRepo.ListByPersonnel(ctx, personnelID, repository.DateRange{})
	if err != nil {
		return decimal.Zero, stepErr(StepReread, err)
	}
	balance := ledger.Balance(ledger.PayrollEntries(history))
	if err := personnelRepo.UpdateBalance(ctx, personnelID, balance, now); err != nil {
		return decimal.Zero, stepErr(StepPersistBalance, err)
	}
	return balance, nil
}

// Save resuelve el body HTTP de PUT /api/payroll.
func (uc *PayrollUseCase) Save(ctx context.Context, in dto.UpsertPayrollRequest) (*dto.PayrollUpsertResponse, error) {
	day, err := entity.ParseDay(in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "debe tener formato YYYY-MM-DD")
	}
	res, err := uc.Upsert(ctx, UpsertPayrollInput{
		PersonnelID: in.PersonnelID,
		Date:        day,
		DailyWage:   in.DailyWage,
		PaidAmount:  in.PaidAmount,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	return &dto.PayrollUpsertResponse{
		Record:         ToPayrollRecordDTO(res.Record),
		Created:        res.Created,
		CurrentBalance: res.CurrentBalance,
	}, nil
}

// HistoryFor resuelve la query HTTP de GET /api/payroll.
func (uc *PayrollUseCase) HistoryFor(ctx context.Context, in dto.PayrollHistoryQuery) (*dto.PayrollHistoryResponse, error) {
	var from, to *time.Time
	if in.From != "" {
		d, err := parseOptionalDay("from", in.From)
		if err != nil {
			return nil, err
		}
		from = &d
	}
	if in.To != "" {
		d, err := parseOptionalDay("to", in.To)
		if err != nil {
			return nil, err
		}
		to = &d
	}
	return uc.History(ctx, in.PersonnelID, from, to)
}
