package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

var (
	_ appledger.PayrollTxRunner = (*TxRunner)(nil)
	_ usecase.WorkOrderTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayroll inicia una transacción con repos de personal y nómina (upsert + recálculo de saldo).
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(
	personnelRepo repository.PersonnelRepository,
	payrollRepo repository.PayrollRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPersonnelRepository(tx), NewPayrollRepository(tx))
	})
}

// RunWorkOrder inicia una transacción para crear una orden con sus asignaciones.
func (r *TxRunner) RunWorkOrder(ctx context.Context, fn func(
	workOrderRepo repository.WorkOrderRepository,
	customerRepo repository.CustomerRepository,
	personnelRepo repository.PersonnelRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewWorkOrderRepository(tx), NewCustomerRepository(tx), NewPersonnelRepository(tx))
	})
}

// run hace Begin, ejecuta fn y Commit; cualquier error (o panic) termina en Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStoreError("tx.begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewStoreError("tx.commit", err)
	}
	return nil
}
