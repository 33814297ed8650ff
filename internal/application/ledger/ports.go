// Package ledger contiene los casos de uso del núcleo financiero: libro diario de
// personal, cuentas por cobrar, caja diaria y el recálculo de saldos de nómina.
package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// Nombres de motor usados en métricas y logs.
const (
	EnginePersonnelLedger = "personnel_ledger"
	EngineReceivables     = "receivables"
	EngineCashRegister    = "cash_register"
)

// PayrollTxRunner ejecuta fn dentro de una transacción con repos de personal y nómina
// atados a esa tx. Si fn retorna error se hace rollback.
type PayrollTxRunner interface {
	RunPayroll(ctx context.Context, fn func(
		personnelRepo repository.PersonnelRepository,
		payrollRepo repository.PayrollRepository,
	) error) error
}

// Metrics puerto de observabilidad de los motores.
type Metrics interface {
	ComputationObserved(engine string, err error)
	InconsistencyObserved(kind string)
	RecomputeObserved(err error)
}

// NopMetrics descarta todas las observaciones.
type NopMetrics struct{}

func (NopMetrics) ComputationObserved(string, error) {}
func (NopMetrics) InconsistencyObserved(string)      {}
func (NopMetrics) RecomputeObserved(error)           {}

// Clock define "hoy" para los motores.
type Clock interface {
	Today() time.Time
}

// SystemClock reloj real en la zona horaria del negocio.
type SystemClock struct {
	Loc *time.Location
}

// Today devuelve el día de calendario actual en Loc (UTC si Loc es nil).
func (c SystemClock) Today() time.Time {
	return entity.Today(time.Now(), c.Loc)
}

// RegisterPDFGenerator genera el PDF de la caja diaria.
type RegisterPDFGenerator interface {
	GenerateRegister(reg *ledger.Register) ([]byte, error)
}

// LedgerWorkbookGenerator genera el libro de personal en formato XLSX.
type LedgerWorkbookGenerator interface {
	GeneratePersonnelLedger(l *ledger.PersonnelLedger) ([]byte, error)
}
