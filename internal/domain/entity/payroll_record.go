package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Temizlik-api/internal/domain"
)

// PayrollRecord hakediş (DailyWage) y ödenen (PaidAmount) de un personal en un día.
// Se espera como máximo un registro por (PersonnelID, Date); es un invariante de
// aplicación, no una restricción del almacén.
type PayrollRecord struct {
	ID          string
	PersonnelID string
	Date        time.Time // día de calendario (ver Day)
	DailyWage   decimal.Decimal
	PaidAmount  decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Net devuelve DailyWage - PaidAmount.
func (r *PayrollRecord) Net() decimal.Decimal {
	return r.DailyWage.Sub(r.PaidAmount)
}

// Validate verifica los invariantes de fila: personal y fecha presentes, montos >= 0.
func (r *PayrollRecord) Validate() error {
	if r.PersonnelID == "" {
		return domain.NewValidationError("personnel_id", "es requerido")
	}
	if r.Date.IsZero() {
		return domain.NewValidationError("date", "es requerida")
	}
	if r.DailyWage.IsNegative() {
		return domain.NewValidationError("daily_wage", "no puede ser negativo")
	}
	if r.PaidAmount.IsNegative() {
		return domain.NewValidationError("paid_amount", "no puede ser negativo")
	}
	return nil
}
