package dto

import "github.com/shopspring/decimal"

// UpsertPayrollRequest body de PUT /api/payroll.
// Crea o actualiza el único registro de (personnel_id, date).
type UpsertPayrollRequest struct {
	PersonnelID string          `json:"personnel_id" validate:"required,uuid"`
	Date        string          `json:"date" validate:"required"`
	DailyWage   decimal.Decimal `json:"daily_wage"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Description string          `json:"description,omitempty" validate:"omitempty,max=500"`
}

// PayrollRecordDTO registro de nómina.
type PayrollRecordDTO struct {
	ID          string           `json:"id"`
	PersonnelID string           `json:"personnel_id"`
	Date        string           `json:"date"`
	DailyWage   decimal.Decimal  `json:"daily_wage"`
	PaidAmount  decimal.Decimal  `json:"paid_amount"`
	Description string           `json:"description,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"` // saldo acumulado (solo en historial)
}

// PayrollUpsertResponse resultado del upsert con el saldo recalculado.
type PayrollUpsertResponse struct {
	Record         PayrollRecordDTO `json:"record"`
	Created        bool             `json:"created"`
	CurrentBalance decimal.Decimal  `json:"current_balance"`
}

// PayrollDeleteResponse resultado del borrado con el saldo recalculado.
type PayrollDeleteResponse struct {
	PersonnelID    string          `json:"personnel_id"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// PayrollHistoryQuery query de GET /api/payroll.
type PayrollHistoryQuery struct {
	PersonnelID string `query:"personnel_id" validate:"required,uuid"`
	From        string `query:"from"`
	To          string `query:"to"`
}

// PayrollHistoryResponse historial con saldo acumulado por día.
type PayrollHistoryResponse struct {
	PersonnelID    string             `json:"personnel_id"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	ClosingBalance decimal.Decimal    `json:"closing_balance"`
	Records        []PayrollRecordDTO `json:"records"`
}

// RecomputeResultDTO saldo reparado de un personal.
type RecomputeResultDTO struct {
	PersonnelID string          `json:"personnel_id"`
	Name        string          `json:"name"`
	Previous    decimal.Decimal `json:"previous"`
	Current     decimal.Decimal `json:"current"`
}
