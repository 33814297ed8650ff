package dto

import "github.com/shopspring/decimal"

// PersonnelLedgerQuery query de GET /api/ledger/personnel.
// Date vacío = hoy (zona horaria LEDGER_TIMEZONE).
type PersonnelLedgerQuery struct {
	Date            string `query:"date"`
	PersonnelID     string `query:"personnel_id" validate:"omitempty,uuid"`
	OnlyOutstanding bool   `query:"only_outstanding"`
}

// PersonnelLedgerResponse libro diario de personal.
type PersonnelLedgerResponse struct {
	Date            string                  `json:"date"`
	Rows            []PersonnelLedgerRowDTO `json:"rows"`
	Totals          PersonnelLedgerTotals   `json:"totals"`
	Inconsistencies []InconsistencyDTO      `json:"inconsistencies,omitempty"`
}

// PersonnelLedgerRowDTO fila por personal: devir, hakediş, ödenen, bakiye.
type PersonnelLedgerRowDTO struct {
	PersonnelID  string                `json:"personnel_id"`
	Name         string                `json:"name"`
	Phone        string                `json:"phone,omitempty"`
	Status       string                `json:"status"`
	Carryover    decimal.Decimal       `json:"carryover"`
	DailyWage    decimal.Decimal       `json:"daily_wage"`
	PaidAmount   decimal.Decimal       `json:"paid_amount"`
	BalanceAfter decimal.Decimal       `json:"balance_after"`
	Description  string                `json:"description,omitempty"`
	RecordIDs    []string              `json:"record_ids,omitempty"`
	WorkOrders   []WorkOrderSummaryDTO `json:"work_orders"`
}

// PersonnelLedgerTotals totales de las filas.
type PersonnelLedgerTotals struct {
	Carryover    decimal.Decimal `json:"carryover"`
	DailyWage    decimal.Decimal `json:"daily_wage"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// InconsistencyDTO estado inconsistente detectado en lectura (no fatal).
type InconsistencyDTO struct {
	Kind        string `json:"kind"`
	PersonnelID string `json:"personnel_id"`
	Date        string `json:"date"`
	Count       int    `json:"count"`
}

// WorkOrderSummaryDTO orden del día asignada a un personal.
type WorkOrderSummaryDTO struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Status       string          `json:"status"`
	Price        decimal.Decimal `json:"price"`
	Address      string          `json:"address,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// PendingCollectionsQuery query de GET /api/ledger/receivables.
type PendingCollectionsQuery struct {
	Search string `query:"search"`
	PageRequest
}

// PendingCollectionsResponse clientes con trabajo próximo y deuda pendiente.
type PendingCollectionsResponse struct {
	Items        []PendingCollectionDTO `json:"items"`
	TotalPending decimal.Decimal        `json:"total_pending"`
	Page         PageResponse           `json:"page"`
}

// PendingCollectionDTO deuda de un cliente.
type PendingCollectionDTO struct {
	CustomerID          string          `json:"customer_id"`
	Name                string          `json:"name"`
	Phone               string          `json:"phone,omitempty"`
	Billed              decimal.Decimal `json:"billed"`
	Collected           decimal.Decimal `json:"collected"`
	Pending             decimal.Decimal `json:"pending"`
	LastTransactionDate string          `json:"last_transaction_date"`
}

// CustomerBalanceResponse saldo general de un cliente (sin filtro de trabajos próximos).
type CustomerBalanceResponse struct {
	CustomerID     string          `json:"customer_id"`
	Name           string          `json:"name"`
	Billed         decimal.Decimal `json:"billed"`
	Collected      decimal.Decimal `json:"collected"`
	Balance        decimal.Decimal `json:"balance"` // billed − collected; negativo = saldo a favor
	WorkOrderCount int             `json:"work_order_count"`
	PaymentCount   int             `json:"payment_count"`
}

// CashRegisterResponse resumen diario de caja.
type CashRegisterResponse struct {
	Date               string                `json:"date"`
	PreviousBalance    decimal.Decimal       `json:"previous_balance"`
	TodayCashCollected decimal.Decimal       `json:"today_cash_collected"`
	TodayCashExpense   decimal.Decimal       `json:"today_cash_expense"`
	TodayPaidWages     decimal.Decimal       `json:"today_paid_wages"`
	TotalWageDebt      decimal.Decimal       `json:"total_wage_debt"`
	Total              decimal.Decimal       `json:"total"`
	TodayCollected     decimal.Decimal       `json:"today_collected"`
	TodayExpense       decimal.Decimal       `json:"today_expense"`
	ByMethod           []MethodTotalDTO      `json:"by_method"`
	Collections        []RegisterLineDTO     `json:"collections"`
	Expenses           []RegisterLineDTO     `json:"expenses"`
}

// MethodTotalDTO totales del día por método de pago.
type MethodTotalDTO struct {
	Method    string          `json:"method"`
	Label     string          `json:"label"`
	Collected decimal.Decimal `json:"collected"`
	Expense   decimal.Decimal `json:"expense"`
}

// RegisterLineDTO movimiento del día.
type RegisterLineDTO struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	MethodLabel string          `json:"method_label"`
	Cash        bool            `json:"cash"`
	Party       string          `json:"party,omitempty"`
	Description string          `json:"description,omitempty"`
}

// PaymentMethodDTO fila de la tabla de normalización.
type PaymentMethodDTO struct {
	Code  string   `json:"code"`
	Label string   `json:"label"`
	Codes []string `json:"codes"`
	Cash  bool     `json:"cash"`
}
