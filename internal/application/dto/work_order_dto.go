package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest body para POST /api/work-orders.
type CreateWorkOrderRequest struct {
	CustomerID   string          `json:"customer_id" validate:"required,uuid"`
	Date         string          `json:"date" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description" validate:"omitempty,max=1000"`
	Address      string          `json:"address" validate:"omitempty,max=500"`
	PersonnelIDs []string        `json:"personnel_ids" validate:"omitempty,dive,uuid"`
	Approved     bool            `json:"approved"` // solo admin/manager pueden crear aprobadas
}

// WorkOrderQuery query de GET /api/work-orders.
type WorkOrderQuery struct {
	From        string `query:"from"`
	To          string `query:"to"`
	CustomerID  string `query:"customer_id" validate:"omitempty,uuid"`
	PersonnelID string `query:"personnel_id" validate:"omitempty,uuid"`
	Status      string `query:"status" validate:"omitempty,oneof=unapproved approved completed cancelled"`
	PageRequest
}

// UpdateWorkOrderStatusRequest body para PATCH /api/work-orders/:id/status.
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unapproved approved completed cancelled"`
}

// WorkOrderResponse orden de trabajo en respuestas.
type WorkOrderResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Date         string          `json:"date"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status"`
	Description  string          `json:"description,omitempty"`
	Address      string          `json:"address,omitempty"`
	PersonnelIDs []string        `json:"personnel_ids"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
