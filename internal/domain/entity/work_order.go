package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de trabajo.
const (
	WorkOrderStatusUnapproved = "unapproved"
	WorkOrderStatusApproved   = "approved"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusCancelled  = "cancelled"
)

// WorkOrder orden de trabajo (servicio de limpieza) de un cliente en una fecha.
// Price es el monto facturado; mientras la orden exista cuenta como deuda del cliente.
type WorkOrder struct {
	ID           string
	CustomerID   string
	CustomerName string // solo lectura (join)
	Date         time.Time
	Price        decimal.Decimal
	Status       string
	Description  string
	Address      string
	PersonnelIDs []string // asignaciones (work_order_personnel)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsApproved indica si la orden fue aprobada.
func (w *WorkOrder) IsApproved() bool { return w.Status == WorkOrderStatusApproved }

// ValidWorkOrderStatus indica si s es un estado conocido.
func ValidWorkOrderStatus(s string) bool {
	switch s {
	case WorkOrderStatusUnapproved, WorkOrderStatusApproved, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}
