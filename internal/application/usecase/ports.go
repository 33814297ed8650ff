package usecase

import (
	"context"

	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// WorkOrderTxRunner ejecuta fn dentro de una transacción con los repos necesarios para
// crear una orden con sus asignaciones de forma atómica.
type WorkOrderTxRunner interface {
	RunWorkOrder(ctx context.Context, fn func(
		workOrderRepo repository.WorkOrderRepository,
		customerRepo repository.CustomerRepository,
		personnelRepo repository.PersonnelRepository,
	) error) error
}
