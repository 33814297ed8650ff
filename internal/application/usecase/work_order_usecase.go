package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// WorkOrderUseCase casos de uso para órdenes de trabajo (iş emirleri).
// El precio de una orden cuenta como facturado del cliente mientras la orden exista.
type WorkOrderUseCase struct {
	tx   WorkOrderTxRunner
	repo repository.WorkOrderRepository
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(tx WorkOrderTxRunner, repo repository.WorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{tx: tx, repo: repo}
}

// Create crea la orden y sus asignaciones en una sola transacción.
// canApprove indica si el usuario puede crearla directamente aprobada.
func (uc *WorkOrderUseCase) Create(ctx context.Context, in dto.CreateWorkOrderRequest, canApprove bool) (*dto.WorkOrderResponse, error) {
	date, err := entity.ParseDay(in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "debe tener formato YYYY-MM-DD")
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	}
	status := entity.WorkOrderStatusUnapproved
	if in.Approved {
		if !canApprove {
			return nil, domain.ErrForbidden
		}
		status = entity.WorkOrderStatusApproved
	}

	now := time.Now()
	wo := &entity.WorkOrder{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Date:         date,
		Price:        in.Price,
		Status:       status,
		Description:  in.Description,
		Address:      in.Address,
		PersonnelIDs: dedupe(in.PersonnelIDs),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunWorkOrder(ctx, func(
		workOrderRepo repository.WorkOrderRepository,
		customerRepo repository.CustomerRepository,
		personnelRepo repository.PersonnelRepository,
	) error {
		customer, err := customerRepo.GetByID(ctx, wo.CustomerID)
		if err != nil {
			return fmt.Errorf("orden: obtener cliente: %w", err)
		}
		if customer == nil {
			return domain.NewValidationError("customer_id", "el cliente no existe")
		}
		wo.CustomerName = customer.Name
		if wo.Address == "" {
			wo.Address = customer.Addresses.Primary()
		}
		for _, pid := range wo.PersonnelIDs {
			p, err := personnelRepo.GetByID(ctx, pid)
			if err != nil {
				return fmt.Errorf("orden: obtener personal: %w", err)
			}
			if p == nil {
				return domain.NewValidationError("personnel_ids", "personal inexistente: "+pid)
			}
		}
		return workOrderRepo.Create(ctx, wo)
	})
	if err != nil {
		return nil, err
	}
	return toWorkOrderResponse(wo), nil
}

// GetByID obtiene una orden con sus asignaciones.
func (uc *WorkOrderUseCase) GetByID(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	wo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkOrderResponse(wo), nil
}

// List lista órdenes por rango de fechas, cliente, personal o estado.
func (uc *WorkOrderUseCase) List(ctx context.Context, q dto.WorkOrderQuery) ([]dto.WorkOrderResponse, error) {
	q.DefaultPage()
	rng, err := parseRange(q.From, q.To)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, repository.WorkOrderFilter{
		DateRange:   rng,
		CustomerID:  q.CustomerID,
		PersonnelID: q.PersonnelID,
		Status:      q.Status,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkOrderResponse, 0, len(list))
	for _, wo := range list {
		out = append(out, *toWorkOrderResponse(wo))
	}
	return out, nil
}

// Approve marca la orden como aprobada; a partir de aquí cuenta para cuentas por cobrar.
func (uc *WorkOrderUseCase) Approve(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	return uc.UpdateStatus(ctx, id, entity.WorkOrderStatusApproved)
}

// UpdateStatus cambia el estado de la orden.
func (uc *WorkOrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.WorkOrderResponse, error) {
	if !entity.ValidWorkOrderStatus(status) {
		return nil, domain.NewValidationError("status", "estado desconocido")
	}
	wo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}
	wo.Status = status
	wo.UpdatedAt = now
	return toWorkOrderResponse(wo), nil
}

// Delete elimina la orden y sus asignaciones; la deuda calculada del cliente baja en su precio.
func (uc *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	wo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wo == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toWorkOrderResponse(wo *entity.WorkOrder) *dto.WorkOrderResponse {
	ids := wo.PersonnelIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.WorkOrderResponse{
		ID:           wo.ID,
		CustomerID:   wo.CustomerID,
		CustomerName: wo.CustomerName,
		Date:         wo.Date.Format(entity.DateLayout),
		Price:        wo.Price,
		Status:       wo.Status,
		Description:  wo.Description,
		Address:      wo.Address,
		PersonnelIDs: ids,
		CreatedAt:    wo.CreatedAt,
		UpdatedAt:    wo.UpdatedAt,
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// parseRange interpreta from/to opcionales (YYYY-MM-DD, inclusivos).
func parseRange(from, to string) (repository.DateRange, error) {
	var rng repository.DateRange
	if from != "" {
		d, err := entity.ParseDay(from)
		if err != nil {
			return rng, domain.NewValidationError("from", "debe tener formato YYYY-MM-DD")
		}
		rng.From = &d
	}
	if to != "" {
		d, err := entity.ParseDay(to)
		if err != nil {
			return rng, domain.NewValidationError("to", "debe tener formato YYYY-MM-DD")
		}
		rng.To = &d
	}
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		return rng, domain.NewValidationError("to", "no puede ser anterior a from")
	}
	return rng, nil
}
