package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Addresses: in.Addresses,
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza los campos presentes en la petición.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		customer.Name = name
	}
	if in.Phone != nil {
		customer.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Addresses != nil {
		customer.Addresses = *in.Addresses
	}
	if in.Type != nil {
		customer.Type = *in.Type
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con búsqueda por nombre y paginación.
func (uc *CustomerUseCase) List(ctx context.Context, q dto.CustomerQuery) (*dto.CustomerListResponse, error) {
	q.DefaultPage()
	filter := repository.CustomerFilter{Search: strings.TrimSpace(q.Search), Type: q.Type, Limit: q.Limit, Offset: q.Offset}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Delete elimina un cliente. Falla con ErrConflict si aún tiene órdenes o cobros.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	addrs := c.Addresses
	if addrs == nil {
		addrs = entity.Addresses{}
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Addresses: addrs,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
