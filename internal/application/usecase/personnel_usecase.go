package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// PersonnelUseCase casos de uso CRUD para personal.
// current_balance solo lo modifica el recálculo de nómina.
type PersonnelUseCase struct {
	repo repository.PersonnelRepository
}

// NewPersonnelUseCase construye el caso de uso.
func NewPersonnelUseCase(repo repository.PersonnelRepository) *PersonnelUseCase {
	return &PersonnelUseCase{repo: repo}
}

// Create da de alta un personal activo con saldo cero.
func (uc *PersonnelUseCase) Create(ctx context.Context, in dto.CreatePersonnelRequest) (*dto.PersonnelResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "es obligatorio")
	}
	now := time.Now()
	p := &entity.Personnel{
		ID:             uuid.New().String(),
		Name:           name,
		Phone:          strings.TrimSpace(in.Phone),
		Role:           in.Role,
		Status:         entity.PersonnelStatusActive,
		CurrentBalance: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPersonnelResponse(p), nil
}

// GetByID obtiene un personal; ErrNotFound si no existe.
func (uc *PersonnelUseCase) GetByID(ctx context.Context, id string) (*dto.PersonnelResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPersonnelResponse(p), nil
}

// List lista el personal, opcionalmente por estado.
func (uc *PersonnelUseCase) List(ctx context.Context, status string) ([]dto.PersonnelResponse, error) {
	if status != "" && status != entity.PersonnelStatusActive && status != entity.PersonnelStatusInactive {
		return nil, domain.NewValidationError("status", "debe ser active o inactive")
	}
	list, err := uc.repo.List(ctx, repository.PersonnelFilter{Status: status})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonnelResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPersonnelResponse(p))
	}
	return out, nil
}

// Update modifica datos de identidad y estado.
func (uc *PersonnelUseCase) Update(ctx context.Context, id string, in dto.UpdatePersonnelRequest) (*dto.PersonnelResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		p.Name = name
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		p.Role = *in.Role
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPersonnelResponse(p), nil
}

// Delete elimina el personal; sus registros de nómina y asignaciones se borran en cascada.
func (uc *PersonnelUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPersonnelResponse(p *entity.Personnel) *dto.PersonnelResponse {
	return &dto.PersonnelResponse{
		ID:             p.ID,
		Name:           p.Name,
		Phone:          p.Phone,
		Role:           p.Role,
		Status:         p.Status,
		CurrentBalance: p.CurrentBalance,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
