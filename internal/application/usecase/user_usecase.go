package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	"github.com/jhoicas/Temizlik-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del back-office (solo admin).
// El alta con password vive en auth.AuthUseCase.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// UpdateAccess cambia rol y/o estado. actorID es el admin que hace el cambio:
// no puede quitarse a sí mismo el rol admin ni desactivarse.
func (uc *UserUseCase) UpdateAccess(ctx context.Context, actorID, id string, in dto.UpdateUserAccessRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if id == actorID && (user.Role != entity.RoleAdmin || user.Status != "active") {
		return nil, domain.NewValidationError("role", "un admin no puede quitarse su propio acceso")
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario distinto del que hace la petición.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if id == actorID {
		return domain.NewValidationError("id", "un admin no puede eliminarse a sí mismo")
	}
	return uc.repo.Delete(ctx, id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
