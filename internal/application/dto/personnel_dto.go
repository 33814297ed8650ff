package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePersonnelRequest body para POST /api/personnel.
type CreatePersonnelRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
	Role  string `json:"role" validate:"omitempty,max=50"`
}

// UpdatePersonnelRequest body para PUT /api/personnel/:id.
type UpdatePersonnelRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone  *string `json:"phone" validate:"omitempty,max=30"`
	Role   *string `json:"role" validate:"omitempty,max=50"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// PersonnelResponse personal en respuestas. current_balance es la caché del último recálculo.
type PersonnelResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Role           string          `json:"role,omitempty"`
	Status         string          `json:"status"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
