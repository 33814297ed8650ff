package dto

import (
	"time"

	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// CreateCustomerRequest body para POST /api/customers.
// addresses acepta un texto plano o una lista de direcciones.
type CreateCustomerRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=200"`
	Phone     string           `json:"phone" validate:"omitempty,max=30"`
	Addresses entity.Addresses `json:"addresses"`
	Type      string           `json:"type" validate:"omitempty,max=50"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Campos nil no se modifican.
type UpdateCustomerRequest struct {
	Name      *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Phone     *string           `json:"phone" validate:"omitempty,max=30"`
	Addresses *entity.Addresses `json:"addresses"`
	Type      *string           `json:"type" validate:"omitempty,max=50"`
}

// CustomerQuery query de GET /api/customers.
type CustomerQuery struct {
	Search string `query:"search"`
	Type   string `query:"type"`
	PageRequest
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone,omitempty"`
	Addresses entity.Addresses `json:"addresses"`
	Type      string           `json:"type,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
