package dto

import "time"

// RegisterRequest entrada para crear un usuario (solo admin). El password se hashea en el use case.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager staff"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserAccessRequest body para PATCH /api/users/:id. Campos vacíos no cambian.
type UpdateUserAccessRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=200"`
	Role   string  `json:"role" validate:"omitempty,oneof=admin manager staff"`
	Status string  `json:"status" validate:"omitempty,oneof=active inactive"`
}
