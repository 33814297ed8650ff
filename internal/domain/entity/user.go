package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager" // operación: nómina, aprobación de órdenes
	RoleStaff   = "staff"   // solo lectura y registro de cobros/gastos
)

// User representa un usuario del back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
