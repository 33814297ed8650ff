package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de personal.
const (
	PersonnelStatusActive   = "active"
	PersonnelStatusInactive = "inactive"
)

// Personnel representa a un miembro del personal de limpieza.
// CurrentBalance es un valor desnormalizado: se recalcula desde los registros de nómina
// y nunca es la fuente de verdad.
type Personnel struct {
	ID             string
	Name           string
	Phone          string
	Role           string
	Status         string
	CurrentBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive indica si el personal está activo.
func (p *Personnel) IsActive() bool { return p.Status == PersonnelStatusActive }
