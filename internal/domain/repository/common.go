package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTotal suma y cantidad de filas agregadas por cliente.
type CustomerTotal struct {
	Amount decimal.Decimal
	Rows   int
}

// DateRange rango de fechas inclusivo; un extremo nil no filtra.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
