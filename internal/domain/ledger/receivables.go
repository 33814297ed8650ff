package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Candidate cliente con al menos una orden aprobada con fecha >= hoy.
// NextOrderDate es la fecha más cercana entre esas órdenes.
type Candidate struct {
	CustomerID    string
	Name          string
	Phone         string
	NextOrderDate time.Time
}

// PendingQuery filtro y paginación en memoria del listado de cobranzas pendientes.
type PendingQuery struct {
	Search string
	Limit  int
	Offset int
}

// PendingCollection deuda neta de un cliente con trabajo próximo.
type PendingCollection struct {
	CustomerID          string
	Name                string
	Phone               string
	Billed              decimal.Decimal // Σ price de todas sus órdenes
	Collected           decimal.Decimal // Σ amount de todos sus cobros
	Pending             decimal.Decimal // Billed − Collected (> 0)
	LastTransactionDate time.Time       // próxima orden aprobada (solo presentación)
}

// PendingPage página del listado.
type PendingPage struct {
	Items        []PendingCollection
	Total        int
	TotalPending decimal.Decimal
	Limit        int
	Offset       int
}

// BuildPendingCollections calcula pending = billed − collected por candidato, descarta
// pending <= 0 (no se muestran saldos a favor), aplica el filtro de nombre, ordena por
// pending descendente y pagina.
func BuildPendingCollections(
	candidates []Candidate,
	billed, collected map[string]decimal.Decimal,
	q PendingQuery,
) PendingPage {
	items := make([]PendingCollection, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c.CustomerID] {
			continue
		}
		seen[c.CustomerID] = true

		b := billed[c.CustomerID]
		col := collected[c.CustomerID]
		pending := b.Sub(col)
		if !pending.IsPositive() {
			continue
		}
		if !MatchesName(c.Name, q.Search) {
			continue
		}
		items = append(items, PendingCollection{
			CustomerID:          c.CustomerID,
			Name:                c.Name,
			Phone:               c.Phone,
			Billed:              b,
			Collected:           col,
			Pending:             pending,
			LastTransactionDate: c.NextOrderDate,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Pending.Equal(items[j].Pending) {
			return items[i].Pending.GreaterThan(items[j].Pending)
		}
		return compareNames(items[i].Name, items[j].Name) < 0
	})

	page := PendingPage{Total: len(items), TotalPending: decimal.Zero, Limit: q.Limit, Offset: q.Offset}
	for _, it := range items {
		page.TotalPending = page.TotalPending.Add(it.Pending)
	}
	page.Items = paginate(items, q.Limit, q.Offset)
	return page
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
