package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
	domledger "github.com/jhoicas/Temizlik-api/internal/domain/ledger"
)

func newReceivables(s *memStore, m appledger.Metrics) *appledger.ReceivablesUseCase {
	return appledger.NewReceivablesUseCase(customerRepo{s}, workOrderRepo{s}, collectionRepo{s},
		fixedClock{day: day("2024-03-10")}, m, nil, 20)
}

func (s *memStore) addCustomer(id, name string) {
	s.customers[id] = &entity.Customer{ID: id, Name: name}
}

func (s *memStore) addOrder(id, customerID, date, price, status string) {
	s.workOrders = append(s.workOrders, &entity.WorkOrder{
		ID: id, CustomerID: customerID, Date: day(date), Price: dec(price), Status: status,
	})
}

func (s *memStore) addCollection(id, customerID, date, amount, method string) {
	c := &entity.Collection{ID: id, Date: day(date), Amount: dec(amount), PaymentMethod: method}
	if customerID != "" {
		c.CustomerID = strPtr(customerID)
	}
	s.collections = append(s.collections, c)
}

// Un cliente con deuda 1000 pero sin orden aprobada futura no aparece.
func TestReceivables_SinOrdenFuturaAprobadaNoApareceAunqueDeba(t *testing.T) {
	s := newMemStore()
	s.addCustomer("c-1", "Mehmet")
	s.addOrder("wo-1", "c-1", "2024-03-01", "1000", entity.WorkOrderStatusUnapproved)

	page, err := newReceivables(s, nil).PendingCollections(context.Background(), domledger.PendingQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.True(t, page.TotalPending.IsZero())
}

// Facturado y cobrado cubren TODAS las órdenes y cobros del cliente; saldo <= 0 se excluye.
func TestReceivables_SumaHistoricoCompletoYExcluyeSaldosAFavor(t *testing.T) {
	s := newMemStore()
	s.addCustomer("c-1", "Mehmet")
	s.addCustomer("c-2", "Elif")
	s.addCustomer("c-3", "Can")

	s.addOrder("wo-1", "c-1", "2024-02-01", "1000", entity.WorkOrderStatusCompleted)
	s.addOrder("wo-2", "c-1", "2024-03-12", "500", entity.WorkOrderStatusApproved)
	s.addCollection("col-1", "c-1", "2024-02-01", "400", "nakit")

	s.addOrder("wo-3", "c-2", "2024-03-10", "800", entity.WorkOrderStatusApproved)
	s.addCollection("col-2", "c-2", "2024-03-01", "800", "havale")

	s.addOrder("wo-4", "c-3", "2024-03-20", "300", entity.WorkOrderStatusApproved)
	s.addOrder("wo-5", "c-3", "2024-03-15", "300", entity.WorkOrderStatusApproved)

	m := newRecordingMetrics()
	page, err := newReceivables(s, m).PendingCollections(context.Background(), domledger.PendingQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2, "Elif tiene saldo 0 y se excluye")

	assert.Equal(t, "c-1", page.Items[0].CustomerID)
	assert.True(t, page.Items[0].Billed.Equal(dec("1500")))
	assert.True(t, page.Items[0].Collected.Equal(dec("400")))
	assert.True(t, page.Items[0].Pending.Equal(dec("1100")))

	assert.Equal(t, "c-3", page.Items[1].CustomerID)
	assert.Equal(t, day("2024-03-15"), page.Items[1].LastTransactionDate, "próxima orden aprobada")
	assert.True(t, page.TotalPending.Equal(dec("1700")))
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 1, m.computations[appledger.EngineReceivables])
}

func TestReceivables_FalloDeCobradoNoDevuelveDeudaInflada(t *testing.T) {
	s := newMemStore()
	s.addCustomer("c-1", "Mehmet")
	s.addOrder("wo-1", "c-1", "2024-03-12", "500", entity.WorkOrderStatusApproved)
	s.failOn("collection.SumByCustomers")

	m := newRecordingMetrics()
	page, err := newReceivables(s, m).PendingCollections(context.Background(), domledger.PendingQuery{})
	assert.Nil(t, page)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 1, m.failures[appledger.EngineReceivables])
}

func TestReceivables_ListDevuelveDTOConPaginacion(t *testing.T) {
	s := newMemStore()
	for i, name := range []string{"Işık", "İpek", "Oya"} {
		id := []string{"c-1", "c-2", "c-3"}[i]
		s.addCustomer(id, name)
		s.addOrder("wo-"+id, id, "2024-03-11", "100", entity.WorkOrderStatusApproved)
	}

	resp, err := newReceivables(s, nil).List(context.Background(), dto.PendingCollectionsQuery{
		Search: "ipek", PageRequest: dto.PageRequest{Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "İpek", resp.Items[0].Name)
	assert.Equal(t, "2024-03-11", resp.Items[0].LastTransactionDate)
	assert.Equal(t, 1, resp.Page.Total)
}

func TestCustomerBalance_SaldoGeneralSinFiltroDeOrdenesFuturas(t *testing.T) {
	s := newMemStore()
	s.addCustomer("c-1", "Mehmet")
	s.addOrder("wo-1", "c-1", "2024-01-01", "1000", entity.WorkOrderStatusCompleted)
	s.addCollection("col-1", "c-1", "2024-01-05", "1200", "kart")

	resp, err := newReceivables(s, nil).CustomerBalance(context.Background(), "c-1")
	require.NoError(t, err)
	assert.True(t, resp.Balance.Equal(dec("-200")), "saldo a favor visible en la consulta individual")
	assert.Equal(t, 1, resp.WorkOrderCount)
	assert.Equal(t, 1, resp.PaymentCount)
}

func TestCustomerBalance_ClienteSinFilasEsErrorDeValidacion(t *testing.T) {
	s := newMemStore()
	s.addCustomer("c-1", "Mehmet")

	_, err := newReceivables(s, nil).CustomerBalance(context.Background(), "c-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestCustomerBalance_ClienteInexistente(t *testing.T) {
	_, err := newReceivables(newMemStore(), nil).CustomerBalance(context.Background(), "c-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
