// Package metrics expone contadores Prometheus de los motores contables.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
)

const namespace = "temizlik"

var _ appledger.Metrics = (*LedgerMetrics)(nil)

// LedgerMetrics implementa ledger.Metrics sobre un registry propio.
type LedgerMetrics struct {
	registry        *prometheus.Registry
	computations    *prometheus.CounterVec
	inconsistencies *prometheus.CounterVec
	recomputations  *prometheus.CounterVec
}

// NewLedgerMetrics registra los contadores; con withRuntime agrega los collectors de Go y proceso.
func NewLedgerMetrics(withRuntime bool) *LedgerMetrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(reg)
	return &LedgerMetrics{
		registry: reg,
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "computations_total",
			Help:      "Cálculos de libro de personal, cobranzas y caja por resultado.",
		}, []string{"engine", "outcome"}),
		inconsistencies: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "inconsistencies_total",
			Help:      "Estados inconsistentes detectados en lectura.",
		}, []string{"kind"}),
		recomputations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "balance_recomputations_total",
			Help:      "Recálculos del saldo cacheado de personal por resultado.",
		}, []string{"outcome"}),
	}
}

// ComputationObserved cuenta un cálculo del motor engine.
func (m *LedgerMetrics) ComputationObserved(engine string, err error) {
	m.computations.WithLabelValues(engine, outcome(err)).Inc()
}

// InconsistencyObserved cuenta una inconsistencia del tipo kind.
func (m *LedgerMetrics) InconsistencyObserved(kind string) {
	m.inconsistencies.WithLabelValues(kind).Inc()
}

// RecomputeObserved cuenta un recálculo de saldo.
func (m *LedgerMetrics) RecomputeObserved(err error) {
	m.recomputations.WithLabelValues(outcome(err)).Inc()
}

// Handler handler HTTP de exposición (/metrics).
func (m *LedgerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry registry subyacente.
func (m *LedgerMetrics) Registry() *prometheus.Registry { return m.registry }

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
