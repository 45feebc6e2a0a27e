package metrics

import (
	"net/http"

	"github.com/jhoicas/Restaurante-api/internal/application/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ ports.NavMetrics = (*NavMetrics)(nil)

// NavMetrics adaptador Prometheus del puerto de métricas de navegación.
// Usa un registro propio para no depender del registro global.
type NavMetrics struct {
	registry   *prometheus.Registry
	syncs      *prometheus.CounterVec
	changes    *prometheus.CounterVec
	recovered  *prometheus.CounterVec
	persistErr *prometheus.CounterVec
}

// NewNavMetrics registra los colectores del motor y los del proceso Go.
func NewNavMetrics(namespace string) *NavMetrics {
	reg := prometheus.NewRegistry()
	m := &NavMetrics{
		registry: reg,
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "sync_changes_total",
			Help:      "Pasadas de sincronización que modificaron la configuración de menú.",
		}, []string{"mode"}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "entries_changed_total",
			Help:      "Entradas de menú agregadas, inyectadas o retiradas por la sincronización.",
		}, []string{"mode", "kind"}),
		recovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "config_recovered_total",
			Help:      "Configuraciones reemplazadas por las de fábrica al cargar.",
		}, []string{"mode", "reason"}),
		persistErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "persist_failures_total",
			Help:      "Escrituras fallidas en el almacén de configuración.",
		}, []string{"op"}),
	}
	reg.MustRegister(
		m.syncs, m.changes, m.recovered, m.persistErr,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *NavMetrics) SyncApplied(mode string, appended, injected, removed int) {
	m.syncs.WithLabelValues(mode).Inc()
	m.changes.WithLabelValues(mode, "appended").Add(float64(appended))
	m.changes.WithLabelValues(mode, "injected").Add(float64(injected))
	m.changes.WithLabelValues(mode, "removed").Add(float64(removed))
}

func (m *NavMetrics) ConfigRecovered(mode, reason string) {
	m.recovered.WithLabelValues(mode, reason).Inc()
}

func (m *NavMetrics) PersistFailed(op string) {
	m.persistErr.WithLabelValues(op).Inc()
}

// Registry expone el registro para pruebas.
func (m *NavMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler devuelve el endpoint HTTP de exposición de métricas.
func (m *NavMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
