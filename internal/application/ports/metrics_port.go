package ports

// NavMetrics es el puerto de salida para métricas del motor de navegación.
// Los adaptadores (Prometheus, no-op en tests) implementan esta interfaz.
type NavMetrics interface {
	// SyncApplied registra una pasada de sincronización que cambió la configuración.
	SyncApplied(mode string, appended, injected, removed int)
	// ConfigRecovered registra una configuración ilegible reemplazada por la de fábrica.
	ConfigRecovered(mode, reason string)
	// PersistFailed registra una escritura fallida en el almacén de configuración.
	PersistFailed(op string)
}

// NopNavMetrics descarta todas las métricas.
type NopNavMetrics struct{}

func (NopNavMetrics) SyncApplied(string, int, int, int) {}
func (NopNavMetrics) ConfigRecovered(string, string)    {}
func (NopNavMetrics) PersistFailed(string)              {}
