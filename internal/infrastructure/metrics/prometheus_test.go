package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/infrastructure/metrics"
)

func TestNavMetrics_Contadores(t *testing.T) {
	m := metrics.NewNavMetrics("restaurante")

	m.SyncApplied("member", 1, 2, 0)
	m.SyncApplied("member", 0, 0, 1)
	m.ConfigRecovered("admin", "malformed")
	m.PersistFailed("sync")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["restaurante_navigation_sync_changes_total"])
	assert.True(t, names["restaurante_navigation_entries_changed_total"])
	assert.True(t, names["restaurante_navigation_config_recovered_total"])
	assert.True(t, names["restaurante_navigation_persist_failures_total"])

	n, err := testutil.GatherAndCount(m.Registry(), "restaurante_navigation_entries_changed_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "una serie por tipo de cambio")
}
