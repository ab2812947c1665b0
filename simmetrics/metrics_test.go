package simmetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidAllison/sixvertex/chain"
	"github.com/DavidAllison/sixvertex/dual"
	"github.com/DavidAllison/sixvertex/flip"
	"github.com/DavidAllison/sixvertex/simmetrics"
)

// gatherValue fetches a single gauge value (summed over label sets) from a
// registry.
func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, m := range fam.GetMetric() {
			total += m.GetGauge().GetValue()
		}
		return total
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

// TestChainMetrics_Observe publishes a snapshot and reads it back through
// the registry.
func TestChainMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := simmetrics.NewChainMetrics("a", reg)
	require.NoError(t, err)

	ch, err := chain.New(chain.DefaultConfig(6))
	require.NoError(t, err)
	require.NoError(t, ch.Run(2000))

	stats := ch.StatsSnapshot()
	m.Observe(stats)

	assert.Equal(t, float64(stats.Step), gatherValue(t, reg, "sixvertex_chain_steps"))
	assert.Equal(t, float64(stats.Proposals), gatherValue(t, reg, "sixvertex_chain_proposals"))
	assert.Equal(t, float64(stats.Accepts), gatherValue(t, reg, "sixvertex_chain_accepts"))
	assert.Equal(t, float64(stats.Volume), gatherValue(t, reg, "sixvertex_chain_volume"))
	assert.Equal(t, float64(36), gatherValue(t, reg, "sixvertex_chain_vertex_count"),
		"the histogram gauges must sum to N²")
}

// TestChainMetrics_DoubleRegister surfaces registry conflicts.
func TestChainMetrics_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := simmetrics.NewChainMetrics("a", reg)
	require.NoError(t, err)
	_, err = simmetrics.NewChainMetrics("a", reg)
	assert.Error(t, err, "identical chain labels collide")

	_, err = simmetrics.NewChainMetrics("b", reg)
	assert.NoError(t, err, "distinct chain labels coexist")
}

// TestDualMetrics_Observe publishes a convergence measurement.
func TestDualMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := simmetrics.NewDualMetrics(reg)
	require.NoError(t, err)

	d, err := dual.New(6, flip.DefaultWeights(), 1, 2)
	require.NoError(t, err)
	require.NoError(t, d.Advance(500))

	conv := d.Convergence()
	m.Observe(conv)

	assert.Equal(t, float64(conv.VA), gatherValue(t, reg, "sixvertex_dual_volume_a"))
	assert.Equal(t, float64(conv.VB), gatherValue(t, reg, "sixvertex_dual_volume_b"))
	assert.Equal(t, float64(conv.HistoryLen), gatherValue(t, reg, "sixvertex_dual_history_length"))
	assert.Equal(t, 0.0, gatherValue(t, reg, "sixvertex_dual_converged"))
}
