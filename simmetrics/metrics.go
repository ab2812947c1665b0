package simmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DavidAllison/sixvertex/chain"
	"github.com/DavidAllison/sixvertex/dual"
	"github.com/DavidAllison/sixvertex/lattice"
)

// ChainMetrics publishes one chain's statistics snapshot.
type ChainMetrics struct {
	steps          prometheus.Gauge
	proposals      prometheus.Gauge
	accepts        prometheus.Gauge
	acceptanceRate prometheus.Gauge
	volume         prometheus.Gauge
	energy         prometheus.Gauge
	vertexCounts   *prometheus.GaugeVec
}

// NewChainMetrics registers the chain instrument set under the given chain
// label.
func NewChainMetrics(chainName string, registerer prometheus.Registerer) (*ChainMetrics, error) {
	labels := prometheus.Labels{"chain": chainName}
	m := &ChainMetrics{
		steps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_steps",
			Help:        "Monotone step index of the chain",
			ConstLabels: labels,
		}),
		proposals: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_proposals",
			Help:        "Number of flip proposals",
			ConstLabels: labels,
		}),
		accepts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_accepts",
			Help:        "Number of accepted flips",
			ConstLabels: labels,
		}),
		acceptanceRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_acceptance_rate",
			Help:        "Accepts over proposals",
			ConstLabels: labels,
		}),
		volume: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_volume",
			Help:        "Tracked height volume in flip units",
			ConstLabels: labels,
		}),
		energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_energy",
			Help:        "Configuration energy −Σ log W[t]·count[t]",
			ConstLabels: labels,
		}),
		vertexCounts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "sixvertex_chain_vertex_count",
			Help:        "Vertex-type histogram of the current state",
			ConstLabels: labels,
		}, []string{"type"}),
	}
	for _, c := range []prometheus.Collector{
		m.steps, m.proposals, m.accepts, m.acceptanceRate, m.volume, m.energy, m.vertexCounts,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe publishes one statistics snapshot.
func (m *ChainMetrics) Observe(stats chain.Stats) {
	m.steps.Set(float64(stats.Step))
	m.proposals.Set(float64(stats.Proposals))
	m.accepts.Set(float64(stats.Accepts))
	m.acceptanceRate.Set(stats.AcceptanceRate)
	m.volume.Set(float64(stats.Volume))
	m.energy.Set(stats.Energy)
	for t := lattice.VertexType(0); t < lattice.NumTypes; t++ {
		m.vertexCounts.WithLabelValues(t.String()).Set(float64(stats.VertexCounts[t]))
	}
}

// DualMetrics publishes the coupling measurements of a dual driver.
type DualMetrics struct {
	volumeA      prometheus.Gauge
	volumeB      prometheus.Gauge
	volumeRatio  prometheus.Gauge
	smoothedDiff prometheus.Gauge
	historyLen   prometheus.Gauge
	converged    prometheus.Gauge
}

// NewDualMetrics registers the dual-driver instrument set.
func NewDualMetrics(registerer prometheus.Registerer) (*DualMetrics, error) {
	m := &DualMetrics{
		volumeA: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sixvertex_dual_volume_a",
			Help: "Volume of the high-started chain",
		}),
		volumeB: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sixvertex_dual_volume_b",
			Help: "Volume of the low-started chain",
		}),
		volumeRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sixvertex_dual_volume_ratio",
			Help: "min/max of the two chain volumes",
		}),
		smoothedDiff: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sixvertex_dual_smoothed_diff",
			Help: "History-smoothed normalized volume difference",
		}),
		historyLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sixvertex_dual_history_length",
			Help: "Samples in the rolling difference history",
		}),
		converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sixvertex_dual_converged",
			Help: "1 once the coupling verdict holds, else 0",
		}),
	}
	for _, c := range []prometheus.Collector{
		m.volumeA, m.volumeB, m.volumeRatio, m.smoothedDiff, m.historyLen, m.converged,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe publishes one convergence measurement.
func (m *DualMetrics) Observe(conv dual.Convergence) {
	m.volumeA.Set(float64(conv.VA))
	m.volumeB.Set(float64(conv.VB))
	m.volumeRatio.Set(conv.VolumeRatio)
	m.smoothedDiff.Set(conv.SmoothedDiff)
	m.historyLen.Set(float64(conv.HistoryLen))
	if conv.Converged {
		m.converged.Set(1)
	} else {
		m.converged.Set(0)
	}
}
