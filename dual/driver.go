package dual

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/DavidAllison/sixvertex/chain"
	"github.com/DavidAllison/sixvertex/flip"
)

// Driver advances two extremal-start chains in lockstep and keeps the
// rolling normalized-difference history behind the convergence verdict.
type Driver struct {
	a, b *chain.Chain

	theta      float64
	historyMax int
	minHistory int

	history []float64
	log     *zap.Logger
}

// Option tunes a Driver at construction.
type Option func(*Driver)

// WithTheta overrides the convergence threshold.
func WithTheta(theta float64) Option {
	return func(d *Driver) { d.theta = theta }
}

// WithHistory overrides the rolling history capacity and the minimum
// sample count a verdict needs.
func WithHistory(max, min int) Option {
	return func(d *Driver) { d.historyMax = max; d.minHistory = min }
}

// WithLogger attaches a logger for batch-boundary convergence reporting.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Driver) { d.log = log }
}

// New builds a driver over side n with shared weights: chain A starts from
// DWBC high with seedA, chain B from DWBC low with seedB.
func New(n int, w flip.Weights, seedA, seedB uint64, opts ...Option) (*Driver, error) {
	cfgA := chain.DefaultConfig(n)
	cfgA.Initial = chain.DWBCHigh
	cfgA.Seed = seedA
	cfgB := chain.DefaultConfig(n)
	cfgB.Initial = chain.DWBCLow
	cfgB.Seed = seedB
	return NewFromConfigs(cfgA, cfgB, w, opts...)
}

// NewFromConfigs builds a driver over two fully explicit chain
// configurations. The shared weight vector overrides both configurations:
// the coupling argument only holds when A and B sample the same ensemble.
func NewFromConfigs(cfgA, cfgB chain.Config, shared flip.Weights, opts ...Option) (*Driver, error) {
	d := &Driver{
		theta:      DefaultTheta,
		historyMax: DefaultHistoryMax,
		minHistory: DefaultMinHistory,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.theta <= 0 || d.theta >= 1 {
		return nil, ErrBadTheta
	}
	if d.historyMax <= 0 || d.minHistory <= 0 || d.minHistory > d.historyMax {
		return nil, ErrBadHistory
	}

	cfgA.Weights = shared
	cfgB.Weights = shared
	a, err := chain.New(cfgA)
	if err != nil {
		return nil, err
	}
	b, err := chain.New(cfgB)
	if err != nil {
		return nil, err
	}
	d.a, d.b = a, b
	return d, nil
}

// ChainA returns the high-started chain.
func (d *Driver) ChainA() *chain.Chain { return d.a }

// ChainB returns the low-started chain.
func (d *Driver) ChainB() *chain.Chain { return d.b }

// Advance performs k steps on each chain, then appends one normalized
// difference sample to the rolling history. The chains share no mutable
// state, so sequential stepping is sufficient.
func (d *Driver) Advance(k int) error {
	if err := d.a.Run(k); err != nil {
		return err
	}
	if err := d.b.Run(k); err != nil {
		return err
	}
	d.pushSample()
	conv := d.Convergence()
	d.log.Debug("dual advance",
		zap.Int("steps", k),
		zap.Int("volume_a", conv.VA),
		zap.Int("volume_b", conv.VB),
		zap.Float64("smoothed_diff", conv.SmoothedDiff),
		zap.Bool("converged", conv.Converged),
	)
	return nil
}

// pushSample appends the current normalized difference, evicting the oldest
// sample once the history is full.
func (d *Driver) pushSample() {
	_, _, norm := volumes(d.a, d.b)
	if len(d.history) == d.historyMax {
		copy(d.history, d.history[1:])
		d.history = d.history[:d.historyMax-1]
	}
	d.history = append(d.history, norm)
}

// Convergence computes the coupling metrics from live volumes and the
// rolling history.
func (d *Driver) Convergence() Convergence {
	va, vb := d.a.Volume(), d.b.Volume()
	diff := va - vb
	if diff < 0 {
		diff = -diff
	}
	ratio, norm := 0.0, 0.0
	if hi := max(va, vb); hi > 0 {
		ratio = float64(min(va, vb)) / float64(hi)
		norm = float64(diff) / float64(hi)
	}
	// Before the first sample the smoothed difference is pinned to 1,
	// the largest value the normalized difference can take.
	smoothed := 1.0
	if len(d.history) > 0 {
		smoothed = stat.Mean(d.history, nil)
	}
	return Convergence{
		VA:             va,
		VB:             vb,
		VolumeDiff:     diff,
		VolumeRatio:    ratio,
		NormalizedDiff: norm,
		SmoothedDiff:   smoothed,
		HistoryLen:     len(d.history),
		Converged: ratio > 1-d.theta &&
			smoothed < d.theta &&
			len(d.history) >= d.minHistory,
	}
}

// SnapshotBoth returns full snapshots of both chains, A first.
func (d *Driver) SnapshotBoth() (chain.Snapshot, chain.Snapshot) {
	return d.a.SnapshotAll(), d.b.SnapshotAll()
}

// UpdateWeights swaps the shared weight vector on both chains atomically
// from the driver's point of view: it is called only between batches.
func (d *Driver) UpdateWeights(w flip.Weights) error {
	if err := d.a.UpdateWeights(w); err != nil {
		return err
	}
	return d.b.UpdateWeights(w)
}

// Reset rebuilds both chains from fresh DWBC states and clears the
// history.
func (d *Driver) Reset() {
	d.a.Reset()
	d.b.Reset()
	d.history = d.history[:0]
}

func volumes(a, b *chain.Chain) (va, vb int, norm float64) {
	va, vb = a.Volume(), b.Volume()
	diff := va - vb
	if diff < 0 {
		diff = -diff
	}
	if hi := max(va, vb); hi > 0 {
		norm = float64(diff) / float64(hi)
	}
	return va, vb, norm
}
