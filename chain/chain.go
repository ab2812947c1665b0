package chain

import (
	"fmt"

	"github.com/DavidAllison/sixvertex/flip"
	"github.com/DavidAllison/sixvertex/lattice"
	"github.com/DavidAllison/sixvertex/observe"
	"github.com/DavidAllison/sixvertex/rng"
)

// Chain is a single Metropolis/heat-bath chain. It exclusively owns its
// lattice and random stream and is not safe for concurrent use; two chains
// never share state and may run on separate goroutines.
type Chain struct {
	cfg Config

	lat *lattice.Lattice
	eng *flip.Engine
	rnd *rng.Stream

	state   State
	haltErr error

	step      uint64
	proposals uint64
	accepts   uint64
	counts    [lattice.NumTypes]int

	// initial is the pristine starting buffer, kept for Reset.
	initial []byte
}

// New validates cfg and builds an idle chain positioned on its initial
// DWBC state.
func New(cfg Config) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var (
		lat *lattice.Lattice
		err error
	)
	if cfg.Initial == DWBCHigh {
		lat, err = lattice.BuildHigh(cfg.N)
	} else {
		lat, err = lattice.BuildLow(cfg.N)
	}
	if err != nil {
		return nil, fmt.Errorf("chain: building initial state: %w", err)
	}
	eng, err := flip.NewEngine(cfg.Weights)
	if err != nil {
		return nil, err
	}
	ch := &Chain{
		cfg:     cfg,
		lat:     lat,
		eng:     eng,
		rnd:     rng.New(cfg.Seed),
		counts:  observe.VertexCounts(lat),
		initial: lat.Snapshot(),
	}
	return ch, nil
}

// State returns the lifecycle state.
func (ch *Chain) State() State { return ch.state }

// Config returns the configuration the chain was built from (weights track
// UpdateWeights).
func (ch *Chain) Config() Config { return ch.cfg }

// Rho returns the current calibrated acceptance scaling constant.
func (ch *Chain) Rho() float64 { return ch.eng.Rho() }

// Volume returns the tracked height volume in flip units.
func (ch *Chain) Volume() int { return ch.lat.Volume() }

// Step performs one elementary Markov operation: draw a uniform cell, test
// both flip directions, and accept by the ρ-scaled heat-bath rule. A draw
// with no admissible direction advances the step index but counts no
// proposal.
func (ch *Chain) Step() error {
	switch ch.state {
	case Paused:
		return ErrPaused
	case Halted:
		return fmt.Errorf("%w: %w", ErrHalted, ch.haltErr)
	case Idle:
		ch.state = Running
	}
	ch.step++

	n := ch.cfg.N
	k := ch.rnd.IntN(n * n)
	r, c := k/n, k%n

	upOK := ch.eng.IsFlippable(ch.lat, r, c, flip.Up)
	dnOK := ch.eng.IsFlippable(ch.lat, r, c, flip.Down)
	if !upOK && !dnOK {
		return nil
	}
	ch.proposals++

	var dir flip.Direction
	accept := false
	u := ch.rnd.Float64()
	switch {
	case upOK && dnOK:
		// Sequential thresholds; ρ calibration guarantees pUp+pDn ≤ 1.
		pUp := ch.eng.AcceptProb(ch.lat, r, c, flip.Up)
		pDn := ch.eng.AcceptProb(ch.lat, r, c, flip.Down)
		if u < pUp {
			dir, accept = flip.Up, true
		} else if u < pUp+pDn {
			dir, accept = flip.Down, true
		}
	case upOK:
		if u < ch.eng.AcceptProb(ch.lat, r, c, flip.Up) {
			dir, accept = flip.Up, true
		}
	default:
		if u < ch.eng.AcceptProb(ch.lat, r, c, flip.Down) {
			dir, accept = flip.Down, true
		}
	}
	if !accept {
		return nil
	}

	applied, ok := ch.eng.Apply(ch.lat, r, c, dir)
	if !ok {
		return nil
	}
	ch.accepts++
	for i, q := range applied.Cells {
		ch.counts[applied.Prev[i]]--
		ch.counts[q.T]++
	}

	// The substitution table preserves the ice rule by construction; the
	// O(1) block check catches table corruption before it can spread.
	br, bc := r, c
	if dir == flip.Up {
		br = r - 1
	} else {
		bc = c - 1
	}
	if err := ch.lat.CheckIceBlock(br, bc); err != nil {
		ch.state = Halted
		ch.haltErr = err
		return fmt.Errorf("%w: %w", ErrHalted, err)
	}
	return nil
}

// Run performs n steps in a tight loop, stopping early on the first error.
// Hosts interleave snapshotting and pause checks between Run batches.
func (ch *Chain) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := ch.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Pause suspends the chain between batches. Pausing an idle or halted
// chain is a no-op.
func (ch *Chain) Pause() {
	if ch.state == Running {
		ch.state = Paused
	}
}

// Resume returns a paused chain to Running.
func (ch *Chain) Resume() {
	if ch.state == Paused {
		ch.state = Running
	}
}

// Reset rebuilds the initial DWBC state, reseeds the random stream, zeroes
// every counter, and returns the chain to Idle. A halted chain may be
// reset.
func (ch *Chain) Reset() {
	if err := ch.lat.ResetTo(ch.initial); err != nil {
		// The pristine buffer was produced by a DWBC constructor and
		// revalidates by construction.
		panic(fmt.Sprintf("chain: reset from pristine buffer failed: %v", err))
	}
	ch.rnd.Reseed(ch.cfg.Seed)
	ch.state = Idle
	ch.haltErr = nil
	ch.step, ch.proposals, ch.accepts = 0, 0, 0
	ch.counts = observe.VertexCounts(ch.lat)
}

// UpdateWeights swaps the weight vector mid-run and recalibrates ρ.
// Counters are left untouched; callers wanting fresh acceptance statistics
// pair this with ResetStats.
func (ch *Chain) UpdateWeights(w flip.Weights) error {
	if err := ch.eng.SetWeights(w); err != nil {
		return err
	}
	ch.cfg.Weights = w
	return nil
}

// ResetStats clears the proposal and accept tallies without disturbing the
// configuration, the lattice, or the monotone step index.
func (ch *Chain) ResetStats() {
	ch.proposals, ch.accepts = 0, 0
}

// StateSnapshot returns a deep copy of the lattice buffer in the stable
// code mapping.
func (ch *Chain) StateSnapshot() []byte {
	return ch.lat.Snapshot()
}

// LatticeCopy returns an independent deep copy of the lattice for
// observable computations.
func (ch *Chain) LatticeCopy() *lattice.Lattice {
	return ch.lat.Clone()
}

// StatsSnapshot returns the current statistics as plain values.
func (ch *Chain) StatsSnapshot() Stats {
	vol := ch.lat.Volume()
	return Stats{
		Step:           ch.step,
		Proposals:      ch.proposals,
		Accepts:        ch.accepts,
		AcceptanceRate: observe.AcceptanceRate(ch.accepts, ch.proposals),
		VertexCounts:   ch.counts,
		Energy:         observe.Energy(ch.counts, ch.eng.Weights()),
		Volume:         vol,
		HeightSum:      2 * vol,
		Beta:           ch.cfg.Beta,
	}
}

// SnapshotAll bundles configuration, lattice, and stats for persistence and
// rendering collaborators.
func (ch *Chain) SnapshotAll() Snapshot {
	return Snapshot{
		Config: ch.cfg,
		N:      ch.cfg.N,
		Cells:  ch.lat.Snapshot(),
		Stats:  ch.StatsSnapshot(),
	}
}
