package chain

import (
	"errors"

	"github.com/DavidAllison/sixvertex/flip"
	"github.com/DavidAllison/sixvertex/lattice"
)

// Sentinel errors for chain configuration and lifecycle.
var (
	// ErrBadSize indicates a lattice side below the 2×2 minimum.
	ErrBadSize = errors.New("chain: lattice side must be at least 2")

	// ErrBadInitial indicates an unrecognized initial state selector.
	ErrBadInitial = errors.New("chain: initial state must be DWBC high or low")

	// ErrBadBatch indicates a non-positive steps-per-batch hint.
	ErrBadBatch = errors.New("chain: steps per batch must be positive")

	// ErrPaused indicates a step was requested on a paused chain.
	ErrPaused = errors.New("chain: chain is paused")

	// ErrHalted indicates the chain latched an internal invariant
	// violation and refuses further steps.
	ErrHalted = errors.New("chain: chain is halted")
)

// InitialState selects which extremal DWBC configuration a chain starts
// from.
type InitialState int

const (
	// DWBCHigh starts from the maximal-volume state.
	DWBCHigh InitialState = iota
	// DWBCLow starts from the minimal-volume state.
	DWBCLow
)

// String returns "dwbc_high" or "dwbc_low", the stable configuration-option
// spelling used by persistence records.
func (s InitialState) String() string {
	if s == DWBCHigh {
		return "dwbc_high"
	}
	return "dwbc_low"
}

// State is the chain lifecycle state.
type State int

const (
	// Idle: constructed or reset, before the first step.
	Idle State = iota
	// Running: at least one step taken and not paused.
	Running
	// Paused: suspended between batches under host control.
	Paused
	// Halted: latched after an internal invariant violation.
	Halted
)

var stateNames = [...]string{"idle", "running", "paused", "halted"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// Config carries every input a chain needs. The zero value is not valid;
// start from DefaultConfig.
type Config struct {
	// N is the lattice side, at least 2.
	N int
	// Initial selects the starting DWBC state.
	Initial InitialState
	// Weights are the six vertex weights.
	Weights flip.Weights
	// Seed fully determines the chain's random stream.
	Seed uint64
	// StepsPerBatch is the caller batching hint for Run chunking.
	StepsPerBatch int
	// Beta is an optional caller-supplied inverse temperature tag copied
	// into stats snapshots; the dynamics never read it.
	Beta float64
}

// DefaultConfig returns a runnable configuration for side n: DWBC high,
// unit weights, seed 1, batches of 256 steps.
func DefaultConfig(n int) Config {
	return Config{
		N:             n,
		Initial:       DWBCHigh,
		Weights:       flip.DefaultWeights(),
		Seed:          1,
		StepsPerBatch: 256,
	}
}

// Validate checks the configuration without building anything.
func (c Config) Validate() error {
	if c.N < 2 {
		return ErrBadSize
	}
	if c.Initial != DWBCHigh && c.Initial != DWBCLow {
		return ErrBadInitial
	}
	if c.StepsPerBatch <= 0 {
		return ErrBadBatch
	}
	return c.Weights.Validate()
}

// Stats is a point-in-time statistics snapshot. All fields are plain values
// safe to hand across process boundaries.
type Stats struct {
	Step           uint64
	Proposals      uint64
	Accepts        uint64
	AcceptanceRate float64
	VertexCounts   [lattice.NumTypes]int
	Energy         float64
	// Volume is the tracked height volume in flip units; the corner
	// height sum is exactly twice this value.
	Volume    int
	HeightSum int
	Beta      float64
}

// Snapshot bundles the lattice state with stats and the originating
// configuration; the cell buffer is a deep copy in the stable code mapping.
type Snapshot struct {
	Config Config
	N      int
	Cells  []byte
	Stats  Stats
}
