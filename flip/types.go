package flip

import (
	"errors"
	"math"

	"github.com/DavidAllison/sixvertex/lattice"
)

// Sentinel errors for engine construction.
var (
	// ErrBadWeight indicates a vertex weight that is negative, NaN, or
	// infinite.
	ErrBadWeight = errors.New("flip: vertex weights must be non-negative and finite")
)

// Direction selects the plaquette orientation of a proposed flip.
type Direction int

const (
	// Up flips the 2×2 block whose lower-left vertex is the anchor.
	Up Direction = iota
	// Down flips the 2×2 block whose upper-right vertex is the anchor.
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Weights assigns a non-negative Boltzmann weight to each vertex type, indexed
// by the stable vertex codes (0=a1 .. 5=c2).
type Weights [lattice.NumTypes]float64

// DefaultWeights returns the free-fermion-symmetric unit weights.
func DefaultWeights() Weights {
	return Weights{1, 1, 1, 1, 1, 1}
}

// Validate rejects weights that are negative, NaN, or infinite. A weight of
// exactly zero is legal and forbids every flip whose image contains that
// type: the image weight product vanishes, so the proposal is always
// rejected.
func (w Weights) Validate() error {
	for _, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadWeight
		}
	}
	return nil
}

// Applied records the outcome of an executed flip for downstream consumers
// (incremental observables, renderers).
type Applied struct {
	// Cells holds the four rewritten cells with their new types.
	Cells [4]lattice.QuadCell
	// Prev holds the source types of the same four cells, in role order.
	Prev [4]lattice.VertexType
	// VolumeDelta is −1 for UP, +1 for DOWN.
	VolumeDelta int
}
