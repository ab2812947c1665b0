package flip

import (
	"math"

	"github.com/DavidAllison/sixvertex/lattice"
)

// Engine evaluates and executes plaquette flips against a fixed weight
// vector. It holds no lattice state of its own, so one Engine may serve any
// number of lattices with the same weights.
type Engine struct {
	w   Weights
	rho float64
}

// NewEngine validates w and calibrates ρ by enumerating the admissible
// transition table.
func NewEngine(w Weights) (*Engine, error) {
	e := &Engine{}
	if err := e.SetWeights(w); err != nil {
		return nil, err
	}
	return e, nil
}

// SetWeights replaces the weight vector and recalibrates ρ. The previous
// weights stay in force on error.
func (e *Engine) SetWeights(w Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	e.w = w
	e.rho = calibrateRho(w)
	return nil
}

// Weights returns the current weight vector.
func (e *Engine) Weights() Weights { return e.w }

// Rho returns the calibrated scaling constant.
func (e *Engine) Rho() float64 { return e.rho }

// IsFlippable reports whether the 2×2 block of a dir flip anchored at (r,c)
// lies inside the grid and matches an admissible source pattern.
func (e *Engine) IsFlippable(l *lattice.Lattice, r, c int, dir Direction) bool {
	if !inBlockBounds(l.Size(), r, c, dir) {
		return false
	}
	for role := 0; role < numRoles; role++ {
		off := roleOffsets[dir][role]
		if subTable[dir][role][l.At(r+off[0], c+off[1])] == noSub {
			return false
		}
	}
	return true
}

// AcceptProb returns the ρ-scaled heat-bath acceptance probability of the
// dir flip anchored at (r,c): the product of the image cell weights divided
// by ρ. Non-flippable sites yield 0; a zero-weight image type yields 0
// (forbidden transition); a non-finite product is treated as a rejection.
// The ρ calibration guarantees the result lies in [0,1].
func (e *Engine) AcceptProb(l *lattice.Lattice, r, c int, dir Direction) float64 {
	if !e.IsFlippable(l, r, c, dir) || e.rho <= 0 {
		return 0
	}
	p := e.imageProduct(l, r, c, dir) / e.rho
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// imageProduct multiplies the weights of the four image cells. Callers
// guarantee flippability.
func (e *Engine) imageProduct(l *lattice.Lattice, r, c int, dir Direction) float64 {
	p := 1.0
	for role := 0; role < numRoles; role++ {
		off := roleOffsets[dir][role]
		p *= e.w[subTable[dir][role][l.At(r+off[0], c+off[1])]]
	}
	return p
}

// Apply executes the dir flip anchored at (r,c): the four substitutions
// happen in place and the tracked volume moves by −1 (UP) or +1 (DOWN).
// A non-flippable site is a no-op returning ok=false; the lattice is never
// partially mutated.
func (e *Engine) Apply(l *lattice.Lattice, r, c int, dir Direction) (Applied, bool) {
	if !e.IsFlippable(l, r, c, dir) {
		return Applied{}, false
	}
	var quad [4]lattice.QuadCell
	var prev [4]lattice.VertexType
	for role := 0; role < numRoles; role++ {
		off := roleOffsets[dir][role]
		rr, cc := r+off[0], c+off[1]
		prev[role] = l.At(rr, cc)
		quad[role] = lattice.QuadCell{R: rr, C: cc, T: subTable[dir][role][prev[role]]}
	}
	dv := volumeDelta[dir]
	l.ApplyQuad(quad, dv)
	return Applied{Cells: quad, Prev: prev, VolumeDelta: dv}, true
}
