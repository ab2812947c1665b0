package observe

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/DavidAllison/sixvertex/flip"
	"github.com/DavidAllison/sixvertex/lattice"
)

// ErrBadKernel indicates a c-density kernel size that is not a positive odd
// integer fitting inside the lattice.
var ErrBadKernel = errors.New("observe: kernel size must be a positive odd integer no larger than the lattice side")

// VertexCounts returns the 6-bucket vertex-type histogram of l, indexed by
// the stable vertex codes.
func VertexCounts(l *lattice.Lattice) [lattice.NumTypes]int {
	var counts [lattice.NumTypes]int
	n := l.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			counts[l.At(r, c)]++
		}
	}
	return counts
}

// AcceptanceRate returns accepts/proposals, or 0 before the first proposal.
func AcceptanceRate(accepts, proposals uint64) float64 {
	if proposals == 0 {
		return 0
	}
	return float64(accepts) / float64(proposals)
}

// Energy returns −Σ log W[t]·count[t]. A zero weight on a populated type
// yields +Inf, matching the Boltzmann picture of a forbidden configuration.
func Energy(counts [lattice.NumTypes]int, w flip.Weights) float64 {
	e := 0.0
	for t, n := range counts {
		if n == 0 {
			continue
		}
		e -= float64(n) * math.Log(w[t])
	}
	return e
}

// CDensity computes the c-vertex density field for kernel size s (odd):
// for every cell at distance ≥ ⌊s/2⌋ from each edge, the fraction of c1/c2
// vertices in the s×s window centered there. The result has side
// N−2⌊s/2⌋. Built on an integral image, so the whole field is O(N²).
func CDensity(l *lattice.Lattice, s int) ([][]float64, error) {
	n := l.Size()
	if s < 1 || s%2 == 0 || s > n {
		return nil, ErrBadKernel
	}
	// integral[r][c] = number of c-vertices in the rectangle [0,r)×[0,c).
	integral := make([][]int, n+1)
	integral[0] = make([]int, n+1)
	for r := 0; r < n; r++ {
		integral[r+1] = make([]int, n+1)
		for c := 0; c < n; c++ {
			cell := 0
			if l.At(r, c).IsC() {
				cell = 1
			}
			integral[r+1][c+1] = cell + integral[r][c+1] + integral[r+1][c] - integral[r][c]
		}
	}
	half := s / 2
	side := n - 2*half
	area := float64(s * s)
	field := make([][]float64, side)
	for i := 0; i < side; i++ {
		field[i] = make([]float64, side)
		r := i + half
		for j := 0; j < side; j++ {
			c := j + half
			count := integral[r+half+1][c+half+1] - integral[r-half][c+half+1] -
				integral[r+half+1][c-half] + integral[r-half][c-half]
			field[i][j] = float64(count) / area
		}
	}
	return field, nil
}

// FieldStats returns the mean and standard deviation of a density field.
func FieldStats(field [][]float64) (mean, std float64) {
	var flat []float64
	for _, row := range field {
		flat = append(flat, row...)
	}
	if len(flat) == 0 {
		return 0, 0
	}
	if len(flat) == 1 {
		return flat[0], 0
	}
	return stat.MeanStdDev(flat, nil)
}
