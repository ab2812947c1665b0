package lattice

import "fmt"

// Lattice is a dense N×N grid of vertex-type codes in row-major order plus
// an incrementally tracked height volume. It is mutated only through
// ApplyQuad (driven by the flip engine) and ResetTo; external collaborators
// read deep-copied snapshots.
type Lattice struct {
	n      int
	cells  []VertexType
	volume int
}

// fromCells adopts cells (already validated, length n·n) and derives the
// tracked volume from a full height walk.
func fromCells(n int, cells []VertexType) *Lattice {
	l := &Lattice{n: n, cells: cells}
	l.volume = l.HeightSum() / 2
	return l
}

// FromBuffer builds a Lattice from a flat byte buffer in the stable code
// mapping. The buffer is copied, validated for shape, cell codes, ice rule,
// and the DWBC boundary contract.
func FromBuffer(n int, buf []byte) (*Lattice, error) {
	if n < 2 {
		return nil, ErrBadSize
	}
	if len(buf) != n*n {
		return nil, fmt.Errorf("lattice: buffer length %d for side %d: %w", len(buf), n, ErrBadBuffer)
	}
	cells := make([]VertexType, n*n)
	for i, b := range buf {
		t := VertexType(b)
		if !t.Valid() {
			return nil, fmt.Errorf("lattice: cell %d holds code %d: %w", i, b, ErrBadBuffer)
		}
		cells[i] = t
	}
	l := fromCells(n, cells)
	if err := l.CheckIce(); err != nil {
		return nil, err
	}
	return l, nil
}

// Size returns the lattice side N.
func (l *Lattice) Size() int { return l.n }

// At returns the vertex type at row r, column c. Panics out of bounds;
// all callers draw coordinates inside the grid.
func (l *Lattice) At(r, c int) VertexType {
	if !l.InBounds(r, c) {
		panic(fmt.Sprintf("lattice: At(%d,%d) out of bounds for side %d", r, c, l.n))
	}
	return l.cells[r*l.n+c]
}

// InBounds reports whether (r,c) addresses a cell of the grid.
func (l *Lattice) InBounds(r, c int) bool {
	return r >= 0 && r < l.n && c >= 0 && c < l.n
}

// Volume returns the tracked height volume in flip units: every accepted
// plaquette flip moves it by exactly ±1. The corner height sum equals twice
// this value.
func (l *Lattice) Volume() int { return l.volume }

// QuadCell names one cell of a 2×2 update.
type QuadCell struct {
	R, C int
	T    VertexType
}

// ApplyQuad atomically replaces the four cells of a plaquette and adjusts
// the tracked volume by dv. It is the only mutation path besides ResetTo;
// the flip engine guarantees the replacement preserves the ice rule and
// touches nothing outside the 2×2 block.
func (l *Lattice) ApplyQuad(quad [4]QuadCell, dv int) {
	for _, q := range quad {
		if !l.InBounds(q.R, q.C) {
			panic(fmt.Sprintf("lattice: ApplyQuad cell (%d,%d) out of bounds", q.R, q.C))
		}
	}
	for _, q := range quad {
		l.cells[q.R*l.n+q.C] = q.T
	}
	l.volume += dv
}

// Snapshot returns a deep copy of the state buffer in the stable code
// mapping. The returned slice is never aliased to the live array.
func (l *Lattice) Snapshot() []byte {
	buf := make([]byte, len(l.cells))
	for i, t := range l.cells {
		buf[i] = byte(t)
	}
	return buf
}

// Clone returns an independent deep copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	cells := make([]VertexType, len(l.cells))
	copy(cells, l.cells)
	return &Lattice{n: l.n, cells: cells, volume: l.volume}
}

// ResetTo replaces the whole state with buf (validated like FromBuffer,
// same side) and rederives the tracked volume.
func (l *Lattice) ResetTo(buf []byte) error {
	fresh, err := FromBuffer(l.n, buf)
	if err != nil {
		return err
	}
	l.cells = fresh.cells
	l.volume = fresh.volume
	return nil
}

// RecomputeVolume rederives the tracked volume from a full height walk and
// returns it, repairing a stale counter. ResetTo and FromBuffer derive the
// volume from the same walk on their own; the hot path relies on the
// incremental counter instead.
func (l *Lattice) RecomputeVolume() int {
	l.volume = l.HeightSum() / 2
	return l.volume
}
