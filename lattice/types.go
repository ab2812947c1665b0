package lattice

import "errors"

// Sentinel errors for lattice construction and validation.
var (
	// ErrBadSize indicates a lattice side below the 2×2 minimum.
	ErrBadSize = errors.New("lattice: side must be at least 2")

	// ErrBadBuffer indicates a state buffer of wrong length or with a
	// byte outside the six valid vertex codes.
	ErrBadBuffer = errors.New("lattice: invalid state buffer")

	// ErrIceRuleViolated indicates an interior edge disagreement or a
	// boundary arrow off the DWBC contract.
	ErrIceRuleViolated = errors.New("lattice: ice rule violated")
)

// VertexType is one of the six ice-rule arrow patterns. The byte values are
// the stable on-disk codes: 0=a1, 1=a2, 2=b1, 3=b2, 4=c1, 5=c2.
type VertexType byte

const (
	A1 VertexType = iota
	A2
	B1
	B2
	C1
	C2

	// NumTypes is the size of the closed vertex-type set.
	NumTypes = 6
)

var typeNames = [NumTypes]string{"a1", "a2", "b1", "b2", "c1", "c2"}

// String returns the conventional physics name of the vertex type.
func (t VertexType) String() string {
	if t >= NumTypes {
		return "invalid"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the six vertex codes.
func (t VertexType) Valid() bool {
	return t < NumTypes
}

// IsC reports whether t is one of the two c-type (corner) vertices.
func (t VertexType) IsC() bool {
	return t == C1 || t == C2
}

// HDir is the absolute direction of a horizontal edge arrow.
type HDir bool

const (
	// Left-pointing horizontal arrow.
	Left HDir = false
	// Right-pointing horizontal arrow.
	Right HDir = true
)

// VDir is the absolute direction of a vertical edge arrow.
type VDir bool

const (
	// Down-pointing vertical arrow.
	Down VDir = false
	// Up-pointing vertical arrow.
	Up VDir = true
)

// Arrows is the fixed arrow configuration on the four edges incident to a
// vertex, in absolute directions.
type Arrows struct {
	L, R HDir
	T, B VDir
}

// arrowTable is the sole source of truth for edge orientation inside a
// vertex. Each row satisfies the ice rule (two arrows in, two out) and the
// six rows exhaust the six in/out patterns. The assignment is the unique one
// under which the DWBC High placement (b1 / c2 anti-diagonal / b2) and Low
// placement (a1 / c2 main diagonal / a2) are both globally edge-consistent.
var arrowTable = [NumTypes]Arrows{
	A1: {L: Left, R: Left, T: Up, B: Up},
	A2: {L: Right, R: Right, T: Down, B: Down},
	B1: {L: Right, R: Right, T: Up, B: Up},
	B2: {L: Left, R: Left, T: Down, B: Down},
	C1: {L: Left, R: Right, T: Down, B: Up},
	C2: {L: Right, R: Left, T: Up, B: Down},
}

// ArrowsOf returns the fixed arrow configuration of t.
// Panics on an invalid code; vertex types inside a Lattice are always valid.
func ArrowsOf(t VertexType) Arrows {
	if !t.Valid() {
		panic("lattice: invalid vertex type")
	}
	return arrowTable[t]
}
