package rng

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source is the minimal deterministic generator contract a Stream needs.
// gonum's mathext/prng generators satisfy it directly.
type Source interface {
	Seed(seed uint64)
	Uint64() uint64
}

// Stream is a seeded deterministic uniform stream. The zero value is not
// usable; construct with New or FromSource.
type Stream struct {
	src Source
}

// New returns a Stream over an MT19937 generator seeded with seed.
// Identical seeds yield identical draw sequences.
func New(seed uint64) *Stream {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return &Stream{src: mt}
}

// FromSource wraps an externally constructed Source. The caller must have
// seeded it already.
func FromSource(src Source) *Stream {
	return &Stream{src: src}
}

// Reseed resets the underlying generator to the state implied by seed,
// discarding all prior stream position.
func (s *Stream) Reseed(seed uint64) {
	s.src.Seed(seed)
}

// Uint64 draws a uniform 64-bit value.
func (s *Stream) Uint64() uint64 {
	return s.src.Uint64()
}

// Uint32 draws a uniform 32-bit value from the high half of one 64-bit draw.
func (s *Stream) Uint32() uint32 {
	return uint32(s.src.Uint64() >> 32)
}

// Float64 draws a uniform value in [0,1) with 53 bits of precision.
func (s *Stream) Float64() float64 {
	return float64(s.src.Uint64()>>11) / (1 << 53)
}

// IntN draws a uniform integer in [0,n). Panics if n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN bound must be positive")
	}
	// Rejection sampling keeps the draw exactly uniform; the retry
	// probability is ((2^64−1) mod n + 1) / 2^64.
	un := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%un
	for {
		v := s.src.Uint64()
		if v < limit {
			return int(v % un)
		}
	}
}

// Range draws a uniform integer in [lo,hi). Panics if hi <= lo.
func (s *Stream) Range(lo, hi int) int {
	if hi <= lo {
		panic("rng: Range bounds must satisfy lo < hi")
	}
	return lo + s.IntN(hi-lo)
}
