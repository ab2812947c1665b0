package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshot_DeepCopy verifies snapshots never alias the live buffer.
func TestSnapshot_DeepCopy(t *testing.T) {
	l, err := BuildHigh(4)
	require.NoError(t, err)

	snap := l.Snapshot()
	require.Len(t, snap, 16)
	snap[0] = byte(C1)
	assert.Equal(t, B1, l.At(0, 0), "mutating a snapshot must not touch the lattice")
}

// TestFromBuffer_Roundtrip verifies Snapshot → FromBuffer reproduces the
// configuration and its volume.
func TestFromBuffer_Roundtrip(t *testing.T) {
	for n := 2; n <= 8; n++ {
		src, err := BuildLow(n)
		require.NoError(t, err)
		back, err := FromBuffer(n, src.Snapshot())
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, src.Snapshot(), back.Snapshot(), "n=%d", n)
		assert.Equal(t, src.Volume(), back.Volume(), "n=%d", n)
	}
}

// TestFromBuffer_Errors rejects malformed buffers.
func TestFromBuffer_Errors(t *testing.T) {
	hi, _ := BuildHigh(3)
	good := hi.Snapshot()

	cases := []struct {
		name string
		n    int
		buf  []byte
		err  error
	}{
		{"TooSmallSide", 1, []byte{0}, ErrBadSize},
		{"ShortBuffer", 3, good[:8], ErrBadBuffer},
		{"LongBuffer", 3, append(append([]byte{}, good...), 0), ErrBadBuffer},
		{"InvalidCode", 3, func() []byte {
			b := append([]byte{}, good...)
			b[4] = 6
			return b
		}(), ErrBadBuffer},
		{"IceBroken", 3, func() []byte {
			// Swapping one b1 for its mirror b2 flips all four of its
			// arrows and must break a shared edge.
			b := append([]byte{}, good...)
			b[0] = byte(B2)
			return b
		}(), ErrIceRuleViolated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromBuffer(tc.n, tc.buf)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestResetTo verifies full-state replacement rederives the volume and
// rejects invalid buffers without touching the current state.
func TestResetTo(t *testing.T) {
	l, _ := BuildHigh(4)
	lo, _ := BuildLow(4)

	require.NoError(t, l.ResetTo(lo.Snapshot()))
	assert.Equal(t, lo.Snapshot(), l.Snapshot())
	assert.Equal(t, LowVolume(4), l.Volume())

	bad := lo.Snapshot()
	bad[3] = 200
	assert.ErrorIs(t, l.ResetTo(bad), ErrBadBuffer)
	assert.Equal(t, lo.Snapshot(), l.Snapshot(), "failed reset must leave the state untouched")
}

// TestClone_Independence verifies clones share nothing.
func TestClone_Independence(t *testing.T) {
	l, _ := BuildLow(4)
	cp := l.Clone()

	l.ApplyQuad([4]QuadCell{
		{R: 0, C: 1, T: C2}, {R: 0, C: 0, T: B1}, {R: 1, C: 0, T: C2}, {R: 1, C: 1, T: B2},
	}, 1)
	assert.NotEqual(t, cp.Snapshot(), l.Snapshot())
	assert.Equal(t, LowVolume(4), cp.Volume(), "clone keeps its own volume")
}

// TestApplyQuad_VolumeTracking verifies the incremental counter follows dv.
func TestApplyQuad_VolumeTracking(t *testing.T) {
	l, _ := BuildHigh(2)
	v0 := l.Volume()
	// The unique N=2 move: high → low, volume down by one.
	l.ApplyQuad([4]QuadCell{
		{R: 1, C: 0, T: A2}, {R: 1, C: 1, T: C2}, {R: 0, C: 1, T: A1}, {R: 0, C: 0, T: C2},
	}, -1)
	assert.Equal(t, v0-1, l.Volume())
	assert.Equal(t, l.HeightSum()/2, l.Volume(), "tracked volume must agree with a fresh walk")
	assert.NoError(t, l.CheckIce())
}

// TestInBounds exercises the boundary predicate.
func TestInBounds(t *testing.T) {
	l, _ := BuildHigh(3)
	for _, rc := range [][2]int{{0, 0}, {2, 2}, {1, 2}} {
		assert.True(t, l.InBounds(rc[0], rc[1]), "(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		assert.False(t, l.InBounds(rc[0], rc[1]), "(%d,%d)", rc[0], rc[1])
	}
	assert.Panics(t, func() { l.At(3, 0) })
}
