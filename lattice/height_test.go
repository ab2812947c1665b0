package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeightGrid_N2 pins the full corner surfaces of both N=2 extremal
// states: the high state is the pyramid min(i+j, 2N−i−j), the low state
// the valley |i−j|.
func TestHeightGrid_N2(t *testing.T) {
	hi, err := BuildHigh(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, 2},
		{1, 2, 1},
		{2, 1, 0},
	}, hi.HeightGrid())

	lo, err := BuildLow(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}, lo.HeightGrid())
}

// TestHeightGrid_ClosedForms checks the pyramid/valley shapes for larger
// sides, corner by corner.
func TestHeightGrid_ClosedForms(t *testing.T) {
	for _, n := range []int{3, 5, 8} {
		hi, _ := BuildHigh(n)
		lo, _ := BuildLow(n)
		hGrid, lGrid := hi.HeightGrid(), lo.HeightGrid()
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				wantHi := i + j
				if 2*n-i-j < wantHi {
					wantHi = 2*n - i - j
				}
				wantLo := i - j
				if wantLo < 0 {
					wantLo = -wantLo
				}
				assert.Equal(t, wantHi, hGrid[i][j], "high n=%d corner (%d,%d)", n, i, j)
				assert.Equal(t, wantLo, lGrid[i][j], "low n=%d corner (%d,%d)", n, i, j)
			}
		}
	}
}

// TestHeightGrid_BoundaryProfile verifies the DWBC boundary heights shared
// by every reachable state: 0..N along the top and left, descending back to
// 0 at the far corner.
func TestHeightGrid_BoundaryProfile(t *testing.T) {
	for _, build := range []func(int) (*Lattice, error){BuildHigh, BuildLow} {
		l, err := build(6)
		require.NoError(t, err)
		h := l.HeightGrid()
		for j := 0; j <= 6; j++ {
			assert.Equal(t, j, h[0][j], "top boundary corner %d", j)
			assert.Equal(t, j, h[j][0], "left boundary corner %d", j)
			assert.Equal(t, 6-j, h[6][j], "bottom boundary corner %d", j)
			assert.Equal(t, 6-j, h[j][6], "right boundary corner %d", j)
		}
	}
}

// TestRecomputeVolume repairs a stale counter from a fresh walk.
func TestRecomputeVolume(t *testing.T) {
	l, _ := BuildHigh(4)
	want := l.Volume()
	l.volume = -1
	assert.Equal(t, want, l.RecomputeVolume())
	assert.Equal(t, want, l.Volume())
}
