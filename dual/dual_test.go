package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidAllison/sixvertex/chain"
	"github.com/DavidAllison/sixvertex/dual"
	"github.com/DavidAllison/sixvertex/flip"
	"github.com/DavidAllison/sixvertex/lattice"
)

// TestNew_Validation covers the driver option errors.
func TestNew_Validation(t *testing.T) {
	w := flip.DefaultWeights()

	_, err := dual.New(6, w, 1, 2, dual.WithTheta(0))
	assert.ErrorIs(t, err, dual.ErrBadTheta)
	_, err = dual.New(6, w, 1, 2, dual.WithTheta(1))
	assert.ErrorIs(t, err, dual.ErrBadTheta)
	_, err = dual.New(6, w, 1, 2, dual.WithHistory(0, 0))
	assert.ErrorIs(t, err, dual.ErrBadHistory)
	_, err = dual.New(6, w, 1, 2, dual.WithHistory(10, 20))
	assert.ErrorIs(t, err, dual.ErrBadHistory)
	_, err = dual.New(1, w, 1, 2)
	assert.ErrorIs(t, err, chain.ErrBadSize)
}

// TestInitialEnvelope: a fresh driver spans the full extremal volume range
// and reports not converged with an empty history.
func TestInitialEnvelope(t *testing.T) {
	d, err := dual.New(6, flip.DefaultWeights(), 111, 222)
	require.NoError(t, err)

	conv := d.Convergence()
	assert.Equal(t, lattice.HighVolume(6), conv.VA)
	assert.Equal(t, lattice.LowVolume(6), conv.VB)
	assert.Equal(t, lattice.HighVolume(6)-lattice.LowVolume(6), conv.VolumeDiff)
	assert.Zero(t, conv.HistoryLen)
	assert.False(t, conv.Converged)
}

// TestCoupling is the dual-driver scenario: the high chain's volume trends
// down, the low chain's trends up, and the smoothed difference eventually
// drops under θ, flipping the verdict, which then holds for a clear
// majority of later checks.
func TestCoupling(t *testing.T) {
	d, err := dual.New(8, flip.DefaultWeights(), 111, 222)
	require.NoError(t, err)

	conv0 := d.Convergence()
	const batch = 200
	var converged bool
	var atBatch int
	for i := 1; i <= 2000; i++ {
		require.NoError(t, d.Advance(batch))
		if d.Convergence().Converged {
			converged, atBatch = true, i
			break
		}
	}
	require.True(t, converged, "the envelopes must meet within the step budget")

	conv := d.Convergence()
	assert.Less(t, conv.VA, conv0.VA, "the high chain trends down")
	assert.Greater(t, conv.VB, conv0.VB, "the low chain trends up")
	assert.Less(t, conv.SmoothedDiff, dual.DefaultTheta)
	assert.Greater(t, conv.VolumeRatio, 1-dual.DefaultTheta)
	assert.GreaterOrEqual(t, conv.HistoryLen, dual.DefaultMinHistory)

	held := 0
	for i := 0; i < 20; i++ {
		require.NoError(t, d.Advance(batch))
		if d.Convergence().Converged {
			held++
		}
	}
	assert.GreaterOrEqual(t, held, 15, "the verdict must hold once coalesced (reached at batch %d)", atBatch)
}

// TestAdvance_Determinism: identical seeds reproduce both chains exactly.
func TestAdvance_Determinism(t *testing.T) {
	build := func() *dual.Driver {
		d, err := dual.New(6, flip.DefaultWeights(), 7, 8)
		require.NoError(t, err)
		return d
	}
	d1, d2 := build(), build()
	require.NoError(t, d1.Advance(5000))
	require.NoError(t, d2.Advance(5000))

	a1, b1 := d1.SnapshotBoth()
	a2, b2 := d2.SnapshotBoth()
	assert.Equal(t, a1.Cells, a2.Cells)
	assert.Equal(t, b1.Cells, b2.Cells)
	assert.Equal(t, d1.Convergence(), d2.Convergence())
}

// TestHistory_RollsOver: the rolling window never exceeds its capacity.
func TestHistory_RollsOver(t *testing.T) {
	d, err := dual.New(4, flip.DefaultWeights(), 1, 2, dual.WithHistory(5, 2))
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		require.NoError(t, d.Advance(10))
		assert.LessOrEqual(t, d.Convergence().HistoryLen, 5)
	}
	assert.Equal(t, 5, d.Convergence().HistoryLen)
}

// TestReset rebuilds the extremal envelope and clears the history.
func TestReset(t *testing.T) {
	d, err := dual.New(6, flip.DefaultWeights(), 3, 4)
	require.NoError(t, err)
	require.NoError(t, d.Advance(3000))
	require.Positive(t, d.Convergence().HistoryLen)

	d.Reset()
	conv := d.Convergence()
	assert.Equal(t, lattice.HighVolume(6), conv.VA)
	assert.Equal(t, lattice.LowVolume(6), conv.VB)
	assert.Zero(t, conv.HistoryLen)
	assert.Equal(t, chain.Idle, d.ChainA().State())
	assert.Equal(t, chain.Idle, d.ChainB().State())
}

// TestUpdateWeights propagates the shared vector to both chains.
func TestUpdateWeights(t *testing.T) {
	d, err := dual.New(6, flip.DefaultWeights(), 3, 4)
	require.NoError(t, err)

	w := flip.Weights{1, 1, 2, 2, 3, 3}
	require.NoError(t, d.UpdateWeights(w))
	assert.Equal(t, w, d.ChainA().Config().Weights)
	assert.Equal(t, w, d.ChainB().Config().Weights)

	assert.Error(t, d.UpdateWeights(flip.Weights{-1, 1, 1, 1, 1, 1}))
}

// TestSnapshotBoth hands out deep copies.
func TestSnapshotBoth(t *testing.T) {
	d, err := dual.New(4, flip.DefaultWeights(), 3, 4)
	require.NoError(t, err)
	a, b := d.SnapshotBoth()
	a.Cells[0] = 99
	b.Cells[0] = 99

	a2, b2 := d.SnapshotBoth()
	assert.NotEqual(t, a.Cells[0], a2.Cells[0])
	assert.NotEqual(t, b.Cells[0], b2.Cells[0])
}
