package dual

import "errors"

// Sentinel errors for driver configuration.
var (
	// ErrBadTheta indicates a convergence threshold outside (0,1).
	ErrBadTheta = errors.New("dual: theta must lie strictly between 0 and 1")

	// ErrBadHistory indicates non-positive history bounds or a minimum
	// exceeding the capacity.
	ErrBadHistory = errors.New("dual: history bounds must be positive with min ≤ max")
)

// Defaults for the convergence criterion.
const (
	// DefaultTheta is the recommended convergence threshold.
	DefaultTheta = 0.05
	// DefaultHistoryMax caps the rolling difference history.
	DefaultHistoryMax = 100
	// DefaultMinHistory is the fewest samples a verdict needs.
	DefaultMinHistory = 20
)

// Convergence is a point-in-time coupling measurement.
type Convergence struct {
	// VA and VB are the tracked volumes of the high- and low-started
	// chains, in flip units.
	VA, VB int
	// VolumeDiff is |VA − VB|.
	VolumeDiff int
	// VolumeRatio is min/max of the two volumes.
	VolumeRatio float64
	// NormalizedDiff is VolumeDiff divided by the larger volume.
	NormalizedDiff float64
	// SmoothedDiff is the mean of the rolling normalized-difference
	// history.
	SmoothedDiff float64
	// HistoryLen is the number of samples currently in the history.
	HistoryLen int
	// Converged reports the three-part verdict.
	Converged bool
}
