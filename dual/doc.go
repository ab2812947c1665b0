// Package dual coordinates two independent chains started from the two
// extremal DWBC states and measures their height-function coincidence — a
// heuristic coupling-from-the-past convergence certificate.
//
// What:
//
//   - Driver owns chain A (DWBC high) and chain B (DWBC low) with shared
//     size and weights but distinct seeds.
//   - Advance(k) steps both chains in lockstep and appends one normalized
//     volume-difference sample to a rolling history (capacity HistoryMax).
//   - Convergence reports V_A, V_B, their difference, ratio, normalized
//     difference, the history-smoothed difference, and the verdict:
//     converged iff ratio > 1−θ, smoothed difference < θ, and the history
//     holds at least MinHistory samples.
//
// Why:
//
//   - The DWBC coupling sandwiches every intermediate chain's volume
//     between the two extremal envelopes; once the envelopes coincide in
//     the smoothed sense, every coupled chain has coalesced.
//
// Concurrency: the two chains share no mutable state; Advance steps them
// sequentially, which is sufficient. The history is single-writer, owned by
// the driver.
//
// Errors:
//
//   - ErrBadTheta: a convergence threshold outside (0,1).
//   - ErrBadHistory: non-positive history bounds or MinHistory above
//     HistoryMax.
//   - Chain construction and stepping errors surface unchanged.
package dual
