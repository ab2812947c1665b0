// Package chain runs a single six-vertex Markov chain: it owns a lattice,
// a flip engine, and a seeded random stream, and advances them one
// heat-bath proposal at a time.
//
// What:
//
//   - Config + Validate: size, initial DWBC state, weights, seed, batching
//     hint, optional β tag for downstream stats.
//   - Step is the elementary Markov operation: draw a cell, test both flip
//     directions, and accept with the ρ-scaled heat-bath probabilities
//     (biflip sites use sequential thresholds: u < pUp → UP, else
//     u < pUp+pDn → DOWN, else reject).
//   - Run(n) is a tight synchronous loop with no per-step event emission;
//     hosts chunk long runs into batches and read snapshots in between.
//   - Pause/Resume/Reset drive the Idle → Running ↔ Paused state machine;
//     an ice-rule violation after an accepted flip latches the chain into
//     Halted (a code bug, not a user error — drop the chain).
//
// Conventions (documented resolutions of ambiguous upstream behavior):
//
//   - The step index counts every Step call; a draw landing on a site with
//     no admissible direction does NOT count as a proposal.
//   - UpdateWeights recalibrates ρ but never resets counters; ResetStats
//     clears the proposal/accept tallies separately.
//
// Complexity: Step is O(1); Run(n) is O(n); snapshots are O(N²).
//
// Errors:
//
//   - ErrBadSize, ErrBadInitial, ErrBadBatch: rejected configurations.
//   - ErrPaused: Step/Run on a paused chain.
//   - ErrHalted: Step/Run on a chain that latched an ice-rule violation;
//     the wrapped cause is lattice.ErrIceRuleViolated.
package chain
