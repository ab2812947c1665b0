// Package rng provides the deterministic uniform stream that drives every
// Markov chain in the simulator.
//
// What:
//
//   - Stream wraps gonum's MT19937 generator behind a tiny draw API:
//     Uint32, Uint64, Float64 (uniform in [0,1)), IntN, Range.
//   - Two Streams built from the same seed produce byte-identical output
//     on every platform; there is no global state and no time-based seeding.
//
// Why:
//
//   - Reproducibility: a simulation run is a pure function of (config, seed),
//     so golden-state tests and cross-process replays are exact.
//   - Coupling: the dual driver must hand each chain its own independent,
//     restartable stream.
//
// Complexity: every draw is O(1); IntN uses rejection sampling and performs
// a second draw with probability at most 2⁻³² for any n ≤ 2³² (the retry
// probability is at most n/2⁶⁴, so below 1/2 for every int bound).
//
// Errors: none. Invalid draw bounds are programmer errors and panic.
package rng
