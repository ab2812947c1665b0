// Package flip implements plaquette-flip detection, weight calibration, and
// execution — the elementary move of the six-vertex Monte Carlo dynamics.
//
// What:
//
//   - A plaquette is a 2×2 block of vertices. An UP flip anchored at (r,c)
//     acts on the block above-right of the anchor; a DOWN flip acts on the
//     block below-left. The flip is the unique involution that reverses the
//     four arrows around the oriented plaquette loop while leaving the
//     block's outer edges untouched.
//   - The admissible source patterns and their images form a fixed finite
//     table (sub tables below); anything else is a silent no-op.
//   - Acceptance follows the ρ-scaled heat-bath rule: a proposed flip in
//     direction d is accepted with probability Π W[image cells]/ρ, where ρ
//     is the maximum image weight product over all admissible transitions
//     (biflip sums included), so every probability lands in [0,1] and
//     detailed balance holds exactly.
//
// Why:
//
//   - Plaquette flips are the only local ice-rule-preserving moves under
//     DWBC, so the table-driven engine is the entire dynamics.
//   - Calibrating ρ once per weight vector turns every proposal into O(1)
//     table lookups and one multiply-compare; there is no per-step search.
//
// Complexity: IsFlippable, AcceptProb, Apply are O(1). Calibration
// evaluates 32 image products (four groups of 2³ side combinations) once
// per SetWeights.
//
// Errors:
//
//   - ErrBadWeight: a negative, NaN, or ±Inf weight at construction.
//
// Out-of-range or non-admissible proposals never error: they report
// non-flippable and leave the lattice untouched, exactly as a rejected
// proposal would.
package flip
