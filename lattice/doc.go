// Package lattice defines the six-vertex configuration grid, the DWBC
// extremal constructors, and the height-function accounting.
//
// What:
//
//   - VertexType encodes the six ice-rule arrow patterns (a1,a2,b1,b2,c1,c2)
//     as bytes 0..5; the code→type mapping is stable and used by on-disk
//     formats.
//   - Lattice wraps a flat row-major N·N buffer of vertex types plus an
//     incrementally tracked height volume. Edge orientations are never
//     stored: they are derived from vertex types through a fixed arrow
//     table, and the ice rule makes shared edges agree.
//   - BuildHigh and BuildLow construct the two extremal DWBC states; they
//     are the sole entry points for creating fresh configurations.
//   - HeightGrid/HeightSum walk the (N+1)² corner height surface; CheckIce
//     verifies edge agreement across the whole grid plus the DWBC boundary
//     contract.
//
// Why:
//
//   - Keeping only the vertex-type grid canonical eliminates a whole class
//     of vertex/edge consistency bugs and halves memory versus storing
//     redundant edge arrays.
//   - The tracked volume makes the coupling observable O(1) per step; the
//     O(N²) height walk exists for construction and validation only.
//
// Complexity:
//
//   - BuildHigh/BuildLow: O(N²), Memory O(N²).
//   - At/apply: O(1). Snapshot/ResetTo: O(N²).
//   - HeightGrid/HeightSum/CheckIce: O(N²).
//
// Errors:
//
//   - ErrBadSize: requested side is below the 2×2 minimum.
//   - ErrBadBuffer: buffer length or cell codes are invalid.
//   - ErrIceRuleViolated: an interior edge disagreement or a boundary
//     arrow off the DWBC contract.
package lattice
