// Package observe computes the sampled observables of a six-vertex
// configuration: vertex-type histograms, acceptance rates, energy, and the
// c-vertex density field used by renderers.
//
// What:
//
//   - VertexCounts: 6-bucket histogram over the N·N grid.
//   - AcceptanceRate: accepts/proposals with an empty-history guard.
//   - Energy: −Σ log W[t]·count[t] for the current weight vector.
//   - CDensity: windowed density of c-type vertices for every interior cell
//     at distance ≥ ⌊s/2⌋ from each edge, via an integral image.
//   - FieldStats: mean and standard deviation of a density field.
//
// Why:
//
//   - Observables are pure reads over snapshots; keeping them out of the
//     chain's hot loop lets the host sample at batch boundaries only.
//
// Complexity: VertexCounts and CDensity are O(N²); the rest are O(1) or
// O(len).
//
// Errors:
//
//   - ErrBadKernel: an even, non-positive, or oversized c-density kernel.
package observe
