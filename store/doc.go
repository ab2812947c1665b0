// Package store persists chain snapshots in a stable, layout-independent
// binary format and keeps them in an embedded bbolt database.
//
// What:
//
//   - Marshal/Unmarshal: a versioned big-endian record holding the
//     length-prefixed lattice byte string (stable vertex codes 0..5), the
//     configuration options, and the counter stats. Derived stats
//     (histogram, acceptance rate, energy) are recomputed on load rather
//     than trusted from disk.
//   - Fingerprint: SHA3-256 over the encoded record; stored alongside each
//     snapshot and verified on load.
//   - Store: named chain and dual snapshots in bbolt buckets, one
//     read-write transaction per save.
//
// Why:
//
//   - §external contract: persisted records must not depend on the core's
//     internal memory layout, so the codec writes only the public snapshot
//     surface.
//   - Fingerprints catch silent on-disk corruption before a damaged buffer
//     can reach a lattice.
//
// Errors:
//
//   - ErrNotFound: no snapshot under the requested name.
//   - ErrCorrupt: bad magic, truncated record, fingerprint mismatch, or a
//     buffer that fails lattice validation.
package store
