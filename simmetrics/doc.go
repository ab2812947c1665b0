// Package simmetrics exposes chain and dual-driver statistics as
// Prometheus collectors.
//
// The instruments are fed from the stats snapshots (HeightSum, Beta, and
// the dual VolumeDiff/NormalizedDiff fields are not published): hosts call
// Observe with a fresh snapshot at batch boundaries, so the hot loop never
// touches a metric. Every constructor takes a prometheus.Registerer; pass a custom
// registry to keep simulators isolated, or prometheus.DefaultRegisterer for
// the usual process-wide surface.
package simmetrics
