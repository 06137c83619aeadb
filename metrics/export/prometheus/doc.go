// Package prometheus renders tagpassword metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [tagpassword.Metrics] and exposes an
// [http.Handler] that renders all counters and histograms. Counter names are
// prefixed tagpassword_*_total; the single histogram is
// tagpassword_hash_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate recorder state.
package prometheus
