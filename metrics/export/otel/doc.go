// Package otel provides OpenTelemetry metric exporter bindings for tagpassword
// counters and histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each tagpassword
// counter and Int64ObservableGauge per histogram bucket. A single callback reads
// [tagpassword.Metrics.Snapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate recorder state.
package otel
