package internaldefs

import (
	tagpassword "github.com/TransitionsAg/tag-password"
)

// CounterDef maps one tagpassword counter to its exported name and help text.
type CounterDef struct {
	ID   tagpassword.MetricID
	Name string
	Help string
}

// HistogramDef maps one tagpassword histogram to its exported name and help text.
type HistogramDef struct {
	ID   tagpassword.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in a fixed, stable order.
var CounterDefs = []CounterDef{
	{ID: tagpassword.MetricHashSuccess, Name: "tagpassword_hash_success_total", Help: "Hash operations that produced an encoded hash."},
	{ID: tagpassword.MetricHashFailure, Name: "tagpassword_hash_failure_total", Help: "Hash operations rejected by the engine."},
	{ID: tagpassword.MetricVerifySuccess, Name: "tagpassword_verify_success_total", Help: "Verifications where the candidate password matched."},
	{ID: tagpassword.MetricVerifyMismatch, Name: "tagpassword_verify_mismatch_total", Help: "Verifications where the candidate password did not match."},
	{ID: tagpassword.MetricVerifyMalformed, Name: "tagpassword_verify_malformed_total", Help: "Verifications rejected because the stored hash was unparseable."},
}

// HistogramDefs lists every exported histogram in a fixed, stable order.
var HistogramDefs = []HistogramDef{
	{ID: tagpassword.MetricHashLatency, Name: "tagpassword_hash_latency_seconds", Help: "Hash operation latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, matching the core's
// millisecond buckets.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are bound labels usable inside instrument names.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into Prometheus-style cumulative
// counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
