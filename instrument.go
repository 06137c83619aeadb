package tagpassword

import (
	"errors"
	"time"

	"github.com/TransitionsAg/tag-password/argon2"
)

type instrumentedEngine struct {
	inner   Engine
	metrics *Metrics
}

// Instrument wraps an engine so that every Hash and Verify outcome is counted in m,
// with hash latency observed when histograms are enabled. A nil engine wraps
// [DefaultEngine]. Errors pass through unchanged.
//
// Verify outcomes are classified by the wrapped engine's errors: anything wrapping
// [argon2.ErrMalformedHash] counts as malformed, any other failure as a mismatch.
// Engines with their own error taxonomy can wrap argon2.ErrMalformedHash to keep
// the malformed counter accurate.
func Instrument(engine Engine, m *Metrics) Engine {
	if engine == nil {
		engine = DefaultEngine()
	}
	return instrumentedEngine{inner: engine, metrics: m}
}

func (e instrumentedEngine) Hash(password, salt []byte) (string, error) {
	start := time.Now()
	encoded, err := e.inner.Hash(password, salt)
	if err != nil {
		e.metrics.Inc(MetricHashFailure)
		return "", err
	}

	e.metrics.Inc(MetricHashSuccess)
	e.metrics.Observe(MetricHashLatency, time.Since(start))
	return encoded, nil
}

func (e instrumentedEngine) Verify(password []byte, encoded string) error {
	err := e.inner.Verify(password, encoded)
	switch {
	case err == nil:
		e.metrics.Inc(MetricVerifySuccess)
	case errors.Is(err, argon2.ErrMalformedHash):
		e.metrics.Inc(MetricVerifyMalformed)
	default:
		e.metrics.Inc(MetricVerifyMismatch)
	}
	return err
}
