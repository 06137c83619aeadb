package tagpassword

import (
	"errors"
	"fmt"
	"testing"

	"github.com/TransitionsAg/tag-password/argon2"
)

// scriptedEngine returns canned results so outcome classification can be tested
// without real hashing.
type scriptedEngine struct {
	hashResult string
	hashErr    error
	verifyErr  error
}

func (s scriptedEngine) Hash(password, salt []byte) (string, error) {
	return s.hashResult, s.hashErr
}

func (s scriptedEngine) Verify(password []byte, encoded string) error {
	return s.verifyErr
}

func TestInstrumentCountsHashSuccess(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})
	engine := Instrument(scriptedEngine{hashResult: "$fake$encoded"}, m)

	hashed, err := Hash(NewPlain("pw"), engine, []byte("somesalt"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hashed.Text() != "$fake$encoded" {
		t.Fatalf("expected pass-through result, got %q", hashed.Text())
	}

	if got := m.Value(MetricHashSuccess); got != 1 {
		t.Fatalf("expected MetricHashSuccess=1, got %d", got)
	}

	snap := m.Snapshot()
	var samples uint64
	for _, v := range snap.Histograms[MetricHashLatency] {
		samples += v
	}
	if samples != 1 {
		t.Fatalf("expected one latency sample, got %d", samples)
	}
}

func TestInstrumentCountsHashFailure(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	engine := Instrument(scriptedEngine{hashErr: errors.New("engine exploded")}, m)

	if _, err := Hash(NewPlain("pw"), engine, []byte("somesalt")); err == nil {
		t.Fatal("expected hash error to propagate")
	}
	if got := m.Value(MetricHashFailure); got != 1 {
		t.Fatalf("expected MetricHashFailure=1, got %d", got)
	}
}

func TestInstrumentClassifiesVerifyOutcomes(t *testing.T) {
	cases := []struct {
		name      string
		verifyErr error
		want      MetricID
	}{
		{name: "success", verifyErr: nil, want: MetricVerifySuccess},
		{name: "mismatch", verifyErr: argon2.ErrMismatch, want: MetricVerifyMismatch},
		{name: "malformed", verifyErr: fmt.Errorf("%w: bad prefix", argon2.ErrMalformedHash), want: MetricVerifyMalformed},
		{name: "unknown error counts as mismatch", verifyErr: errors.New("opaque"), want: MetricVerifyMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMetrics(MetricsConfig{Enabled: true})
			engine := Instrument(scriptedEngine{verifyErr: tc.verifyErr}, m)

			err := Verify(NewHashed("$stored"), engine, NewPlain("candidate"))
			if !errors.Is(err, tc.verifyErr) && !(err == nil && tc.verifyErr == nil) {
				t.Fatalf("expected error to pass through, got %v", err)
			}
			if got := m.Value(tc.want); got != 1 {
				t.Fatalf("expected counter %d to be 1, got %d", tc.want, got)
			}
		})
	}
}

func TestInstrumentNilEngineUsesDefault(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	engine := Instrument(nil, m)

	// Default engine rejects short salts without running argon2, so this stays
	// cheap and still exercises the failure path.
	if _, err := Hash(NewPlain("pw"), engine, []byte("x")); !errors.Is(err, argon2.ErrSaltTooShort) {
		t.Fatalf("expected ErrSaltTooShort from default engine, got %v", err)
	}
	if got := m.Value(MetricHashFailure); got != 1 {
		t.Fatalf("expected MetricHashFailure=1, got %d", got)
	}
}
