package plcalc

import (
	"math"
	"testing"

	"github.com/alexshd/plcalc/uncertain"
)

// AssertionConfig contains tolerances for comparing uncertain values.
type AssertionConfig struct {
	// Absolute tolerance on the nominal value
	NominalTolerance float64

	// Absolute tolerance on the standard deviation
	StddevTolerance float64
}

// DefaultAssertionConfig returns tolerances suited to double-precision
// propagation through a handful of operations.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		NominalTolerance: 1e-9,
		StddevTolerance:  1e-9,
	}
}

// AssertValue verifies got matches the expected nominal value and
// standard deviation within cfg tolerances.
func AssertValue(t *testing.T, name string, got uncertain.Value, wantNominal, wantStddev float64, cfg AssertionConfig) {
	t.Helper()

	if !got.Valid() {
		t.Fatalf("%s: not a valid uncertain value: %v", name, got)
	}
	if math.Abs(got.Nominal()-wantNominal) > cfg.NominalTolerance {
		t.Errorf("%s nominal: got %.12g, want %.12g (tol %g)",
			name, got.Nominal(), wantNominal, cfg.NominalTolerance)
	}
	if math.Abs(got.Stddev()-wantStddev) > cfg.StddevTolerance {
		t.Errorf("%s stddev: got %.12g, want %.12g (tol %g)",
			name, got.Stddev(), wantStddev, cfg.StddevTolerance)
	}

	t.Logf("✓ %s = %.6f ± %.6f", name, got.Nominal(), got.Stddev())
}

// AssertPhysicalDistance verifies d is a finite, non-negative distance
// with a finite, non-negative standard deviation.
func AssertPhysicalDistance(t *testing.T, d uncertain.Value) {
	t.Helper()

	n, s := d.Nominal(), d.Stddev()
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		t.Errorf("distance not physical: %v kpc", n)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		t.Errorf("distance stddev not physical: %v kpc", s)
	}
}

// AssertIdempotent calls f twice and verifies both calls give identical
// (nominal, stddev) pairs.
func AssertIdempotent(t *testing.T, name string, f func() (uncertain.Value, error)) {
	t.Helper()

	first, err := f()
	if err != nil {
		t.Fatalf("%s: first call: %v", name, err)
	}
	second, err := f()
	if err != nil {
		t.Fatalf("%s: second call: %v", name, err)
	}

	if first.Nominal() != second.Nominal() || first.Stddev() != second.Stddev() {
		t.Errorf("%s not idempotent: %v then %v", name, first, second)
	}
}
