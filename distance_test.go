package plcalc

import (
	"math"
	"testing"

	"github.com/alexshd/plcalc/uncertain"
)

func TestDistance_TenParsecs(t *testing.T) {
	// m − M = 0 puts the star at 10 pc.
	m := uncertain.New(5, 0.1)
	M := uncertain.Exact(5)
	A := uncertain.Exact(0)

	d := Distance(m, M, A)
	want := 0.01
	AssertValue(t, "d", d, want, want*math.Ln10/5*0.1, DefaultAssertionConfig())
}

func TestDistance_Modulus(t *testing.T) {
	m := uncertain.New(15, 0.1)
	M := uncertain.New(-3.5, 0.02)
	A := uncertain.New(0.04, 0.004)

	mu := DistanceModulus(m, M, A)
	AssertValue(t, "μ", mu, 18.46, math.Sqrt(0.01+0.0004+0.000016), DefaultAssertionConfig())

	// Each five magnitudes of modulus is a factor of ten in distance.
	near := Distance(m, M, A)
	far := Distance(m.AddFloat(5), M, A)
	if r := far.Nominal() / near.Nominal(); math.Abs(r-10) > 1e-9 {
		t.Errorf("distance ratio for Δμ=5: got %v, want 10", r)
	}
}

// TestDistance_SharedSource checks the correlated model: the same source in
// m and A cancels partially instead of adding in quadrature.
func TestDistance_SharedSource(t *testing.T) {
	x := uncertain.New(1, 0.1)
	m := x.AddFloat(14)
	A := x.Scale(0.5)
	M := uncertain.Exact(-4)

	mu := DistanceModulus(m, M, A)
	if math.Abs(mu.Stddev()-0.05) > 1e-15 {
		t.Errorf("μ stddev: got %v, want 0.05", mu.Stddev())
	}
}
