package plcalc

import "github.com/alexshd/plcalc/uncertain"

// DistanceModulus returns the extinction-corrected distance modulus
// μ = m − M − A.
func DistanceModulus(m, M, A uncertain.Value) uncertain.Value {
	return m.Sub(M).Sub(A)
}

// Distance solves m − M − A = 5·log10(d / 10 pc) for d and returns it in
// kiloparsecs:
//
//	d = 10^((m − M − A)/5 + 1) / 1000
func Distance(m, M, A uncertain.Value) uncertain.Value {
	mu := DistanceModulus(m, M, A)
	return uncertain.Exp10(mu.Scale(0.2).AddFloat(1)).Scale(1e-3)
}
