// Package plcalc computes distances to pulsating variable stars from
// period-luminosity (PL) relations.
//
// # Overview
//
// A Cepheid or RR Lyrae star's pulsation period fixes its absolute
// magnitude. Comparing that with the observed apparent magnitude, after
// correcting for interstellar extinction, gives the distance. plcalc chains
// three evaluators and carries the measurement uncertainty through each one:
//
//	period ──► PL relation ──► M ─┐
//	E(B−V) ──► extinction   ──► A ─┼──► distance modulus ──► d (kpc)
//	m ────────────────────────────┘
//
// # Architecture
//
// The package components:
//
//   - relation.go   - PL relations for V, J, H, K (AbsoluteMagnitude)
//   - extinction.go - A_λ / E(B−V) ratios (Extinction)
//   - distance.go   - Distance modulus solver (Distance)
//   - calc.go       - Orchestration and report (Solve, Calc)
//   - uncertain/    - Correlated first-order error propagation
//   - assertions.go - Test helpers for distance properties
//
// # Quick Start
//
//	m := uncertain.New(15.0, 0.1)   // apparent K magnitude
//	ebv := uncertain.New(0.1, 0.01) // colour excess
//
//	d, err := plcalc.Calc(10.0, m, ebv, plcalc.K, plcalc.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With the default config Calc prints:
//
//	Pulsation Period = 10.0 days
//	Apparent K-Band Magnitude = 15.00+-0.10 mag
//	Absolute K-Band Magnitude = -3.52+-0.02 mag
//	Distance = 49.7+-2.3 kpc
//
// Use Solve to get every intermediate quantity without side effects.
//
// # PL Relations
//
// Near-infrared relations from Matsunaga et al. (2006), pivoted at
// log10 P = 1.2:
//
//	M_J = (−2.23±0.05)·(log10 P − 1.2) − (3.54±0.03)
//	M_H = (−2.34±0.05)·(log10 P − 1.2) − (3.94±0.02)
//	M_K = (−2.41±0.05)·(log10 P − 1.2) − (4.00±0.02)
//
// Visual relation from Alcock et al. (1998):
//
//	M_V = (2.54±0.48) − (3.91±0.36)·log10 P
//
// # Extinction
//
//	A_λ = R_λ · E(B−V)
//
//	R_J = 0.866, R_H = 0.565, R_K = 0.365, R_V = 3.086
//
// # Distance Modulus
//
//	m − M − A = 5·log10(d / 10 pc)
//	d = 10^((m − M − A)/5 + 1) / 1000 kpc
//
// # Errors
//
// All failures are returned, never printed:
//
//   - ErrInvalidArgument - m or E(B−V) is not a valid uncertain value
//   - ErrUnsupportedBand - band outside V, J, H, K
//   - ErrDomain          - period ≤ 0 or not finite
//
// Check them with errors.Is.
package plcalc
