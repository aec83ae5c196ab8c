package plcalc

import (
	"fmt"
	"math"

	"github.com/alexshd/plcalc/uncertain"
)

// Relation is an empirical period-luminosity relation
//
//	M = Slope·(log10 P − Pivot) + Intercept
//
// Slope and Intercept carry their calibration uncertainty. Every Relation
// returned by RelationFor or Relations holds fresh error sources, so two
// evaluations from separate lookups are independent.
type Relation struct {
	Band      Band
	Slope     uncertain.Value
	Pivot     float64
	Intercept uncertain.Value
	Reference string
}

// Eval returns the absolute magnitude for log10 of the period.
func (r Relation) Eval(logP float64) uncertain.Value {
	return r.Slope.Scale(logP - r.Pivot).Add(r.Intercept)
}

// calibration is one row of the coefficient table, kept as plain numbers.
type calibration struct {
	slope, slopeErr         float64
	pivot                   float64
	intercept, interceptErr float64
	reference               string
}

var calibrations = map[Band]calibration{
	J: {-2.23, 0.05, 1.2, -3.54, 0.03, "Matsunaga et al. (2006)"},
	H: {-2.34, 0.05, 1.2, -3.94, 0.02, "Matsunaga et al. (2006)"},
	K: {-2.41, 0.05, 1.2, -4.00, 0.02, "Matsunaga et al. (2006)"},
	V: {-3.91, 0.36, 0, 2.54, 0.48, "Alcock et al. (1998)"},
}

func (c calibration) relation(band Band) Relation {
	return Relation{
		Band:      band,
		Slope:     uncertain.New(c.slope, c.slopeErr),
		Pivot:     c.pivot,
		Intercept: uncertain.New(c.intercept, c.interceptErr),
		Reference: c.reference,
	}
}

// RelationFor returns the PL relation calibrated for band.
func RelationFor(band Band) (Relation, error) {
	c, ok := calibrations[band]
	if !ok {
		return Relation{}, fmt.Errorf("PL relation for %q: %w", string(band), ErrUnsupportedBand)
	}
	return c.relation(band), nil
}

// Relations returns every PL relation in evaluation order (J, H, K, V).
func Relations() []Relation {
	out := make([]Relation, 0, len(Bands))
	for _, b := range Bands {
		out = append(out, calibrations[b].relation(b))
	}
	return out
}

// AbsoluteMagnitude evaluates the PL relation for band at period (days).
func AbsoluteMagnitude(period float64, band Band) (uncertain.Value, error) {
	if err := checkPeriod(period); err != nil {
		return uncertain.Value{}, err
	}
	r, err := RelationFor(band)
	if err != nil {
		return uncertain.Value{}, err
	}
	return r.Eval(math.Log10(period)), nil
}

func checkPeriod(period float64) error {
	if math.IsNaN(period) || math.IsInf(period, 0) || period <= 0 {
		return fmt.Errorf("period %v days: must be positive and finite: %w", period, ErrDomain)
	}
	return nil
}
