// Package uncertain implements numbers with a standard deviation that is
// propagated through arithmetic under a first-order (linear) error model.
//
// Every call to New creates an independent error source. Derived values keep
// their partial derivatives with respect to those sources, so two values that
// share a source are correlated:
//
//	x := uncertain.New(2.0, 0.1)
//	x.Sub(x)      // 0+/-0, not 0+/-0.14
//	x.Mul(x)      // same as x.PowFloat(2)
//
// The standard deviation of a value v is
//
//	σ(v) = sqrt( Σᵢ (∂v/∂xᵢ · σᵢ)² )
//
// which reduces to the usual formulas for independent operands:
// σ(a±b) = sqrt(σa²+σb²), σ(a·b) ≈ |a·b|·sqrt((σa/a)²+(σb/b)²),
// σ(log10 a) = σa/(a·ln10).
//
// Values are immutable and safe for concurrent use.
package uncertain

import (
	"errors"
	"math"
	"strconv"
	"sync/atomic"
)

// ErrInvalid reports a value that is not a usable uncertain value.
var ErrInvalid = errors.New("invalid uncertain value")

// nextID numbers error sources in creation order.
var nextID atomic.Uint64

// source is one independent error source.
type source struct {
	id     uint64
	stddev float64
}

// term is the partial derivative of a value with respect to one source.
type term struct {
	src   *source
	deriv float64
}

// Value is a nominal value with first-order uncertainty.
//
// The zero Value is not valid: use New or Exact.
type Value struct {
	nominal float64
	terms   []term // sorted by src.id, no duplicates
	set     bool
}

// New returns a value with its own independent error source.
func New(nominal, stddev float64) Value {
	v := Value{nominal: nominal, set: true}
	if stddev != 0 {
		v.terms = []term{{
			src:   &source{id: nextID.Add(1), stddev: stddev},
			deriv: 1,
		}}
	}
	return v
}

// Exact returns a value with no uncertainty.
func Exact(nominal float64) Value {
	return Value{nominal: nominal, set: true}
}

// Nominal returns the nominal value.
func (v Value) Nominal() float64 { return v.nominal }

// Stddev returns the propagated standard deviation.
func (v Value) Stddev() float64 {
	return math.Sqrt(v.variance())
}

func (v Value) variance() float64 {
	var sum float64
	for _, t := range v.terms {
		c := t.deriv * t.src.stddev
		sum += c * c
	}
	return sum
}

// Valid reports whether v was constructed by this package and carries a
// finite nominal value and a finite, non-negative standard deviation.
func (v Value) Valid() bool {
	if !v.set || math.IsNaN(v.nominal) || math.IsInf(v.nominal, 0) {
		return false
	}
	for _, t := range v.terms {
		if t.src.stddev < 0 || math.IsNaN(t.src.stddev) || math.IsInf(t.src.stddev, 0) {
			return false
		}
		if math.IsNaN(t.deriv) || math.IsInf(t.deriv, 0) {
			return false
		}
	}
	return true
}

// String formats v as "nominal+/-stddev".
func (v Value) String() string {
	return strconv.FormatFloat(v.nominal, 'g', -1, 64) + "+/-" +
		strconv.FormatFloat(v.Stddev(), 'g', -1, 64)
}

// Covariance returns the first-order covariance of a and b.
func Covariance(a, b Value) float64 {
	var cov float64
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		ta, tb := a.terms[i], b.terms[j]
		switch {
		case ta.src.id == tb.src.id:
			s := ta.src.stddev
			cov += ta.deriv * tb.deriv * s * s
			i++
			j++
		case ta.src.id < tb.src.id:
			i++
		default:
			j++
		}
	}
	return cov
}

// Correlation returns the correlation coefficient of a and b, or 0 when
// either has no uncertainty.
func Correlation(a, b Value) float64 {
	sa, sb := a.Stddev(), b.Stddev()
	if sa == 0 || sb == 0 {
		return 0
	}
	return Covariance(a, b) / (sa * sb)
}

// combine returns the linear combination ca·a + cb·b of the derivative sets.
func combine(a Value, ca float64, b Value, cb float64) []term {
	out := make([]term, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) || j < len(b.terms) {
		switch {
		case j >= len(b.terms) || (i < len(a.terms) && a.terms[i].src.id < b.terms[j].src.id):
			out = append(out, term{a.terms[i].src, ca * a.terms[i].deriv})
			i++
		case i >= len(a.terms) || b.terms[j].src.id < a.terms[i].src.id:
			out = append(out, term{b.terms[j].src, cb * b.terms[j].deriv})
			j++
		default:
			out = append(out, term{a.terms[i].src, ca*a.terms[i].deriv + cb*b.terms[j].deriv})
			i++
			j++
		}
	}
	return out
}

// chain applies a unary function with derivative d at v.
func chain(v Value, nominal, d float64) Value {
	out := Value{nominal: nominal, set: true}
	if len(v.terms) > 0 {
		out.terms = make([]term, len(v.terms))
		for i, t := range v.terms {
			out.terms[i] = term{t.src, d * t.deriv}
		}
	}
	return out
}

// Add returns v + w.
func (v Value) Add(w Value) Value {
	return Value{nominal: v.nominal + w.nominal, terms: combine(v, 1, w, 1), set: true}
}

// Sub returns v - w.
func (v Value) Sub(w Value) Value {
	return Value{nominal: v.nominal - w.nominal, terms: combine(v, 1, w, -1), set: true}
}

// Mul returns v · w.
func (v Value) Mul(w Value) Value {
	return Value{nominal: v.nominal * w.nominal, terms: combine(v, w.nominal, w, v.nominal), set: true}
}

// Div returns v / w.
func (v Value) Div(w Value) Value {
	q := v.nominal / w.nominal
	return Value{nominal: q, terms: combine(v, 1/w.nominal, w, -q/w.nominal), set: true}
}

// Pow returns v ** w.
func (v Value) Pow(w Value) Value {
	p := math.Pow(v.nominal, w.nominal)
	dv := w.nominal * math.Pow(v.nominal, w.nominal-1)
	var dw float64
	switch {
	case v.nominal > 0:
		dw = math.Log(v.nominal) * p
	case len(w.terms) == 0:
		dw = 0
	default:
		dw = math.NaN()
	}
	return Value{nominal: p, terms: combine(v, dv, w, dw), set: true}
}

// PowFloat returns v ** p for an exact exponent.
func (v Value) PowFloat(p float64) Value {
	if p == 0 {
		return Exact(1)
	}
	return chain(v, math.Pow(v.nominal, p), p*math.Pow(v.nominal, p-1))
}

// Log10 returns the base-10 logarithm of v.
func (v Value) Log10() Value {
	return chain(v, math.Log10(v.nominal), 1/(v.nominal*math.Ln10))
}

// Exp10 returns 10 ** v.
func Exp10(v Value) Value {
	p := math.Pow(10, v.nominal)
	return chain(v, p, math.Ln10*p)
}

// Neg returns -v.
func (v Value) Neg() Value { return chain(v, -v.nominal, -1) }

// Scale returns k · v.
func (v Value) Scale(k float64) Value { return chain(v, k*v.nominal, k) }

// AddFloat returns v + k.
func (v Value) AddFloat(k float64) Value { return chain(v, v.nominal+k, 1) }

// Sources returns the number of independent error sources v depends on.
func (v Value) Sources() int { return len(v.terms) }
