package uncertain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrSyntax reports text that is not an uncertain value.
	ErrSyntax = fmt.Errorf("%w: syntax error", ErrInvalid)

	// ErrNoUncertainty reports a bare number where an uncertainty is required.
	ErrNoUncertainty = fmt.Errorf("%w: no uncertainty given", ErrInvalid)
)

var separators = []string{"+/-", "+-", "±"}

// Parse reads an uncertain value in one of the forms
//
//	15.0+/-0.1
//	15.0+-0.1
//	15.0±0.1
//	15.02(12)   uncertainty on the last digits: 15.02+/-0.12
//
// A bare number is rejected with ErrNoUncertainty.
func Parse(s string) (Value, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Value{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}

	for _, sep := range separators {
		n, sd, ok := strings.Cut(text, sep)
		if !ok {
			continue
		}
		return parsePair(s, n, sd)
	}

	if strings.HasSuffix(text, ")") {
		return parseShorthand(s, text)
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return Value{}, fmt.Errorf("parse %q: %w", s, ErrNoUncertainty)
	}
	return Value{}, fmt.Errorf("parse %q: %w", s, ErrSyntax)
}

func parsePair(orig, n, sd string) (Value, error) {
	nominal, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
	if err != nil {
		return Value{}, fmt.Errorf("parse %q: nominal: %w", orig, ErrSyntax)
	}
	stddev, err := strconv.ParseFloat(strings.TrimSpace(sd), 64)
	if err != nil {
		return Value{}, fmt.Errorf("parse %q: stddev: %w", orig, ErrSyntax)
	}
	return checked(orig, nominal, stddev)
}

// parseShorthand handles the "15.02(12)" form.
func parseShorthand(orig, text string) (Value, error) {
	open := strings.LastIndexByte(text, '(')
	if open <= 0 {
		return Value{}, fmt.Errorf("parse %q: %w", orig, ErrSyntax)
	}
	n, digits := text[:open], text[open+1:len(text)-1]

	nominal, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return Value{}, fmt.Errorf("parse %q: nominal: %w", orig, ErrSyntax)
	}
	if digits == "" || strings.ContainsAny(digits, "+-eE") {
		return Value{}, fmt.Errorf("parse %q: uncertainty digits: %w", orig, ErrSyntax)
	}
	last, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Value{}, fmt.Errorf("parse %q: uncertainty digits: %w", orig, ErrSyntax)
	}

	decimals := 0
	switch {
	case strings.Contains(digits, "."):
		// "15.02(0.12)" gives the uncertainty in full.
	case strings.ContainsAny(n, "eE"):
		// The digits would scale with the mantissa, not the value.
		return Value{}, fmt.Errorf("parse %q: exponent with uncertainty digits: %w", orig, ErrSyntax)
	default:
		if _, frac, ok := strings.Cut(n, "."); ok {
			decimals = len(frac)
		}
	}
	return checked(orig, nominal, last*math.Pow(10, -float64(decimals)))
}

func checked(orig string, nominal, stddev float64) (Value, error) {
	if math.IsNaN(nominal) || math.IsInf(nominal, 0) {
		return Value{}, fmt.Errorf("parse %q: nominal not finite: %w", orig, ErrSyntax)
	}
	if stddev < 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return Value{}, fmt.Errorf("parse %q: stddev must be finite and non-negative: %w", orig, ErrSyntax)
	}
	return New(nominal, stddev), nil
}

// MarshalText implements encoding.TextMarshaler using the "n+/-s" form.
func (v Value) MarshalText() ([]byte, error) {
	if !v.set {
		return nil, fmt.Errorf("marshal: %w", ErrInvalid)
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded value gets
// a new independent error source.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
