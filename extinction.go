package plcalc

import (
	"fmt"

	"github.com/alexshd/plcalc/uncertain"
)

// extinctionCoefficients are A_band / E(B-V) ratios. The ratios are exact;
// the uncertainty of A comes from the reddening alone.
var extinctionCoefficients = map[Band]float64{
	J: 0.866,
	H: 0.565,
	K: 0.365,
	V: 3.086,
}

// ExtinctionCoefficient returns A_band / E(B-V) for band.
func ExtinctionCoefficient(band Band) (float64, error) {
	c, ok := extinctionCoefficients[band]
	if !ok {
		return 0, fmt.Errorf("extinction coefficient for %q: %w", string(band), ErrUnsupportedBand)
	}
	return c, nil
}

// Extinction returns the extinction in magnitudes for the colour excess ebv.
func Extinction(ebv uncertain.Value, band Band) (uncertain.Value, error) {
	if !ebv.Valid() {
		return uncertain.Value{}, fmt.Errorf("reddening: %w", ErrInvalidArgument)
	}
	c, err := ExtinctionCoefficient(band)
	if err != nil {
		return uncertain.Value{}, err
	}
	return ebv.Scale(c), nil
}
