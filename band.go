package plcalc

import "fmt"

// Band is a photometric band with a calibrated PL relation.
type Band string

const (
	V Band = "V"
	J Band = "J"
	H Band = "H"
	K Band = "K"
)

// Bands lists the supported bands in evaluation order.
var Bands = []Band{J, H, K, V}

// ParseBand matches s exactly against the supported band tokens.
// "Kmag" or "k" are rejected with ErrUnsupportedBand.
func ParseBand(s string) (Band, error) {
	b := Band(s)
	if !b.Supported() {
		return "", fmt.Errorf("band %q: %w", s, ErrUnsupportedBand)
	}
	return b, nil
}

// Supported reports whether b is one of V, J, H, K.
func (b Band) Supported() bool {
	switch b {
	case J, H, K, V:
		return true
	}
	return false
}

func (b Band) String() string { return string(b) }
