package plcalc

import (
	"errors"

	"github.com/alexshd/plcalc/uncertain"
)

var (
	// ErrInvalidArgument reports an apparent magnitude or reddening that is
	// not a valid uncertain value.
	ErrInvalidArgument = uncertain.ErrInvalid

	// ErrUnsupportedBand reports a band outside V, J, H and K.
	ErrUnsupportedBand = errors.New("unsupported band")

	// ErrDomain reports a pulsation period for which log10 is undefined.
	ErrDomain = errors.New("period out of domain")
)
