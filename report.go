package plcalc

import (
	"fmt"
	"io"
)

// WriteReport writes the four-line summary of r:
//
//	Pulsation Period = 10.0 days
//	Apparent K-Band Magnitude = 15.00+-0.10 mag
//	Absolute K-Band Magnitude = -3.52+-0.02 mag
//	Distance = 49.7+-2.3 kpc
func WriteReport(w io.Writer, r Result) error {
	_, err := fmt.Fprintf(w,
		"Pulsation Period = %.1f days\n"+
			"Apparent %s-Band Magnitude = %.2f+-%.2f mag\n"+
			"Absolute %s-Band Magnitude = %.2f+-%.2f mag\n"+
			"Distance = %.1f+-%.1f kpc\n",
		r.Period,
		r.Band, r.Apparent.Nominal(), r.Apparent.Stddev(),
		r.Band, r.Absolute.Nominal(), r.Absolute.Stddev(),
		r.Distance.Nominal(), r.Distance.Stddev(),
	)
	return err
}
