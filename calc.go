package plcalc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexshd/plcalc/uncertain"
)

// Result holds every quantity of one distance computation.
type Result struct {
	Period     float64         // Pulsation period, days
	Band       Band            // Photometric band
	Apparent   uncertain.Value // m, mag
	Reddening  uncertain.Value // E(B-V), mag
	Absolute   uncertain.Value // M from the PL relation, mag
	Extinction uncertain.Value // A, mag
	Modulus    uncertain.Value // μ = m − M − A, mag
	Distance   uncertain.Value // d, kpc
}

// Config controls Calc.
type Config struct {
	Verbose bool         // Write the summary report to Output
	Output  io.Writer    // Report destination (nil = os.Stdout)
	Logger  *slog.Logger // Step logging at debug level (nil = slog.Default())
}

// DefaultConfig returns a verbose config reporting to stdout.
func DefaultConfig() Config {
	return Config{
		Verbose: true,
		Output:  os.Stdout,
	}
}

// Solve computes the distance to a pulsating star and returns all
// intermediate quantities. It has no side effects.
func Solve(period float64, m, ebv uncertain.Value, band Band) (Result, error) {
	if !m.Valid() {
		return Result{}, fmt.Errorf("apparent magnitude: %w", ErrInvalidArgument)
	}
	if !ebv.Valid() {
		return Result{}, fmt.Errorf("reddening: %w", ErrInvalidArgument)
	}

	M, err := AbsoluteMagnitude(period, band)
	if err != nil {
		return Result{}, err
	}
	A, err := Extinction(ebv, band)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Period:     period,
		Band:       band,
		Apparent:   m,
		Reddening:  ebv,
		Absolute:   M,
		Extinction: A,
		Modulus:    DistanceModulus(m, M, A),
		Distance:   Distance(m, M, A),
	}, nil
}

// Calc returns the distance in kpc to a star of the given period (days),
// apparent magnitude and reddening observed in band. With cfg.Verbose it
// also writes a summary report. On error nothing is written.
func Calc(period float64, m, ebv uncertain.Value, band Band, cfg Config) (uncertain.Value, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	res, err := Solve(period, m, ebv, band)
	if err != nil {
		logger.Debug("distance calculation failed",
			"period", period, "band", string(band), "err", err)
		return uncertain.Value{}, err
	}

	logger.Debug("distance calculated",
		"period", res.Period,
		"band", string(res.Band),
		"absolute_mag", res.Absolute.String(),
		"extinction", res.Extinction.String(),
		"modulus", res.Modulus.String(),
		"distance_kpc", res.Distance.String(),
	)

	if cfg.Verbose {
		out := cfg.Output
		if out == nil {
			out = os.Stdout
		}
		if err := WriteReport(out, res); err != nil {
			return uncertain.Value{}, fmt.Errorf("write report: %w", err)
		}
	}

	return res.Distance, nil
}
