// Command plcalc computes the distance to a pulsating variable star from its
// period, apparent magnitude and reddening.
//
// Usage:
//
//	plcalc -period 10 -mag 15.0+/-0.1 -ebv 0.1+/-0.01 -band K
//	plcalc -period 10 -mag 15.0+/-0.1 -ebv 0.1+/-0.01 -band K -format prom
//	plcalc -config stars.yaml [-watch]
//
// Magnitudes and reddening must carry an uncertainty: "15.0+/-0.1",
// "15.0±0.1" or "15.02(12)".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/alexshd/plcalc"
	"github.com/alexshd/plcalc/internal/config"
	"github.com/alexshd/plcalc/internal/export"
	"github.com/alexshd/plcalc/uncertain"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

type options struct {
	period    float64
	periodSet bool
	mag       string
	ebv       string
	band      string
	format    string
	quiet     bool
	config    string
	watch     bool
	debug     bool
	noColor   bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.Float64Var(&opts.period, "period", 0, "pulsation period in days")
	fs.StringVar(&opts.mag, "mag", "", "apparent magnitude with uncertainty, e.g. 15.0+/-0.1")
	fs.StringVar(&opts.ebv, "ebv", "", "E(B-V) colour excess with uncertainty, e.g. 0.1+/-0.01")
	fs.StringVar(&opts.band, "band", "", "photometric band: V, J, H or K")
	fs.StringVar(&opts.format, "format", config.DefaultFormat, "output format: text, yaml or prom")
	fs.BoolVar(&opts.quiet, "quiet", false, "print only the distance (text format)")
	fs.StringVar(&opts.config, "config", "", "path to a stars.yaml run file")
	fs.BoolVar(&opts.watch, "watch", false, "recompute whenever the -config file changes")
	fs.BoolVar(&opts.debug, "debug", false, "log every calculation step")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable coloured log output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "period" {
			opts.periodSet = true
		}
	})

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    opts.noColor,
	}))
	slog.SetDefault(logger)

	if opts.config != "" {
		return runConfig(ctx, opts, stdout, logger)
	}
	if opts.watch {
		fmt.Fprintln(stderr, "error: -watch requires -config")
		return exitUsage
	}
	return runSingle(opts, stdout, stderr, logger)
}

// runSingle computes one star given on the command line.
func runSingle(opts options, stdout, stderr io.Writer, logger *slog.Logger) int {
	if !opts.periodSet || opts.mag == "" || opts.ebv == "" || opts.band == "" {
		fmt.Fprintln(stderr, "error: -period, -mag, -ebv and -band are required (or use -config)")
		return exitUsage
	}

	band, err := plcalc.ParseBand(opts.band)
	if err != nil {
		logger.Error("invalid band", "err", err)
		return exitUsage
	}
	m, err := uncertain.Parse(opts.mag)
	if err != nil {
		logger.Error("invalid apparent magnitude", "err", err)
		return exitUsage
	}
	ebv, err := uncertain.Parse(opts.ebv)
	if err != nil {
		logger.Error("invalid reddening", "err", err)
		return exitUsage
	}

	if opts.format == config.FormatText {
		cfg := plcalc.Config{
			Verbose: !opts.quiet,
			Output:  stdout,
			Logger:  logger,
		}
		d, err := plcalc.Calc(opts.period, m, ebv, band, cfg)
		if err != nil {
			logger.Error("distance calculation failed", "err", err)
			return exitFailure
		}
		if opts.quiet {
			fmt.Fprintf(stdout, "%s kpc\n", d)
		}
		return exitOK
	}

	res, err := plcalc.Solve(opts.period, m, ebv, band)
	if err != nil {
		logger.Error("distance calculation failed", "err", err)
		return exitFailure
	}
	if err := export.Write(stdout, opts.format, []export.Record{{Result: res}}); err != nil {
		logger.Error("write output", "err", err)
		return exitUsage
	}
	return exitOK
}

// runConfig computes every target in the run file, once or on each change.
func runConfig(ctx context.Context, opts options, stdout io.Writer, logger *slog.Logger) int {
	cfg, err := config.Load(opts.config)
	if err != nil {
		logger.Error("failed to load config", "path", opts.config, "err", err)
		return exitFailure
	}
	logger.Info("config loaded", "path", opts.config, "targets", len(cfg.Targets), "format", cfg.Output.Format)

	if err := render(stdout, cfg, logger); err != nil {
		logger.Error("calculation failed", "err", err)
		return exitFailure
	}
	if !opts.watch {
		return exitOK
	}

	err = config.Watch(ctx, opts.config, func(updated *config.Config) {
		if err := render(stdout, updated, logger); err != nil {
			logger.Error("calculation failed", "err", err)
		}
	})
	if err != nil {
		logger.Error("config watcher stopped", "err", err)
		return exitFailure
	}
	return exitOK
}

// render computes each target with its own call and writes the results.
func render(w io.Writer, cfg *config.Config, logger *slog.Logger) error {
	recs := make([]export.Record, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		res, err := plcalc.Solve(t.Period, t.Mag, t.EBV, t.Band)
		if err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
		logger.Debug("target solved",
			"target", t.Name,
			"band", string(t.Band),
			"distance_kpc", res.Distance.String())
		recs = append(recs, export.Record{Name: t.Name, Result: res})
	}

	if cfg.Output.Format == config.FormatText && !cfg.Output.Verbose {
		for _, rec := range recs {
			if _, err := fmt.Fprintf(w, "%s\t%s kpc\n", rec.Name, rec.Result.Distance); err != nil {
				return err
			}
		}
		return nil
	}
	return export.Write(w, cfg.Output.Format, recs)
}
