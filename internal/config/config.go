package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/plcalc"
	"github.com/alexshd/plcalc/uncertain"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatProm = "prom"
)

// DefaultFormat is used when output.format is absent.
const DefaultFormat = FormatText

// Config is the top-level run configuration.
type Config struct {
	Output  OutputConfig `yaml:"output"`
	Targets []Target     `yaml:"targets"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	// Format is one of: text | yaml | prom.
	Format string `yaml:"format"`

	// Verbose prints the text report. Only used with the text format.
	Verbose bool `yaml:"verbose"`
}

// Target is one star to compute a distance for.
type Target struct {
	// Name labels the star in reports and metrics.
	Name string `yaml:"name"`

	// Period is the pulsation period in days.
	Period float64 `yaml:"period"`

	// Band is the photometric band of Mag: V | J | H | K.
	Band plcalc.Band `yaml:"band"`

	// Mag is the apparent magnitude, e.g. "15.0+/-0.1".
	Mag uncertain.Value `yaml:"mag"`

	// EBV is the E(B-V) colour excess, e.g. "0.1+/-0.01".
	EBV uncertain.Value `yaml:"ebv"`
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Output: OutputConfig{
			Format:  DefaultFormat,
			Verbose: true,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case FormatText, FormatYAML, FormatProm:
	default:
		return fmt.Errorf("output.format: unknown format %q", cfg.Output.Format)
	}
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("targets: at least one target is required")
	}

	seen := make(map[string]bool, len(cfg.Targets))
	for i, t := range cfg.Targets {
		if t.Name == "" {
			return fmt.Errorf("targets[%d]: name is required", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("targets[%d] %q: duplicate name", i, t.Name)
		}
		seen[t.Name] = true

		if math.IsNaN(t.Period) || math.IsInf(t.Period, 0) || t.Period <= 0 {
			return fmt.Errorf("targets[%d] %q: period must be positive: %w", i, t.Name, plcalc.ErrDomain)
		}
		if !t.Band.Supported() {
			return fmt.Errorf("targets[%d] %q: band %q: %w", i, t.Name, string(t.Band), plcalc.ErrUnsupportedBand)
		}
		if !t.Mag.Valid() {
			return fmt.Errorf("targets[%d] %q: mag is required: %w", i, t.Name, plcalc.ErrInvalidArgument)
		}
		if !t.EBV.Valid() {
			return fmt.Errorf("targets[%d] %q: ebv is required: %w", i, t.Name, plcalc.ErrInvalidArgument)
		}
	}
	return nil
}
