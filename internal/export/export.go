// Package export renders plcalc results as a text report, a YAML document
// or a Prometheus text exposition.
package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/plcalc"
	"github.com/alexshd/plcalc/uncertain"
)

// Record is one named result.
type Record struct {
	Name   string
	Result plcalc.Result
}

// Measurement is an uncertain value split into its two numbers.
type Measurement struct {
	Nominal float64 `yaml:"nominal" json:"nominal"`
	Stddev  float64 `yaml:"stddev" json:"stddev"`
}

// Summary is the serialisable form of a Record.
type Summary struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Period     float64     `yaml:"period_days" json:"period_days"`
	Band       string      `yaml:"band" json:"band"`
	Apparent   Measurement `yaml:"apparent_mag" json:"apparent_mag"`
	Reddening  Measurement `yaml:"ebv" json:"ebv"`
	Absolute   Measurement `yaml:"absolute_mag" json:"absolute_mag"`
	Extinction Measurement `yaml:"extinction_mag" json:"extinction_mag"`
	Modulus    Measurement `yaml:"distance_modulus_mag" json:"distance_modulus_mag"`
	Distance   Measurement `yaml:"distance_kpc" json:"distance_kpc"`
}

func measure(v uncertain.Value) Measurement {
	return Measurement{Nominal: v.Nominal(), Stddev: v.Stddev()}
}

// Summarize flattens rec for encoding.
func Summarize(rec Record) Summary {
	r := rec.Result
	return Summary{
		Name:       rec.Name,
		Period:     r.Period,
		Band:       string(r.Band),
		Apparent:   measure(r.Apparent),
		Reddening:  measure(r.Reddening),
		Absolute:   measure(r.Absolute),
		Extinction: measure(r.Extinction),
		Modulus:    measure(r.Modulus),
		Distance:   measure(r.Distance),
	}
}

// Write renders recs in format: text | yaml | prom.
func Write(w io.Writer, format string, recs []Record) error {
	switch format {
	case "text":
		return WriteText(w, recs)
	case "yaml":
		return WriteYAML(w, recs)
	case "prom":
		return WritePrometheus(w, recs)
	}
	return fmt.Errorf("export: unknown format %q", format)
}

// WriteText writes the plcalc report for each record, headed by its name
// when there is more than one.
func WriteText(w io.Writer, recs []Record) error {
	for i, rec := range recs {
		if len(recs) > 1 {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "[%s]\n", rec.Name); err != nil {
				return err
			}
		}
		if err := plcalc.WriteReport(w, rec.Result); err != nil {
			return fmt.Errorf("export: text %q: %w", rec.Name, err)
		}
	}
	return nil
}

// WriteYAML writes recs as a YAML document with a top-level results list.
func WriteYAML(w io.Writer, recs []Record) error {
	doc := struct {
		Results []Summary `yaml:"results"`
	}{Results: make([]Summary, 0, len(recs))}
	for _, rec := range recs {
		doc.Results = append(doc.Results, Summarize(rec))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}
	return enc.Close()
}
