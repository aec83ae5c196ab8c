package export

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/alexshd/plcalc/uncertain"
)

// gaugeSpec describes one exported gauge family.
type gaugeSpec struct {
	name  string
	help  string
	value func(Summary) float64
}

var gauges = []gaugeSpec{
	{
		name:  "plcalc_distance_kpc",
		help:  "Distance to the star in kiloparsecs.",
		value: func(s Summary) float64 { return s.Distance.Nominal },
	},
	{
		name:  "plcalc_distance_kpc_stddev",
		help:  "Standard deviation of the distance in kiloparsecs.",
		value: func(s Summary) float64 { return s.Distance.Stddev },
	},
	{
		name:  "plcalc_distance_modulus_mag",
		help:  "Extinction-corrected distance modulus in magnitudes.",
		value: func(s Summary) float64 { return s.Modulus.Nominal },
	},
	{
		name:  "plcalc_absolute_magnitude",
		help:  "Absolute magnitude from the period-luminosity relation.",
		value: func(s Summary) float64 { return s.Absolute.Nominal },
	},
	{
		name:  "plcalc_extinction_mag",
		help:  "Line-of-sight extinction in magnitudes.",
		value: func(s Summary) float64 { return s.Extinction.Nominal },
	},
	{
		name:  "plcalc_period_days",
		help:  "Pulsation period in days.",
		value: func(s Summary) float64 { return s.Period },
	},
}

// Families builds one gauge family per exported quantity, each holding a
// sample per record labelled by band and target.
func Families(recs []Record) []*dto.MetricFamily {
	summaries := make([]Summary, len(recs))
	for i, rec := range recs {
		summaries[i] = Summarize(rec)
	}

	families := make([]*dto.MetricFamily, 0, len(gauges))
	for _, g := range gauges {
		mf := &dto.MetricFamily{
			Name: proto.String(g.name),
			Help: proto.String(g.help),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		for _, s := range summaries {
			mf.Metric = append(mf.Metric, &dto.Metric{
				Label: []*dto.LabelPair{
					{Name: proto.String("band"), Value: proto.String(s.Band)},
					{Name: proto.String("target"), Value: proto.String(s.Name)},
				},
				Gauge: &dto.Gauge{Value: proto.Float64(g.value(s))},
			})
		}
		families = append(families, mf)
	}
	return families
}

// WritePrometheus writes recs in the Prometheus text exposition format.
func WritePrometheus(w io.Writer, recs []Record) error {
	for _, mf := range Families(recs) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("export: prometheus %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Gauge reads one sample back from a text exposition, keyed by metric name
// and target label. It is the inverse used by scrapers of plcalc output.
func Gauge(r io.Reader, name, target string) (uncertain.Value, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("export: parse prometheus text: %w", err)
	}

	value, ok := sample(mfs[name], target)
	if !ok {
		return uncertain.Value{}, fmt.Errorf("export: no %s sample for target %q", name, target)
	}
	// A missing companion must not turn a measured value into an exact one.
	stddev, ok := sample(mfs[name+"_stddev"], target)
	if !ok {
		return uncertain.Value{}, fmt.Errorf("export: no %s_stddev sample for target %q", name, target)
	}
	return uncertain.New(value, stddev), nil
}

func sample(mf *dto.MetricFamily, target string) (float64, bool) {
	if mf == nil {
		return 0, false
	}
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "target" && lp.GetValue() == target {
				return m.GetGauge().GetValue(), true
			}
		}
	}
	return 0, false
}
