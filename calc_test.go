package plcalc

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/alexshd/plcalc/uncertain"
)

func quiet() Config {
	return Config{Verbose: false}
}

// TestCalc_KBandEndToEnd follows one star through all three evaluators.
//
//	M_K = (−2.41)·(1 − 1.2) − 4.00 = −3.518
//	A_K = 0.1 × 0.365 = 0.0365
//	d   = 10^((15.0 + 3.518 − 0.0365)/5 + 1) / 1000 ≈ 49.69 kpc
func TestCalc_KBandEndToEnd(t *testing.T) {
	m := uncertain.New(15.0, 0.1)
	ebv := uncertain.New(0.1, 0.01)

	d, err := Calc(10.0, m, ebv, K, quiet())
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}

	mu := 15.0 + 3.518 - 0.0365
	wantD := math.Pow(10, mu/5+1) / 1000
	sigmaMu := math.Sqrt(0.1*0.1 + (0.05*0.2)*(0.05*0.2) + 0.02*0.02 + (0.01*0.365)*(0.01*0.365))
	wantS := wantD * math.Ln10 / 5 * sigmaMu

	AssertValue(t, "d", d, wantD, wantS, DefaultAssertionConfig())
	AssertPhysicalDistance(t, d)

	if math.Abs(d.Nominal()-49.6935) > 1e-3 {
		t.Errorf("d: got %.4f kpc, want ≈ 49.6935", d.Nominal())
	}
	if math.Abs(d.Stddev()-2.3465) > 1e-3 {
		t.Errorf("σd: got %.4f kpc, want ≈ 2.3465", d.Stddev())
	}
}

func TestCalc_VerboseReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf

	_, err := Calc(10.0, uncertain.New(15.0, 0.1), uncertain.New(0.1, 0.01), K, cfg)
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}

	want := "Pulsation Period = 10.0 days\n" +
		"Apparent K-Band Magnitude = 15.00+-0.10 mag\n" +
		"Absolute K-Band Magnitude = -3.52+-0.02 mag\n" +
		"Distance = 49.7+-2.3 kpc\n"
	if buf.String() != want {
		t.Errorf("report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Verbose {
		t.Error("DefaultConfig should be verbose")
	}
	if cfg.Output == nil {
		t.Error("DefaultConfig should report to stdout")
	}
}

// TestCalc_AllBandsPhysical checks every band over a range of periods.
func TestCalc_AllBandsPhysical(t *testing.T) {
	m := uncertain.New(12.3, 0.05)
	ebv := uncertain.New(0.25, 0.02)

	for _, b := range Bands {
		for _, p := range []float64{0.3, 1, 2.5, 10, 45, 120} {
			d, err := Calc(p, m, ebv, b, quiet())
			if err != nil {
				t.Fatalf("Calc(%v, %s): %v", p, b, err)
			}
			AssertPhysicalDistance(t, d)
		}
	}
}

func TestCalc_InvalidArgument(t *testing.T) {
	valid := uncertain.New(0.1, 0.01)

	tests := []struct {
		name   string
		m, ebv uncertain.Value
	}{
		{"zero magnitude", uncertain.Value{}, valid},
		{"zero reddening", uncertain.New(15, 0.1), uncertain.Value{}},
		{"negative stddev", uncertain.New(15, -0.1), valid},
		{"NaN magnitude", uncertain.New(math.NaN(), 0.1), valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := DefaultConfig()
			cfg.Output = &buf

			// An unsupported band and a bad period must not mask the type check.
			_, err := Calc(-1, tt.m, tt.ebv, "X", cfg)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
			if buf.Len() != 0 {
				t.Errorf("partial output written: %q", buf.String())
			}
		})
	}
}

// TestCalc_PlainNumbers mirrors calc(10.0, 5.0, 0.1, "J"): bare numbers are
// rejected where they enter as text.
func TestCalc_PlainNumbers(t *testing.T) {
	_, err := uncertain.Parse("5.0")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bare magnitude: got %v, want ErrInvalidArgument", err)
	}
}

func TestCalc_UnsupportedBand(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf

	_, err := Calc(10.0, uncertain.New(15.0, 0.1), uncertain.New(0.1, 0.01), "X", cfg)
	if !errors.Is(err, ErrUnsupportedBand) {
		t.Fatalf("got %v, want ErrUnsupportedBand", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written: %q", buf.String())
	}
}

func TestCalc_Domain(t *testing.T) {
	_, err := Calc(0, uncertain.New(15.0, 0.1), uncertain.New(0.1, 0.01), J, quiet())
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("got %v, want ErrDomain", err)
	}
}

func TestCalc_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := quiet()
	cfg.Logger = logger
	if _, err := Calc(10.0, uncertain.New(15.0, 0.1), uncertain.New(0.1, 0.01), H, cfg); err != nil {
		t.Fatalf("Calc: %v", err)
	}

	out := logs.String()
	for _, key := range []string{"distance calculated", "band=H", "distance_kpc="} {
		if !strings.Contains(out, key) {
			t.Errorf("log missing %q:\n%s", key, out)
		}
	}
}

func TestSolve_Intermediates(t *testing.T) {
	m := uncertain.New(14.2, 0.08)
	ebv := uncertain.New(0.3, 0.02)

	res, err := Solve(5.4, m, ebv, V)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	M, _ := AbsoluteMagnitude(5.4, V)
	A, _ := Extinction(ebv, V)
	cfg := DefaultAssertionConfig()

	AssertValue(t, "M", res.Absolute, M.Nominal(), M.Stddev(), cfg)
	AssertValue(t, "A", res.Extinction, A.Nominal(), A.Stddev(), cfg)
	AssertValue(t, "μ", res.Modulus, 14.2-M.Nominal()-A.Nominal(), res.Modulus.Stddev(), cfg)

	wantD := math.Pow(10, res.Modulus.Nominal()/5+1) / 1000
	AssertValue(t, "d", res.Distance, wantD, wantD*math.Ln10/5*res.Modulus.Stddev(), cfg)

	if res.Period != 5.4 || res.Band != V {
		t.Errorf("inputs not recorded: %+v", res)
	}
}

func TestCalc_ConcurrentCallers(t *testing.T) {
	m := uncertain.New(15.0, 0.1)
	ebv := uncertain.New(0.1, 0.01)
	want, err := Calc(10, m, ebv, J, quiet())
	if err != nil {
		t.Fatalf("Calc: %v", err)
	}

	done := make(chan uncertain.Value, 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			d, _ := Calc(10, m, ebv, J, quiet())
			done <- d
		}()
	}
	for i := 0; i < cap(done); i++ {
		d := <-done
		if d.Nominal() != want.Nominal() || d.Stddev() != want.Stddev() {
			t.Errorf("concurrent result %v, want %v", d, want)
		}
	}
}
