package sfrf

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bearing/bearing"
	"github.com/cwbudde/algo-bearing/internal/testutil"
)

func linearAxis(lo, hi float64, n int) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}

	return axis
}

func TestSynthesizeGainsEmptyAxis(t *testing.T) {
	set, err := ReplicateParameters(DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}

	table, err := GenerateBands(testGeometry(t), testGrid(t, 30), set)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := SynthesizeGains(table, nil); !errors.Is(err, ErrEmptyAxis) {
		t.Fatalf("got %v, want ErrEmptyAxis", err)
	}
}

func TestSynthesizeGainsNilTable(t *testing.T) {
	if _, err := SynthesizeGains(nil, linearAxis(0, 100, 11)); !errors.Is(err, ErrMalformedBands) {
		t.Fatalf("got %v, want ErrMalformedBands", err)
	}
}

func TestSynthesizeGainsGaussianShape(t *testing.T) {
	geo := testGeometry(t)

	// Outer-race fundamental at exactly 100 Hz.
	speed := 100.0 / (4.0 * (1 - 7.92/34.55))

	params := DefaultParameters()
	params.Harmonics = 1
	params.Sidebands = 0

	set, err := NewParameterSet(params, params, params, params)
	if err != nil {
		t.Fatal(err)
	}

	table, err := GenerateBands(geo, testGrid(t, speed), set)
	if err != nil {
		t.Fatal(err)
	}

	axis := linearAxis(0, 200, 2001) // 0.1 Hz spacing, hits 100.0 exactly
	masks, err := SynthesizeGains(table, axis)
	if err != nil {
		t.Fatal(err)
	}

	row := masks.Row(0, bearing.FaultOuterRace)

	if len(row.Center) != len(axis) || len(row.Surround) != len(axis) {
		t.Fatalf("mask lengths %d/%d, want %d", len(row.Center), len(row.Surround), len(axis))
	}

	// Peak of 1 at the band center.
	testutil.RequireNear(t, row.Center[1000], 1, 1e-12)
	testutil.RequireNear(t, row.Surround[1000], 1, 1e-12)

	// Explicit Gaussian values: center sigma = 4/(2*6) = 1/3.
	sigma := params.CenterBandwidth / (2 * params.CenterSigmaRule)
	for _, offset := range []float64{0.5, 1, 2} {
		idx := 1000 + int(offset*10)
		want := math.Exp(-0.5 * (offset / sigma) * (offset / sigma))
		testutil.RequireNear(t, row.Center[idx], want, 1e-9)
	}

	// Masks stay in [0,1].
	for i := range row.Center {
		if row.Center[i] < 0 || row.Center[i] > 1 || row.Surround[i] < 0 || row.Surround[i] > 1 {
			t.Fatalf("mask value out of [0,1] at bin %d", i)
		}
	}
}

func TestSuperGaussianBeta2MatchesGaussian(t *testing.T) {
	geo := testGeometry(t)

	params := DefaultParameters()
	params.Harmonics = 3
	params.Sidebands = 0
	// sigmaRule = sqrt(2)/2 makes the Gaussian form equal the beta=2
	// super-Gaussian form.
	params.CenterSigmaRule = math.Sqrt2 / 2
	params.SurroundSigmaRule = math.Sqrt2 / 2

	set, err := NewParameterSet(params, params, params, params)
	if err != nil {
		t.Fatal(err)
	}

	table, err := GenerateBands(geo, testGrid(t, 30), set)
	if err != nil {
		t.Fatal(err)
	}

	axis := linearAxis(0, 400, 1601)

	gaussian, err := SynthesizeGains(table, axis)
	if err != nil {
		t.Fatal(err)
	}

	superGaussian, err := SynthesizeGains(table, axis, WithSuperGaussian(2))
	if err != nil {
		t.Fatal(err)
	}

	for _, ft := range bearing.FaultTypes() {
		g := gaussian.Row(0, ft)
		s := superGaussian.Row(0, ft)

		testutil.RequireSliceNearlyEqual(t, s.Center, g.Center, 1e-6)
		testutil.RequireSliceNearlyEqual(t, s.Surround, g.Surround, 1e-6)
	}
}

func TestSynthesizeGainsMaxCombination(t *testing.T) {
	geo := testGeometry(t)

	// Two harmonics with wide surrounds that overlap between them.
	params := DefaultParameters()
	params.Harmonics = 2
	params.Sidebands = 0
	params.SurroundBandwidth = 150

	set, err := NewParameterSet(params, params, params, params)
	if err != nil {
		t.Fatal(err)
	}

	table, err := GenerateBands(geo, testGrid(t, 30), set)
	if err != nil {
		t.Fatal(err)
	}

	axis := linearAxis(0, 300, 3001)
	masks, err := SynthesizeGains(table, axis)
	if err != nil {
		t.Fatal(err)
	}

	row := masks.Row(0, bearing.FaultOuterRace)
	bands := table.Row(0, bearing.FaultOuterRace).Bands

	// The combined mask must equal the pointwise max of the individual
	// band masks, so it never exceeds 1 even where surrounds overlap.
	p := set[bearing.FaultOuterRace]

	for i, f := range axis {
		want := 0.0
		for _, band := range bands {
			sigma := band.Surround.Width() / (2 * p.SurroundSigmaRule)
			z := (f - band.Surround.Center()) / sigma
			if v := math.Exp(-0.5 * z * z); v > want {
				want = v
			}
		}

		testutil.RequireNear(t, row.Surround[i], want, 1e-12)

		if row.Surround[i] > 1 {
			t.Fatalf("combined mask exceeds 1 at bin %d", i)
		}
	}
}

func TestSynthesizeGainsZeroBandRow(t *testing.T) {
	geo := testGeometry(t)

	params := DefaultParameters()
	params.Harmonics = 1
	params.Sidebands = 0

	set, err := NewParameterSet(params, params, params, params)
	if err != nil {
		t.Fatal(err)
	}

	// At a very low speed every band loses its surround to the 0 Hz
	// cutoff, leaving empty rows.
	table, err := GenerateBands(geo, testGrid(t, 0.1), set)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(table.Row(0, bearing.FaultCage).Bands); n != 0 {
		t.Fatalf("expected empty cage row, got %d bands", n)
	}

	masks, err := SynthesizeGains(table, linearAxis(0, 10, 101))
	if err != nil {
		t.Fatal(err)
	}

	row := masks.Row(0, bearing.FaultCage)
	for i := range row.Center {
		if row.Center[i] != 0 || row.Surround[i] != 0 {
			t.Fatalf("empty row must yield zero masks, bin %d", i)
		}
	}
}
