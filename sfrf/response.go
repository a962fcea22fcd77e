package sfrf

import (
	"fmt"

	"github.com/cwbudde/algo-bearing/bearing"
	"github.com/cwbudde/algo-bearing/spectral"
	"github.com/cwbudde/algo-vecmath"
)

// Input carries the signal data for one response computation. Exactly
// one of Spectrum and Signal must be set: Spectrum holds one one-sided
// complex spectrum per signal column, Signal holds one time-domain
// column per signal column (transformed internally).
type Input struct {
	Spectrum [][]complex128
	Signal   [][]float64
}

// Response holds the receptive-field values of one fault family, one
// per signal column.
type Response struct {
	Fault  bearing.FaultType
	Values []float64
}

// ResponseTable holds the responses of all four fault families for one
// selected operating condition.
type ResponseTable struct {
	Condition bearing.Condition
	Responses []Response
}

// Value returns the response of one fault family and signal column.
func (t *ResponseTable) Value(ft bearing.FaultType, column int) float64 {
	return t.Responses[int(ft)].Values[column]
}

type responseConfig struct {
	analyzer    spectral.Analyzer
	hasAnalyzer bool
}

// ResponseOption configures response computation.
type ResponseOption func(*responseConfig)

// WithAnalyzer sets the spectrum analyzer used for time-domain input.
// The default analyzer uses a Hann window with the FFT size implied by
// the mask table's axis length.
func WithAnalyzer(a spectral.Analyzer) ResponseOption {
	return func(c *responseConfig) {
		c.analyzer = a
		c.hasAnalyzer = true
	}
}

// ComputeResponse computes the receptive-field contrast of every fault
// family at the selected condition, one scalar per signal column.
//
// Per family the center and surround masks weight the spectrum, the
// magnitude is normalized by the bin count, and both weighted magnitude
// spectra are integrated over the frequency axis by trapezoidal
// quadrature. The response is
//
//	integralCenter - inhibition*integralSurround
//
// with the inhibition factor taken from the family's shape parameters.
func ComputeResponse(masks *MaskTable, set ParameterSet, cond bearing.Condition, in Input, opts ...ResponseOption) (*ResponseTable, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	if in.Spectrum != nil && in.Signal != nil {
		return nil, ErrAmbiguousInput
	}

	if in.Spectrum == nil && in.Signal == nil {
		return nil, ErrNoInput
	}

	cfg := responseConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	condIdx, ok := findCondition(masks, cond)
	if !ok {
		return nil, fmt.Errorf("%w: speed=%g Hz, load=%g kN", ErrConditionNotFound, cond.SpeedHz, cond.LoadKN)
	}

	spectrum := in.Spectrum

	if spectrum == nil {
		if !cfg.hasAnalyzer {
			cfg.analyzer = spectral.Analyzer{FFTSize: 2 * (len(masks.axis) - 1)}
		}

		cols, err := cfg.analyzer.TransformColumns(in.Signal)
		if err != nil {
			return nil, err
		}

		spectrum = cols
	}

	if len(spectrum) == 0 {
		return nil, ErrNoInput
	}

	bins := len(spectrum[0])
	for i, col := range spectrum {
		if len(col) != bins {
			return nil, fmt.Errorf("sfrf: spectrum column %d has %d bins, column 0 has %d", i, len(col), bins)
		}
	}

	if bins != len(masks.axis) {
		return nil, fmt.Errorf("%w: %d masks, %d bins", ErrMaskLength, len(masks.axis), bins)
	}

	// Scratch reused across families and columns.
	re := make([]float64, bins)
	im := make([]float64, bins)
	wre := make([]float64, bins)
	wim := make([]float64, bins)
	mag := make([]float64, bins)

	integrate := func(col []complex128, mask []float64) float64 {
		for i, v := range col {
			re[i] = real(v)
			im[i] = imag(v)
		}

		vecmath.MulBlock(wre, re, mask)
		vecmath.MulBlock(wim, im, mask)
		vecmath.Magnitude(mag, wre, wim)
		vecmath.ScaleBlock(mag, mag, 1/float64(bins))

		return trapezoid(masks.axis, mag)
	}

	out := &ResponseTable{
		Condition: cond,
		Responses: make([]Response, 0, len(bearing.FaultTypes())),
	}

	for _, ft := range bearing.FaultTypes() {
		row := masks.Row(condIdx, ft)
		inhibition := set[ft].Inhibition

		values := make([]float64, len(spectrum))
		for c, col := range spectrum {
			values[c] = integrate(col, row.Center) - inhibition*integrate(col, row.Surround)
		}

		out.Responses = append(out.Responses, Response{Fault: ft, Values: values})
	}

	return out, nil
}

func findCondition(masks *MaskTable, cond bearing.Condition) (int, bool) {
	for i := 0; i < masks.conditions; i++ {
		if masks.Row(i, bearing.FaultOuterRace).Condition == cond {
			return i, true
		}
	}

	return 0, false
}

// trapezoid integrates y over x by trapezoidal quadrature.
func trapezoid(x, y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}

	return sum
}
