package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
)

// Analyzer turns real-valued time-domain signals into one-sided complex
// spectra.
//
// A zero FFTSize selects the next power of two above the signal length.
// A zero Window selects Hann.
type Analyzer struct {
	FFTSize int
	Window  window.Type
}

// Transform applies the analysis window, zero-pads to the FFT size, and
// returns the one-sided spectrum bins [0..Nyquist] (FFTSize/2+1 values).
func (a Analyzer) Transform(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("spectral: signal must not be empty")
	}

	fftSize := a.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if len(signal) > fftSize {
		return nil, fmt.Errorf("spectral: signal length %d exceeds FFT size %d", len(signal), fftSize)
	}

	winType := a.Window
	if winType == 0 {
		winType = window.TypeHann
	}

	coeffs := window.Generate(winType, len(signal))

	in := make([]complex128, fftSize)

	for i := range signal {
		w := 1.0
		if len(coeffs) == len(signal) {
			w = coeffs[i]
		}

		in[i] = complex(signal[i]*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectral: creating FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT: %w", err)
	}

	return out[:fftSize/2+1], nil
}

// TransformColumns transforms each signal column independently. All
// columns must have the same length.
func (a Analyzer) TransformColumns(columns [][]float64) ([][]complex128, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("spectral: no signal columns")
	}

	out := make([][]complex128, len(columns))

	for i, col := range columns {
		if len(col) != len(columns[0]) {
			return nil, fmt.Errorf("spectral: column %d length %d differs from %d", i, len(col), len(columns[0]))
		}

		spectrum, err := a.Transform(col)
		if err != nil {
			return nil, err
		}

		out[i] = spectrum
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
