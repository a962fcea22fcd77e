package spectral

import "fmt"

// Axis returns the one-sided FFT bin frequencies for the given sample
// rate and FFT size: fftSize/2+1 bins from DC to Nyquist, with bin i at
// i*sampleRate/fftSize Hz.
func Axis(sampleRate float64, fftSize int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectral: sample rate must be > 0: %f", sampleRate)
	}

	if fftSize < 2 {
		return nil, fmt.Errorf("spectral: FFT size must be >= 2: %d", fftSize)
	}

	axis := make([]float64, fftSize/2+1)
	for i := range axis {
		axis[i] = float64(i) * sampleRate / float64(fftSize)
	}

	return axis, nil
}
