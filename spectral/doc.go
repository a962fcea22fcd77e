// Package spectral provides the frequency axis and windowed-FFT
// spectrum used by the receptive-field pipeline.
//
// It does not implement the FFT itself; transforms are delegated to the
// algo-fft backend, and analysis windows come from algo-dsp.
package spectral
