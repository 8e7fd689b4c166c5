// Package resample harmonizes variable-length time series datasets to the
// fixed-length tensor the shapelet transform requires, using FFT-domain
// resampling (band-limited interpolation).
package resample

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

// Fourier resamples x to m points in the frequency domain: the spectrum is
// truncated or zero-padded to the target length and inverse transformed.
// The signal is assumed periodic; band-limited inputs are reconstructed
// exactly at the new rate.
func Fourier(x []float64, m int) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("empty series")
	}
	if m <= 0 {
		return nil, fmt.Errorf("target length must be positive, got %d", m)
	}
	if m == n {
		out := make([]float64, n)
		copy(out, x)
		return out, nil
	}

	spectrum := fft.FFTReal(x)
	resized := make([]complex128, m)

	// Copy the shared low-frequency bins; h is the shorter of the two
	// spectra
	h := min(n, m)
	half := h / 2
	resized[0] = spectrum[0]
	for k := 1; k < half; k++ {
		resized[k] = spectrum[k]
		resized[m-k] = spectrum[n-k]
	}

	// When h == 1 only the DC bin survives
	if h > 1 {
		switch {
		case h%2 == 1:
			resized[half] = spectrum[half]
			resized[m-half] = spectrum[n-half]
		case m < n:
			// Downsampling past an even bin count: fold the old positive
			// and negative components at the new Nyquist frequency
			resized[half] = spectrum[half] + spectrum[n-half]
		default:
			// Upsampling from an even bin count: split the old Nyquist
			// component symmetrically
			c := 0.5 * spectrum[half]
			resized[half] = c
			resized[m-half] = c
		}
	}

	inverse := fft.IFFT(resized)
	scale := float64(m) / float64(n)
	out := make([]float64, m)
	for i := range out {
		out[i] = real(inverse[i]) * scale
	}
	return out, nil
}

// MaxLength returns the longest channel length in a ragged
// [sample][channel][time] dataset
func MaxLength(X [][][]float64) int {
	longest := 0
	for _, sample := range X {
		for _, channel := range sample {
			if len(channel) > longest {
				longest = len(channel)
			}
		}
	}
	return longest
}

// ToFixedLength resamples every channel of every sample to m points,
// producing the rectangular tensor the shapelet transform consumes
func ToFixedLength(X [][][]float64, m int) ([][][]float64, error) {
	out := make([][][]float64, len(X))
	for s, sample := range X {
		out[s] = make([][]float64, len(sample))
		for ch, channel := range sample {
			resampled, err := Fourier(channel, m)
			if err != nil {
				return nil, fmt.Errorf("sample %d channel %d: %w", s, ch, err)
			}
			out[s][ch] = resampled
		}
	}
	return out, nil
}
