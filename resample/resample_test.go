package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourierConstantSignal(t *testing.T) {
	x := []float64{3, 3, 3, 3, 3, 3, 3, 3}

	for _, m := range []int{4, 8, 16, 5, 1} {
		out, err := Fourier(x, m)
		require.NoError(t, err)
		require.Len(t, out, m)
		for i, v := range out {
			assert.InDelta(t, 3.0, v, 1e-9, "m=%d index %d", m, i)
		}
	}
}

func TestFourierBandLimitedExact(t *testing.T) {
	// A low-frequency sinusoid is reconstructed exactly at the new rate
	const n, m, freq = 32, 64, 3.0
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / n)
	}

	out, err := Fourier(x, m)
	require.NoError(t, err)
	for i, v := range out {
		want := math.Sin(2 * math.Pi * freq * float64(i) / m)
		assert.InDelta(t, want, v, 1e-9, "index %d", i)
	}
}

func TestFourierDownsampleRecoversSamples(t *testing.T) {
	// Downsampling by two keeps every other sample of a band-limited signal
	const n, m, freq = 64, 32, 3.0
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * freq * float64(i) / n)
	}

	out, err := Fourier(x, m)
	require.NoError(t, err)
	for i, v := range out {
		assert.InDelta(t, x[2*i], v, 1e-9, "index %d", i)
	}
}

func TestFourierSameLengthCopies(t *testing.T) {
	x := []float64{1, -2, 3, -4}
	out, err := Fourier(x, 4)
	require.NoError(t, err)
	assert.Equal(t, x, out)

	out[0] = 99
	assert.Equal(t, 1.0, x[0], "output must not alias the input")
}

func TestFourierErrors(t *testing.T) {
	_, err := Fourier(nil, 8)
	assert.Error(t, err)

	_, err = Fourier([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = Fourier([]float64{1, 2, 3}, -2)
	assert.Error(t, err)
}

func TestMaxLength(t *testing.T) {
	X := [][][]float64{
		{{1, 2, 3}, {1, 2}},
		{{1, 2, 3, 4, 5}},
	}
	assert.Equal(t, 5, MaxLength(X))
	assert.Equal(t, 0, MaxLength(nil))
}

func TestToFixedLength(t *testing.T) {
	X := [][][]float64{
		{{2, 2, 2, 2}, {5, 5}},
		{{1, 1, 1, 1, 1, 1}},
	}

	out, err := ToFixedLength(X, 6)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, out[0], 2)

	for _, sample := range out {
		for _, channel := range sample {
			require.Len(t, channel, 6)
		}
	}
	for i := range out[0][1] {
		assert.InDelta(t, 5.0, out[0][1][i], 1e-9)
	}

	_, err = ToFixedLength([][][]float64{{{}}}, 6)
	assert.Error(t, err, "empty channel")
}
