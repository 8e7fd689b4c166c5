package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileLinearInterpolation(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tc := range cases {
		got, err := Percentile(data, tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "percentile %v", tc.p)
	}
}

func TestPercentileUnsortedInput(t *testing.T) {
	data := []float64{4, 1, 3, 2}
	got, err := Percentile(data, 50)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)
	assert.Equal(t, []float64{4, 1, 3, 2}, data, "input must not be modified")
}

func TestPercentileSingleValue(t *testing.T) {
	got, err := Percentile([]float64{7}, 42)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestPercentileErrors(t *testing.T) {
	_, err := Percentile(nil, 50)
	assert.Error(t, err)
	_, err = Percentile([]float64{1}, -1)
	assert.Error(t, err)
	_, err = Percentile([]float64{1}, 101)
	assert.Error(t, err)
}

func TestPercentileRange(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	lo, hi, err := PercentileRange(data, 25, 75)
	require.NoError(t, err)
	assert.InDelta(t, 1.75, lo, 1e-12)
	assert.InDelta(t, 3.25, hi, 1e-12)

	// Equal bounds collapse to a single value
	lo, hi, err = PercentileRange(data, 50, 50)
	require.NoError(t, err)
	assert.Equal(t, lo, hi)

	_, _, err = PercentileRange(data, 75, 25)
	assert.Error(t, err)
	_, _, err = PercentileRange(nil, 25, 75)
	assert.Error(t, err)
}
