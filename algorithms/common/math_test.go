package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestPopStd(t *testing.T) {
	// Population std of [1,2,3,4] is sqrt(1.25)
	assert.InDelta(t, 1.1180339887498949, PopStd([]float64{1, 2, 3, 4}), 1e-12)
	assert.Equal(t, 0.0, PopStd([]float64{5, 5, 5}))
	assert.Equal(t, 0.0, PopStd(nil))
}

func TestZNormalize(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	normalized := ZNormalize(data)

	assert.Equal(t, []float64{3, 1, 4, 1, 5, 9, 2, 6}, data, "input must not be modified")
	assert.InDelta(t, 0.0, Mean(normalized), 1e-12)
	assert.InDelta(t, 1.0, PopStd(normalized), 1e-6)
}

func TestZNormalizeConstant(t *testing.T) {
	data := []float64{2, 2, 2, 2}
	ZNormalizeInPlace(data)
	for _, v := range data {
		assert.Equal(t, 0.0, v, "constant data must normalize to zero, not NaN")
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
