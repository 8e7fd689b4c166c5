package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredEuclideanDistanceFunc(t *testing.T) {
	assert.Equal(t, 0.0, SquaredEuclideanDistanceFunc([]float64{1, 2}, []float64{1, 2}))
	assert.Equal(t, 25.0, SquaredEuclideanDistanceFunc([]float64{0, 3}, []float64{4, 0}))
}

func TestEuclideanDistanceFunc(t *testing.T) {
	assert.Equal(t, 5.0, EuclideanDistanceFunc([]float64{0, 3}, []float64{4, 0}))
}

func TestManhattanDistanceFunc(t *testing.T) {
	assert.Equal(t, 7.0, ManhattanDistanceFunc([]float64{0, 3}, []float64{4, 0}))
}

func TestGetDistanceFunction(t *testing.T) {
	a := []float64{0, 3}
	b := []float64{4, 0}

	assert.Equal(t, 25.0, GetDistanceFunction(SquaredEuclideanDistance)(a, b))
	assert.Equal(t, 5.0, GetDistanceFunction(EuclideanDistance)(a, b))
	assert.Equal(t, 7.0, GetDistanceFunction(ManhattanDistance)(a, b))
	// Unknown metrics fall back to the default
	assert.Equal(t, 25.0, GetDistanceFunction(DistanceMetric(99))(a, b))
}

func TestGetDistanceMetricName(t *testing.T) {
	assert.Equal(t, "SquaredEuclidean", GetDistanceMetricName(SquaredEuclideanDistance))
	assert.Equal(t, "Euclidean", GetDistanceMetricName(EuclideanDistance))
	assert.Equal(t, "Manhattan", GetDistanceMetricName(ManhattanDistance))
	assert.Equal(t, "Unknown", GetDistanceMetricName(DistanceMetric(99)))
}
