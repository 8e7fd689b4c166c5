package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Basic statistical functions shared across algorithms, using gonum for robustness

// Epsilon added to standard deviations before dividing, so that constant
// windows normalize to zero instead of NaN.
const Epsilon = 1e-8

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// PopStd calculates the population standard deviation (ddof = 0)
func PopStd(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	mean := stat.Mean(data, nil)
	return math.Sqrt(stat.MomentAbout(2, data, mean, nil))
}

// ZNormalize returns a z-normalized copy of data using the population
// standard deviation: (x - mean) / (std + Epsilon)
func ZNormalize(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	ZNormalizeInPlace(out)
	return out
}

// ZNormalizeInPlace z-normalizes data in place using the population
// standard deviation
func ZNormalizeInPlace(data []float64) {
	if len(data) == 0 {
		return
	}
	mean := Mean(data)
	std := PopStd(data) + Epsilon
	for i, v := range data {
		data[i] = (v - mean) / std
	}
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
