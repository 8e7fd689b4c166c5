package stats

import (
	"math"
)

// DistanceMetric identifies a built-in distance metric
type DistanceMetric int

const (
	// SquaredEuclideanDistance is the default metric for shapelet profiles
	SquaredEuclideanDistance DistanceMetric = iota
	EuclideanDistance
	ManhattanDistance
)

// DistanceFunction is a function type for computing distance between two
// equal-length vectors. Implementations must return non-negative values.
type DistanceFunction func(a, b []float64) float64

// GetDistanceFunction returns the appropriate distance function for the given metric
func GetDistanceFunction(metric DistanceMetric) DistanceFunction {
	switch metric {
	case EuclideanDistance:
		return EuclideanDistanceFunc
	case ManhattanDistance:
		return ManhattanDistanceFunc
	default:
		return SquaredEuclideanDistanceFunc
	}
}

// SquaredEuclideanDistanceFunc calculates squared Euclidean distance between two points
func SquaredEuclideanDistanceFunc(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// EuclideanDistanceFunc calculates Euclidean distance between two points
func EuclideanDistanceFunc(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclideanDistanceFunc(a, b))
}

// ManhattanDistanceFunc calculates Manhattan (L1) distance between two points
func ManhattanDistanceFunc(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// GetDistanceMetricName returns human-readable name for distance metric
func GetDistanceMetricName(metric DistanceMetric) string {
	switch metric {
	case SquaredEuclideanDistance:
		return "SquaredEuclidean"
	case EuclideanDistance:
		return "Euclidean"
	case ManhattanDistance:
		return "Manhattan"
	default:
		return "Unknown"
	}
}
