package stats

import (
	"fmt"
	"math"
	"sort"
)

// Percentile calculation with linear interpolation between closest ranks
// (R-6/Excel method), matching the convention used by most numeric packages.
//
// Reference:
//   - Hyndman, R.J., Fan, Y. (1996). "Sample Quantiles in Statistical Packages"
//     The American Statistician, 50(4), 361-365

// Percentile computes the p-th percentile of data, p in [0, 100].
// The input is not modified.
func Percentile(data []float64, p float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty data")
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %f must be between 0 and 100", p)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return percentileSorted(sorted, p), nil
}

// PercentileRange computes the pMin-th and pMax-th percentiles of data,
// sharing a single sort of the input. The input is not modified.
func PercentileRange(data []float64, pMin, pMax float64) (float64, float64, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("empty data")
	}
	if pMin < 0 || pMax > 100 || pMin > pMax {
		return 0, 0, fmt.Errorf("invalid percentile range [%f, %f]", pMin, pMax)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return percentileSorted(sorted, pMin), percentileSorted(sorted, pMax), nil
}

// percentileSorted implements linear interpolation between closest ranks.
// Formula: h = (n-1)*q + 1, 1-based.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	q := p / 100.0
	h := float64(n-1)*q + 1.0

	if h <= 1.0 {
		return sorted[0]
	}
	if h >= float64(n) {
		return sorted[n-1]
	}

	lower := int(math.Floor(h)) - 1
	upper := int(math.Ceil(h)) - 1

	if lower == upper {
		return sorted[lower]
	}

	fraction := h - math.Floor(h)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
