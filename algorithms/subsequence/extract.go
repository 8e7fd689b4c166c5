// Package subsequence provides the dilation and phase aware window
// primitives behind the shapelet transform: extracting a single dilated
// subsequence, building sliding-window views of a series, and computing
// the distance profile between a shapelet and those views.
package subsequence

import (
	"github.com/tsfeat/rdst/algorithms/common"
)

// Extract fetches a dilated subsequence of the given length from x starting
// at index start. The caller must guarantee
// start + (length-1)*dilation < len(x). When normalize is true the result is
// z-normalized with the population standard deviation.
func Extract(x []float64, start, length, dilation int, normalize bool) []float64 {
	v := make([]float64, length)
	idx := start
	for j := range length {
		v[j] = x[idx]
		idx += dilation
	}
	if normalize {
		common.ZNormalizeInPlace(v)
	}
	return v
}

// ExtractPhase fetches a dilated subsequence from x starting at index start,
// wrapping around the series boundary (phase invariance). start may be any
// position in [0, len(x)).
func ExtractPhase(x []float64, start, length, dilation int, normalize bool) []float64 {
	n := len(x)
	v := make([]float64, length)
	idx := start
	for j := range length {
		v[j] = x[idx]
		idx = (idx + dilation) % n
	}
	if normalize {
		common.ZNormalizeInPlace(v)
	}
	return v
}
