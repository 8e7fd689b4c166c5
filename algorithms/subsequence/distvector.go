package subsequence

import (
	"github.com/tsfeat/rdst/algorithms/common"
	"github.com/tsfeat/rdst/algorithms/stats"
)

// DistanceVector computes the distance profile between a shapelet value
// vector and every sliding window of x under the shapelet's length and
// dilation. values must already be z-normalized when normalize is true;
// each window is then z-normalized independently before the distance call.
func DistanceVector(x, values []float64, length, dilation int, dist stats.DistanceFunction, normalize, usePhase bool) []float64 {
	windows := Windows(x, length, dilation, usePhase)
	out := make([]float64, len(windows))
	for i, w := range windows {
		if normalize {
			common.ZNormalizeInPlace(w)
		}
		out[i] = dist(w, values)
	}
	return out
}
