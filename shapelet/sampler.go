package shapelet

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/tsfeat/rdst/algorithms/common"
)

// shapeletParams holds the sampled parameters of every requested shapelet,
// before values and thresholds exist. Buffers for values and channel
// assignments are sized exactly from these arrays, so generation never
// resizes anything.
type shapeletParams struct {
	lengths   []int
	dilations []int
	normalize []bool
	nChannels []int
}

// dilationBound returns the largest admissible dilation for a shapelet of
// the given length: floor((n_timestamps-1)/(length-1)), so the receptive
// field (length-1)*dilation never exceeds the series
func dilationBound(nTimestamps, length int) int {
	return (nTimestamps - 1) / (length - 1)
}

// sampleParams draws length, dilation, normalization flag and channel count
// for every requested shapelet. Lengths are uniform over the configured
// sizes. Dilations are log-uniform within the dilation bound, favoring
// diversity across scales, or uniform over primes within the bound under
// the prime scheme. Channel counts are uniform in [1, maxChannels].
func sampleParams(rng *rand.Rand, cfg *Config, nTimestamps, maxChannels int) *shapeletParams {
	n := cfg.NShapelets
	p := &shapeletParams{
		lengths:   make([]int, n),
		dilations: make([]int, n),
		normalize: make([]bool, n),
		nChannels: make([]int, n),
	}

	for i := range n {
		p.lengths[i] = cfg.ShapeletSizes[rng.IntN(len(cfg.ShapeletSizes))]
	}

	if cfg.PrimeScheme {
		maxBound := 0
		for i := range n {
			if b := dilationBound(nTimestamps, p.lengths[i]); b > maxBound {
				maxBound = b
			}
		}
		// Candidates are computed once up to the largest bound needed
		primes := common.PrimesUpTo(maxBound)
		for i := range n {
			bound := dilationBound(nTimestamps, p.lengths[i])
			k := sort.SearchInts(primes, bound+1)
			p.dilations[i] = primes[rng.IntN(k)]
		}
	} else {
		for i := range n {
			upper := math.Log2(float64(dilationBound(nTimestamps, p.lengths[i])))
			p.dilations[i] = int(math.Pow(2, rng.Float64()*upper))
		}
	}

	for i := range n {
		p.normalize[i] = rng.Float64() < cfg.PNorm
	}
	for i := range n {
		p.nChannels[i] = 1 + rng.IntN(maxChannels)
	}

	return p
}

// offsets returns prefix sums locating each shapelet's segment in the flat
// values and channel-assignment buffers:
// values buffer size is sum(lengths[i]*nChannels[i]), channel buffer size
// is sum(nChannels[i]).
func (p *shapeletParams) offsets() (valueOffsets, channelOffsets []int) {
	n := len(p.lengths)
	valueOffsets = make([]int, n+1)
	channelOffsets = make([]int, n+1)
	for i := range n {
		valueOffsets[i+1] = valueOffsets[i] + p.lengths[i]*p.nChannels[i]
		channelOffsets[i+1] = channelOffsets[i] + p.nChannels[i]
	}
	return valueOffsets, channelOffsets
}

// uniqueDilations returns the distinct dilation values in ascending order
// and the shapelet indices grouped per dilation, preserving original
// relative order inside each group.
func (p *shapeletParams) uniqueDilations() ([]int, map[int][]int) {
	groups := make(map[int][]int)
	for i, d := range p.dilations {
		groups[d] = append(groups[d], i)
	}
	dilations := make([]int, 0, len(groups))
	for d := range groups {
		dilations = append(dilations, d)
	}
	sort.Ints(dilations)
	return dilations, groups
}
