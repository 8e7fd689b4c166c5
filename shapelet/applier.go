package shapelet

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/tsfeat/rdst/algorithms/common"
	"github.com/tsfeat/rdst/algorithms/stats"
	"github.com/tsfeat/rdst/algorithms/subsequence"
	"github.com/tsfeat/rdst/logging"
)

// Applier transforms batches of series into feature vectors using a
// finalized shapelet set. The set is consumed read-only, so one applier may
// transform any number of batches.
type Applier struct {
	config *Config
	logger logging.Logger
}

// NewApplier creates an applier with the given configuration
func NewApplier(config *Config) *Applier {
	if config == nil {
		config = DefaultConfig()
	}
	return &Applier{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "shapelet_applier",
		}),
	}
}

// paramGroup buckets shapelets sharing (length, dilation), so the
// sliding-window view of a sample is built once per group
type paramGroup struct {
	length   int
	dilation int
	ids      []int // original shapelet indices, relative order preserved
}

// Apply computes the feature matrix of X under the shapelet set: for every
// shapelet, the minimum of its distance profile, the argmin position, and
// the count of positions strictly below its threshold. Row i of the result
// holds sample i; shapelet j owns columns [3j, 3j+2] in the set's original
// order. Samples are processed in parallel.
func (a *Applier) Apply(X [][][]float64, set *ShapeletSet) (*mat.Dense, error) {
	nSamples, nChannels, nTimestamps, err := tensorDims(X)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, fmt.Errorf("nil shapelet set")
	}
	if set.Len() == 0 {
		// A well-formed empty feature matrix: zero shapelets produce zero
		// columns for every sample
		return &mat.Dense{}, nil
	}
	for _, ch := range set.ChannelIDs {
		if ch >= nChannels {
			return nil, fmt.Errorf("shapelet set uses channel %d but input has %d channels", ch, nChannels)
		}
	}
	groups := groupByParams(set)
	if !set.UsePhase {
		for _, grp := range groups {
			if subsequence.NumWindows(nTimestamps, grp.length, grp.dilation, false) < 1 {
				return nil, fmt.Errorf("receptive field of length %d dilation %d exceeds %d timestamps",
					grp.length, grp.dilation, nTimestamps)
			}
		}
	}

	a.logger.Debug("Applying shapelet set", logging.Fields{
		"n_samples":    nSamples,
		"n_shapelets":  set.Len(),
		"n_groups":     len(groups),
		"n_timestamps": nTimestamps,
	})

	dist := a.config.distance()
	out := mat.NewDense(nSamples, 3*set.Len(), nil)

	jobs := make(chan int, nSamples)
	var wg sync.WaitGroup
	for range workerCount(nSamples, a.config.NumWorkers) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				// Rows are disjoint across workers
				applySample(X[s], set, groups, dist, out.RawRowView(s))
			}
		}()
	}

	go func() {
		defer close(jobs)
		for s := range nSamples {
			jobs <- s
		}
	}()

	wg.Wait()
	return out, nil
}

// groupByParams buckets shapelet indices by unique (length, dilation) in
// first-seen order
func groupByParams(set *ShapeletSet) []*paramGroup {
	var groups []*paramGroup
	index := make(map[[2]int]*paramGroup)
	for i := range set.Len() {
		key := [2]int{set.Lengths[i], set.Dilations[i]}
		grp, ok := index[key]
		if !ok {
			grp = &paramGroup{length: key[0], dilation: key[1]}
			index[key] = grp
			groups = append(groups, grp)
		}
		grp.ids = append(grp.ids, i)
	}
	return groups
}

// applySample writes the features of one sample into row. The window view
// is local to this call: normalizing it in place for the z-normalized
// shapelets of a group is never observed by other samples or groups.
func applySample(sample [][]float64, set *ShapeletSet, groups []*paramGroup, dist stats.DistanceFunction, row []float64) {
	for _, grp := range groups {
		windows := subsequence.WindowsMulti(sample, grp.length, grp.dilation, set.UsePhase)

		// Raw windows first, for the shapelets that do not normalize
		hasNormalized := false
		for _, i := range grp.ids {
			if set.Normalize[i] {
				hasNormalized = true
				continue
			}
			applyOne(set, i, windows, dist, row)
		}
		if !hasNormalized {
			continue
		}

		// Then z-normalize every window in place and apply the rest
		for _, channelWindows := range windows {
			for _, w := range channelWindows {
				common.ZNormalizeInPlace(w)
			}
		}
		for _, i := range grp.ids {
			if set.Normalize[i] {
				applyOne(set, i, windows, dist, row)
			}
		}
	}
}

// applyOne extracts the three features of shapelet i from the distance
// profile over the prepared window view
func applyOne(set *ShapeletSet, i int, windows [][][]float64, dist stats.DistanceFunction, row []float64) {
	channels := set.ChannelsAt(i)
	threshold := set.Thresholds[i]
	nPositions := len(windows[channels[0]])

	minDist := math.Inf(1)
	argmin := 0
	matches := 0
	for pos := range nPositions {
		d := 0.0
		for k, ch := range channels {
			d += dist(windows[ch][pos], set.ChannelValuesAt(i, k))
		}
		if d < minDist {
			minDist = d
			argmin = pos
		}
		if d < threshold {
			matches++
		}
	}

	row[3*i] = minDist
	row[3*i+1] = float64(argmin)
	row[3*i+2] = float64(matches)
}
