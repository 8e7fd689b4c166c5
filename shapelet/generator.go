package shapelet

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/tsfeat/rdst/algorithms/stats"
	"github.com/tsfeat/rdst/algorithms/subsequence"
	"github.com/tsfeat/rdst/logging"
)

// Generator samples shapelet content (values and occurrence thresholds)
// from a training set, enforcing diversity through a self-similarity
// exclusion mask.
type Generator struct {
	config *Config
	logger logging.Logger
}

// NewGenerator creates a generator with the given configuration
func NewGenerator(config *Config) *Generator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Generator{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "shapelet_generator",
		}),
	}
}

// genState carries the shared read-only inputs and the pre-allocated,
// disjointly-written output buffers of one generation run. Every dilation
// group writes only to the segments owned by its shapelet indices.
type genState struct {
	X      [][][]float64
	y      []int
	params *shapeletParams

	valueOffsets   []int
	channelOffsets []int
	values         []float64
	channelIDs     []int
	thresholds     []float64
	kept           []bool

	nSamples    int
	nChannels   int
	nTimestamps int
	dist        stats.DistanceFunction
}

// Generate draws NShapelets candidate shapelets from X and returns the
// retained set, in original relative order. X is indexed
// [sample][channel][time] and must be rectangular; y holds one class id per
// sample. Shapelets left without an eligible anchor by the exclusion mask
// are silently dropped, so the result may be smaller than requested.
//
// Generation is parallel across unique dilation values. Each dilation group
// owns its exclusion mask and draws from a PCG stream keyed by
// (Seed, dilation), so a fixed seed yields an identical set at any worker
// count.
func (g *Generator) Generate(X [][][]float64, y []int) (*ShapeletSet, error) {
	nSamples, nChannels, nTimestamps, err := tensorDims(X)
	if err != nil {
		return nil, err
	}
	if len(y) != nSamples {
		return nil, fmt.Errorf("label count %d does not match sample count %d", len(y), nSamples)
	}
	if err := g.config.Validate(nChannels, nTimestamps); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := g.config
	maxCh := cfg.maxChannelsFor(nChannels)
	baseRng := rand.New(rand.NewPCG(cfg.Seed, 0))
	params := sampleParams(baseRng, cfg, nTimestamps, maxCh)
	valueOffsets, channelOffsets := params.offsets()

	st := &genState{
		X:              X,
		y:              y,
		params:         params,
		valueOffsets:   valueOffsets,
		channelOffsets: channelOffsets,
		values:         make([]float64, valueOffsets[cfg.NShapelets]),
		channelIDs:     make([]int, channelOffsets[cfg.NShapelets]),
		thresholds:     make([]float64, cfg.NShapelets),
		kept:           make([]bool, cfg.NShapelets),
		nSamples:       nSamples,
		nChannels:      nChannels,
		nTimestamps:    nTimestamps,
		dist:           cfg.distance(),
	}

	dilations, groups := params.uniqueDilations()

	g.logger.Debug("Starting shapelet generation", logging.Fields{
		"n_shapelets":  cfg.NShapelets,
		"n_samples":    nSamples,
		"n_channels":   nChannels,
		"n_timestamps": nTimestamps,
		"n_dilations":  len(dilations),
	})

	jobs := make(chan int, len(dilations))
	var wg sync.WaitGroup
	for range workerCount(len(dilations), cfg.NumWorkers) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				dilation := dilations[idx]
				rng := rand.New(rand.NewPCG(cfg.Seed, uint64(dilation)))
				g.generateGroup(st, groups[dilation], dilation, rng)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range dilations {
			jobs <- i
		}
	}()

	wg.Wait()

	set := g.compact(st)

	if dropped := cfg.NShapelets - set.Len(); dropped > 0 {
		g.logger.Debug("Dropped shapelets without an eligible anchor", logging.Fields{
			"dropped":  dropped,
			"retained": set.Len(),
		})
	}

	return set, nil
}

// generateGroup populates every shapelet of one dilation group. The group
// exclusively owns its mask and RNG; writes to the shared buffers stay
// within the segments of the group's shapelet indices.
func (g *Generator) generateGroup(st *genState, ids []int, dilation int, rng *rand.Rand) {
	cfg := g.config
	n := st.nTimestamps

	// Eligibility mask per (normalize, sample, channel, time), all positions
	// initially available
	mask := make([]bool, 2*st.nSamples*st.nChannels*n)
	for i := range mask {
		mask[i] = true
	}
	maskAt := func(norm, sample, channel, t int) int {
		return ((norm*st.nSamples+sample)*st.nChannels+channel)*n + t
	}

	minLength := st.params.lengths[ids[0]]
	for _, i := range ids[1:] {
		if st.params.lengths[i] < minLength {
			minLength = st.params.lengths[i]
		}
	}

	type anchor struct{ sample, index int }
	var anchors []anchor

	for _, iShp := range ids {
		length := st.params.lengths[iShp]
		nCh := st.params.nChannels[iShp]
		norm := 0
		if st.params.normalize[iShp] {
			norm = 1
		}
		dShape := subsequence.NumWindows(n, length, dilation, cfg.UsePhase)

		channels := rng.Perm(st.nChannels)[:nCh]

		// Anchor positions where enough mask entries across the chosen
		// channels are still available
		anchors = anchors[:0]
		for s := range st.nSamples {
			for t := range dShape {
				available := 0
				for _, ch := range channels {
					if mask[maskAt(norm, s, ch, t)] {
						available++
					}
				}
				if float64(available) >= float64(nCh)*cfg.Alpha {
					anchors = append(anchors, anchor{sample: s, index: t})
				}
			}
		}
		if len(anchors) == 0 {
			continue // dropped
		}
		picked := anchors[rng.IntN(len(anchors))]

		// Comparison sample: a different sample of the same class when one
		// exists, else the anchor sample itself
		test := picked.sample
		var classmates []int
		for s, label := range st.y {
			if label == st.y[picked.sample] && s != picked.sample {
				classmates = append(classmates, s)
			}
		}
		if len(classmates) > 0 {
			test = classmates[rng.IntN(len(classmates))]
		}

		// Exclude the sampled region on the anchor sample only. The wrap is
		// applied regardless of phase invariance: sampling is already
		// restricted to dShape, so wrapped positions only widen the
		// exclusion.
		alphaSize := length - int(math.Max(1, (1-cfg.Alpha)*float64(minLength)))
		for _, ch := range channels {
			for j := range alphaSize {
				backward := ((picked.index-j*dilation)%n + n) % n
				forward := (picked.index + j*dilation) % n
				mask[maskAt(norm, picked.sample, ch, backward)] = false
				mask[maskAt(norm, picked.sample, ch, forward)] = false
			}
		}

		// Extract per-channel values and accumulate the distance profile
		// against the comparison sample
		profile := make([]float64, dShape)
		valueBase := st.valueOffsets[iShp]
		for k, ch := range channels {
			var v []float64
			if cfg.UsePhase {
				v = subsequence.ExtractPhase(st.X[picked.sample][ch], picked.index, length, dilation, norm == 1)
			} else {
				v = subsequence.Extract(st.X[picked.sample][ch], picked.index, length, dilation, norm == 1)
			}
			copy(st.values[valueBase+k*length:valueBase+(k+1)*length], v)

			dv := subsequence.DistanceVector(st.X[test][ch], v, length, dilation, st.dist, norm == 1, cfg.UsePhase)
			floats.Add(profile, dv)
		}
		copy(st.channelIDs[st.channelOffsets[iShp]:st.channelOffsets[iShp+1]], channels)

		lo, hi, err := stats.PercentileRange(profile, cfg.PMin, cfg.PMax)
		if err != nil {
			// Unreachable after config validation; treat as a drop rather
			// than fail a whole generation run mid-loop
			continue
		}
		st.thresholds[iShp] = lo + rng.Float64()*(hi-lo)
		st.kept[iShp] = true
	}
}

// compact assembles the final set from the retained shapelets, preserving
// original relative order
func (g *Generator) compact(st *genState) *ShapeletSet {
	retained := 0
	for _, k := range st.kept {
		if k {
			retained++
		}
	}

	set := &ShapeletSet{
		Lengths:        make([]int, 0, retained),
		Dilations:      make([]int, 0, retained),
		Normalize:      make([]bool, 0, retained),
		Thresholds:     make([]float64, 0, retained),
		NChannels:      make([]int, 0, retained),
		UsePhase:       g.config.UsePhase,
		valueOffsets:   make([]int, 1, retained+1),
		channelOffsets: make([]int, 1, retained+1),
	}

	for i := range st.kept {
		if !st.kept[i] {
			continue
		}
		set.Lengths = append(set.Lengths, st.params.lengths[i])
		set.Dilations = append(set.Dilations, st.params.dilations[i])
		set.Normalize = append(set.Normalize, st.params.normalize[i])
		set.Thresholds = append(set.Thresholds, st.thresholds[i])
		set.NChannels = append(set.NChannels, st.params.nChannels[i])
		set.Values = append(set.Values, st.values[st.valueOffsets[i]:st.valueOffsets[i+1]]...)
		set.ChannelIDs = append(set.ChannelIDs, st.channelIDs[st.channelOffsets[i]:st.channelOffsets[i+1]]...)
		set.valueOffsets = append(set.valueOffsets, len(set.Values))
		set.channelOffsets = append(set.channelOffsets, len(set.ChannelIDs))
	}

	return set
}

// tensorDims validates that X is a non-empty rectangular
// [sample][channel][time] tensor and returns its dimensions
func tensorDims(X [][][]float64) (nSamples, nChannels, nTimestamps int, err error) {
	if len(X) == 0 {
		return 0, 0, 0, fmt.Errorf("empty dataset")
	}
	nSamples = len(X)
	nChannels = len(X[0])
	if nChannels == 0 {
		return 0, 0, 0, fmt.Errorf("sample 0 has no channels")
	}
	nTimestamps = len(X[0][0])
	if nTimestamps == 0 {
		return 0, 0, 0, fmt.Errorf("sample 0 has no timestamps")
	}
	for s := range X {
		if len(X[s]) != nChannels {
			return 0, 0, 0, fmt.Errorf("sample %d has %d channels, want %d", s, len(X[s]), nChannels)
		}
		for ch := range X[s] {
			if len(X[s][ch]) != nTimestamps {
				return 0, 0, 0, fmt.Errorf("sample %d channel %d has %d timestamps, want %d", s, ch, len(X[s][ch]), nTimestamps)
			}
		}
	}
	return nSamples, nChannels, nTimestamps, nil
}
