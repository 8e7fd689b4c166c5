// Package shapelet implements the random dilated shapelet transform:
// sampling randomized, possibly dilated and z-normalized subsequences from
// a training set under a self-similarity exclusion constraint, and applying
// them to turn arbitrary series into fixed-length feature vectors.
package shapelet

// Shapelet is a single generated feature detector: a flat multichannel
// value vector with its sampling parameters and occurrence threshold.
type Shapelet struct {
	// Length is the number of points per channel
	Length int `json:"length"`

	// Dilation is the stride between consecutive points (1 = contiguous)
	Dilation int `json:"dilation"`

	// Normalize indicates whether windows are z-normalized before distance
	Normalize bool `json:"normalize"`

	// Channels are the channel indices this shapelet reads, drawn without
	// replacement
	Channels []int `json:"channels"`

	// Values holds len(Channels)*Length reals, one Length-long vector per
	// channel in Channels order. Already z-normalized when Normalize is set.
	Values []float64 `json:"values"`

	// Threshold binarizes the distance profile for the occurrence count
	Threshold float64 `json:"threshold"`
}

// ShapeletSet is an ordered, write-once collection of shapelets laid out as
// flat arenas indexed by prefix sums, so per-shapelet slices can be handed
// out without copying. Consumers must treat all fields as read-only.
type ShapeletSet struct {
	Lengths    []int
	Dilations  []int
	Normalize  []bool
	Thresholds []float64
	NChannels  []int

	// Values is the arena of all shapelet values; shapelet i owns
	// Values[valueOffsets[i]:valueOffsets[i+1]]
	Values []float64

	// ChannelIDs is the arena of all channel assignments; shapelet i owns
	// ChannelIDs[channelOffsets[i]:channelOffsets[i+1]]
	ChannelIDs []int

	// UsePhase records whether the set was generated with phase invariance;
	// application must use the same windowing
	UsePhase bool

	valueOffsets   []int
	channelOffsets []int
}

// NewShapeletSet assembles a set from individual shapelets, for external
// tooling and tests. Generation builds sets directly in arena form.
func NewShapeletSet(shapelets []Shapelet, usePhase bool) *ShapeletSet {
	s := &ShapeletSet{
		Lengths:        make([]int, 0, len(shapelets)),
		Dilations:      make([]int, 0, len(shapelets)),
		Normalize:      make([]bool, 0, len(shapelets)),
		Thresholds:     make([]float64, 0, len(shapelets)),
		NChannels:      make([]int, 0, len(shapelets)),
		UsePhase:       usePhase,
		valueOffsets:   make([]int, 1, len(shapelets)+1),
		channelOffsets: make([]int, 1, len(shapelets)+1),
	}
	for _, shp := range shapelets {
		s.Lengths = append(s.Lengths, shp.Length)
		s.Dilations = append(s.Dilations, shp.Dilation)
		s.Normalize = append(s.Normalize, shp.Normalize)
		s.Thresholds = append(s.Thresholds, shp.Threshold)
		s.NChannels = append(s.NChannels, len(shp.Channels))
		s.Values = append(s.Values, shp.Values...)
		s.ChannelIDs = append(s.ChannelIDs, shp.Channels...)
		s.valueOffsets = append(s.valueOffsets, len(s.Values))
		s.channelOffsets = append(s.channelOffsets, len(s.ChannelIDs))
	}
	return s
}

// Len returns the number of retained shapelets
func (s *ShapeletSet) Len() int {
	return len(s.Lengths)
}

// ValuesAt returns the flat value vector of shapelet i as a view into the arena
func (s *ShapeletSet) ValuesAt(i int) []float64 {
	return s.Values[s.valueOffsets[i]:s.valueOffsets[i+1]]
}

// ChannelValuesAt returns the value vector of the k-th selected channel of
// shapelet i
func (s *ShapeletSet) ChannelValuesAt(i, k int) []float64 {
	length := s.Lengths[i]
	base := s.valueOffsets[i] + k*length
	return s.Values[base : base+length]
}

// ChannelsAt returns the channel assignment of shapelet i as a view into the arena
func (s *ShapeletSet) ChannelsAt(i int) []int {
	return s.ChannelIDs[s.channelOffsets[i]:s.channelOffsets[i+1]]
}

// At returns a copying view of shapelet i for introspection
func (s *ShapeletSet) At(i int) Shapelet {
	values := make([]float64, len(s.ValuesAt(i)))
	copy(values, s.ValuesAt(i))
	channels := make([]int, len(s.ChannelsAt(i)))
	copy(channels, s.ChannelsAt(i))
	return Shapelet{
		Length:    s.Lengths[i],
		Dilation:  s.Dilations[i],
		Normalize: s.Normalize[i],
		Channels:  channels,
		Values:    values,
		Threshold: s.Thresholds[i],
	}
}
