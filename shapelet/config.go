package shapelet

import (
	"fmt"

	"github.com/tsfeat/rdst/algorithms/stats"
)

// Config holds configuration for shapelet generation and application
type Config struct {
	// NShapelets is the number of shapelets to sample. The generated set may
	// be smaller when the self-similarity mask leaves a shapelet without an
	// eligible anchor.
	NShapelets int `json:"n_shapelets"`

	// ShapeletSizes is the set of candidate shapelet lengths. Every size
	// must satisfy 2 <= size < n_timestamps.
	ShapeletSizes []int `json:"shapelet_sizes"`

	// PNorm is the probability for each shapelet to use z-normalized distance
	PNorm float64 `json:"p_norm"`

	// PMin and PMax bound the percentile range used for the occurrence
	// threshold draw, in [0, 100]. PMin == PMax degenerates to that exact
	// percentile.
	PMin float64 `json:"p_min"`
	PMax float64 `json:"p_max"`

	// Alpha is the similarity tolerance in [0, 1]: 0 never blocks resampling
	// of overlapping windows, 1 excludes the full receptive field.
	Alpha float64 `json:"alpha"`

	// MaxChannels caps how many channels one shapelet may use.
	// 0 means all available channels.
	MaxChannels int `json:"max_channels"`

	// UsePhase enables phase invariance: windows wrap around the series boundary
	UsePhase bool `json:"use_phase"`

	// PrimeScheme restricts dilations to prime values within the dilation bound
	PrimeScheme bool `json:"prime_scheme"`

	// Seed seeds the pseudorandom streams. A fixed seed yields an identical
	// shapelet set at any worker count: each dilation group draws from its
	// own sub-stream keyed by (Seed, dilation).
	Seed uint64 `json:"seed"`

	// Distance is the profile distance function. nil selects squared Euclidean.
	Distance stats.DistanceFunction `json:"-"`

	// NumWorkers caps parallelism for generation and application.
	// 0 selects runtime.NumCPU.
	NumWorkers int `json:"num_workers"`
}

// DefaultConfig returns the default transform configuration
func DefaultConfig() *Config {
	return &Config{
		NShapelets:    10_000,
		ShapeletSizes: []int{11},
		PNorm:         0.8,
		PMin:          5,
		PMax:          10,
		Alpha:         0.5,
		MaxChannels:   0,
		UsePhase:      false,
		PrimeScheme:   false,
		Seed:          0,
		Distance:      nil,
		NumWorkers:    0,
	}
}

// Validate rejects invalid configuration against the dimensions of the
// training data, before any sampling begins
func (c *Config) Validate(nChannels, nTimestamps int) error {
	if c.NShapelets <= 0 {
		return fmt.Errorf("n_shapelets must be positive, got %d", c.NShapelets)
	}
	if len(c.ShapeletSizes) == 0 {
		return fmt.Errorf("shapelet_sizes must not be empty")
	}
	for _, size := range c.ShapeletSizes {
		if size < 2 {
			return fmt.Errorf("shapelet size %d is below the minimum of 2", size)
		}
		if size >= nTimestamps {
			return fmt.Errorf("shapelet size %d must be smaller than n_timestamps %d", size, nTimestamps)
		}
	}
	if c.PNorm < 0 || c.PNorm > 1 {
		return fmt.Errorf("p_norm %f must be in [0, 1]", c.PNorm)
	}
	if c.PMin < 0 || c.PMax > 100 || c.PMin > c.PMax {
		return fmt.Errorf("percentile bounds [%f, %f] must satisfy 0 <= p_min <= p_max <= 100", c.PMin, c.PMax)
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha %f must be in [0, 1]", c.Alpha)
	}
	if c.MaxChannels < 0 {
		return fmt.Errorf("max_channels must not be negative, got %d", c.MaxChannels)
	}
	if c.MaxChannels > nChannels {
		return fmt.Errorf("max_channels %d exceeds available channels %d", c.MaxChannels, nChannels)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("num_workers must not be negative, got %d", c.NumWorkers)
	}
	return nil
}

// maxChannelsFor resolves the configured channel cap against the data
func (c *Config) maxChannelsFor(nChannels int) int {
	if c.MaxChannels == 0 {
		return nChannels
	}
	return c.MaxChannels
}

// distance resolves the configured distance function
func (c *Config) distance() stats.DistanceFunction {
	if c.Distance == nil {
		return stats.SquaredEuclideanDistanceFunc
	}
	return c.Distance
}
