package shapelet

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/mat"

	"github.com/tsfeat/rdst/logging"
)

// Transformer is the fit/transform entry point of the random dilated
// shapelet transform. Fit generates the shapelet set from training data;
// Transform turns any batch of series with matching dimensions into a
// (n_samples, 3*n_shapelets) feature matrix for a downstream linear
// classifier.
type Transformer struct {
	config    *Config
	generator *Generator
	applier   *Applier
	shapelets *ShapeletSet
	logger    logging.Logger
}

// NewTransformer creates a transformer with the given configuration.
// A nil config selects DefaultConfig.
func NewTransformer(config *Config) *Transformer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Transformer{
		config:    config,
		generator: NewGenerator(config),
		applier:   NewApplier(config),
		logger: logging.WithFields(logging.Fields{
			"component": "shapelet_transformer",
		}),
	}
}

// Fit generates the shapelet set from the training tensor X
// ([sample][channel][time], rectangular) and class ids y. Arbitrary
// categorical labels can be converted with EncodeLabels.
func (t *Transformer) Fit(X [][][]float64, y []int) error {
	set, err := t.generator.Generate(X, y)
	if err != nil {
		return fmt.Errorf("shapelet generation failed: %w", err)
	}
	if set.Len() == 0 {
		t.logger.Warn("All shapelets were dropped; transform output will be empty")
	}
	t.shapelets = set
	return nil
}

// Transform applies the fitted shapelet set to X and returns the feature
// matrix. The transformer carries no mutable state between calls: the same
// input always yields the same output.
func (t *Transformer) Transform(X [][][]float64) (*mat.Dense, error) {
	if t.shapelets == nil {
		return nil, fmt.Errorf("transformer is not fitted")
	}
	return t.applier.Apply(X, t.shapelets)
}

// FitTransform fits on X, y and immediately transforms X
func (t *Transformer) FitTransform(X [][][]float64, y []int) (*mat.Dense, error) {
	if err := t.Fit(X, y); err != nil {
		return nil, err
	}
	return t.Transform(X)
}

// Shapelets exposes the generated set for introspection and visualization.
// The returned set must be treated as read-only.
func (t *Transformer) Shapelets() *ShapeletSet {
	return t.shapelets
}

// workerCount determines the number of workers for a task count, capped by
// the configured limit and the available CPUs
func workerCount(tasks, configured int) int {
	if tasks <= 1 {
		return 1
	}
	workers := configured
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return min(workers, tasks)
}
