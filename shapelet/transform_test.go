package shapelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTransformerNotFitted(t *testing.T) {
	tr := NewTransformer(nil)

	_, err := tr.Transform([][][]float64{{{0, 1, 2}}})
	assert.ErrorContains(t, err, "not fitted")
	assert.Nil(t, tr.Shapelets())
}

func TestTransformerFitTransform(t *testing.T) {
	X, y := makeDataset(8, 1, 50)
	cfg := &Config{
		NShapelets:    20,
		ShapeletSizes: []int{9},
		PNorm:         0.8,
		PMin:          5,
		PMax:          10,
		Alpha:         0.5,
		Seed:          7,
	}

	tr := NewTransformer(cfg)
	out, err := tr.FitTransform(X, y)
	require.NoError(t, err)

	set := tr.Shapelets()
	require.NotNil(t, set)
	require.Positive(t, set.Len())

	rows, cols := out.Dims()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 3*set.Len(), cols)

	// Transform carries no mutable state: fitting once and transforming
	// twice yields identical matrices
	again, err := tr.Transform(X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(out, again))
}

func TestTransformerTransformNewBatch(t *testing.T) {
	Xtrain, y := makeDataset(6, 2, 40)
	Xtest, _ := makeDataset(3, 2, 40)
	cfg := &Config{
		NShapelets:    15,
		ShapeletSizes: []int{7},
		PNorm:         0.5,
		PMin:          5,
		PMax:          10,
		Alpha:         0.5,
		Seed:          3,
	}

	tr := NewTransformer(cfg)
	require.NoError(t, tr.Fit(Xtrain, y))

	out, err := tr.Transform(Xtest)
	require.NoError(t, err)

	rows, cols := out.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3*tr.Shapelets().Len(), cols)
}

func TestTransformerFitErrorPropagates(t *testing.T) {
	tr := NewTransformer(&Config{
		NShapelets:    10,
		ShapeletSizes: []int{11},
		PMin:          5,
		PMax:          10,
		Alpha:         0.5,
	})

	err := tr.Fit([][][]float64{{{0, 1, 2}}}, []int{0})
	assert.Error(t, err, "shapelet size exceeds series length")
	assert.Nil(t, tr.Shapelets())
}

func TestWorkerCount(t *testing.T) {
	assert.Equal(t, 1, workerCount(0, 8))
	assert.Equal(t, 1, workerCount(1, 8))
	assert.Equal(t, 4, workerCount(100, 4))
	assert.Equal(t, 3, workerCount(3, 8))
	assert.Positive(t, workerCount(100, 0))
}
