package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The two features are perfectly correlated, so exactly two components
// explain all variance and the first captures essentially everything.
var sampleX = [][]float64{
	{1, 2},
	{5, 6},
	{2, 3},
	{6, 7},
}

func TestPCAFitTransformShape(t *testing.T) {
	pca := NewPCA(2)
	coords, err := pca.FitTransform(sampleX)
	require.NoError(t, err)

	require.Len(t, coords, len(sampleX))
	for _, row := range coords {
		assert.Len(t, row, 2)
	}
}

func TestPCAVarianceRatios(t *testing.T) {
	pca := NewPCA(2)
	_, err := pca.FitTransform(sampleX)
	require.NoError(t, err)

	ratios := pca.VarianceRatios()
	require.Len(t, ratios, 2)
	sum := 0.0
	for _, r := range ratios {
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
		sum += r
	}
	// Two features, two components: all variance is accounted for.
	assert.InDelta(t, 1.0, sum, 1e-9)
	// geneB is geneA+1, so the first axis carries everything.
	assert.InDelta(t, 1.0, ratios[0], 1e-9)
}

func TestPCADeterminism(t *testing.T) {
	a := NewPCA(2)
	coordsA, err := a.FitTransform(sampleX)
	require.NoError(t, err)

	b := NewPCA(2)
	coordsB, err := b.FitTransform(sampleX)
	require.NoError(t, err)

	assert.Equal(t, coordsA, coordsB)
	assert.Equal(t, a.VarianceRatios(), b.VarianceRatios())
}

func TestPCACentersProjection(t *testing.T) {
	pca := NewPCA(2)
	coords, err := pca.FitTransform(sampleX)
	require.NoError(t, err)

	// Projected coordinates of centered data sum to zero per axis.
	for k := 0; k < 2; k++ {
		sum := 0.0
		for _, row := range coords {
			sum += row[k]
		}
		assert.InDelta(t, 0.0, sum, 1e-9)
	}
}

func TestPCASingleComponent(t *testing.T) {
	pca := NewPCA(1)
	coords, err := pca.FitTransform(sampleX)
	require.NoError(t, err)
	require.Len(t, coords, 4)
	assert.Len(t, coords[0], 1)
	assert.Len(t, pca.VarianceRatios(), 1)
}

func TestPCAErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Error(t, NewPCA(2).Fit(nil))
	})
	t.Run("single row", func(t *testing.T) {
		assert.Error(t, NewPCA(2).Fit([][]float64{{1, 2}}))
	})
	t.Run("more components than features", func(t *testing.T) {
		assert.Error(t, NewPCA(3).Fit(sampleX))
	})
	t.Run("no features", func(t *testing.T) {
		assert.Error(t, NewPCA(2).Fit([][]float64{{}, {}}))
	})
	t.Run("ragged rows", func(t *testing.T) {
		assert.Error(t, NewPCA(2).Fit([][]float64{{1, 2}, {3}}))
	})
	t.Run("transform before fit", func(t *testing.T) {
		_, err := NewPCA(2).Transform(sampleX)
		assert.Error(t, err)
	})
	t.Run("transform feature mismatch", func(t *testing.T) {
		pca := NewPCA(2)
		require.NoError(t, pca.Fit(sampleX))
		_, err := pca.Transform([][]float64{{1, 2, 3}})
		assert.Error(t, err)
	})
}

func TestPCAZeroVariance(t *testing.T) {
	X := [][]float64{{3, 3}, {3, 3}, {3, 3}}
	pca := NewPCA(2)
	require.NoError(t, pca.Fit(X))

	ratios := pca.VarianceRatios()
	for _, r := range ratios {
		assert.Zero(t, r)
	}
}
