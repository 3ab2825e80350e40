package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Zero(t, Mean(nil))
}

func TestVarianceAndStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4.0, Variance(x), 1e-9)
	assert.InDelta(t, 2.0, Std(x), 1e-9)
	assert.Zero(t, Variance(nil))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
}

func TestStandardScaler(t *testing.T) {
	X := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	s := NewStandardScaler()
	out, err := s.FitTransform(X)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		col := []float64{out[0][j], out[1][j], out[2][j]}
		assert.InDelta(t, 0.0, Mean(col), 1e-9)
		assert.InDelta(t, 1.0, Std(col), 1e-9)
	}
}

func TestStandardScalerZeroVariance(t *testing.T) {
	X := [][]float64{
		{5, 1},
		{5, 2},
		{5, 3},
	}
	s := NewStandardScaler()
	out, err := s.FitTransform(X)
	require.NoError(t, err)

	// Constant column is centered only.
	for i := range out {
		assert.Zero(t, out[i][0])
	}
}

func TestStandardScalerErrors(t *testing.T) {
	s := NewStandardScaler()
	assert.Error(t, s.Fit(nil))

	_, err := NewStandardScaler().Transform([][]float64{{1}})
	assert.Error(t, err)

	require.NoError(t, s.Fit([][]float64{{1, 2}, {3, 4}}))
	_, err = s.Transform([][]float64{{1}})
	assert.Error(t, err)
}
