package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genepca/pkg/stats"
)

func TestEmptyPipelinePassthrough(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}}
	p := New()
	require.NoError(t, p.Fit(X))

	out, err := p.Transform(X)
	require.NoError(t, err)
	assert.Equal(t, X, out)
}

func TestPipelineWithScaler(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	p := New(stats.NewStandardScaler())

	out, err := p.FitTransform(X)
	require.NoError(t, err)
	require.Len(t, out, 3)

	for j := 0; j < 2; j++ {
		col := []float64{out[0][j], out[1][j], out[2][j]}
		assert.InDelta(t, 0.0, stats.Mean(col), 1e-9)
		assert.InDelta(t, 1.0, stats.Std(col), 1e-9)
	}
}

func TestPipelinePropagatesErrors(t *testing.T) {
	p := New(stats.NewStandardScaler())
	assert.Error(t, p.Fit(nil))

	_, err := New(stats.NewStandardScaler()).Transform([][]float64{{1}})
	assert.Error(t, err)
}
