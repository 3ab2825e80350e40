package stats

import (
	"errors"
	"fmt"
	"math"
)

// StandardScaler standardizes each column to zero mean and unit variance.
// Columns with zero variance are centered only, so constant features do not
// produce NaNs downstream.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit computes per-column means and standard deviations.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scaler: input data cannot be empty")
	}
	r, c := len(X), len(X[0])
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			s.Mean[j] += X[i][j]
		}
		s.Mean[j] /= float64(r)
		v := 0.0
		for i := 0; i < r; i++ {
			d := X[i][j] - s.Mean[j]
			v += d * d
		}
		v /= float64(r)
		s.Std[j] = math.Sqrt(v)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform applies the fitted standardization column by column.
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, errors.New("scaler: transform called before fit")
	}
	c := len(s.Mean)
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != c {
			return nil, fmt.Errorf("scaler: row %d has %d features, want %d", i, len(row), c)
		}
		o := make([]float64, c)
		for j := 0; j < c; j++ {
			o[j] = (row[j] - s.Mean[j]) / s.Std[j]
		}
		out[i] = o
	}
	return out, nil
}

// FitTransform fits the scaler and standardizes X in one step.
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
