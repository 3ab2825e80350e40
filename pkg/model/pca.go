package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PCA projects data onto the top K principal components of the feature
// covariance matrix, found by symmetric eigendecomposition. Features are
// centered before projection but not scaled; callers that want unit-variance
// features run a StandardScaler first.
type PCA struct {
	K          int
	Means      []float64
	Components *mat.Dense // p x K, column k is the k-th principal axis
	Explained  []float64  // top K eigenvalues, descending
	TotalVar   float64    // sum of all eigenvalues
	fit        bool
}

// NewPCA creates a PCA model that keeps k components.
func NewPCA(k int) *PCA {
	return &PCA{K: k}
}

// Fit computes the principal axes of X. It requires at least 2 rows and at
// least K feature columns.
func (p *PCA) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("pca: input data cannot be empty")
	}
	n, d := len(X), len(X[0])
	if n < 2 {
		return fmt.Errorf("pca: need at least 2 rows, got %d", n)
	}
	if d == 0 {
		return errors.New("pca: input data has no features")
	}
	if p.K <= 0 || p.K > d {
		return fmt.Errorf("pca: component count %d out of range for %d features", p.K, d)
	}

	// Center the data.
	p.Means = make([]float64, d)
	for i := 0; i < n; i++ {
		if len(X[i]) != d {
			return fmt.Errorf("pca: row %d has %d features, want %d", i, len(X[i]), d)
		}
		for j := 0; j < d; j++ {
			p.Means[j] += X[i][j]
		}
	}
	for j := 0; j < d; j++ {
		p.Means[j] /= float64(n)
	}

	// Sample covariance matrix, (Z^T Z) / (n-1).
	cov := mat.NewSymDense(d, nil)
	for a := 0; a < d; a++ {
		for b := a; b < d; b++ {
			s := 0.0
			for i := 0; i < n; i++ {
				s += (X[i][a] - p.Means[a]) * (X[i][b] - p.Means[b])
			}
			cov.SetSym(a, b, s/float64(n-1))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return errors.New("pca: eigendecomposition failed")
	}
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	p.TotalVar = 0
	for _, v := range vals {
		p.TotalVar += v
	}

	// Keep the top K eigenpairs, largest eigenvalue first, and fix each
	// component's sign so its largest-magnitude loading is positive. This
	// makes repeated fits on the same data bitwise identical.
	p.Explained = make([]float64, p.K)
	p.Components = mat.NewDense(d, p.K, nil)
	for k := 0; k < p.K; k++ {
		src := d - 1 - k
		p.Explained[k] = vals[src]
		pivot, maxAbs := 0, 0.0
		for j := 0; j < d; j++ {
			if a := math.Abs(vecs.At(j, src)); a > maxAbs {
				maxAbs, pivot = a, j
			}
		}
		sign := 1.0
		if vecs.At(pivot, src) < 0 {
			sign = -1
		}
		for j := 0; j < d; j++ {
			p.Components.Set(j, k, sign*vecs.At(j, src))
		}
	}
	p.fit = true
	return nil
}

// Transform projects X onto the fitted principal axes, returning an
// n x K coordinate matrix.
func (p *PCA) Transform(X [][]float64) ([][]float64, error) {
	if !p.fit {
		return nil, errors.New("pca: transform called before fit")
	}
	if len(X) == 0 {
		return nil, errors.New("pca: input data cannot be empty")
	}
	d := len(p.Means)
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != d {
			return nil, fmt.Errorf("pca: row %d has %d features, want %d", i, len(row), d)
		}
		t := make([]float64, p.K)
		for k := 0; k < p.K; k++ {
			s := 0.0
			for j := 0; j < d; j++ {
				s += (row[j] - p.Means[j]) * p.Components.At(j, k)
			}
			t[k] = s
		}
		out[i] = t
	}
	return out, nil
}

// FitTransform fits the model and projects X in one step.
func (p *PCA) FitTransform(X [][]float64) ([][]float64, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// VarianceRatios returns the fraction of total variance captured by each
// kept component. Each ratio is in [0,1] and the sum over all K is at
// most 1. A dataset with zero total variance reports all-zero ratios.
func (p *PCA) VarianceRatios() []float64 {
	out := make([]float64, len(p.Explained))
	if p.TotalVar <= 0 {
		return out
	}
	for i, v := range p.Explained {
		r := v / p.TotalVar
		// Eigenvalues of a covariance matrix are non-negative up to
		// floating-point noise; clamp so callers can rely on [0,1].
		if r < 0 {
			r = 0
		}
		if r > 1 {
			r = 1
		}
		out[i] = r
	}
	return out
}
