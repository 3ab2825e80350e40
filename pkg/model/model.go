package model

// Transformer is for preprocessing and projection steps (fit on a matrix,
// transform the same or a compatible matrix afterwards).
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) ([][]float64, error)
	FitTransform(X [][]float64) ([][]float64, error)
}
