// Package pipeline chains preprocessing transformers ahead of a projection.
package pipeline

import "genepca/pkg/model"

// Pipeline applies a sequence of transformers in order. An empty pipeline
// passes data through unchanged.
type Pipeline struct {
	steps []model.Transformer
}

func New(steps ...model.Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits each step in order, feeding each one the output of the previous.
func (p *Pipeline) Fit(X [][]float64) error {
	for _, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return err
		}
		var err error
		if X, err = step.Transform(X); err != nil {
			return err
		}
	}
	return nil
}

// Transform runs X through every fitted step.
func (p *Pipeline) Transform(X [][]float64) ([][]float64, error) {
	var err error
	for _, step := range p.steps {
		if X, err = step.Transform(X); err != nil {
			return nil, err
		}
	}
	return X, nil
}

// FitTransform fits the pipeline and transforms X in one step.
func (p *Pipeline) FitTransform(X [][]float64) ([][]float64, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}
