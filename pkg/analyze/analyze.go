// Package analyze runs the PCA analysis over a loaded dataset: split off the
// label column, optionally standardize, project to two components.
package analyze

import (
	"genepca/pkg/dataset"
	"genepca/pkg/model"
	"genepca/pkg/pipeline"
	"genepca/pkg/stats"
)

// DefaultComponents is the projection dimension used when Options leaves
// Components unset.
const DefaultComponents = 2

// Options controls a single analysis run.
type Options struct {
	// Standardize scales features to unit variance before projection.
	// Off by default: the projection centers features but leaves their
	// scale alone, so high-variance genes dominate unless this is set.
	Standardize bool
	// Components is the number of principal components to keep.
	Components int
}

// Result holds the projection for one analysis run. It is computed fresh on
// every call and never cached.
type Result struct {
	Coords         [][]float64 // n x Components principal coordinates
	Labels         []string    // per-row label, original order
	Classes        []string    // distinct labels, first-occurrence order
	VarianceRatios []float64   // per-component explained variance, in [0,1]
	Features       []string    // feature column names fed to the projection
}

// Group is one label's points, used directly as a scatter series.
type Group struct {
	Label  string
	Xs, Ys []float64
}

// Run validates ds, splits features from labels, and projects the feature
// matrix onto the top principal components. A dataset without the "type"
// column fails with dataset.ErrNoLabelColumn before any numeric work.
func Run(ds *dataset.Dataset, opts Options) (*Result, error) {
	X, labels, features, err := ds.Split()
	if err != nil {
		return nil, err
	}

	k := opts.Components
	if k <= 0 {
		k = DefaultComponents
	}

	var steps []model.Transformer
	if opts.Standardize {
		steps = append(steps, stats.NewStandardScaler())
	}
	pre := pipeline.New(steps...)
	Xp, err := pre.FitTransform(X)
	if err != nil {
		return nil, err
	}

	pca := model.NewPCA(k)
	coords, err := pca.FitTransform(Xp)
	if err != nil {
		return nil, err
	}

	_, classes := dataset.LabelEncode(labels)
	return &Result{
		Coords:         coords,
		Labels:         labels,
		Classes:        classes,
		VarianceRatios: pca.VarianceRatios(),
		Features:       features,
	}, nil
}

// Groups partitions the projected points by label, preserving
// first-occurrence order so colors stay stable across re-runs.
func (r *Result) Groups() []Group {
	idx, classes := dataset.LabelEncode(r.Labels)
	groups := make([]Group, len(classes))
	for i := range groups {
		groups[i].Label = classes[i]
	}
	for i, g := range idx {
		if len(r.Coords[i]) < 2 {
			continue
		}
		groups[g].Xs = append(groups[g].Xs, r.Coords[i][0])
		groups[g].Ys = append(groups[g].Ys, r.Coords[i][1])
	}
	return groups
}
