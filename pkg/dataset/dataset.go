// Package dataset loads tabular gene-expression data and splits it into a
// numeric feature matrix and a categorical label vector.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LabelColumn is the reserved categorical column used to group samples.
const LabelColumn = "type"

var (
	// ErrNoLabelColumn is returned when the reserved "type" column is absent.
	ErrNoLabelColumn = errors.New(`dataset: missing required "type" column`)
	// ErrNoFeatures is returned when no feature columns remain after
	// removing the label column.
	ErrNoFeatures = errors.New("dataset: no feature columns")
	// ErrTooFewRows is returned when the dataset has fewer than 2 rows.
	ErrTooFewRows = errors.New("dataset: need at least 2 rows")
	// ErrNotNumeric is returned when a feature column holds non-numeric or
	// missing values.
	ErrNotNumeric = errors.New("dataset: non-numeric feature column")
)

// Dataset is an ordered table of samples: one row per sample, one numeric
// column per measured feature, plus the categorical label column.
type Dataset struct {
	df dataframe.DataFrame
}

// Load parses comma-separated values with a header row. Column types are
// inferred by the dataframe; a malformed file is a fatal load error.
func Load(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: parse csv: %w", df.Err)
	}
	return &Dataset{df: df}, nil
}

// LoadFile opens and parses a CSV file from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// NumRows returns the number of samples.
func (d *Dataset) NumRows() int { return d.df.Nrow() }

// NumCols returns the number of columns, label column included.
func (d *Dataset) NumCols() int { return d.df.Ncol() }

// Columns returns the column names in file order.
func (d *Dataset) Columns() []string { return d.df.Names() }

// HasColumn reports whether a column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.df.Names() {
		if c == name {
			return true
		}
	}
	return false
}

// Preview returns the header row followed by up to n data rows, for display.
func (d *Dataset) Preview(n int) [][]string {
	records := d.df.Records()
	if len(records) == 0 {
		return records
	}
	if n > len(records)-1 {
		n = len(records) - 1
	}
	if n < 0 {
		n = 0
	}
	return records[:n+1]
}

// Split removes the label column and returns the feature matrix, the label
// vector, and the feature names, all in original row and column order.
// Validation is explicit: a missing label column, non-numeric features,
// fewer than 2 rows, or zero features are rejected with a sentinel error.
func (d *Dataset) Split() (X [][]float64, labels []string, features []string, err error) {
	if !d.HasColumn(LabelColumn) {
		return nil, nil, nil, ErrNoLabelColumn
	}
	n := d.df.Nrow()
	if n < 2 {
		return nil, nil, nil, fmt.Errorf("%w, got %d", ErrTooFewRows, n)
	}

	for _, name := range d.df.Names() {
		if name == LabelColumn {
			continue
		}
		features = append(features, name)
	}
	if len(features) == 0 {
		return nil, nil, nil, ErrNoFeatures
	}

	X = make([][]float64, n)
	for i := range X {
		X[i] = make([]float64, len(features))
	}
	for j, name := range features {
		col := d.df.Col(name)
		if t := col.Type(); t != series.Int && t != series.Float {
			return nil, nil, nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, name, t)
		}
		vals := col.Float()
		for i, v := range vals {
			if math.IsNaN(v) {
				return nil, nil, nil, fmt.Errorf("%w: %q has a missing value at row %d", ErrNotNumeric, name, i)
			}
			X[i][j] = v
		}
	}

	labels = d.df.Col(LabelColumn).Records()
	return X, labels, features, nil
}
