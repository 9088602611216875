// Package dataset provides named example datasets for regression
// exercises. Datasets are returned as caller-owned copies; the package
// never hands out its backing arrays.
package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/regressio/regressio/pkg/errors"
)

// ErrUnknownDataset is returned when no dataset with the requested name
// exists.
var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset is an immutable pair of a predictor series and a response series
// of equal length.
type Dataset struct {
	Name string
	X    []float64
	Y    []float64
}

// New creates a Dataset from copies of x and y.
func New(name string, x, y []float64) (*Dataset, error) {
	if len(x) == 0 {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	if len(x) != len(y) {
		return nil, errors.NewDimensionError("dataset.New", len(x), len(y), 0)
	}

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	copy(xs, x)
	copy(ys, y)

	return &Dataset{Name: name, X: xs, Y: ys}, nil
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Copy returns a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	xs := make([]float64, len(d.X))
	ys := make([]float64, len(d.Y))
	copy(xs, d.X)
	copy(ys, d.Y)
	return &Dataset{Name: d.Name, X: xs, Y: ys}
}

// XMatrix returns the predictor series as an n×1 matrix for use with
// linear.Regression.Fit.
func (d *Dataset) XMatrix() *mat.Dense {
	xs := make([]float64, len(d.X))
	copy(xs, d.X)
	return mat.NewDense(len(xs), 1, xs)
}

// YMatrix returns the response series as an n×1 matrix.
func (d *Dataset) YMatrix() *mat.Dense {
	ys := make([]float64, len(d.Y))
	copy(ys, d.Y)
	return mat.NewDense(len(ys), 1, ys)
}

// String implements fmt.Stringer.
func (d *Dataset) String() string {
	return fmt.Sprintf("%s (%d observations)", d.Name, d.Len())
}
