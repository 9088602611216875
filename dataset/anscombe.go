package dataset

import (
	"github.com/regressio/regressio/pkg/errors"
)

// Anscombe's quartet: four datasets with nearly identical summary
// statistics and least-squares fits (slope ≈ 0.5, intercept ≈ 3.0,
// R² ≈ 0.67) but very different shapes. Values from Anscombe (1973),
// "Graphs in Statistical Analysis".
var anscombe = map[string]struct{ x, y []float64 }{
	"I": {
		x: []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5},
		y: []float64{8.04, 6.95, 7.58, 8.81, 8.33, 9.96, 7.24, 4.26, 10.84, 4.82, 5.68},
	},
	"II": {
		x: []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5},
		y: []float64{9.14, 8.14, 8.74, 8.77, 9.26, 8.10, 6.13, 3.10, 9.13, 7.26, 4.74},
	},
	"III": {
		x: []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5},
		y: []float64{7.46, 6.77, 12.74, 7.11, 7.81, 8.84, 6.08, 5.39, 8.15, 6.42, 5.73},
	},
	"IV": {
		x: []float64{8, 8, 8, 8, 8, 8, 8, 19, 8, 8, 8},
		y: []float64{6.58, 5.76, 7.71, 8.84, 8.47, 7.04, 5.25, 12.50, 5.56, 7.91, 6.89},
	},
}

// AnscombeNames returns the dataset names of the quartet in order.
func AnscombeNames() []string {
	return []string{"I", "II", "III", "IV"}
}

// Anscombe returns the named quartet dataset ("I" through "IV").
func Anscombe(name string) (*Dataset, error) {
	series, ok := anscombe[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDataset, "anscombe dataset %q", name)
	}
	return New("anscombe-"+name, series.x, series.y)
}
