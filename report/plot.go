// Package report renders regression results: static scatter-with-fit plots
// via gonum/plot and interactive HTML charts via go-echarts. It only
// consumes predictions and metrics; it has no influence on fitting.
package report

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/regressio/regressio/pkg/errors"
)

// ScatterWithFit builds a plot of the observations (x, y) with the fitted
// line drawn through yFit. All three slices must have the same length.
func ScatterWithFit(title string, x, y, yFit []float64) (*plot.Plot, error) {
	n := len(x)
	if n == 0 {
		return nil, errors.NewValueError("report.ScatterWithFit", "empty input")
	}
	if len(y) != n {
		return nil, errors.NewDimensionError("report.ScatterWithFit", n, len(y), 0)
	}
	if len(yFit) != n {
		return nil, errors.NewDimensionError("report.ScatterWithFit", n, len(yFit), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	observed := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		observed[i].X = x[i]
		observed[i].Y = y[i]
	}

	scatter, err := plotter.NewScatter(observed)
	if err != nil {
		return nil, errors.Wrap(err, "report.ScatterWithFit: scatter")
	}

	// The fitted line is drawn in x order regardless of input order.
	fitted := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		fitted[i].X = x[i]
		fitted[i].Y = yFit[i]
	}
	sort.Slice(fitted, func(i, j int) bool { return fitted[i].X < fitted[j].X })

	line, err := plotter.NewLine(fitted)
	if err != nil {
		return nil, errors.Wrap(err, "report.ScatterWithFit: line")
	}

	p.Add(scatter, line)
	p.Legend.Add("observed", scatter)
	p.Legend.Add("fit", line)

	return p, nil
}

// SavePNG writes the plot to filename as a 6×4 inch PNG.
func SavePNG(p *plot.Plot, filename string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
