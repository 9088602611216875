package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/regressio/regressio/dataset"
	"github.com/regressio/regressio/metrics"
)

// FitChart generates an echarts line chart of the observations and the
// fitted values for one dataset. Metric values, when given, are shown in
// the subtitle.
func FitChart(ds *dataset.Dataset, yFit []float64, m map[string]float64) *charts.Line {
	line := charts.NewLine()

	subtitle := ""
	if m != nil {
		subtitle = fmt.Sprintf("R²=%.3f RMSE=%.3f MAE=%.3f",
			m[metrics.KeyR2], m[metrics.KeyRMSE], m[metrics.KeyMAE])
	}
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    ds.Name,
				Subtitle: subtitle,
			},
		),
	)

	observed := make([]opts.LineData, 0, ds.Len())
	fitted := make([]opts.LineData, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		observed = append(observed, opts.LineData{Value: ds.Y[i]})
		fitted = append(fitted, opts.LineData{Value: yFit[i]})
	}

	line.SetXAxis(ds.X).
		AddSeries("Observed", observed).
		AddSeries("Fit", fitted)
	return line
}

// QuartetReport renders one FitChart per dataset into a single HTML page.
// yFits and metricsByName are keyed by dataset name; datasets without an
// entry in yFits are skipped.
func QuartetReport(w io.Writer, datasets []*dataset.Dataset, yFits map[string][]float64, metricsByName map[string]map[string]float64) error {
	page := components.NewPage()
	page.PageTitle = "Regression report"

	for _, ds := range datasets {
		yFit, ok := yFits[ds.Name]
		if !ok {
			continue
		}
		page.AddCharts(FitChart(ds, yFit, metricsByName[ds.Name]))
	}

	return page.Render(w)
}
