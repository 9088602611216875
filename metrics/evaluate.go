package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/regressio/regressio/pkg/errors"
)

// Metric names used as keys in the map returned by EvaluateRegression.
const (
	KeyR2   = "R2"
	KeyRMSE = "RMSE"
	KeyMAE  = "MAE"
)

// EvaluateRegression computes R², RMSE and MAE for true versus predicted
// values and returns them as a fresh map keyed by KeyR2, KeyRMSE and
// KeyMAE. It is a pure function: the inputs are never mutated.
//
// When yTrue is constant the total sum of squares is zero and R² is
// non-finite; an UndefinedMetricWarning is emitted and the map is returned
// as computed rather than failing the call.
func EvaluateRegression(yTrue, yPred []float64) (map[string]float64, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, errors.NewValueError("EvaluateRegression", "empty input")
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError("EvaluateRegression", n, len(yPred), 0)
	}

	yMean := stat.Mean(yTrue, nil)

	// RSS = Σ(yTrue - yPred)², TSS = Σ(yTrue - mean(yTrue))²
	var rss, tss, absSum float64
	for i := 0; i < n; i++ {
		residual := yTrue[i] - yPred[i]
		rss += residual * residual
		absSum += math.Abs(residual)

		dev := yTrue[i] - yMean
		tss += dev * dev
	}

	r2 := 1 - rss/tss
	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(KeyR2,
			"zero total sum of squares (constant y_true)", r2))
	}

	return map[string]float64{
		KeyR2:   r2,
		KeyRMSE: math.Sqrt(rss / float64(n)),
		KeyMAE:  absSum / float64(n),
	}, nil
}
