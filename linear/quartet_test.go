package linear_test

import (
	"math"
	"testing"

	"github.com/regressio/regressio/dataset"
	"github.com/regressio/regressio/linear"
	"github.com/regressio/regressio/metrics"
)

// Anscombe dataset II is a smooth curve: a straight line is a valid but
// imperfect fit, so R² lands strictly between 0 and 1 and RMSE is positive.
func TestRegression_AnscombeII(t *testing.T) {
	ds, err := dataset.Anscombe("II")
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}

	reg := linear.NewRegression()
	if err := reg.FitSimple(ds.X, ds.Y); err != nil {
		t.Fatalf("FitSimple failed: %v", err)
	}

	yPred, err := reg.PredictVec(ds.X)
	if err != nil {
		t.Fatalf("PredictVec failed: %v", err)
	}

	result, err := metrics.EvaluateRegression(ds.Y, yPred)
	if err != nil {
		t.Fatalf("EvaluateRegression failed: %v", err)
	}

	r2 := result[metrics.KeyR2]
	if r2 <= 0 || r2 >= 1 {
		t.Errorf("R2 = %v, want strictly between 0 and 1", r2)
	}
	if rmse := result[metrics.KeyRMSE]; rmse <= 0 {
		t.Errorf("RMSE = %v, want > 0", rmse)
	}

	// The quartet's shared fitted line.
	if slope := reg.Coefficients()[0]; math.Abs(slope-0.5) > 0.002 {
		t.Errorf("slope = %v, want ~0.5", slope)
	}
	if intercept := reg.Intercept(); math.Abs(intercept-3.0) > 0.01 {
		t.Errorf("intercept = %v, want ~3.0", intercept)
	}
}
