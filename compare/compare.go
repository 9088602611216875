// Package compare fits the same data with a regressio estimator and with
// gonum's reference least-squares routine and reports both parameter sets
// side by side. It reads only the fitted coefficients and intercept of the
// estimator, nothing else.
package compare

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/regressio/regressio/linear"
	"github.com/regressio/regressio/pkg/log"
)

// SimpleResult holds the fitted parameters of the custom simple regression
// and of the gonum reference fit on the same data.
type SimpleResult struct {
	CustomCoefficient    float64 `json:"custom_coefficient"`
	CustomIntercept      float64 `json:"custom_intercept"`
	ReferenceCoefficient float64 `json:"reference_coefficient"`
	ReferenceIntercept   float64 `json:"reference_intercept"`
}

// CoefficientDelta returns the absolute difference between the custom and
// reference coefficients.
func (r *SimpleResult) CoefficientDelta() float64 {
	return math.Abs(r.CustomCoefficient - r.ReferenceCoefficient)
}

// InterceptDelta returns the absolute difference between the custom and
// reference intercepts.
func (r *SimpleResult) InterceptDelta() float64 {
	return math.Abs(r.CustomIntercept - r.ReferenceIntercept)
}

// Simple fits x, y with linear.Regression.FitSimple and with
// stat.LinearRegression and returns both parameter sets.
func Simple(x, y []float64) (*SimpleResult, error) {
	reg := linear.NewRegression()
	if err := reg.FitSimple(x, y); err != nil {
		return nil, err
	}

	refIntercept, refSlope := stat.LinearRegression(x, y, nil, false)

	result := &SimpleResult{
		CustomCoefficient:    reg.Coefficients()[0],
		CustomIntercept:      reg.Intercept(),
		ReferenceCoefficient: refSlope,
		ReferenceIntercept:   refIntercept,
	}

	slog.Debug("reference comparison",
		log.ComponentKey, "compare",
		log.SamplesKey, len(x),
		"coefficient_delta", result.CoefficientDelta(),
		"intercept_delta", result.InterceptDelta(),
	)

	return result, nil
}
