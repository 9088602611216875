// Package regressio is a small ordinary least-squares regression library
// for exploring linear models on in-memory datasets.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/regressio/regressio/linear"
//	    "github.com/regressio/regressio/metrics"
//	)
//
//	func main() {
//	    x := []float64{1, 2, 3, 4}
//	    y := []float64{2, 4, 6, 8}
//
//	    reg := linear.NewRegression()
//	    if err := reg.FitSimple(x, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    yPred, err := reg.PredictVec(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := metrics.EvaluateRegression(y, yPred)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result) // map[MAE:0 R2:1 RMSE:0]
//	}
//
// # Packages
//
//   - linear: the Regression estimator (FitSimple, Fit, Predict, Score)
//   - metrics: RMSE, MAE, R² and the EvaluateRegression report
//   - dataset: named example datasets (Anscombe's quartet)
//   - compare: side-by-side comparison against gonum's reference fit
//   - report: PNG and HTML rendering of fits and metrics
package regressio
