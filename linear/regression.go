// Package linear implements ordinary least-squares regression, both the
// simple (single predictor, closed-form covariance/variance) and the
// multiple (normal equations on the augmented design matrix) variants.
package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/regressio/regressio/core/model"
	"github.com/regressio/regressio/core/parallel"
	"github.com/regressio/regressio/metrics"
	"github.com/regressio/regressio/pkg/errors"
)

// Row counts at or below this threshold are processed sequentially.
const parallelThreshold = 1000

// Regression is an ordinary least-squares linear model. The zero value is
// an unfitted model; any successful fit moves it to the fitted state and
// repeated fits overwrite the previous parameters. A failed fit leaves the
// prior parameters untouched.
type Regression struct {
	model.BaseEstimator

	coefficients *mat.VecDense // one entry per predictor, nil while unfitted
	intercept    float64
	nFeatures    int
	solver       Solver
}

// NewRegression creates a new unfitted Regression.
func NewRegression(opts ...Option) *Regression {
	r := &Regression{solver: SolverNormal}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FitSimple fits a single-predictor model:
//
//	slope     = Cov(x, y) / Var(x)
//	intercept = mean(y) - slope * mean(x)
//
// Covariance and variance are the population forms (denominator n); the
// denominators cancel in the ratio. A zero-variance predictor is not an
// error: the slope becomes non-finite, a DegenerateDataWarning is emitted
// and the parameters are stored as computed.
//
// Multi-feature input cannot reach this method: a []float64 carries exactly
// one variable. Use Fit for p > 1.
func (r *Regression) FitSimple(x, y []float64) error {
	n := len(x)
	if n == 0 {
		return errors.NewModelError("Regression.FitSimple", "empty data", errors.ErrEmptyData)
	}
	if len(y) != n {
		return errors.NewDimensionError("Regression.FitSimple", n, len(y), 0)
	}

	xMean := stat.Mean(x, nil)
	yMean := stat.Mean(y, nil)

	var cov, variance float64
	for i := 0; i < n; i++ {
		dx := x[i] - xMean
		cov += dx * (y[i] - yMean)
		variance += dx * dx
	}

	slope := cov / variance
	intercept := yMean - slope*xMean

	if !errors.IsFinite(slope) || !errors.IsFinite(intercept) {
		errors.Warn(errors.NewDegenerateDataWarning("Regression.FitSimple",
			"zero variance in predictor"))
	}

	r.coefficients = mat.NewVecDense(1, []float64{slope})
	r.intercept = intercept
	r.nFeatures = 1
	r.SetFitted()

	return nil
}

// Fit fits a multiple regression model by solving the normal equations
//
//	w = (X'ᵀ X')⁻¹ X'ᵀ y
//
// where X' is X augmented with a leading column of ones for the intercept.
// The default solver inverts X'ᵀX' explicitly; WithSolver(SolverQR) selects
// a QR factorization of X' instead, which produces the same parameters on
// well-conditioned data. A rank-deficient design matrix yields an error
// wrapping ErrSingularMatrix.
func (r *Regression) Fit(X, y mat.Matrix) (err error) {
	// mat panics on malformed backing data; keep that inside the error
	// contract.
	defer errors.Recover(&err, "Regression.Fit")

	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("Regression.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != rows {
		return errors.NewDimensionError("Regression.Fit", rows, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("Regression.Fit", "y must be a column vector")
	}

	// Design matrix X' = [1, X].
	design := mat.NewDense(rows, cols+1, nil)
	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			design.Set(i, 0, 1.0)
			for j := 0; j < cols; j++ {
				design.Set(i, j+1, X.At(i, j))
			}
		}
	})

	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var weights *mat.VecDense
	switch r.solver {
	case SolverQR:
		weights, err = solveQR(design, yVec)
	default:
		weights, err = solveNormalEquations(design, yVec)
	}
	if err != nil {
		return err
	}
	if cfErr := errors.CheckFinite("Regression.Fit", weights.RawVector().Data); cfErr != nil {
		return errors.NewModelError("Regression.Fit", "non-finite solution", errors.ErrSingularMatrix)
	}

	// First element of w is the intercept, the rest are the coefficients
	// in input column order. Assigned together only after a successful
	// solve.
	coefficients := mat.NewVecDense(cols, nil)
	for i := 0; i < cols; i++ {
		coefficients.SetVec(i, weights.AtVec(i+1))
	}
	r.coefficients = coefficients
	r.intercept = weights.AtVec(0)
	r.nFeatures = cols
	r.SetFitted()

	return nil
}

// solveNormalEquations computes (XᵀX)⁻¹ Xᵀ y by explicit inversion.
func solveNormalEquations(X *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	var xt mat.Dense
	xt.CloneFrom(X.T())

	var xtx mat.Dense
	xtx.Mul(&xt, X)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, errors.NewModelError("Regression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	var xty mat.VecDense
	xty.MulVec(&xt, y)

	_, cols := X.Dims()
	weights := mat.NewVecDense(cols, nil)
	weights.MulVec(&xtxInv, &xty)

	return weights, nil
}

// solveQR solves the least-squares problem via QR factorization of X with
// back-substitution on R.
func solveQR(X *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	_, cols := X.Dims()

	qr := new(mat.QR)
	qr.Factorize(X)

	q := new(mat.Dense)
	rr := new(mat.Dense)
	qr.QTo(q)
	qr.RTo(rr)

	var qty mat.VecDense
	qty.MulVec(q.T(), y)

	// A rank-deficient design leaves a relatively tiny (not exactly zero)
	// diagonal entry in R; compare pivots against the largest one.
	var maxDiag float64
	for i := 0; i < cols; i++ {
		if d := math.Abs(rr.At(i, i)); d > maxDiag {
			maxDiag = d
		}
	}
	eps := math.Nextafter(1, 2) - 1
	tol := float64(cols) * eps * maxDiag

	weights := mat.NewVecDense(cols, nil)
	for i := cols - 1; i >= 0; i-- {
		v := qty.AtVec(i)
		for j := i + 1; j < cols; j++ {
			v -= weights.AtVec(j) * rr.At(i, j)
		}
		diag := rr.At(i, i)
		if math.Abs(diag) <= tol || math.IsNaN(diag) {
			return nil, errors.NewModelError("Regression.Fit", "singular matrix", errors.ErrSingularMatrix)
		}
		weights.SetVec(i, v/diag)
	}

	return weights, nil
}

// Predict returns an n×1 matrix of predictions, intercept + X·coefficients.
// The model must be fitted and X must have the fitted feature count.
func (r *Regression) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "Regression.Predict")

	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regression", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.nFeatures {
		return nil, errors.NewDimensionError("Regression.Predict", r.nFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := r.intercept
			for j := 0; j < cols; j++ {
				pred += X.At(i, j) * r.coefficients.AtVec(j)
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// PredictVec is the single-predictor form of Predict: intercept + slope*x
// element-wise. It requires a model fitted on exactly one feature.
func (r *Regression) PredictVec(x []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regression", "PredictVec")
	}
	if r.nFeatures != 1 {
		return nil, errors.NewValueError("Regression.PredictVec",
			"model was fitted with more than one feature; use Predict")
	}

	slope := r.coefficients.AtVec(0)
	predictions := make([]float64, len(x))
	for i, v := range x {
		predictions[i] = r.intercept + slope*v
	}
	return predictions, nil
}

// Coefficients returns the fitted coefficients in input column order, or
// nil while the model is unfitted. The returned slice is a copy.
func (r *Regression) Coefficients() []float64 {
	if r.coefficients == nil {
		return nil
	}

	coefficients := make([]float64, r.coefficients.Len())
	for i := 0; i < r.coefficients.Len(); i++ {
		coefficients[i] = r.coefficients.AtVec(i)
	}
	return coefficients
}

// Intercept returns the fitted intercept, or 0 while the model is unfitted.
func (r *Regression) Intercept() float64 {
	if !r.IsFitted() {
		return 0
	}
	return r.intercept
}

// NumFeatures returns the number of predictors the model was fitted on.
func (r *Regression) NumFeatures() int {
	return r.nFeatures
}

// Score computes the coefficient of determination R² on X, y.
func (r *Regression) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Regression", "Score")
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, _ := y.Dims()
	yTrueVec := mat.NewVecDense(rows, nil)
	yPredVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yTrueVec.SetVec(i, y.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return metrics.R2Score(yTrueVec, yPredVec)
}
