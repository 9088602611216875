// Package model provides the estimator state machine, the common model
// interfaces and persistence helpers shared by all regressio estimators.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on X (n×p) and y (n×1).
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns an n×1 matrix of predictions for X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// LinearModel exposes the fitted parameters of a linear estimator as plain
// values, for comparison against reference implementations.
type LinearModel interface {
	// Coefficients returns the fitted coefficients in input column order.
	Coefficients() []float64
	// Intercept returns the fitted intercept.
	Intercept() float64
}

// Regressor combines the interfaces a regression model satisfies.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}
