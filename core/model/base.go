package model

// EstimatorState represents the training state of an estimator.
type EstimatorState int

const (
	// NotFitted is the initial state of an estimator.
	NotFitted EstimatorState = iota
	// Fitted is the state after a successful fit.
	Fitted
)

// BaseEstimator is embedded by every estimator and tracks the
// NotFitted -> Fitted state machine. Repeated fits keep the estimator in
// the Fitted state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to the NotFitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
