package linear

// Solver selects how Fit solves the normal equations.
type Solver int

const (
	// SolverNormal inverts X'ᵀX' explicitly. This is the documented
	// algorithm; it is fragile on ill-conditioned data.
	SolverNormal Solver = iota
	// SolverQR factorizes the design matrix instead of inverting X'ᵀX'.
	// Same parameters on well-conditioned data, better behaved otherwise.
	SolverQR
)

// Option is a function that configures a Regression.
type Option func(*Regression)

// WithSolver selects the least-squares solver used by Fit.
func WithSolver(s Solver) Option {
	return func(r *Regression) {
		r.solver = s
	}
}
