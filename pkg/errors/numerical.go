package errors

import (
	"math"
)

// CheckFinite returns an error when any value is NaN or Inf.
func CheckFinite(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Newf("regressio: %s: non-finite value %v in result", operation, v)
		}
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
