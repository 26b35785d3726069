package engine

import "math"

// Finite maps NaN and ±Inf to 0 so no non-finite number ever leaves an
// engine boundary.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
