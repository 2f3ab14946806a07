package interval

import "math"

// roundDown nudges x one ULP toward -Inf, the directed-rounding primitive
// every lowerbound computation in this package goes through.
func roundDown(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return math.Nextafter(x, math.Inf(-1))
}

// roundUp nudges x one ULP toward +Inf, the directed-rounding primitive
// every upperbound computation in this package goes through.
func roundUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return math.Nextafter(x, math.Inf(1))
}
