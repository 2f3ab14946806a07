package interval

import (
	"fmt"
	"math"
	"math/rand"
)

// Interval is a closed real interval [L, U]. The zero value ([0,0]) is a
// valid, non-bottom interval. When L > U the interval is "bottom": the
// sentinel for an empty / infeasible range. Bottom propagates through every
// binary operation, mirroring NaN propagation in plain float64 arithmetic.
type Interval struct {
	L, U float64
}

// Exact constructs the point interval [v, v].
func Exact(v float64) Interval { return Interval{L: v, U: v} }

// Bottom returns the canonical bottom interval.
func Bottom() Interval { return Interval{L: 1, U: 0} }

// IsBottom reports whether x is the empty/infeasible interval (L > U).
func (x Interval) IsBottom() bool { return x.L > x.U }

// String implements fmt.Stringer for debugging and test failure messages.
func (x Interval) String() string {
	if x.IsBottom() {
		return "⊥"
	}

	return fmt.Sprintf("[%g, %g]", x.L, x.U)
}

// Add returns a sound overapproximation of x + y.
func Add(x, y Interval) Interval {
	if x.IsBottom() || y.IsBottom() {
		return Bottom()
	}

	return Interval{L: roundDown(x.L + y.L), U: roundUp(x.U + y.U)}
}

// Sub returns a sound overapproximation of x - y.
func Sub(x, y Interval) Interval {
	if x.IsBottom() || y.IsBottom() {
		return Bottom()
	}

	return Interval{L: roundDown(x.L - y.U), U: roundUp(x.U - y.L)}
}

// Mul returns a sound overapproximation of x * y.
//
// All nine sign-pattern cases of the operands' bounds are enumerated
// explicitly (rather than taking the min/max of the four corner products),
// matching the reference algorithm: this keeps the common all-positive case
// on the fast path and makes the zero-interval short-circuit explicit.
func Mul(x, y Interval) Interval {
	if x.IsBottom() || y.IsBottom() {
		return Bottom()
	}
	if (x.L == 0 && x.U == 0) || (y.L == 0 && y.U == 0) {
		return Interval{L: 0, U: 0}
	}

	var lo, hi float64
	switch {
	case x.L >= 0 && y.L >= 0: // x ⊆ [0,+∞), y ⊆ [0,+∞)
		lo, hi = x.L*y.L, x.U*y.U
	case x.L >= 0 && y.U <= 0: // x ⊆ [0,+∞), y ⊆ (-∞,0]
		lo, hi = x.U*y.L, x.L*y.U
	case x.L >= 0: // x ⊆ [0,+∞), y straddles 0
		lo, hi = x.U*y.L, x.U*y.U
	case x.U <= 0 && y.L >= 0: // x ⊆ (-∞,0], y ⊆ [0,+∞)
		lo, hi = x.L*y.U, x.U*y.L
	case x.U <= 0 && y.U <= 0: // x ⊆ (-∞,0], y ⊆ (-∞,0]
		lo, hi = x.U*y.U, x.L*y.L
	case x.U <= 0: // x ⊆ (-∞,0], y straddles 0
		lo, hi = x.L*y.U, x.L*y.L
	case y.L >= 0: // x straddles 0, y ⊆ [0,+∞)
		lo, hi = x.L*y.U, x.U*y.U
	case y.U <= 0: // x straddles 0, y ⊆ (-∞,0]
		lo, hi = x.U*y.L, x.L*y.L
	default: // both x and y straddle 0
		lo = math.Min(x.L*y.U, x.U*y.L)
		hi = math.Max(x.L*y.L, x.U*y.U)
	}

	return Interval{L: roundDown(lo), U: roundUp(hi)}
}

// Scale returns a sound overapproximation of c * x for a constant c.
func Scale(x Interval, c float64) Interval {
	if x.IsBottom() {
		return Bottom()
	}
	if c >= 0 {
		return Interval{L: roundDown(c * x.L), U: roundUp(c * x.U)}
	}

	return Interval{L: roundDown(c * x.U), U: roundUp(c * x.L)}
}

// Translate returns a sound overapproximation of x + c for a constant c.
func Translate(x Interval, c float64) Interval {
	if x.IsBottom() {
		return Bottom()
	}

	return Interval{L: roundDown(x.L + c), U: roundUp(x.U + c)}
}

// FMA returns a sound overapproximation of a*b + c (fused multiply-add).
// Go offers no single-rounding hardware FMA with directed rounding, so this
// composes Mul then Add; each step is individually sound, and soundness is
// closed under composition.
func FMA(a, b, c Interval) Interval {
	return Add(Mul(a, b), c)
}

// Pow returns a sound overapproximation of x^n for a non-negative integer n.
func Pow(x Interval, n int) Interval {
	if n < 0 {
		panic("interval: Pow requires a non-negative exponent")
	}
	if x.IsBottom() {
		return Bottom()
	}
	if n == 0 {
		return Exact(1)
	}

	result := Exact(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		n >>= 1
	}

	return result
}

// Exp returns a sound overapproximation of exp(x). exp is monotonically
// increasing, so the bounds carry through directly.
func Exp(x Interval) Interval {
	if x.IsBottom() {
		return Bottom()
	}

	return Interval{L: roundDown(math.Exp(x.L)), U: roundUp(math.Exp(x.U))}
}

// Div returns a sound overapproximation of x / y. If y straddles or touches
// zero the quotient is unbounded in this domain (no ±Inf bound support), so
// Div conservatively returns Bottom; callers that can guarantee y is
// strictly positive or strictly negative (e.g. the SOFTARGMAX normalizer,
// where y is a sum of exponentials) never hit that path.
func Div(x, y Interval) Interval {
	if x.IsBottom() || y.IsBottom() {
		return Bottom()
	}
	if y.L <= 0 && y.U >= 0 {
		return Bottom()
	}

	// 1/y is decreasing on either side of zero, so for a y that excludes
	// zero the reciprocal interval is [1/y.U, 1/y.L] whatever y's sign.
	recipL, recipU := roundDown(1/y.U), roundUp(1/y.L)

	return Mul(x, Interval{L: recipL, U: recipU})
}

// GLB returns the greatest lower bound (meet) of x and y in the interval
// lattice ordered by inclusion: the intersection of x and y. May be bottom.
func GLB(x, y Interval) Interval {
	if x.IsBottom() || y.IsBottom() {
		return Bottom()
	}

	return Interval{L: math.Max(x.L, y.L), U: math.Min(x.U, y.U)}
}

// LUB returns the least upper bound (join) of x and y in the interval
// lattice ordered by inclusion: the smallest interval containing both.
func LUB(x, y Interval) Interval {
	if x.IsBottom() {
		return y
	}
	if y.IsBottom() {
		return x
	}

	return Interval{L: math.Min(x.L, y.L), U: math.Max(x.U, y.U)}
}

// IsStrictlyLessThan reports whether every point of x is strictly less than
// every point of y, i.e. x.U < y.L.
func IsStrictlyLessThan(x, y Interval) bool {
	return x.U < y.L
}

// Midpoint returns the center of a non-bottom interval.
func (x Interval) Midpoint() float64 {
	return x.L + (x.U-x.L)/2
}

// Radius returns the half-width of a non-bottom interval.
func (x Interval) Radius() float64 {
	return (x.U - x.L) / 2
}

// Contains reports whether v lies within [x.L, x.U].
func (x Interval) Contains(v float64) bool {
	return !x.IsBottom() && v >= x.L && v <= x.U
}

// Sample draws a uniform random point from a non-bottom interval.
func (x Interval) Sample(rng *rand.Rand) (float64, error) {
	if rng == nil {
		return 0, ErrNilRand
	}
	if x.IsBottom() {
		return 0, ErrBottomInterval
	}
	if x.L == x.U {
		return x.L, nil
	}

	return x.L + rng.Float64()*(x.U-x.L), nil
}
