// Package interval provides rounded-outward arithmetic on closed real
// intervals, the numeric foundation the rest of abstree builds on.
//
// Every operation returns a sound overapproximation of the true real-valued
// result: lowerbounds are rounded toward -Inf, upperbounds toward +Inf, so
// for any operation ⊙ and any concrete a ∈ x, b ∈ y, it holds that
// a ⊙ b ∈ x ⊙ y. Go exposes no hardware rounding-mode control, so soundness
// is obtained by nudging each computed bound one ULP outward with
// math.Nextafter (see rounding.go) — the same "directed rounding by
// nudging" strategy used by software interval libraries that target
// platforms without FPU rounding-mode control.
//
// Intervals never error at runtime. An operation that would be undefined on
// a malformed operand instead produces the bottom interval (L > U), which
// propagates through every subsequent operation exactly like NaN propagates
// through floating point. Callers detect this with IsBottom.
package interval
