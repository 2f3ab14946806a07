package verify

import "errors"

// Sentinel errors for verify package operations.
var (
	// ErrInvalidTimeout indicates a per-sample timeout < 1 second; zero is
	// not a valid "no timeout" sentinel (SPEC_FULL.md §5).
	ErrInvalidTimeout = errors.New("verify: timeout must be >= 1 second")

	// ErrDimensionMismatch indicates the reference sample or region does
	// not match the classifier's feature-space size.
	ErrDimensionMismatch = errors.New("verify: dimension mismatch")

	// ErrTierSizeMismatch indicates a tier vector whose length differs
	// from the classifier's feature count.
	ErrTierSizeMismatch = errors.New("verify: tier vector size mismatch")
)

// internalInvariant panics with msg, tagging a condition §7 classifies as
// INTERNAL_INVARIANT: a bug, never a recoverable runtime error.
func internalInvariant(msg string) {
	panic("verify: internal invariant violated: " + msg)
}
