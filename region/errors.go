package region

import "errors"

// Sentinel errors for region package operations.
var (
	// ErrEmptySample indicates an AdversarialRegion was built with |x| == 0.
	ErrEmptySample = errors.New("region: reference sample must be non-empty")

	// ErrNegativeRadius indicates a perturbation radius r < 0.
	ErrNegativeRadius = errors.New("region: perturbation radius must be >= 0")

	// ErrInvalidClipBounds indicates lo > hi in an L∞-clip perturbation.
	ErrInvalidClipBounds = errors.New("region: clip lower bound exceeds upper bound")

	// ErrMalformedRegion indicates a FromStream perturbation could not be
	// parsed: spec.md §7's MALFORMED_REGION error kind.
	ErrMalformedRegion = errors.New("region: malformed region stream")

	// ErrDimensionMismatch indicates a stream-supplied box's dimension
	// does not match the reference sample's.
	ErrDimensionMismatch = errors.New("region: dimension mismatch")
)
