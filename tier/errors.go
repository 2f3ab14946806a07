package tier

import "errors"

// Sentinel errors for tier package operations.
var (
	// ErrDimensionMismatch indicates a tier vector's length does not match
	// the Hyperrectangle it is applied to.
	ErrDimensionMismatch = errors.New("tier: dimension mismatch")

	// ErrFeatureIndexOutOfRange indicates a negative group ID in a tier
	// vector passed to New.
	ErrFeatureIndexOutOfRange = errors.New("tier: feature index out of range")
)
