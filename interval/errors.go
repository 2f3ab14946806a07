package interval

import "errors"

// Sentinel errors for interval package operations. Intervals themselves
// never fail — these are reserved for the sampling helper, which needs a
// source of randomness and a non-bottom interval to draw from.
var (
	// ErrBottomInterval indicates Sample was called on a bottom interval.
	ErrBottomInterval = errors.New("interval: cannot sample a bottom interval")

	// ErrNilRand indicates Sample was called with a nil random source.
	ErrNilRand = errors.New("interval: nil random source")
)
