package dataset

import "errors"

// Sentinel errors for dataset package operations.
var (
	// ErrInvalidDimensions indicates nRows or nCols <= 0.
	ErrInvalidDimensions = errors.New("dataset: dimensions must be > 0")

	// ErrRowIndexOutOfRange indicates a row index outside [0, nRows).
	ErrRowIndexOutOfRange = errors.New("dataset: row index out of range")

	// ErrLabelCountMismatch indicates len(labels) != nRows.
	ErrLabelCountMismatch = errors.New("dataset: label count must equal row count")

	// ErrFeatureCountMismatch indicates a supplied row's length != nCols, or
	// (from At) a column index outside [0, nCols).
	ErrFeatureCountMismatch = errors.New("dataset: feature count mismatch")
)
