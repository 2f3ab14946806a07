package tree

import "errors"

// Sentinel errors for tree package operations.
var (
	// ErrEmptyLabels indicates a tree was constructed with zero labels.
	ErrEmptyLabels = errors.New("tree: label set must be non-empty")

	// ErrFeatureIndexOutOfRange indicates a Split references feature i >= n.
	ErrFeatureIndexOutOfRange = errors.New("tree: split feature index out of range")

	// ErrLeafScoreLengthMismatch indicates a Leaf/LogLeaf score vector length != K.
	ErrLeafScoreLengthMismatch = errors.New("tree: leaf score vector length mismatch")

	// ErrDanglingChild indicates a Split references a NodeID outside the arena.
	ErrDanglingChild = errors.New("tree: split references unknown child node")

	// ErrNoRoot indicates a tree arena has no designated root.
	ErrNoRoot = errors.New("tree: no root node designated")

	// ErrDimensionMismatch indicates a sample's length does not match n.
	ErrDimensionMismatch = errors.New("tree: sample dimension mismatch")

	// ErrBottomHyperrectangle indicates ReachableLeaves was handed a bottom
	// (empty) hyperrectangle; callers must not present one (§4.4 edge case).
	ErrBottomHyperrectangle = errors.New("tree: hyperrectangle is bottom")
)
