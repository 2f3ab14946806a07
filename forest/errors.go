package forest

import "errors"

// Sentinel errors for forest package operations.
var (
	// ErrNoTrees indicates a forest was constructed with zero trees.
	ErrNoTrees = errors.New("forest: forest must contain at least one tree")

	// ErrFeatureDimMismatch indicates member trees disagree on n.
	ErrFeatureDimMismatch = errors.New("forest: member trees disagree on feature dimension")

	// ErrLabelMismatch indicates member trees disagree on the label set.
	ErrLabelMismatch = errors.New("forest: member trees disagree on label set")

	// ErrVotingLeafKindMismatch indicates a tree's leaf kind is incompatible
	// with the forest's voting scheme (MAX/AVERAGE require counting leaves,
	// SOFTARGMAX requires log-probability leaves — spec.md §4.3).
	ErrVotingLeafKindMismatch = errors.New("forest: tree leaf kind incompatible with voting scheme")

	// ErrUnknownVotingScheme indicates an invalid VotingScheme value.
	ErrUnknownVotingScheme = errors.New("forest: unknown voting scheme")

	// ErrDimensionMismatch indicates a sample's length does not match n.
	ErrDimensionMismatch = errors.New("forest: sample dimension mismatch")

	// ErrDepthOutOfRange indicates a ScoreOverapproximation call supplied a
	// decorator depth outside [0, T] or a fixedLeaves slice of the wrong length.
	ErrDepthOutOfRange = errors.New("forest: decorator depth out of range")
)
