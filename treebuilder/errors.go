package treebuilder

import "errors"

// Sentinel errors for treebuilder package operations.
var (
	// ErrNoRootSet indicates Build was called before SetRoot.
	ErrNoRootSet = errors.New("treebuilder: root not set")

	// ErrNoTreesAdded indicates a forest Builder's Build was called with
	// zero member trees.
	ErrNoTreesAdded = errors.New("treebuilder: no trees added")
)
