// Package treebuilder accumulates node-arena entries incrementally and
// hands them to tree.New / forest.New in one validated step, the same
// accumulate-then-validate shape the graph builder package uses for
// topology constructors: build up state through small typed calls, defer
// all invariant checking to a single terminal Build call.
package treebuilder
