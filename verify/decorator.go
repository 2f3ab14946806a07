package verify

import (
	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/tree"
)

// Decorator is a node of the refinement search: a partial choice of leaves
// across a prefix of trees (FixedLeaves[t] for t < Depth) plus the
// hyperrectangle that choice induces, and the label-set overapproximation
// computed for it. Depth equals len(FixedLeaves) (spec.md §3).
//
// Decorators are value-like search-queue payloads, not a parent-linked
// tree: the outer best-first loop owns each Decorator for exactly as long
// as it sits in the frontier, and drops it once Refine has consumed it —
// there is nothing for callers to explicitly free.
type Decorator struct {
	Depth       int
	Region      interval.Hyperrectangle
	FixedLeaves []tree.NodeID
	Labels      *tree.LabelSet
}

// Witness is a concrete counter-example: a point inside Region (itself
// inside the original adversarial region) whose label set differs from
// the reference sample's.
type Witness struct {
	Sample []float64
	Region interval.Hyperrectangle
}
