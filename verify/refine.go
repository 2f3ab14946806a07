package verify

import (
	"math"

	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/tier"
	"github.com/katalvlaran/abstree/tree"
	"github.com/katalvlaran/abstree/verify/queue"
)

// refineEpsilon is the small positive machine constant spec.md §4.6 clamps
// a branch's lower bound away from a split threshold by, so the left and
// right children's regions never overlap at the boundary point itself.
const refineEpsilon = 1e-9

// leafRegion pairs a reachable leaf with the hyperrectangle refined along
// the guard path that reaches it.
type leafRegion struct {
	leaf tree.NodeID
	h    interval.Hyperrectangle
}

type walkFrame struct {
	node  tree.NodeID
	h     interval.Hyperrectangle
	depth int
}

// walkTreeForRefinement traverses t from its root, carrying a working
// hyperrectangle that narrows at each split (spec.md §4.6 step 2), and
// returns every reachable leaf paired with its refined region. Branch
// order is governed by a priority queue biased toward deeper nodes and the
// wider (more uncertain) remaining side, which only affects the
// determinism of the returned order, not which leaves are found — both
// sides of a straddled split are always explored.
//
// The corrected clamping form of SPEC_FULL.md §9 is used: the left child's
// interval is upper-clamped to the threshold k, and the right child's
// interval is lower-clamped to max(current lower bound, k+ε) — not the
// source's suspicious max(upper bound, k) on the right side.
func walkTreeForRefinement(t *tree.Tree, h0 interval.Hyperrectangle, tv tier.Vector) []leafRegion {
	if h0.IsBottom() {
		internalInvariant("walkTreeForRefinement received a bottom hyperrectangle")
	}

	q := queue.New()
	q.Push(0, walkFrame{node: t.Root(), h: h0, depth: 0})

	var out []leafRegion
	for q.Len() > 0 {
		raw, _, _ := q.Pop()
		fr := raw.(walkFrame)
		if fr.h.IsBottom() {
			continue
		}
		if t.NodeKind(fr.node) != tree.KindSplit {
			out = append(out, leafRegion{leaf: fr.node, h: fr.h})
			continue
		}

		i := t.SplitFeature(fr.node)
		k := t.SplitThreshold(fr.node)
		dim := fr.h.Dims[i]
		left, right := t.SplitChildren(fr.node)

		if dim.L <= k {
			lh := fr.h.WithDim(i, interval.Interval{L: dim.L, U: math.Min(dim.U, k)})
			if tv != nil {
				lh = tier.Adjust(lh, tv, i)
			}
			if !lh.IsBottom() {
				q.Push(float64(fr.depth+1)+(k-dim.L), walkFrame{node: left, h: lh, depth: fr.depth + 1})
			}
		}
		if dim.U > k {
			rh := fr.h.WithDim(i, interval.Interval{L: math.Max(dim.L, k+refineEpsilon), U: dim.U})
			if tv != nil {
				rh = tier.Adjust(rh, tv, i)
			}
			if !rh.IsBottom() {
				q.Push(float64(fr.depth+1)+(dim.U-k), walkFrame{node: right, h: rh, depth: fr.depth + 1})
			}
		}
	}

	return out
}

// Refine performs one refinement step on decorator d (spec.md §4.6).
//
// Terminal case (d.Depth == f.T()): d's leaf choice spans every tree. A
// mismatch against labelsA is a counter-example; a match retires d.
//
// Expansion case: trees[d.Depth] is walked from its root, producing a
// child decorator per reachable leaf whose overapproximated label set
// neither exactly matches labelsA (robust, dropped) nor is disjoint from
// it (an immediate counter-example). Surviving children are returned for
// the caller to push into the outer search frontier.
func Refine(f *forest.Forest, d *Decorator, labelsA *tree.LabelSet, tv tier.Vector, data *AnalysisData) (children []*Decorator, witness *Witness, err error) {
	if d.Depth == f.T() {
		if !d.Labels.Equal(labelsA) {
			return nil, &Witness{Sample: d.Region.Midpoint(), Region: d.Region}, nil
		}

		return nil, nil, nil
	}

	leaves := walkTreeForRefinement(f.Tree(d.Depth), d.Region, tv)
	if len(leaves) == 0 {
		internalInvariant("reachable-leaf walk returned empty on a non-bottom region")
	}

	for _, lr := range leaves {
		fixed := make([]tree.NodeID, d.Depth+1)
		copy(fixed, d.FixedLeaves)
		fixed[d.Depth] = lr.leaf

		scores, serr := f.ScoreOverapproximation(d.Depth+1, fixed, lr.h, data.rbuf)
		if serr != nil {
			return nil, nil, serr
		}
		data.scratch.Reset()
		forest.LabelSetFromScoresInto(scores, data.scratch)

		if data.scratch.IsDisjoint(labelsA) {
			return nil, &Witness{Sample: lr.h.Midpoint(), Region: lr.h}, nil
		}
		if data.scratch.Equal(labelsA) {
			continue
		}

		children = append(children, &Decorator{
			Depth:       d.Depth + 1,
			Region:      lr.h,
			FixedLeaves: fixed,
			Labels:      data.scratch.Clone(),
		})
	}

	return children, nil, nil
}
