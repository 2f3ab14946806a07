package forest

import (
	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/tree"
)

// ScoreOverapproximation produces an interval vector S that soundly
// overapproximates the forest's voted score vector across every point of
// h, given that trees[0:depth] already have a concrete, fixed leaf
// (fixedLeaves[i] for tree i) and trees[depth:T] remain abstract — their
// contribution is derived by enumerating every leaf reachable under h
// (spec.md §4.5):
//
//	S = concrete_part(fixedLeaves) + abstract_part(trees[depth:], h)
//
// rbuf is the caller-owned scratch stack ReachableLeaves reuses; it must
// not be shared across concurrent calls.
func (f *Forest) ScoreOverapproximation(depth int, fixedLeaves []tree.NodeID, h interval.Hyperrectangle, rbuf *tree.ReachableBuffer) ([]interval.Interval, error) {
	if depth < 0 || depth > f.T() || len(fixedLeaves) != depth {
		return nil, ErrDepthOutOfRange
	}
	if h.N() != f.n {
		return nil, ErrDimensionMismatch
	}

	switch f.scheme {
	case Max:
		return f.scoreMax(depth, fixedLeaves, h, rbuf)
	case Average:
		return f.scoreAverage(depth, fixedLeaves, h, rbuf)
	case SoftArgmax:
		return f.scoreSoftArgmax(depth, fixedLeaves, h, rbuf)
	default:
		return nil, ErrUnknownVotingScheme
	}
}

func (f *Forest) scoreMax(depth int, fixedLeaves []tree.NodeID, h interval.Hyperrectangle, rbuf *tree.ReachableBuffer) ([]interval.Interval, error) {
	k := f.K()
	out := make([]interval.Interval, k)
	for i := 0; i < depth; i++ {
		set := f.trees[i].LeafLabelSet(fixedLeaves[i])
		for lbl := 0; lbl < k; lbl++ {
			if set.Contains(lbl) {
				out[lbl] = interval.Add(out[lbl], interval.Exact(1))
			}
		}
	}

	var leaves []tree.NodeID
	for ti := depth; ti < f.T(); ti++ {
		leaves = leaves[:0]
		var err error
		leaves, err = f.trees[ti].ReachableLeaves(h, rbuf, leaves)
		if err != nil {
			return nil, err
		}
		allCount := make([]int, k)
		for _, leaf := range leaves {
			set := f.trees[ti].LeafLabelSet(leaf)
			for lbl := 0; lbl < k; lbl++ {
				if set.Contains(lbl) {
					allCount[lbl]++
				}
			}
		}
		n := len(leaves)
		for lbl := 0; lbl < k; lbl++ {
			lo, hi := 0.0, 0.0
			if allCount[lbl] == n && n > 0 {
				lo = 1
			}
			if allCount[lbl] > 0 {
				hi = 1
			}
			out[lbl] = interval.Add(out[lbl], interval.Interval{L: lo, U: hi})
		}
	}

	return out, nil
}

func (f *Forest) scoreAverage(depth int, fixedLeaves []tree.NodeID, h interval.Hyperrectangle, rbuf *tree.ReachableBuffer) ([]interval.Interval, error) {
	k := f.K()
	raw := make([]interval.Interval, k)
	for i := 0; i < depth; i++ {
		leaf := fixedLeaves[i]
		scores := f.trees[i].LeafScores(leaf)
		ns := float64(f.trees[i].LeafNSamples(leaf))
		for lbl := 0; lbl < k; lbl++ {
			raw[lbl] = interval.Add(raw[lbl], interval.Exact(float64(scores[lbl])/ns))
		}
	}

	var leaves []tree.NodeID
	for ti := depth; ti < f.T(); ti++ {
		leaves = leaves[:0]
		var err error
		leaves, err = f.trees[ti].ReachableLeaves(h, rbuf, leaves)
		if err != nil {
			return nil, err
		}
		mins := make([]float64, k)
		maxs := make([]float64, k)
		for lbl := 0; lbl < k; lbl++ {
			mins[lbl], maxs[lbl] = posInf, negInf
		}
		for _, leaf := range leaves {
			scores := f.trees[ti].LeafScores(leaf)
			ns := float64(f.trees[ti].LeafNSamples(leaf))
			for lbl := 0; lbl < k; lbl++ {
				p := float64(scores[lbl]) / ns
				if p < mins[lbl] {
					mins[lbl] = p
				}
				if p > maxs[lbl] {
					maxs[lbl] = p
				}
			}
		}
		for lbl := 0; lbl < k; lbl++ {
			raw[lbl] = interval.Add(raw[lbl], interval.Interval{L: mins[lbl], U: maxs[lbl]})
		}
	}

	t := float64(f.T())
	out := make([]interval.Interval, k)
	for lbl := 0; lbl < k; lbl++ {
		out[lbl] = interval.Scale(raw[lbl], 1/t)
	}

	return out, nil
}

func (f *Forest) scoreSoftArgmax(depth int, fixedLeaves []tree.NodeID, h interval.Hyperrectangle, rbuf *tree.ReachableBuffer) ([]interval.Interval, error) {
	k := f.K()
	sumLog := make([]interval.Interval, k)
	for i := 0; i < depth; i++ {
		lp := f.trees[i].LeafLogProbs(fixedLeaves[i])
		for lbl := 0; lbl < k; lbl++ {
			sumLog[lbl] = interval.Add(sumLog[lbl], interval.Exact(lp[lbl]))
		}
	}

	var leaves []tree.NodeID
	for ti := depth; ti < f.T(); ti++ {
		leaves = leaves[:0]
		var err error
		leaves, err = f.trees[ti].ReachableLeaves(h, rbuf, leaves)
		if err != nil {
			return nil, err
		}
		mins := make([]float64, k)
		maxs := make([]float64, k)
		for lbl := 0; lbl < k; lbl++ {
			mins[lbl], maxs[lbl] = posInf, negInf
		}
		for _, leaf := range leaves {
			lp := f.trees[ti].LeafLogProbs(leaf)
			for lbl := 0; lbl < k; lbl++ {
				if lp[lbl] < mins[lbl] {
					mins[lbl] = lp[lbl]
				}
				if lp[lbl] > maxs[lbl] {
					maxs[lbl] = lp[lbl]
				}
			}
		}
		for lbl := 0; lbl < k; lbl++ {
			sumLog[lbl] = interval.Add(sumLog[lbl], interval.Interval{L: mins[lbl], U: maxs[lbl]})
		}
	}

	expd := make([]interval.Interval, k)
	for lbl := range sumLog {
		expd[lbl] = interval.Exp(sumLog[lbl])
	}

	var sumExp interval.Interval
	for _, e := range expd {
		sumExp = interval.Add(sumExp, e)
	}

	out := make([]interval.Interval, k)
	for lbl := range expd {
		out[lbl] = interval.Div(expd[lbl], sumExp)
	}

	return out, nil
}

const (
	posInf = 1e308 // stand-in "+Inf" accumulator seed; no finite leaf score exceeds it
	negInf = -1e308
)

// LabelSetFromScores applies spec.md §4.5's "from scores to label set" rule:
// label i is kept iff no other label j strictly dominates it, i.e.
// Sᵢ.u >= Sⱼ.l for every j != i.
func LabelSetFromScores(scores []interval.Interval) *tree.LabelSet {
	set := tree.NewLabelSet(len(scores))
	LabelSetFromScoresInto(scores, set)

	return set
}

// LabelSetFromScoresInto computes the same tie-for-maximum label set as
// LabelSetFromScores directly into dst, which the caller resets first. Hot
// refinement-step call sites reuse a single scratch LabelSet this way
// instead of allocating one per reachable leaf.
func LabelSetFromScoresInto(scores []interval.Interval, dst *tree.LabelSet) {
	k := len(scores)
	for i := 0; i < k; i++ {
		dominated := false
		for j := 0; j < k; j++ {
			if j == i {
				continue
			}
			if scores[i].U < scores[j].L {
				dominated = true
				break
			}
		}
		if !dominated {
			dst.Add(i)
		}
	}
}
