package tree

// LabelSet is a mutable, reusable overapproximation of "the set of labels a
// classifier (or an abstraction of one) assigns". It is backed by a dense
// []bool indexed by label position rather than a map, so it can be reset
// and reused across refinement steps without allocating (SPEC_FULL.md §5:
// AnalysisData scratch buffers are sized once and reused).
//
// Equality is defined, per SPEC_FULL.md §9's resolution of the source's
// "set_is_equal" ambiguity, over the full element set rather than
// cardinality alone, and a nil LabelSet is never a valid operand — every
// method panics on a nil receiver or a nil argument rather than silently
// treating it as the empty set. Cardinality-only equality previously let
// two same-size but disjoint sets compare equal by accident; symmetry
// under a nil argument was likewise unspecified. Both ambiguities are
// closed here: Equal and IsDisjoint require non-nil, same-length operands
// and compare every element.
type LabelSet struct {
	present []bool
	k       int
}

// NewLabelSet allocates an empty LabelSet sized for k labels.
func NewLabelSet(k int) *LabelSet {
	return &LabelSet{present: make([]bool, k), k: k}
}

// Reset clears every element, readying the set for reuse.
func (s *LabelSet) Reset() {
	for i := range s.present {
		s.present[i] = false
	}
}

// Add marks label index i as present.
func (s *LabelSet) Add(i int) { s.present[i] = true }

// Contains reports whether label index i is present.
func (s *LabelSet) Contains(i int) bool { return s.present[i] }

// Len returns the number of present labels.
func (s *LabelSet) Len() int {
	n := 0
	for _, p := range s.present {
		if p {
			n++
		}
	}

	return n
}

// CopyFrom overwrites s's contents with other's. Both must share k.
func (s *LabelSet) CopyFrom(other *LabelSet) {
	if other == nil {
		panic("tree: LabelSet.CopyFrom requires a non-nil argument")
	}
	if len(s.present) != len(other.present) {
		panic("tree: LabelSet size mismatch")
	}
	copy(s.present, other.present)
}

// Clone returns an independent copy of s.
func (s *LabelSet) Clone() *LabelSet {
	cp := NewLabelSet(s.k)
	copy(cp.present, s.present)

	return cp
}

// Equal reports whether s and other contain exactly the same elements.
// Panics if either operand is nil or they are sized for a different K.
func (s *LabelSet) Equal(other *LabelSet) bool {
	if s == nil || other == nil {
		panic("tree: LabelSet.Equal forbids nil operands")
	}
	if len(s.present) != len(other.present) {
		panic("tree: LabelSet size mismatch")
	}
	for i := range s.present {
		if s.present[i] != other.present[i] {
			return false
		}
	}

	return true
}

// IsDisjoint reports whether s and other share no element.
func (s *LabelSet) IsDisjoint(other *LabelSet) bool {
	if s == nil || other == nil {
		panic("tree: LabelSet.IsDisjoint forbids nil operands")
	}
	if len(s.present) != len(other.present) {
		panic("tree: LabelSet size mismatch")
	}
	for i := range s.present {
		if s.present[i] && other.present[i] {
			return false
		}
	}

	return true
}

// ToStrings materializes the present labels, in label order, by looking
// them up in labels (which callers pass as Tree.Labels()/Forest.Labels()).
func (s *LabelSet) ToStrings(labels []string) []string {
	out := make([]string, 0, s.Len())
	for i, p := range s.present {
		if p {
			out = append(out, labels[i])
		}
	}

	return out
}

// leafLabelSet computes the tie-for-maximum label set of a counting or
// log-probability leaf directly into dst (which the caller resets first).
func (t *Tree) leafLabelSet(id NodeID, dst *LabelSet) {
	n := t.nodes[id]
	switch n.kind {
	case KindLeaf:
		max := n.maxScore
		for i, s := range n.scores {
			if s == max {
				dst.Add(i)
			}
		}
	case KindLogLeaf:
		max := n.logProbs[0]
		for _, lp := range n.logProbs[1:] {
			if lp > max {
				max = lp
			}
		}
		for i, lp := range n.logProbs {
			if lp == max {
				dst.Add(i)
			}
		}
	default:
		panic("tree: leafLabelSet called on a non-leaf node")
	}
}

// LeafLabelSet returns a freshly allocated LabelSet of the labels tying for
// maximum at leaf id. ClassifyInto uses leafLabelSet into a reused buffer
// instead, avoiding this allocation.
func (t *Tree) LeafLabelSet(id NodeID) *LabelSet {
	dst := NewLabelSet(t.K())
	t.leafLabelSet(id, dst)

	return dst
}
