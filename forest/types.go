package forest

import "github.com/katalvlaran/abstree/tree"

// VotingScheme selects how per-tree score vectors combine into a forest
// score vector (spec.md §4.3).
type VotingScheme uint8

const (
	// Max counts, per label, how many trees have that label tying for
	// their own per-tree argmax. Requires counting leaves (KindLeaf).
	Max VotingScheme = iota
	// Average is the per-label mean of each tree's normalized leaf
	// frequency. Requires counting leaves (KindLeaf).
	Average
	// SoftArgmax normalizes the exponentiated sum of per-tree log
	// probabilities. Requires log-probability leaves (KindLogLeaf).
	SoftArgmax
)

// String implements fmt.Stringer for logging and CLI rendering.
func (v VotingScheme) String() string {
	switch v {
	case Max:
		return "MAX"
	case Average:
		return "AVERAGE"
	case SoftArgmax:
		return "SOFTARGMAX"
	default:
		return "UNKNOWN"
	}
}

// requiredLeafKind returns the tree.Kind every member tree's leaves must
// carry for this voting scheme.
func (v VotingScheme) requiredLeafKind() (tree.Kind, error) {
	switch v {
	case Max, Average:
		return tree.KindLeaf, nil
	case SoftArgmax:
		return tree.KindLogLeaf, nil
	default:
		return 0, ErrUnknownVotingScheme
	}
}

// Forest is an ordered, non-empty collection of decision trees sharing a
// feature-space dimension and a label set (by position), parameterized by
// a single voting scheme.
type Forest struct {
	trees  []*tree.Tree
	scheme VotingScheme
	n      int
	labels []string
}

// New validates and assembles a Forest. Every member tree must share n and
// an identical (by position) label set, and every member tree's leaves
// must carry the representation scheme requires (spec.md §4.3).
func New(trees []*tree.Tree, scheme VotingScheme) (*Forest, error) {
	if len(trees) == 0 {
		return nil, ErrNoTrees
	}
	wantKind, err := scheme.requiredLeafKind()
	if err != nil {
		return nil, err
	}

	n := trees[0].N()
	labels := trees[0].Labels()
	for _, tr := range trees {
		if tr.N() != n {
			return nil, ErrFeatureDimMismatch
		}
		if !sameLabels(tr.Labels(), labels) {
			return nil, ErrLabelMismatch
		}
		kind, ok := tr.UniformLeafKind()
		if !ok || kind != wantKind {
			return nil, ErrVotingLeafKindMismatch
		}
	}

	cp := make([]*tree.Tree, len(trees))
	copy(cp, trees)
	labelsCopy := make([]string, len(labels))
	copy(labelsCopy, labels)

	return &Forest{trees: cp, scheme: scheme, n: n, labels: labelsCopy}, nil
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// N returns the shared feature-space dimensionality.
func (f *Forest) N() int { return f.n }

// K returns the number of labels.
func (f *Forest) K() int { return len(f.labels) }

// T returns the number of member trees.
func (f *Forest) T() int { return len(f.trees) }

// Labels returns the forest's label set. Callers must not mutate it.
func (f *Forest) Labels() []string { return f.labels }

// Scheme returns the forest's voting scheme.
func (f *Forest) Scheme() VotingScheme { return f.scheme }

// Tree returns the i-th member tree.
func (f *Forest) Tree(i int) *tree.Tree { return f.trees[i] }
