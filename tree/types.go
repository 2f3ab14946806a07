package tree

// Kind tags the closed set of decision-tree node variants. The arm set is
// fixed by the domain (spec.md §3); a switch on Kind replaces virtual
// dispatch at every use site.
type Kind uint8

const (
	// KindLeaf is a counting leaf: integer per-label sample counts.
	KindLeaf Kind = iota
	// KindLogLeaf is a log-probability leaf, used under SOFTARGMAX voting.
	KindLogLeaf
	// KindSplit is a univariate axis-aligned split on one feature.
	KindSplit
)

// NodeID indexes into a Tree's node arena. It is meaningful only relative
// to the Tree that produced it — the reference implementation note in
// SPEC_FULL.md §9 replaces parent pointers and a global ID counter with
// per-tree arena indices, which are handed out in construction order by
// treebuilder.
type NodeID int32

// noChild marks an absent child slot; only ever seen on leaf nodes.
const noChild NodeID = -1

// Node is the constructor-facing shape of one arena slot: exactly the
// fields a builder must supply. Tree derives and caches the rest
// (NSamples, MaxScore) at construction time so those invariants can never
// drift out of sync with Scores.
type Node struct {
	Kind Kind

	// Leaf (KindLeaf)
	Scores []uint64 // length K, per-label sample counts

	// LogLeaf (KindLogLeaf)
	LogProbs []float64 // length K, per-label log-probabilities

	// Split (KindSplit)
	Feature     int
	Threshold   float64
	Left, Right NodeID
}

// node is the arena-resident representation: Node plus the cached
// derived fields for leaves.
type node struct {
	kind Kind

	scores   []uint64
	nSamples uint64
	maxScore uint64

	logProbs []float64

	feature     int
	threshold   float64
	left, right NodeID
}

// Tree is a rooted binary decision tree over an n-dimensional feature
// space with a label set of size K shared (by position) with every other
// tree in a Forest. Trees are immutable once built; treebuilder is the
// only supported constructor path for untrusted/raw node data.
type Tree struct {
	n      int
	labels []string
	nodes  []node
	root   NodeID
}

// New validates and assembles a Tree from a pre-built node arena. It is
// the single choke point every DecisionTreeNode invariant from SPEC_FULL.md
// §3 is checked at: array lengths == K, every Split's feature < n, every
// Split has two valid children, root is in range.
//
// Most callers should go through treebuilder.TreeBuilder instead of calling
// New directly; New is exported because the arena shape is also the
// natural unit for deserializing an already-validated classifier.
func New(nFeatures int, labels []string, nodes []Node, root NodeID) (*Tree, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyLabels
	}
	if int(root) < 0 || int(root) >= len(nodes) {
		return nil, ErrNoRoot
	}

	k := len(labels)
	out := make([]node, len(nodes))
	for i, n := range nodes {
		switch n.Kind {
		case KindLeaf:
			if len(n.Scores) != k {
				return nil, ErrLeafScoreLengthMismatch
			}
			var sum, max uint64
			for _, s := range n.Scores {
				sum += s
				if s > max {
					max = s
				}
			}
			scores := make([]uint64, k)
			copy(scores, n.Scores)
			out[i] = node{kind: KindLeaf, scores: scores, nSamples: sum, maxScore: max, left: noChild, right: noChild}
		case KindLogLeaf:
			if len(n.LogProbs) != k {
				return nil, ErrLeafScoreLengthMismatch
			}
			lp := make([]float64, k)
			copy(lp, n.LogProbs)
			out[i] = node{kind: KindLogLeaf, logProbs: lp, left: noChild, right: noChild}
		case KindSplit:
			if n.Feature < 0 || n.Feature >= nFeatures {
				return nil, ErrFeatureIndexOutOfRange
			}
			if int(n.Left) < 0 || int(n.Left) >= len(nodes) || int(n.Right) < 0 || int(n.Right) >= len(nodes) {
				return nil, ErrDanglingChild
			}
			out[i] = node{kind: KindSplit, feature: n.Feature, threshold: n.Threshold, left: n.Left, right: n.Right}
		default:
			return nil, ErrDanglingChild
		}
	}

	labelsCopy := make([]string, k)
	copy(labelsCopy, labels)

	return &Tree{n: nFeatures, labels: labelsCopy, nodes: out, root: NodeID(root)}, nil
}

// N returns the feature-space dimensionality this tree was built for.
func (t *Tree) N() int { return t.n }

// K returns the number of labels.
func (t *Tree) K() int { return len(t.labels) }

// Labels returns the tree's label set, in the order used for score vectors.
// The returned slice must not be mutated by callers.
func (t *Tree) Labels() []string { return t.labels }

// Root returns the root NodeID.
func (t *Tree) Root() NodeID { return t.root }

// NodeCount returns the number of nodes in the arena.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// NodeKind returns the variant tag of the node at id.
func (t *Tree) NodeKind(id NodeID) Kind { return t.nodes[id].kind }

// LeafScores returns the counting-leaf score vector at id (nil if id is not
// a KindLeaf node). Callers must not mutate the returned slice.
func (t *Tree) LeafScores(id NodeID) []uint64 {
	if t.nodes[id].kind != KindLeaf {
		return nil
	}

	return t.nodes[id].scores
}

// LeafNSamples returns Σ scores for a counting leaf.
func (t *Tree) LeafNSamples(id NodeID) uint64 { return t.nodes[id].nSamples }

// LeafMaxScore returns max(scores) for a counting leaf.
func (t *Tree) LeafMaxScore(id NodeID) uint64 { return t.nodes[id].maxScore }

// LeafLogProbs returns the log-probability vector at id (nil if id is not a
// KindLogLeaf node). Callers must not mutate the returned slice.
func (t *Tree) LeafLogProbs(id NodeID) []float64 {
	if t.nodes[id].kind != KindLogLeaf {
		return nil
	}

	return t.nodes[id].logProbs
}

// SplitFeature returns the feature index of a split node.
func (t *Tree) SplitFeature(id NodeID) int { return t.nodes[id].feature }

// SplitThreshold returns the threshold of a split node.
func (t *Tree) SplitThreshold(id NodeID) float64 { return t.nodes[id].threshold }

// SplitChildren returns the (left, right) children of a split node.
func (t *Tree) SplitChildren(id NodeID) (NodeID, NodeID) {
	return t.nodes[id].left, t.nodes[id].right
}

// UniformLeafKind scans every leaf in the arena and reports the single Kind
// they all share (KindLeaf or KindLogLeaf), or ok=false if the tree has no
// leaves or mixes leaf kinds. Forest construction uses this to enforce
// spec.md §4.3's precondition that a voting scheme dictates which leaf
// representation every member tree must carry.
func (t *Tree) UniformLeafKind() (kind Kind, ok bool) {
	seen := false
	for _, n := range t.nodes {
		if n.kind == KindSplit {
			continue
		}
		if !seen {
			kind, seen = n.kind, true
			continue
		}
		if n.kind != kind {
			return 0, false
		}
	}

	return kind, seen
}
