package treebuilder

import "github.com/katalvlaran/abstree/tree"

// TreeBuilder accumulates node-arena entries one at a time and hands them
// to tree.New in a single terminal Build call, which performs every
// structural validation spec.md §3 requires. Node identifiers are handed
// out in construction order, replacing the "global mutable ID counter"
// design note flags (SPEC_FULL.md §9) with a per-builder monotonic
// counter scoped to one tree.
type TreeBuilder struct {
	nFeatures int
	labels    []string
	nodes     []tree.Node
	root      tree.NodeID
	rootSet   bool
}

// New starts a TreeBuilder for an nFeatures-dimensional feature space with
// the given label set.
func New(nFeatures int, labels []string) *TreeBuilder {
	return &TreeBuilder{nFeatures: nFeatures, labels: labels}
}

// AddLeaf appends a counting leaf and returns its NodeID.
func (b *TreeBuilder) AddLeaf(scores []uint64) tree.NodeID {
	id := tree.NodeID(len(b.nodes))
	b.nodes = append(b.nodes, tree.Node{Kind: tree.KindLeaf, Scores: scores})

	return id
}

// AddLogLeaf appends a log-probability leaf and returns its NodeID.
func (b *TreeBuilder) AddLogLeaf(logProbs []float64) tree.NodeID {
	id := tree.NodeID(len(b.nodes))
	b.nodes = append(b.nodes, tree.Node{Kind: tree.KindLogLeaf, LogProbs: logProbs})

	return id
}

// AddSplit appends a univariate split node and returns its NodeID.
func (b *TreeBuilder) AddSplit(feature int, threshold float64, left, right tree.NodeID) tree.NodeID {
	id := tree.NodeID(len(b.nodes))
	b.nodes = append(b.nodes, tree.Node{Kind: tree.KindSplit, Feature: feature, Threshold: threshold, Left: left, Right: right})

	return id
}

// SetRoot designates which previously added node is the tree's root.
func (b *TreeBuilder) SetRoot(id tree.NodeID) {
	b.root = id
	b.rootSet = true
}

// Build validates the accumulated node arena and constructs a *tree.Tree.
func (b *TreeBuilder) Build() (*tree.Tree, error) {
	if !b.rootSet {
		return nil, ErrNoRootSet
	}

	return tree.New(b.nFeatures, b.labels, b.nodes, b.root)
}
