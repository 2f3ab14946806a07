package verify

import "github.com/katalvlaran/abstree/tree"

// AnalysisData bundles the scratch buffers one sample's analysis reuses
// across every refinement step: a reachable-leaf stack sized to the
// deepest member tree, and a pre-allocated label set sized to K. They are
// exclusively owned by a single in-flight Stability call and must not be
// shared across concurrent samples (spec.md §5).
type AnalysisData struct {
	rbuf    *tree.ReachableBuffer
	scratch *tree.LabelSet
}

// NewAnalysisData preallocates buffers sized to maxDepth (the deepest
// member tree) and k (the label count).
func NewAnalysisData(maxDepth, k int) *AnalysisData {
	return &AnalysisData{
		rbuf:    tree.NewReachableBuffer(maxDepth),
		scratch: tree.NewLabelSet(k),
	}
}
