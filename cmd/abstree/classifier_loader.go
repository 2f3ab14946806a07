package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/treebuilder"
	"github.com/katalvlaran/abstree/tree"
)

// jsonNode is the on-disk shape of one arena slot. The classifier file
// format itself is an out-of-scope external collaborator (spec.md §1): no
// example repo in this codebase's dependency pack indicates a canonical
// library for a bespoke tree-ensemble serialization, so this loader is
// kept to the standard library's encoding/json rather than reaching for
// a general-purpose format library that nothing else here would exercise.
type jsonNode struct {
	Kind      string    `json:"kind"`
	Scores    []uint64  `json:"scores,omitempty"`
	LogProbs  []float64 `json:"log_probs,omitempty"`
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      int       `json:"left,omitempty"`
	Right     int       `json:"right,omitempty"`
}

type jsonTree struct {
	Root  int        `json:"root"`
	Nodes []jsonNode `json:"nodes"`
}

type jsonClassifier struct {
	NFeatures int        `json:"n_features"`
	Labels    []string   `json:"labels"`
	Trees     []jsonTree `json:"trees"`
}

// loadClassifier reads a JSON-encoded forest description from path and
// assembles it via treebuilder, under the given voting scheme.
func loadClassifier(path string, scheme forest.VotingScheme) (*forest.Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading classifier %s: %w", path, err)
	}

	var jc jsonClassifier
	if err := json.Unmarshal(raw, &jc); err != nil {
		return nil, fmt.Errorf("parsing classifier %s: %w", path, err)
	}

	fb := treebuilder.NewForestBuilder(treebuilder.WithScheme(scheme))
	for _, jt := range jc.Trees {
		tb := treebuilder.New(jc.NFeatures, jc.Labels)
		for _, n := range jt.Nodes {
			switch n.Kind {
			case "leaf":
				tb.AddLeaf(n.Scores)
			case "logleaf":
				tb.AddLogLeaf(n.LogProbs)
			case "split":
				tb.AddSplit(n.Feature, n.Threshold, tree.NodeID(n.Left), tree.NodeID(n.Right))
			default:
				return nil, fmt.Errorf("classifier %s: unknown node kind %q", path, n.Kind)
			}
		}
		tb.SetRoot(tree.NodeID(jt.Root))
		t, err := tb.Build()
		if err != nil {
			return nil, fmt.Errorf("classifier %s: %w", path, err)
		}
		fb.AddTree(t)
	}

	return fb.Build()
}
