package verify

import "github.com/katalvlaran/abstree/tree"

// PriorityConfig holds the coefficients of the best-first search's outer
// priority formula. The source values (-1e6, 1, 1/K) have no stated
// derivation (SPEC_FULL.md §9's open question), so they are exposed here
// as tunable configuration rather than baked into the formula.
type PriorityConfig struct {
	VolumeWeight     float64 // multiplies volume(H); default -1e6
	DepthWeight      float64 // multiplies depth(D); default 1
	DivergenceWeight float64 // multiplies divergence/K; default 1
}

// DefaultPriorityConfig returns the coefficients spec.md §4.8 names.
func DefaultPriorityConfig() PriorityConfig {
	return PriorityConfig{VolumeWeight: -1e6, DepthWeight: 1, DivergenceWeight: 1}
}

// Priority computes the outer search's priority score for a decorator:
// smaller regions, deeper progress, and more-diverging label sets are
// favoured (spec.md §4.8).
func Priority(cfg PriorityConfig, d *Decorator, labelsA *tree.LabelSet, k int) float64 {
	divergence := float64(divergenceCount(d.Labels, labelsA, k)) / float64(k)

	return cfg.VolumeWeight*d.Region.Volume() + cfg.DepthWeight*float64(d.Depth) + cfg.DivergenceWeight*divergence
}

// divergenceCount returns |labels(D)| - |labels(D) ∩ labelsA|: the number
// of labels D's overapproximation carries that labelsA does not.
func divergenceCount(d, labelsA *tree.LabelSet, k int) int {
	n := 0
	for i := 0; i < k; i++ {
		if d.Contains(i) && !labelsA.Contains(i) {
			n++
		}
	}

	return n
}
