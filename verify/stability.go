package verify

import (
	"time"

	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/tier"
	"github.com/katalvlaran/abstree/tree"
)

// Result is the three-valued verdict Stability produces (spec.md §1).
type Result uint8

const (
	// Stable means the classifier assigns the same label set to every
	// point of the region.
	Stable Result = iota
	// Unstable means a concrete counter-example with a differing label
	// set was found.
	Unstable
	// Unknown means the analysis budget was exhausted before a verdict
	// could be reached.
	Unknown
)

// String implements fmt.Stringer for logging and CLI rendering.
func (r Result) String() string {
	switch r {
	case Stable:
		return "STABLE"
	case Unstable:
		return "UNSTABLE"
	case Unknown:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// StabilityStatus is the per-sample outcome spec.md §3/§6 describe. SampleB
// and RegionB are only populated when Result == Unstable.
type StabilityStatus struct {
	Result      Result
	SampleA     []float64
	LabelsA     *tree.LabelSet
	SampleB     []float64
	RegionB     interval.Hyperrectangle
	TimeoutSecs float64
}

// Stability runs the best-first refinement search on f for reference
// sample x over adversarial region h, with the given tier policy (nil or
// empty for "no tiers"), per-sample timeout, and priority configuration.
// It classifies x concretely, builds the initial decorator, and drives the
// search to one of Stable/Unstable/Unknown (spec.md §4.8 state machine).
func Stability(f *forest.Forest, x []float64, h interval.Hyperrectangle, tv tier.Vector, timeout time.Duration, cfg PriorityConfig, data *AnalysisData) (*StabilityStatus, error) {
	if timeout < time.Second {
		return nil, ErrInvalidTimeout
	}
	if len(x) != f.N() {
		return nil, ErrDimensionMismatch
	}
	if h.N() != f.N() {
		return nil, ErrDimensionMismatch
	}
	if tv != nil && tv.N() != f.N() {
		return nil, ErrTierSizeMismatch
	}

	labelsA, err := f.Classify(x)
	if err != nil {
		return nil, err
	}

	initScores, err := f.ScoreOverapproximation(0, nil, h, data.rbuf)
	if err != nil {
		return nil, err
	}
	root := &Decorator{
		Depth:       0,
		Region:      h,
		FixedLeaves: nil,
		Labels:      forest.LabelSetFromScores(initScores),
	}

	sw := NewStopwatch(timeout)
	eng := newSearchEngine(f, labelsA, tv, cfg, data, sw)
	eng.push(root)

	witness, timedOut, err := eng.run()
	if err != nil {
		return nil, err
	}

	status := &StabilityStatus{
		SampleA:     x,
		LabelsA:     labelsA,
		TimeoutSecs: timeout.Seconds(),
	}
	switch {
	case witness != nil:
		status.Result = Unstable
		status.SampleB = witness.Sample
		status.RegionB = witness.Region
	case timedOut:
		status.Result = Unknown
	default:
		status.Result = Stable
	}

	return status, nil
}
