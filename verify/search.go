package verify

import (
	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/tier"
	"github.com/katalvlaran/abstree/tree"
	"github.com/katalvlaran/abstree/verify/queue"
)

// searchEngine holds all state for one sample's best-first refinement: the
// forest under analysis, the reference label set, the tier policy, the
// outer priority queue, scratch buffers, and the stopwatch. Collecting
// these in a dedicated struct (rather than closures) keeps the hot loop's
// dependencies explicit and makes the loop itself trivial to unit test in
// isolation from Stability's driver code.
type searchEngine struct {
	f        *forest.Forest
	labelsA  *tree.LabelSet
	tv       tier.Vector
	cfg      PriorityConfig
	data     *AnalysisData
	sw       *Stopwatch
	frontier *queue.Queue
}

func newSearchEngine(f *forest.Forest, labelsA *tree.LabelSet, tv tier.Vector, cfg PriorityConfig, data *AnalysisData, sw *Stopwatch) *searchEngine {
	return &searchEngine{
		f:        f,
		labelsA:  labelsA,
		tv:       tv,
		cfg:      cfg,
		data:     data,
		sw:       sw,
		frontier: queue.New(),
	}
}

func (e *searchEngine) push(d *Decorator) {
	e.frontier.Push(Priority(e.cfg, d, e.labelsA, e.f.K()), d)
}

// run drains the frontier, returning a witness on the first counter-example.
// The timedOut return distinguishes a budget-exhausted stop from natural
// frontier exhaustion; the caller must use it directly rather than
// re-querying the stopwatch, since Expired's sparse clock check makes a
// second call after the loop unreliable.
func (e *searchEngine) run() (witness *Witness, timedOut bool, err error) {
	for e.frontier.Len() > 0 {
		if e.sw.Expired() {
			return nil, true, nil
		}

		raw, _, _ := e.frontier.Pop()
		d := raw.(*Decorator)

		children, w, err := Refine(e.f, d, e.labelsA, e.tv, e.data)
		if err != nil {
			return nil, false, err
		}
		if w != nil {
			return w, false, nil
		}
		for _, c := range children {
			e.push(c)
		}
	}

	return nil, false, nil
}
