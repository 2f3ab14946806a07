package verify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/tree"
)

// TestSearchEngineRunReportsTimeoutDirectly pins down run()'s contract: the
// timedOut return must come from the single Expired() call that actually
// tripped, not from a second, separately-sparse-sampled call made after the
// loop. A Stopwatch already past its deadline only reports true on a call
// that lands on the deadlineCheckMask boundary, so this test drives the
// counter to that boundary before invoking run(), then confirms run() itself
// surfaces the timeout rather than reporting natural exhaustion.
func TestSearchEngineRunReportsTimeoutDirectly(t *testing.T) {
	nodes := []tree.Node{
		{Kind: tree.KindSplit, Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
		{Kind: tree.KindLeaf, Scores: []uint64{1, 0}},
		{Kind: tree.KindLeaf, Scores: []uint64{0, 1}},
	}
	tr, err := tree.New(1, []string{"A", "B"}, nodes, 0)
	require.NoError(t, err)
	f, err := forest.New([]*tree.Tree{tr}, forest.Max)
	require.NoError(t, err)

	h := interval.Hyperrectangle{Dims: []interval.Interval{{L: -1, U: 1}}}
	labelsA := tree.NewLabelSet(2)
	labelsA.Add(0)
	labelsA.Add(1)

	sw := NewStopwatch(-time.Hour)
	for i := 0; i < deadlineCheckMask; i++ {
		assert.False(t, sw.Expired())
	}

	data := NewAnalysisData(4, f.K())
	eng := newSearchEngine(f, labelsA, nil, DefaultPriorityConfig(), data, sw)
	eng.push(&Decorator{Depth: 0, Region: h, Labels: labelsA})

	witness, timedOut, err := eng.run()
	require.NoError(t, err)
	assert.Nil(t, witness)
	assert.True(t, timedOut)
}

// TestSearchEngineRunExhaustsWithoutTimeout confirms the converse: a generous
// budget lets run() drain the frontier naturally, reporting timedOut=false.
func TestSearchEngineRunExhaustsWithoutTimeout(t *testing.T) {
	nodes := []tree.Node{
		{Kind: tree.KindLeaf, Scores: []uint64{1, 0}},
	}
	tr, err := tree.New(1, []string{"A", "B"}, nodes, 0)
	require.NoError(t, err)
	f, err := forest.New([]*tree.Tree{tr}, forest.Max)
	require.NoError(t, err)

	h := interval.Hyperrectangle{Dims: []interval.Interval{{L: -1, U: 1}}}
	labelsA := tree.NewLabelSet(2)
	labelsA.Add(0)

	sw := NewStopwatch(time.Minute)
	data := NewAnalysisData(4, f.K())
	eng := newSearchEngine(f, labelsA, nil, DefaultPriorityConfig(), data, sw)
	eng.push(&Decorator{Depth: 0, Region: h, Labels: labelsA})

	witness, timedOut, err := eng.run()
	require.NoError(t, err)
	assert.Nil(t, witness)
	assert.False(t, timedOut)
}
