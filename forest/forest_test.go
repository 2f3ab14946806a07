package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abstree/forest"
	"github.com/katalvlaran/abstree/tree"
)

func stump(t *testing.T) *tree.Tree {
	t.Helper()
	nodes := []tree.Node{
		{Kind: tree.KindSplit, Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
		{Kind: tree.KindLeaf, Scores: []uint64{10, 0}},
		{Kind: tree.KindLeaf, Scores: []uint64{0, 10}},
	}
	tr, err := tree.New(1, []string{"A", "B"}, nodes, 0)
	require.NoError(t, err)

	return tr
}

func TestForestNewValidation(t *testing.T) {
	_, err := forest.New(nil, forest.Max)
	assert.ErrorIs(t, err, forest.ErrNoTrees)

	logLeafTree, err := tree.New(1, []string{"A", "B"}, []tree.Node{
		{Kind: tree.KindLogLeaf, LogProbs: []float64{-1, -2}},
	}, 0)
	require.NoError(t, err)
	_, err = forest.New([]*tree.Tree{logLeafTree}, forest.Max)
	assert.ErrorIs(t, err, forest.ErrVotingLeafKindMismatch)

	mismatched, err := tree.New(2, []string{"A", "B"}, []tree.Node{
		{Kind: tree.KindLeaf, Scores: []uint64{1, 1}},
	}, 0)
	require.NoError(t, err)
	_, err = forest.New([]*tree.Tree{stump(t), mismatched}, forest.Max)
	assert.ErrorIs(t, err, forest.ErrFeatureDimMismatch)
}

func TestForestMaxAgreement(t *testing.T) {
	f, err := forest.New([]*tree.Tree{stump(t), stump(t)}, forest.Max)
	require.NoError(t, err)

	set, err := f.Classify([]float64{0.0})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A"}, set.ToStrings(f.Labels()))
}

func TestForestMaxTieBreaking(t *testing.T) {
	// Tree 1 always predicts A, Tree 2 always predicts B on this sample:
	// the forest's label set should be {A, B} (scenario d).
	t1, err := tree.New(1, []string{"A", "B"}, []tree.Node{{Kind: tree.KindLeaf, Scores: []uint64{10, 0}}}, 0)
	require.NoError(t, err)
	t2, err := tree.New(1, []string{"A", "B"}, []tree.Node{{Kind: tree.KindLeaf, Scores: []uint64{0, 10}}}, 0)
	require.NoError(t, err)

	f, err := forest.New([]*tree.Tree{t1, t2}, forest.Max)
	require.NoError(t, err)

	set, err := f.Classify([]float64{0.0})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, set.ToStrings(f.Labels()))
}

func TestForestAverageDecisionFunction(t *testing.T) {
	f, err := forest.New([]*tree.Tree{stump(t), stump(t)}, forest.Average)
	require.NoError(t, err)
	df, err := f.DecisionFunction([]float64{0.0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0, 0.0}, df, 1e-9)
}

func TestForestSoftArgmax(t *testing.T) {
	logTree, err := tree.New(1, []string{"A", "B"}, []tree.Node{
		{Kind: tree.KindLogLeaf, LogProbs: []float64{0, -100}},
	}, 0)
	require.NoError(t, err)
	f, err := forest.New([]*tree.Tree{logTree}, forest.SoftArgmax)
	require.NoError(t, err)

	df, err := f.DecisionFunction([]float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, df[0], 1e-9)
	assert.InDelta(t, 0.0, df[1], 1e-9)
}
