package tier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abstree/interval"
	"github.com/katalvlaran/abstree/tier"
)

func box(dims ...interval.Interval) interval.Hyperrectangle {
	return interval.NewHyperrectangle(dims)
}

func TestNewValidation(t *testing.T) {
	_, err := tier.New([]int{1, 1}, 3)
	assert.ErrorIs(t, err, tier.ErrDimensionMismatch)

	_, err = tier.New([]int{1, -1, 0}, 3)
	assert.ErrorIs(t, err, tier.ErrFeatureIndexOutOfRange)

	v, err := tier.New([]int{1, 1, 1, 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.N())
	assert.ElementsMatch(t, []int{0, 1, 2}, v.Members(1))
	assert.Nil(t, v.Members(0))
}

// TestAdjustTurnOn covers spec scenario (e): features 0,1,2 form a one-hot
// group. Clamping feature 0 to [1,1] must force 1 and 2 to [0,0].
func TestAdjustTurnOn(t *testing.T) {
	v, err := tier.New([]int{1, 1, 1, 0}, 4)
	require.NoError(t, err)

	h := box(interval.Exact(1), interval.Interval{L: 0, U: 1}, interval.Interval{L: 0, U: 1}, interval.Interval{L: 0, U: 1})
	out := tier.Adjust(h, v, 0)

	assert.Equal(t, interval.Exact(0), out.Dims[1])
	assert.Equal(t, interval.Exact(0), out.Dims[2])
	assert.Equal(t, interval.Interval{L: 0, U: 1}, out.Dims[3]) // untiered, untouched
}

// TestAdjustTurnOnContradiction: a feature already forced on elsewhere in the
// same group collapses to Bottom instead of silently being overwritten.
func TestAdjustTurnOnContradiction(t *testing.T) {
	v, err := tier.New([]int{1, 1, 1}, 3)
	require.NoError(t, err)

	h := box(interval.Exact(1), interval.Exact(1), interval.Interval{L: 0, U: 1})
	out := tier.Adjust(h, v, 0)

	assert.True(t, out.Dims[1].IsBottom())
}

// TestAdjustTurnOffForcesLast: once every other group member is off, the
// sole remaining candidate is forced to [1,1].
func TestAdjustTurnOffForcesLast(t *testing.T) {
	v, err := tier.New([]int{1, 1, 1}, 3)
	require.NoError(t, err)

	h := box(interval.Exact(0), interval.Exact(0), interval.Interval{L: 0, U: 1})
	out := tier.Adjust(h, v, 0)

	assert.Equal(t, interval.Exact(1), out.Dims[2])
}

// TestAdjustTurnOffNoOp: turning one feature off with two+ live siblings
// remaining leaves the hyperrectangle unchanged.
func TestAdjustTurnOffNoOp(t *testing.T) {
	v, err := tier.New([]int{1, 1, 1}, 3)
	require.NoError(t, err)

	h := box(interval.Exact(0), interval.Interval{L: 0, U: 1}, interval.Interval{L: 0, U: 1})
	out := tier.Adjust(h, v, 0)

	assert.Equal(t, interval.Interval{L: 0, U: 1}, out.Dims[1])
	assert.Equal(t, interval.Interval{L: 0, U: 1}, out.Dims[2])
}

// TestAdjustUntieredNoOp: an untiered feature (group 0) is never touched.
func TestAdjustUntieredNoOp(t *testing.T) {
	v, err := tier.New([]int{0, 1, 1}, 3)
	require.NoError(t, err)

	h := box(interval.Exact(1), interval.Interval{L: 0, U: 1}, interval.Interval{L: 0, U: 1})
	out := tier.Adjust(h, v, 0)

	assert.Equal(t, h, out)
}

// TestAdjustNotYetDegenerateNoOp: Adjust only fires once the clamped
// dimension is exactly [0,0] or [1,1]; a partially-narrowed interval is
// left alone.
func TestAdjustNotYetDegenerateNoOp(t *testing.T) {
	v, err := tier.New([]int{1, 1}, 2)
	require.NoError(t, err)

	h := box(interval.Interval{L: 0.2, U: 0.9}, interval.Interval{L: 0, U: 1})
	out := tier.Adjust(h, v, 0)

	assert.Equal(t, h, out)
}
