package interval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hr(bounds ...float64) Hyperrectangle {
	dims := make([]Interval, 0, len(bounds)/2)
	for i := 0; i < len(bounds); i += 2 {
		dims = append(dims, Interval{L: bounds[i], U: bounds[i+1]})
	}

	return NewHyperrectangle(dims)
}

func TestHyperrectangleIsBottom(t *testing.T) {
	assert.False(t, hr(0, 1, 0, 1).IsBottom())
	assert.True(t, hr(0, 1, 2, 1).IsBottom())
}

func TestHyperGLBLUB(t *testing.T) {
	a := hr(0, 5, 0, 5)
	b := hr(3, 8, -2, 2)
	meet := HyperGLB(a, b)
	assert.Equal(t, hr(3, 5, 0, 2), meet)

	join := HyperLUB(a, b)
	assert.Equal(t, hr(0, 8, -2, 5), join)
}

func TestHyperrectangleVolume(t *testing.T) {
	r := hr(0, 2, 0, 4)
	assert.Equal(t, 2.0, r.Volume()) // radii 1 * 2

	assert.Equal(t, 0.0, hr(0, 1, 2, 1).Volume())
}

func TestHyperrectangleMidpointRadius(t *testing.T) {
	r := hr(0, 2, -1, 3)
	assert.Equal(t, []float64{1, 1}, r.Midpoint())
	assert.Equal(t, []float64{1, 2}, r.Radius())
}

func TestHyperrectangleClone(t *testing.T) {
	r := hr(0, 1)
	c := r.Clone()
	c.Dims[0] = Interval{L: 5, U: 6}
	assert.Equal(t, Interval{L: 0, U: 1}, r.Dims[0])
}

func TestHyperrectangleWithDim(t *testing.T) {
	r := hr(0, 1, 0, 1)
	r2 := r.WithDim(1, Interval{L: 9, U: 9})
	assert.Equal(t, Interval{L: 0, U: 1}, r.Dims[1])
	assert.Equal(t, Interval{L: 9, U: 9}, r2.Dims[1])
}

func TestHyperrectangleContainsSample(t *testing.T) {
	r := hr(0, 1, 2, 3)
	assert.True(t, r.Contains([]float64{0.5, 2.5}))
	assert.False(t, r.Contains([]float64{5, 2.5}))
	assert.False(t, r.Contains([]float64{0.5}))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		x, err := r.Sample(rng)
		require.NoError(t, err)
		assert.True(t, r.Contains(x))
	}
}

func TestMustSameDimPanics(t *testing.T) {
	assert.Panics(t, func() {
		HyperGLB(hr(0, 1), hr(0, 1, 0, 1))
	})
}
