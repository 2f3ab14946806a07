package interval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBottom(t *testing.T) {
	assert.False(t, Exact(3).IsBottom())
	assert.True(t, Bottom().IsBottom())
	assert.True(t, Interval{L: 2, U: 1}.IsBottom())
}

func TestAddSub(t *testing.T) {
	x := Interval{L: 1, U: 2}
	y := Interval{L: -1, U: 3}
	sum := Add(x, y)
	assert.LessOrEqual(t, sum.L, 0.0)
	assert.GreaterOrEqual(t, sum.U, 5.0)

	diff := Sub(x, y)
	assert.LessOrEqual(t, diff.L, -2.0)
	assert.GreaterOrEqual(t, diff.U, 3.0)
}

func TestAddBottomPropagates(t *testing.T) {
	assert.True(t, Add(Bottom(), Exact(1)).IsBottom())
	assert.True(t, Sub(Exact(1), Bottom()).IsBottom())
	assert.True(t, Mul(Bottom(), Exact(1)).IsBottom())
}

func TestMulSignCases(t *testing.T) {
	cases := []struct {
		name   string
		x, y   Interval
		lo, hi float64
	}{
		{"pos*pos", Interval{2, 3}, Interval{4, 5}, 8, 15},
		{"pos*neg", Interval{2, 3}, Interval{-5, -4}, -15, -8},
		{"pos*straddle", Interval{2, 3}, Interval{-1, 4}, -3, 12},
		{"neg*pos", Interval{-3, -2}, Interval{4, 5}, -15, -8},
		{"neg*neg", Interval{-3, -2}, Interval{-5, -4}, 8, 15},
		{"neg*straddle", Interval{-3, -2}, Interval{-1, 4}, -12, 3},
		{"straddle*pos", Interval{-1, 4}, Interval{2, 3}, -3, 12},
		{"straddle*neg", Interval{-1, 4}, Interval{-3, -2}, -12, 3},
		{"straddle*straddle", Interval{-2, 3}, Interval{-4, 1}, -12, 8},
		{"zero short-circuit", Interval{0, 0}, Interval{-5, 5}, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Mul(c.x, c.y)
			assert.LessOrEqualf(t, got.L, c.lo, "lowerbound not sound: %v", got)
			assert.GreaterOrEqualf(t, got.U, c.hi, "upperbound not sound: %v", got)
		})
	}
}

func TestMulSoundnessRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		x := randInterval(rng)
		y := randInterval(rng)
		prod := Mul(x, y)
		a := x.L + rng.Float64()*(x.U-x.L)
		b := y.L + rng.Float64()*(y.U-y.L)
		assert.LessOrEqualf(t, prod.L, a*b, "x=%v y=%v a=%v b=%v prod=%v", x, y, a, b, prod)
		assert.GreaterOrEqualf(t, prod.U, a*b, "x=%v y=%v a=%v b=%v prod=%v", x, y, a, b, prod)
	}
}

func TestAddSoundnessRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		x := randInterval(rng)
		y := randInterval(rng)
		sum := Add(x, y)
		a := x.L + rng.Float64()*(x.U-x.L)
		b := y.L + rng.Float64()*(y.U-y.L)
		assert.LessOrEqual(t, sum.L, a+b)
		assert.GreaterOrEqual(t, sum.U, a+b)
	}
}

func randInterval(rng *rand.Rand) Interval {
	l := rng.Float64()*20 - 10
	u := l + rng.Float64()*10
	return Interval{L: l, U: u}
}

func TestExpMonotone(t *testing.T) {
	x := Interval{L: -1, U: 1}
	e := Exp(x)
	assert.Less(t, e.L, 1.0)
	assert.Greater(t, e.U, 2.0)
}

func TestPow(t *testing.T) {
	assert.Equal(t, Exact(1), Pow(Exact(5), 0))
	p := Pow(Interval{L: 2, U: 3}, 2)
	assert.LessOrEqual(t, p.L, 4.0)
	assert.GreaterOrEqual(t, p.U, 9.0)
}

func TestGLBLUB(t *testing.T) {
	a := Interval{L: 0, U: 5}
	b := Interval{L: 3, U: 8}
	meet := GLB(a, b)
	assert.Equal(t, Interval{L: 3, U: 5}, meet)

	join := LUB(a, b)
	assert.Equal(t, Interval{L: 0, U: 8}, join)

	disjoint := GLB(Interval{L: 0, U: 1}, Interval{L: 2, U: 3})
	assert.True(t, disjoint.IsBottom())
}

func TestIsStrictlyLessThan(t *testing.T) {
	assert.True(t, IsStrictlyLessThan(Interval{L: 0, U: 1}, Interval{L: 2, U: 3}))
	assert.False(t, IsStrictlyLessThan(Interval{L: 0, U: 2}, Interval{L: 2, U: 3}))
}

func TestMidpointRadius(t *testing.T) {
	x := Interval{L: 1, U: 3}
	assert.Equal(t, 2.0, x.Midpoint())
	assert.Equal(t, 1.0, x.Radius())
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x := Interval{L: 1, U: 2}
	for i := 0; i < 100; i++ {
		v, err := x.Sample(rng)
		require.NoError(t, err)
		assert.True(t, v >= 1 && v <= 2)
	}

	_, err := Bottom().Sample(rng)
	assert.ErrorIs(t, err, ErrBottomInterval)

	_, err = x.Sample(nil)
	assert.ErrorIs(t, err, ErrNilRand)
}

func TestFMA(t *testing.T) {
	a := Interval{L: 1, U: 2}
	b := Interval{L: 3, U: 4}
	c := Interval{L: -1, U: 0}
	got := FMA(a, b, c)
	assert.LessOrEqual(t, got.L, 2.0)
	assert.GreaterOrEqual(t, got.U, 8.0)
}

func TestDiv(t *testing.T) {
	x := Interval{L: 2, U: 4}
	y := Interval{L: 1, U: 2}
	q := Div(x, y)
	assert.LessOrEqual(t, q.L, 1.0)
	assert.GreaterOrEqual(t, q.U, 4.0)

	straddling := Interval{L: -1, U: 1}
	assert.True(t, Div(x, straddling).IsBottom())
}

func TestScaleTranslate(t *testing.T) {
	x := Interval{L: 1, U: 2}
	pos := Scale(x, 3)
	assert.LessOrEqual(t, pos.L, 3.0)
	assert.GreaterOrEqual(t, pos.U, 6.0)

	neg := Scale(x, -2)
	assert.LessOrEqual(t, neg.L, -4.0)
	assert.GreaterOrEqual(t, neg.U, -2.0)

	tr := Translate(x, 5)
	assert.LessOrEqual(t, tr.L, 6.0)
	assert.GreaterOrEqual(t, tr.U, 7.0)
}
