package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeZeroSafe(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	n := Vec2{3, 4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestClampLen(t *testing.T) {
	v := Vec2{10, 0}.ClampLen(1)
	assert.InDelta(t, 1.0, v.X, 1e-9)

	short := Vec2{0.3, 0.4}
	assert.Equal(t, short, short.ClampLen(1))
}

func TestMoveTowardNoOvershoot(t *testing.T) {
	target := Vec2{5, 0}
	assert.Equal(t, target, Vec2{}.MoveToward(target, 10))

	mid := Vec2{}.MoveToward(target, 2)
	assert.InDelta(t, 2.0, mid.X, 1e-9)
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := r.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)

		x := r.Range(220, 340)
		assert.GreaterOrEqual(t, x, 220.0)
		assert.Less(t, x, 340.0)
	}
	assert.Equal(t, 0, r.Intn(0))
}
