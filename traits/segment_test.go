package traits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrangements/planesweep/traits"
)

func seg(x1, y1, x2, y2 float64) traits.Segment {
	return traits.Segment{P1: traits.Point{X: x1, Y: y1}, P2: traits.Point{X: x2, Y: y2}}
}

func TestComparePoints(t *testing.T) {
	tr := traits.NewSegmentTraits()
	assert.Equal(t, traits.Less, tr.ComparePoints(traits.Point{X: 0, Y: 0}, traits.Point{X: 1, Y: 0}))
	assert.Equal(t, traits.Greater, tr.ComparePoints(traits.Point{X: 1, Y: 0}, traits.Point{X: 0, Y: 0}))
	assert.Equal(t, traits.Less, tr.ComparePoints(traits.Point{X: 0, Y: 0}, traits.Point{X: 0, Y: 1}))
	assert.Equal(t, traits.Equal, tr.ComparePoints(traits.Point{X: 0, Y: 0}, traits.Point{X: 0, Y: 0}))
}

func TestIsVertical(t *testing.T) {
	tr := traits.NewSegmentTraits()
	assert.True(t, tr.IsVertical(seg(5, 0, 5, 10)))
	assert.False(t, tr.IsVertical(seg(5, 0, 6, 10)))
}

func TestNearestIntersectionToRightCrossing(t *testing.T) {
	tr := traits.NewSegmentTraits()
	a := seg(0, 0, 10, 10)
	b := seg(0, 10, 10, 0)
	q1, _, n := tr.NearestIntersectionToRight(a, b, traits.Point{X: -1, Y: -1})
	if assert.Equal(t, 1, n) {
		assert.InDelta(t, 5, q1.X, 1e-6)
		assert.InDelta(t, 5, q1.Y, 1e-6)
	}
}

func TestNearestIntersectionToRightRespectsReference(t *testing.T) {
	tr := traits.NewSegmentTraits()
	a := seg(0, 0, 10, 10)
	b := seg(0, 10, 10, 0)
	// The crossing is at (5,5); asking strictly right of (6,6) should
	// find nothing further right.
	_, _, n := tr.NearestIntersectionToRight(a, b, traits.Point{X: 6, Y: 6})
	assert.Equal(t, 0, n)
}

func TestNearestIntersectionToRightOverlap(t *testing.T) {
	tr := traits.NewSegmentTraits()
	a := seg(0, 0, 10, 0)
	b := seg(5, 0, 15, 0)
	q1, q2, n := tr.NearestIntersectionToRight(a, b, traits.Point{X: -1, Y: 0})
	if assert.Equal(t, 2, n) {
		assert.InDelta(t, 5, q1.X, 1e-6)
		assert.InDelta(t, 10, q2.X, 1e-6)
	}
	assert.True(t, tr.CurvesOverlap(a, b))
}

func TestNearestIntersectionToRightParallelNoOverlap(t *testing.T) {
	tr := traits.NewSegmentTraits()
	a := seg(0, 0, 10, 10)
	b := seg(0, 1, 10, 11)
	_, _, n := tr.NearestIntersectionToRight(a, b, traits.Point{X: -1, Y: -1})
	assert.Equal(t, 0, n)
	assert.False(t, tr.CurvesOverlap(a, b))
}

func TestSplitReconstructsEndpoints(t *testing.T) {
	tr := traits.NewSegmentTraits()
	c := seg(0, 0, 10, 10)
	at := traits.Point{X: 4, Y: 4}
	left, right := tr.Split(c, at)
	assert.Equal(t, traits.Point{X: 0, Y: 0}, left.P1)
	assert.Equal(t, at, left.P2)
	assert.Equal(t, at, right.P1)
	assert.Equal(t, traits.Point{X: 10, Y: 10}, right.P2)
}

func TestCurveEqualIgnoresOrientation(t *testing.T) {
	tr := traits.NewSegmentTraits()
	a := seg(0, 0, 10, 10)
	b := seg(10, 10, 0, 0)
	assert.True(t, tr.CurveEqual(a, b))
	assert.False(t, tr.CurveEqual(a, seg(0, 0, 10, 11)))
}

func TestCompareCurvesYAtXRightOrdersBySlope(t *testing.T) {
	tr := traits.NewSegmentTraits()
	shallow := seg(0, 0, 10, 1)
	steep := seg(0, 0, 10, 5)
	assert.Equal(t, traits.Less, tr.CompareCurvesYAtXRight(shallow, steep, traits.Point{X: 0, Y: 0}))
}
