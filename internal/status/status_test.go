package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrangements/planesweep/internal/status"
	"github.com/arrangements/planesweep/internal/xcurve"
	"github.com/arrangements/planesweep/traits"
)

func seg(x1, y1, x2, y2 float64) traits.Segment {
	return traits.Segment{P1: traits.Point{X: x1, Y: y1}, P2: traits.Point{X: x2, Y: y2}}
}

func TestNeighborsOrderedByY(t *testing.T) {
	tr := traits.NewSegmentTraits()
	sl := status.New[traits.Point, traits.Segment](tr)
	sl.SetReference(traits.Point{X: 0, Y: 0})

	low := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 0), tr)
	mid := xcurve.New[traits.Point, traits.Segment](1, seg(0, 5, 10, 5), tr)
	high := xcurve.New[traits.Point, traits.Segment](2, seg(0, 10, 10, 10), tr)

	sl.Insert(low)
	sl.Insert(mid)
	sl.Insert(high)

	above, below := sl.Neighbors(mid)
	assert.Same(t, high, above)
	assert.Same(t, low, below)
}

func TestEraseRemovesFromStatusLine(t *testing.T) {
	tr := traits.NewSegmentTraits()
	sl := status.New[traits.Point, traits.Segment](tr)
	sl.SetReference(traits.Point{X: 0, Y: 0})

	a := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 0), tr)
	sl.Insert(a)
	assert.Equal(t, 1, sl.Size())
	sl.Erase(a)
	assert.Equal(t, 0, sl.Size())
}

// TestEraseAtCrossingPoint pins down the erase-by-hint behavior: once
// the reference moves to the point where the three curves cross, the
// comparator reports their post-crossing order while the tree still
// stores the pre-crossing one, so a plain key lookup would descend the
// wrong way. All three curves must still come out cleanly.
func TestEraseAtCrossingPoint(t *testing.T) {
	tr := traits.NewSegmentTraits()
	sl := status.New[traits.Point, traits.Segment](tr)
	sl.SetReference(traits.Point{X: 0, Y: 0})

	rising := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 10), tr)
	flat := xcurve.New[traits.Point, traits.Segment](1, seg(0, 5, 10, 5), tr)
	falling := xcurve.New[traits.Point, traits.Segment](2, seg(0, 10, 10, 0), tr)
	sl.Insert(rising)
	sl.Insert(flat)
	sl.Insert(falling)

	sl.SetReference(traits.Point{X: 5, Y: 5})
	sl.Erase(rising)
	sl.Erase(flat)
	sl.Erase(falling)
	assert.Equal(t, 0, sl.Size())
}

func TestCoincidentCurvesBreakTiesByID(t *testing.T) {
	tr := traits.NewSegmentTraits()
	sl := status.New[traits.Point, traits.Segment](tr)
	sl.SetReference(traits.Point{X: 0, Y: 0})

	a := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 0), tr)
	b := xcurve.New[traits.Point, traits.Segment](1, seg(0, 0, 10, 0), tr)
	sl.Insert(a)
	sl.Insert(b)
	assert.Equal(t, 2, sl.Size())
	all := sl.All()
	assert.Len(t, all, 2)
}

func TestMaxReturnsTopmost(t *testing.T) {
	tr := traits.NewSegmentTraits()
	sl := status.New[traits.Point, traits.Segment](tr)
	sl.SetReference(traits.Point{X: 0, Y: 0})

	_, ok := sl.Max()
	assert.False(t, ok)

	low := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 0), tr)
	high := xcurve.New[traits.Point, traits.Segment](1, seg(0, 10, 10, 10), tr)
	sl.Insert(low)
	sl.Insert(high)

	got, ok := sl.Max()
	assert.True(t, ok)
	assert.Same(t, high, got)
}

func TestLowerBoundFindsCeiling(t *testing.T) {
	tr := traits.NewSegmentTraits()
	sl := status.New[traits.Point, traits.Segment](tr)
	sl.SetReference(traits.Point{X: 0, Y: 0})

	low := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 0), tr)
	high := xcurve.New[traits.Point, traits.Segment](1, seg(0, 10, 10, 10), tr)
	sl.Insert(low)
	sl.Insert(high)

	got, ok := sl.LowerBound(low)
	assert.True(t, ok)
	assert.Same(t, low, got)
}
