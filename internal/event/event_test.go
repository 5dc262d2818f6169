package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrangements/planesweep/internal/event"
	"github.com/arrangements/planesweep/internal/xcurve"
	"github.com/arrangements/planesweep/traits"
)

func seg(x1, y1, x2, y2 float64) traits.Segment {
	return traits.Segment{P1: traits.Point{X: x1, Y: y1}, P2: traits.Point{X: x2, Y: y2}}
}

func TestAddCurveToRightOrdersByRightwardSlope(t *testing.T) {
	tr := traits.NewSegmentTraits()
	p := traits.Point{X: 0, Y: 0}
	ev := event.New[traits.Point, traits.Segment, struct{}](p)

	steep := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 10), tr)
	shallow := xcurve.New[traits.Point, traits.Segment](1, seg(0, 0, 10, 1), tr)

	ev.AddCurveToRight(steep, tr)
	ev.AddCurveToRight(shallow, tr)

	got := ev.RightCurves()
	if assert.Len(t, got, 2) {
		assert.Equal(t, shallow, got[0])
		assert.Equal(t, steep, got[1])
	}
}

func TestAddCurveToRightDedupes(t *testing.T) {
	tr := traits.NewSegmentTraits()
	ev := event.New[traits.Point, traits.Segment, struct{}](traits.Point{X: 0, Y: 0})
	sc := xcurve.New[traits.Point, traits.Segment](0, seg(0, 0, 10, 10), tr)
	ev.AddCurveToRight(sc, tr)
	ev.AddCurveToRight(sc, tr)
	assert.Len(t, ev.RightCurves(), 1)
}

func TestMarkInternalIntersectionPoint(t *testing.T) {
	ev := event.New[traits.Point, traits.Segment, struct{}](traits.Point{X: 1, Y: 1})
	assert.False(t, ev.IsInternalIntersectionPoint())
	ev.MarkInternalIntersectionPoint()
	assert.True(t, ev.IsInternalIntersectionPoint())
}

func TestVerticalCurvesTrackedFromBothSides(t *testing.T) {
	tr := traits.NewSegmentTraits()
	ev := event.New[traits.Point, traits.Segment, struct{}](traits.Point{X: 5, Y: 0})

	vert := xcurve.New[traits.Point, traits.Segment](0, seg(5, 0, 5, 10), tr)
	slanted := xcurve.New[traits.Point, traits.Segment](1, seg(5, 0, 10, 5), tr)

	assert.False(t, ev.DoesContainVerticalCurve())
	ev.AddCurveToRight(slanted, tr)
	assert.False(t, ev.DoesContainVerticalCurve())

	ev.AddCurveToRight(vert, tr)
	assert.True(t, ev.DoesContainVerticalCurve())
	assert.Len(t, ev.VerticalCurves(), 1)

	// registering the same vertical on the other side must not double it
	ev.AddCurveToLeft(vert, traits.Point{X: 5, Y: 0}, tr)
	assert.Len(t, ev.VerticalCurves(), 1)
}

func TestVerticalXPointsDedupeByPointEqual(t *testing.T) {
	tr := traits.NewSegmentTraits()
	ev := event.New[traits.Point, traits.Segment, struct{}](traits.Point{X: 5, Y: 10})
	ev.AddVerticalCurveXPoint(traits.Point{X: 5, Y: 3}, tr)
	ev.AddVerticalCurveXPoint(traits.Point{X: 5, Y: 3}, tr)
	ev.AddVerticalCurveXPoint(traits.Point{X: 5, Y: 7}, tr)
	assert.Len(t, ev.VerticalXPoints(), 2)
}
