// Package event implements Event and Queue, the sweep's two
// per-point bookkeeping structures.
package event

import (
	"github.com/arrangements/planesweep/internal/xcurve"
	"github.com/arrangements/planesweep/traits"
)

// Event is the sweep point at which the status line's contents or
// ordering changes. It owns ordered lists of the subcurves incident on
// it from the left and from the right, plus the bookkeeping the
// vertical-handling phases need.
//
// X is a caller-supplied payload type, so a consumer can extend events
// to carry extra arrangement data (e.g. a half-edge pointer being
// built downstream). Callers that don't need one instantiate X as
// struct{}.
type Event[P any, C any, X any] struct {
	point P

	left  []*xcurve.SubCurve[P, C]
	right []*xcurve.SubCurve[P, C]

	verticals       []*xcurve.SubCurve[P, C] // incident subcurves vertical at this x
	verticalXPoints []P                      // y-crossings recorded against a vertical anchored here

	isInternalIntersection bool

	Extra X
}

// New creates an Event at p with empty incident lists.
func New[P any, C any, X any](p P) *Event[P, C, X] {
	return &Event[P, C, X]{point: p}
}

func (e *Event[P, C, X]) Point() P { return e.point }

// AddCurveToLeft inserts sc into the left-list, keeping it ordered by
// ascending y along the sweep at refPoint, a just-prior sweep
// position used to break ties correctly when curves coincide at this
// event.
func (e *Event[P, C, X]) AddCurveToLeft(sc *xcurve.SubCurve[P, C], refPoint P, tr traits.GeometricTraits[P, C]) {
	for _, existing := range e.left {
		if existing == sc {
			return
		}
	}
	idx := len(e.left)
	for i, existing := range e.left {
		if lessAtRef(tr, sc, existing, refPoint) {
			idx = i
			break
		}
	}
	e.left = insertAt(e.left, idx, sc)
	e.noteVertical(sc, tr)
}

// AddCurveToRight inserts sc into the right-list, keeping it ordered
// by ascending y just to the right of the event point.
func (e *Event[P, C, X]) AddCurveToRight(sc *xcurve.SubCurve[P, C], tr traits.GeometricTraits[P, C]) {
	for _, existing := range e.right {
		if existing == sc {
			return
		}
	}
	idx := len(e.right)
	for i, existing := range e.right {
		if tr.CompareCurvesYAtXRight(sc.Curve(), existing.Curve(), e.point) == traits.Less {
			idx = i
			break
		}
	}
	e.right = insertAt(e.right, idx, sc)
	e.noteVertical(sc, tr)
}

func (e *Event[P, C, X]) noteVertical(sc *xcurve.SubCurve[P, C], tr traits.GeometricTraits[P, C]) {
	if !tr.IsVertical(sc.Curve()) {
		return
	}
	for _, existing := range e.verticals {
		if existing == sc {
			return
		}
	}
	e.verticals = append(e.verticals, sc)
}

// DoesContainVerticalCurve reports whether any incident subcurve is
// vertical at this event's x.
func (e *Event[P, C, X]) DoesContainVerticalCurve() bool { return len(e.verticals) > 0 }

// VerticalCurves returns the incident subcurves vertical at this x,
// whichever side they were registered on.
func (e *Event[P, C, X]) VerticalCurves() []*xcurve.SubCurve[P, C] { return e.verticals }

func lessAtRef[P any, C any](tr traits.GeometricTraits[P, C], a, b *xcurve.SubCurve[P, C], refPoint P) bool {
	if ord := tr.CompareCurvesYAtX(a.Curve(), b.Curve(), refPoint); ord != traits.Equal {
		return ord == traits.Less
	}
	return tr.CompareCurvesYAtXRight(a.Curve(), b.Curve(), refPoint) == traits.Less
}

func insertAt[T any](s []T, idx int, v T) []T {
	s = append(s, v)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

// AddVerticalCurveXPoint records a point, deduped by PointEqual, where
// some curve crosses the vertical span of a vertical curve anchored at
// this event. The vertical-top phase slices the vertical at these
// points, in sweep order.
func (e *Event[P, C, X]) AddVerticalCurveXPoint(p P, tr traits.GeometricTraits[P, C]) {
	for _, existing := range e.verticalXPoints {
		if tr.PointEqual(existing, p) {
			return
		}
	}
	e.verticalXPoints = append(e.verticalXPoints, p)
}

func (e *Event[P, C, X]) VerticalXPoints() []P { return e.verticalXPoints }

func (e *Event[P, C, X]) MarkInternalIntersectionPoint() { e.isInternalIntersection = true }
func (e *Event[P, C, X]) IsInternalIntersectionPoint() bool { return e.isInternalIntersection }

func (e *Event[P, C, X]) HasLeftCurves() bool  { return len(e.left) > 0 }
func (e *Event[P, C, X]) HasRightCurves() bool { return len(e.right) > 0 }
func (e *Event[P, C, X]) LeftCurves() []*xcurve.SubCurve[P, C]  { return e.left }
func (e *Event[P, C, X]) RightCurves() []*xcurve.SubCurve[P, C] { return e.right }
func (e *Event[P, C, X]) NumLeftCurves() int  { return len(e.left) }
func (e *Event[P, C, X]) NumRightCurves() int { return len(e.right) }
