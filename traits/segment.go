package traits

import "math"

// DefaultEpsilon is the tolerance SegmentTraits uses for all
// floating-point comparisons.
const DefaultEpsilon = 1e-9

// Point is a point in the plane, the P type SegmentTraits produces.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight x-monotone piece, the C type SegmentTraits
// consumes. It is always already x-monotone (including the vertical
// case, which the sweep handles as a degenerate zero-x-width curve).
// The json tags let gensweepinput's output round-trip through test
// fixtures with plain encoding/json, no bespoke wire format needed.
type Segment struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// SegmentTraits implements GeometricTraits[Point, Segment] for
// straight line segments using epsilon-tolerant floating point. It is
// not an exact-predicate kernel; it is the reference oracle for this
// module's tests and for sweep.NewSegmentSweeper. A production caller wanting exact
// arithmetic supplies its own GeometricTraits.
type SegmentTraits struct {
	Epsilon float64
}

// NewSegmentTraits returns a SegmentTraits using DefaultEpsilon.
func NewSegmentTraits() *SegmentTraits {
	return &SegmentTraits{Epsilon: DefaultEpsilon}
}

func (t *SegmentTraits) eps() float64 {
	if t.Epsilon > 0 {
		return t.Epsilon
	}
	return DefaultEpsilon
}

func (t *SegmentTraits) ComparePoints(p, q Point) Ordering {
	if x := t.CompareX(p, q); x != Equal {
		return x
	}
	eps := t.eps()
	if math.Abs(p.Y-q.Y) <= eps {
		return Equal
	}
	if p.Y < q.Y {
		return Less
	}
	return Greater
}

func (t *SegmentTraits) CompareX(p, q Point) Ordering {
	eps := t.eps()
	if math.Abs(p.X-q.X) <= eps {
		return Equal
	}
	if p.X < q.X {
		return Less
	}
	return Greater
}

func (t *SegmentTraits) PointEqual(p, q Point) bool {
	eps := t.eps()
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func (t *SegmentTraits) CurveSource(c Segment) Point { return c.P1 }
func (t *SegmentTraits) CurveTarget(c Segment) Point { return c.P2 }

func (t *SegmentTraits) IsVertical(c Segment) bool {
	return math.Abs(c.P1.X-c.P2.X) <= t.eps()
}

// IsXMonotone is always true: a straight segment is trivially
// x-monotone (the vertical case is handled by the sweep separately).
func (t *SegmentTraits) IsXMonotone(Segment) bool { return true }

// SplitXMonotone is a no-op for segments: they never need splitting.
func (t *SegmentTraits) SplitXMonotone(c Segment) []Segment { return []Segment{c} }

func (t *SegmentTraits) PointInXRange(c Segment, p Point) bool {
	eps := t.eps()
	lo, hi := c.P1.X, c.P2.X
	if lo > hi {
		lo, hi = hi, lo
	}
	return p.X >= lo-eps && p.X <= hi+eps
}

// yAt returns the y-coordinate of c at x, via linear interpolation,
// clamped to the endpoints outside c's x-range. Curves keep their
// original source-to-target orientation throughout the sweep, so the
// endpoints are ordered by x here first. A vertical segment answers
// with its lower endpoint's y, whichever way it was given, so that an
// ordered lookup keyed by the vertical anchors at the bottom of its
// span.
func (t *SegmentTraits) yAt(c Segment, x float64) float64 {
	p1, p2 := c.P1, c.P2
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	if math.Abs(p1.X-p2.X) <= t.eps() {
		return math.Min(p1.Y, p2.Y)
	}
	if x <= p1.X {
		return p1.Y
	}
	if x >= p2.X {
		return p2.Y
	}
	return p1.Y + (x-p1.X)*(p2.Y-p1.Y)/(p2.X-p1.X)
}

func (t *SegmentTraits) CompareYAtX(p Point, c Segment) Ordering {
	y := t.yAt(c, p.X)
	eps := t.eps()
	if math.Abs(y-p.Y) <= eps {
		return Equal
	}
	if p.Y < y {
		return Less
	}
	return Greater
}

func (t *SegmentTraits) CompareCurvesYAtX(c1, c2 Segment, xRef Point) Ordering {
	y1, y2 := t.yAt(c1, xRef.X), t.yAt(c2, xRef.X)
	eps := t.eps()
	if math.Abs(y1-y2) <= eps {
		return Equal
	}
	if y1 < y2 {
		return Less
	}
	return Greater
}

func (t *SegmentTraits) slope(c Segment) float64 {
	if math.Abs(c.P2.X-c.P1.X) <= t.eps() {
		return math.Inf(1)
	}
	return (c.P2.Y - c.P1.Y) / (c.P2.X - c.P1.X)
}

// CompareCurvesYAtXRight breaks a CompareCurvesYAtX tie by comparing
// slopes: the curve with the smaller slope dips below just past p.
func (t *SegmentTraits) CompareCurvesYAtXRight(c1, c2 Segment, p Point) Ordering {
	s1, s2 := t.slope(c1), t.slope(c2)
	if s1 == s2 {
		return Equal
	}
	if s1 < s2 {
		return Less
	}
	return Greater
}

// NearestIntersectionToRight finds the intersection of c1 and c2
// nearest to, and strictly to the right of, p. It distinguishes a
// single crossing point (the cross-product test) from a
// positive-length collinear overlap (n == 2).
func (t *SegmentTraits) NearestIntersectionToRight(c1, c2 Segment, p Point) (q1, q2 Point, n int) {
	eps := t.eps()
	r := Point{X: c1.P2.X - c1.P1.X, Y: c1.P2.Y - c1.P1.Y}
	s := Point{X: c2.P2.X - c2.P1.X, Y: c2.P2.Y - c2.P1.Y}
	rxs := r.X*s.Y - r.Y*s.X
	qp := Point{X: c2.P1.X - c1.P1.X, Y: c2.P1.Y - c1.P1.Y}
	qpxr := qp.X*r.Y - qp.Y*r.X

	if math.Abs(rxs) <= eps {
		// Parallel. Collinear only if qp is also parallel to r.
		if math.Abs(qpxr) > eps {
			return Point{}, Point{}, 0
		}
		return t.collinearOverlapToRight(c1, c2, p)
	}

	tt := (qp.X*s.Y - qp.Y*s.X) / rxs
	u := qpxr / rxs
	if tt < -eps || tt > 1+eps || u < -eps || u > 1+eps {
		return Point{}, Point{}, 0
	}
	q := Point{X: c1.P1.X + tt*r.X, Y: c1.P1.Y + tt*r.Y}
	if !t.isStrictlyRightOf(q, p) {
		return Point{}, Point{}, 0
	}
	return q, Point{}, 1
}

// isStrictlyRightOf reports whether q is strictly after p in sweep
// order (greater x, or equal x and greater y).
func (t *SegmentTraits) isStrictlyRightOf(q, p Point) bool {
	eps := t.eps()
	if q.X-p.X > eps {
		return true
	}
	return math.Abs(q.X-p.X) <= eps && q.Y-p.Y > eps
}

// collinearOverlapToRight projects both segments onto their shared
// line, intersects the two parameter ranges, and reports the portion
// of that intersection strictly to the right of p.
func (t *SegmentTraits) collinearOverlapToRight(c1, c2 Segment, p Point) (q1, q2 Point, n int) {
	dir := Point{X: c1.P2.X - c1.P1.X, Y: c1.P2.Y - c1.P1.Y}
	length := math.Hypot(dir.X, dir.Y)
	if length <= t.eps() {
		return Point{}, Point{}, 0
	}
	ux, uy := dir.X/length, dir.Y/length

	param := func(pt Point) float64 { return (pt.X-c1.P1.X)*ux + (pt.Y-c1.P1.Y)*uy }
	at := func(s float64) Point { return Point{X: c1.P1.X + s*ux, Y: c1.P1.Y + s*uy} }

	lo1, hi1 := param(c1.P1), param(c1.P2)
	if lo1 > hi1 {
		lo1, hi1 = hi1, lo1
	}
	lo2, hi2 := param(c2.P1), param(c2.P2)
	if lo2 > hi2 {
		lo2, hi2 = hi2, lo2
	}
	lo, hi := math.Max(lo1, lo2), math.Min(hi1, hi2)
	if hi-lo <= t.eps() {
		return Point{}, Point{}, 0
	}

	start, end := at(lo), at(hi)
	if !t.isStrictlyRightOf(end, p) {
		return Point{}, Point{}, 0
	}
	if t.isStrictlyRightOf(start, p) {
		return start, end, 2
	}
	// The overlap begins at or before p: only the remaining sliver to
	// the right of p is unreported so far.
	return p, end, 2
}

func (t *SegmentTraits) Split(c Segment, at Point) (left, right Segment) {
	return Segment{P1: c.P1, P2: at}, Segment{P1: at, P2: c.P2}
}

func (t *SegmentTraits) CurvesOverlap(c1, c2 Segment) bool {
	_, _, n := t.NearestIntersectionToRight(c1, c2, Point{X: math.Inf(-1), Y: math.Inf(-1)})
	return n == 2
}

func (t *SegmentTraits) CurveEqual(c1, c2 Segment) bool {
	same := t.PointEqual(c1.P1, c2.P1) && t.PointEqual(c1.P2, c2.P2)
	swapped := t.PointEqual(c1.P1, c2.P2) && t.PointEqual(c1.P2, c2.P1)
	return same || swapped
}
