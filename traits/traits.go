// Package traits defines the geometric oracle the sweep consumes.
//
// Every geometric question the sweep needs answered (point order,
// curve splitting, intersection, overlap) is delegated to a
// GeometricTraits implementation. The sweep itself never compares
// coordinates or calls into a numeric kernel directly; it only ever
// calls the traits. This keeps the core generic over point type P and
// curve type C, and keeps numeric determinism the oracle's problem,
// not the sweep's.
package traits

// Ordering is the result of a traits comparison: negative, zero, or
// positive, same convention as bytes.Compare / strings.Compare.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// GeometricTraits is the capability set the sweep requires of its
// geometric oracle. P is the opaque point type produced by the oracle;
// C is the opaque x-monotone curve type. An implementation must be
// deterministic, and its comparison predicates must be consistent
// (antisymmetric and transitive); a traits that isn't will deadlock
// the sweep or produce wrong output; see InconsistencyError.
type GeometricTraits[P any, C any] interface {
	// ComparePoints orders two points in sweep order: primarily by x,
	// then by y at equal x. It must return Equal only for coincident
	// points.
	ComparePoints(p, q P) Ordering

	// CompareX compares only the x-coordinates of two points. Used to
	// detect when the sweep line has strictly advanced versus merely
	// moved to a new point at the same x (vertical handling).
	CompareX(p, q P) Ordering

	// PointEqual reports whether p and q are the same point. Must be
	// an equivalence relation.
	PointEqual(p, q P) bool

	// CurveSource and CurveTarget return the curve's two endpoints in
	// its own original orientation (not necessarily left-to-right).
	CurveSource(c C) P
	CurveTarget(c C) P

	// IsVertical reports whether c has zero x-width.
	IsVertical(c C) bool

	// IsXMonotone reports whether c is already x-monotone.
	IsXMonotone(c C) bool

	// SplitXMonotone splits a non-x-monotone curve into maximal
	// x-monotone pieces, source-to-target along the original curve.
	SplitXMonotone(c C) []C

	// PointInXRange reports whether p's x-coordinate lies within c's
	// x-range (inclusive of both ends).
	PointInXRange(c C, p P) bool

	// CompareYAtX compares p's y-coordinate against c's y-coordinate
	// at p's x (curve_compare_y_at_x).
	CompareYAtX(p P, c C) Ordering

	// CompareCurvesYAtX compares the y-coordinates of c1 and c2 at the
	// x-coordinate of xRef (curves_compare_y_at_x).
	CompareCurvesYAtX(c1, c2 C, xRef P) Ordering

	// CompareCurvesYAtXRight breaks a tie from CompareCurvesYAtX using
	// the curves' behavior strictly to the right of p, i.e. by slope
	// order just past the shared point (curves_compare_y_at_x_right).
	CompareCurvesYAtXRight(c1, c2 C, p P) Ordering

	// NearestIntersectionToRight returns the nearest intersection of
	// c1 and c2 strictly to the right of p. n is 0 (no intersection),
	// 1 (q1 valid), or 2 (q1, q2 valid: an overlap run, q1 nearer).
	NearestIntersectionToRight(c1, c2 C, p P) (q1, q2 P, n int)

	// Split divides c at a point known to lie on it, returning the
	// piece ending at (left) and the piece starting at (right) that
	// point, both in c's original source-to-target orientation.
	Split(c C, at P) (left, right C)

	// CurvesOverlap reports whether c1 and c2 coincide as point sets
	// on a positive-length portion.
	CurvesOverlap(c1, c2 C) bool

	// CurveEqual reports whether c1 and c2 are the same curve as a
	// point set. Must be an equivalence relation.
	CurveEqual(c1, c2 C) bool
}

// InconsistencyError is panicked by a GeometricTraits implementation
// when a predicate contradicts a prior one, e.g.
// NearestIntersectionToRight returns n == 0 for a pair CurvesOverlap
// reported true for. The sweep performs no consistency checks of its
// own and never panics with it. It is fatal to the current operation:
// the sweep recovers it only at the boundary of a public entry point
// and turns it into an error, it never continues the sweep past it.
type InconsistencyError struct {
	Op  string // which traits call detected the contradiction
	Msg string
}

func (e *InconsistencyError) Error() string {
	return "traits: inconsistent oracle in " + e.Op + ": " + e.Msg
}
