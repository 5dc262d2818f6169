// Package naive is an O(n^2) brute-force cross-check for the sweep,
// generic over any traits.GeometricTraits[P, C]. Used only by tests,
// never by the sweep itself.
package naive

import "github.com/arrangements/planesweep/traits"

// CountIntersections counts pairs of curves that meet at an interior
// point, a T-junction, or a positive-length overlap, the same notion
// of "true crossing" the sweep's do_curves_intersect uses: a pair
// that merely shares an endpoint does not count.
func CountIntersections[P any, C any](tr traits.GeometricTraits[P, C], curves []C) int {
	count := 0
	for i := range curves {
		for j := i + 1; j < len(curves); j++ {
			if pairIntersects(tr, curves[i], curves[j]) {
				count++
			}
		}
	}
	return count
}

// AnyIntersect reports whether any pair of curves truly intersects,
// short-circuiting on the first pair found; the equivalent of
// do_curves_intersect.
func AnyIntersect[P any, C any](tr traits.GeometricTraits[P, C], curves []C) bool {
	for i := range curves {
		for j := i + 1; j < len(curves); j++ {
			if pairIntersects(tr, curves[i], curves[j]) {
				return true
			}
		}
	}
	return false
}

func pairIntersects[P any, C any](tr traits.GeometricTraits[P, C], c1, c2 C) bool {
	if tr.CurvesOverlap(c1, c2) {
		return true
	}
	if sharesEndpoint(tr, c1, c2) {
		return false
	}
	// T-junction: either curve's endpoint landing in the other's
	// interior is a true intersection even though it's also an
	// original endpoint.
	for _, p := range []P{tr.CurveSource(c1), tr.CurveTarget(c1)} {
		if tr.PointInXRange(c2, p) && tr.CompareYAtX(p, c2) == traits.Equal {
			return true
		}
	}
	for _, p := range []P{tr.CurveSource(c2), tr.CurveTarget(c2)} {
		if tr.PointInXRange(c1, p) && tr.CompareYAtX(p, c1) == traits.Equal {
			return true
		}
	}
	ref := beforeEverything(tr, c1, c2)
	_, _, n := tr.NearestIntersectionToRight(c1, c2, ref)
	return n == 1
}

// sharesEndpoint reports whether c1 and c2 have an endpoint in
// common; meeting only there is not a true crossing.
func sharesEndpoint[P any, C any](tr traits.GeometricTraits[P, C], c1, c2 C) bool {
	a1, a2 := tr.CurveSource(c1), tr.CurveTarget(c1)
	b1, b2 := tr.CurveSource(c2), tr.CurveTarget(c2)
	return tr.PointEqual(a1, b1) || tr.PointEqual(a1, b2) || tr.PointEqual(a2, b1) || tr.PointEqual(a2, b2)
}

// beforeEverything returns the leftmost of the two curves' four
// endpoints, so NearestIntersectionToRight searches each curve's
// entire span rather than just the portion right of one arbitrary
// endpoint. Safe to use as a strict lower bound here because any
// interior crossing remaining after the overlap/shared-endpoint/
// T-junction checks above cannot itself equal an endpoint.
func beforeEverything[P any, C any](tr traits.GeometricTraits[P, C], c1, c2 C) P {
	candidates := []P{tr.CurveSource(c1), tr.CurveTarget(c1), tr.CurveSource(c2), tr.CurveTarget(c2)}
	leftmost := candidates[0]
	for _, p := range candidates[1:] {
		if tr.ComparePoints(p, leftmost) == traits.Less {
			leftmost = p
		}
	}
	return leftmost
}
