package sweep

import (
	"fmt"

	"github.com/arrangements/planesweep/internal/event"
	"github.com/arrangements/planesweep/internal/status"
	"github.com/arrangements/planesweep/internal/xcurve"
	"github.com/arrangements/planesweep/traits"
)

// mode selects which of the three public operations the current run
// serves. It is a Sweeper field rather than a parameter threaded
// through every phase method, like the rest of the per-run state.
type mode int

const (
	modeSubCurves mode = iota
	modePoints
	modeBoolean
)

// Sweeper is the Bentley-Ottmann engine. P is the oracle's point
// type, C its curve type, X a caller payload attached to every
// Event; most callers instantiate X as struct{}.
//
// A Sweeper owns its event queue and status line for the lifetime of
// one call to GetSubCurves, GetIntersectionPoints, or
// DoCurvesIntersect, and resets them at the start of the next; a
// single Sweeper value is not safe for concurrent sweeps, but
// independent Sweepers (sharing or not sharing a GeometricTraits) may
// run on different goroutines freely, since GeometricTraits
// implementations are expected to be stateless.
type Sweeper[P any, C any, X any] struct {
	tr traits.GeometricTraits[P, C]

	eq     *event.Queue[P, C, X]
	status *status.StatusLine[P, C]

	nextID int

	sweepLinePos P
	prevPos      P
	havePos      bool

	// verticals is the working set of vertical subcurves whose span
	// straddles the current x, carried over between events that share
	// that x.
	verticals []*xcurve.SubCurve[P, C]

	// endNeighbors holds the status-line above/below pair captured
	// around each curve erased by the current event's phase 3, before
	// its erasure. Phase 5 probes these newly-adjacent pairs (left over
	// once the curves that used to separate them are gone) after its
	// own insertions, and they are all it probes when the event has no
	// right-curves to insert.
	endNeighbors [][2]*xcurve.SubCurve[P, C]

	runMode   mode
	cfg       Config
	curveSink CurveSink[C]
	pointSink PointSink[P]

	haveLastEmittedCurve bool
	lastEmittedCurve     C
	haveLastEmittedPoint bool
	lastEmittedPoint     P

	foundIntersection bool
}

// New constructs a Sweeper borrowing tr. The Sweeper never mutates or
// closes tr; ownership stays with the caller.
func New[P any, C any, X any](tr traits.GeometricTraits[P, C]) *Sweeper[P, C, X] {
	return &Sweeper[P, C, X]{tr: tr}
}

// NewSegmentSweeper constructs a Sweeper owning a fresh
// traits.SegmentTraits. A fully generic zero-argument constructor
// isn't expressible without already knowing P and C concretely, so
// the owned-traits convenience is offered at the one instantiation
// that can supply a default.
func NewSegmentSweeper[X any]() *Sweeper[traits.Point, traits.Segment, X] {
	return New[traits.Point, traits.Segment, X](traits.NewSegmentTraits())
}

func (s *Sweeper[P, C, X]) reset() {
	s.eq = event.NewQueue[P, C, X](s.tr)
	s.status = status.New[P, C](s.tr)
	s.nextID = 0
	var zeroP P
	s.sweepLinePos, s.prevPos = zeroP, zeroP
	s.havePos = false
	s.verticals = nil
	s.endNeighbors = nil
	s.haveLastEmittedCurve = false
	s.haveLastEmittedPoint = false
	s.foundIntersection = false
}

// recoverInconsistency turns a panicked *traits.InconsistencyError
// into ErrOracleInconsistent at the public-entry-point boundary. Any
// other panic is the caller's bug, or ours, and is left to propagate.
func (s *Sweeper[P, C, X]) recoverInconsistency(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ierr, ok := r.(*traits.InconsistencyError); ok {
		*errp = fmt.Errorf("%w: %s", ErrOracleInconsistent, ierr.Error())
		return
	}
	panic(r)
}

// GetSubCurves reports every maximal subcurve of the arrangement
// formed by curves, in sweep order.
func (s *Sweeper[P, C, X]) GetSubCurves(curves []C, sink CurveSink[C], opts ...Option) (err error) {
	defer s.recoverInconsistency(&err)
	if len(curves) == 0 {
		return nil
	}
	s.reset()
	s.runMode = modeSubCurves
	s.cfg = apply(opts...)
	s.curveSink = sink
	s.initCurves(curves)
	return s.run()
}

// GetIntersectionPoints reports every intersection point of the
// arrangement formed by curves, in sweep order.
func (s *Sweeper[P, C, X]) GetIntersectionPoints(curves []C, sink PointSink[P], opts ...Option) (err error) {
	defer s.recoverInconsistency(&err)
	if len(curves) == 0 {
		return nil
	}
	s.reset()
	s.runMode = modePoints
	s.cfg = apply(opts...)
	s.pointSink = sink
	s.initCurves(curves)
	return s.run()
}

// DoCurvesIntersect reports whether any two curves in curves meet at
// an interior point, a T-junction, or a positive-length overlap. It
// stops sweeping at the first such point found.
func (s *Sweeper[P, C, X]) DoCurvesIntersect(curves []C, opts ...Option) (found bool, err error) {
	defer s.recoverInconsistency(&err)
	if len(curves) == 0 {
		return false, nil
	}
	s.reset()
	s.runMode = modeBoolean
	s.cfg = apply(opts...)
	s.initCurves(curves)
	if err := s.run(); err != nil {
		return false, err
	}
	return s.foundIntersection, nil
}

func (s *Sweeper[P, C, X]) run() error {
	for {
		if err := s.cfg.Ctx.Err(); err != nil {
			return err
		}
		ev, ok := s.eq.PopFront()
		if !ok {
			return nil
		}
		s.processEvent(ev)
		if s.runMode == modeBoolean && s.foundIntersection {
			return nil
		}
	}
}

func (s *Sweeper[P, C, X]) initCurves(curves []C) {
	for _, c := range curves {
		pieces := []C{c}
		if !s.tr.IsXMonotone(c) {
			pieces = s.tr.SplitXMonotone(c)
		}
		for _, piece := range pieces {
			s.addCurve(piece)
		}
	}
}

// addCurve registers one x-monotone input curve's two endpoint
// events. A curve's left endpoint always puts it in that event's
// right-list ("extends rightward from here"
// in sweep order; true of a vertical curve's bottom endpoint too,
// since sweep order is lexicographic (x, y) and a vertical's bottom
// sorts before its top at the same x); its right endpoint puts it in
// that event's left-list.
func (s *Sweeper[P, C, X]) addCurve(c C) {
	id := s.nextID
	s.nextID++
	sc := xcurve.New[P, C](id, c, s.tr)

	leftEv, _ := s.eq.FindOrCreate(sc.Left())
	leftEv.AddCurveToRight(sc, s.tr)

	rightEv, _ := s.eq.FindOrCreate(sc.Right())
	rightEv.AddCurveToLeft(sc, sc.Left(), s.tr)
}

func (s *Sweeper[P, C, X]) processEvent(ev *event.Event[P, C, X]) {
	p := ev.Point()
	if !s.havePos || s.tr.CompareX(p, s.sweepLinePos) != traits.Equal {
		s.prevPos = s.sweepLinePos
		s.verticals = s.verticals[:0]
	}
	s.sweepLinePos = p
	s.havePos = true
	s.status.SetReference(p)

	logDebugf("event at %v: %d left, %d right", p, ev.NumLeftCurves(), ev.NumRightCurves())

	s.handleVerticalCurveBottom(ev)
	s.handleVerticalOverlapCurves(ev)
	s.handleLeftCurves(ev)
	s.handleVerticalCurveTop(ev)
	s.handleRightCurves(ev)

	s.emitPointForEvent(ev)
}

// handleVerticalCurveBottom is phase 1: a vertical subcurve starting
// fresh at this event gets a one-time walk along its span of the
// status line, each crossing found recorded against its top
// endpoint's event for later slicing.
func (s *Sweeper[P, C, X]) handleVerticalCurveBottom(ev *event.Event[P, C, X]) {
	if !ev.DoesContainVerticalCurve() {
		return
	}
	p := ev.Point()
	for _, v := range ev.VerticalCurves() {
		if !v.IsBottomEnd(s.tr, p) {
			continue
		}
		bottom, top := v.Left(), v.Right()
		for _, c := range s.verticalSpanCurves(v, bottom, top) {
			// The vertical's foot landing on c's interior is a
			// T-junction at the current point itself, which the
			// strictly-to-the-right probe below cannot return.
			if s.curveStartsAtCurve(ev, v, c) {
				s.applyCurveStartsAtCurve(ev, c)
			}
			q1, _, n := s.tr.NearestIntersectionToRight(v.Curve(), c.Curve(), bottom)
			if n != 1 || s.tr.ComparePoints(q1, top) != traits.Less {
				continue
			}
			s.addVerticalCrossing(q1, c)
			topEv, _ := s.eq.FindOrCreate(top)
			topEv.AddVerticalCurveXPoint(q1, s.tr)
		}
	}
}

// handleVerticalOverlapCurves is phase 2: classify the current
// event against verticals carried over from a previous event at the
// same x, then extend the working set with any vertical starting
// here.
func (s *Sweeper[P, C, X]) handleVerticalOverlapCurves(ev *event.Event[P, C, X]) {
	p := ev.Point()
	kept := s.verticals[:0]
	for _, v := range s.verticals {
		if s.tr.ComparePoints(v.Right(), p) == traits.Less {
			continue // this vertical's top is already behind p
		}
		kept = append(kept, v)
		if s.tr.ComparePoints(v.Left(), p) == traits.Less && s.tr.ComparePoints(p, v.Right()) == traits.Less {
			ev.MarkInternalIntersectionPoint()
			topEv, _ := s.eq.FindOrCreate(v.Right())
			topEv.AddVerticalCurveXPoint(p, s.tr)
		}
	}
	s.verticals = kept
	for _, sc := range ev.VerticalCurves() {
		if !sc.IsBottomEnd(s.tr, p) {
			continue
		}
		for _, w := range s.verticals {
			// Two verticals coinciding all the way up to a shared top
			// end would otherwise never surface as an intersection:
			// neither top is strictly inside the other's span.
			if s.tr.CurvesOverlap(sc.Curve(), w.Curve()) && s.tr.PointEqual(sc.Right(), w.Right()) {
				topEv, _ := s.eq.FindOrCreate(sc.Right())
				topEv.MarkInternalIntersectionPoint()
			}
		}
		s.verticals = append(s.verticals, sc)
	}
}

// handleLeftCurves is phase 3: every subcurve reaching this
// event from the left emits its pending piece and leaves the status
// line. A vertical subcurve reaching its own top here is skipped:
// its emission is phase 4's job, sliced at the crossings recorded
// against it, rather than a single piece up to p.
//
// Before each non-vertical curve is erased, its current status-line
// neighbors are captured into endNeighbors; the lookup has to happen
// ahead of the erasure. A pair captured for a curve that is itself
// erased later in this same loop is stale (e.g. a chain of two
// adjacent curves both ending here), so the pairs are filtered against the
// erased set once the loop completes, leaving only the outermost
// surviving pair(s) for phase 5 to probe.
func (s *Sweeper[P, C, X]) handleLeftCurves(ev *event.Event[P, C, X]) {
	s.endNeighbors = s.endNeighbors[:0]
	if !ev.HasLeftCurves() {
		return
	}
	p := ev.Point()
	erased := make(map[int]bool, ev.NumLeftCurves())
	for _, sc := range ev.LeftCurves() {
		if s.tr.IsVertical(sc.Curve()) && sc.IsTopEnd(s.tr, p) {
			// Verticals never hold a status-line slot, and their
			// emission is the vertical-top phase's job.
			erased[sc.ID()] = true
			continue
		}
		above, below := s.status.Neighbors(sc)
		s.emitPieceUpTo(sc, p)
		s.status.Erase(sc)
		erased[sc.ID()] = true
		if above != nil && below != nil {
			s.endNeighbors = append(s.endNeighbors, [2]*xcurve.SubCurve[P, C]{above, below})
		}
	}
	kept := s.endNeighbors[:0]
	for _, pair := range s.endNeighbors {
		if erased[pair[0].ID()] || erased[pair[1].ID()] {
			continue
		}
		kept = append(kept, pair)
	}
	s.endNeighbors = kept
}

// handleVerticalCurveTop is phase 4: a vertical subcurve ending here
// gets a final span walk for any crossing phase 1 missed (a curve
// that joined the status line after the vertical's bottom was
// processed), then is sliced into pieces at every recorded crossing
// y, bottom to top.
func (s *Sweeper[P, C, X]) handleVerticalCurveTop(ev *event.Event[P, C, X]) {
	if !ev.DoesContainVerticalCurve() {
		return
	}
	p := ev.Point()
	for _, v := range ev.VerticalCurves() {
		if !v.IsTopEnd(s.tr, p) {
			continue
		}
		bottom := v.Left()
		for _, c := range s.verticalSpanCurves(v, bottom, p) {
			q1, _, n := s.tr.NearestIntersectionToRight(v.Curve(), c.Curve(), bottom)
			if n != 1 {
				continue
			}
			switch s.tr.ComparePoints(q1, p) {
			case traits.Less:
				// A crossing inside the span. Its own event was queued
				// (and by now processed) when the crossing was first
				// discovered; recording the deduped slice point is all
				// that's still needed here.
				ev.AddVerticalCurveXPoint(q1, s.tr)
			case traits.Equal:
				// c passes exactly through the vertical's top end: a
				// T-junction at p. Split the host here; the vertical's
				// own emission below already ends at p.
				if !s.tr.PointEqual(c.LastPoint(), p) {
					s.emitPieceUpTo(c, p)
				}
				ev.MarkInternalIntersectionPoint()
			}
		}

		pts := append([]P(nil), ev.VerticalXPoints()...)
		s.sortAscending(pts)
		for _, y := range pts {
			s.emitPieceUpTo(v, y)
		}
		s.emitPieceUpTo(v, p)
	}
}

// verticalSpanCurves walks the status line upward from the vertical's
// lower bound, collecting the curves whose position at this x falls
// within [bottom, top]. The status line is ordered by y at the current
// reference, so those curves form one contiguous run; walking it is
// what keeps the vertical phases from paying for the whole structure.
func (s *Sweeper[P, C, X]) verticalSpanCurves(v *xcurve.SubCurve[P, C], bottom, top P) []*xcurve.SubCurve[P, C] {
	start, ok := s.status.LowerBound(v)
	if !ok {
		// Everything sorts below the vertical's anchor; only a run
		// sitting exactly at the bottom y can still qualify.
		start, ok = s.status.Max()
		if !ok || s.tr.CompareYAtX(bottom, start.Curve()) != traits.Equal {
			return nil
		}
	}
	// The slope tie-break sorts the vertical above any curve passing
	// exactly through its anchor point; slide down to the lowest of
	// them so the foot of the span is not skipped.
	for {
		prev, ok := s.status.Prev(start)
		if !ok || s.tr.CompareYAtX(bottom, prev.Curve()) != traits.Equal {
			break
		}
		start = prev
	}
	var run []*xcurve.SubCurve[P, C]
	for c, ok := start, true; ok; c, ok = s.status.Next(c) {
		if s.tr.CompareYAtX(top, c.Curve()) == traits.Less {
			break // above the span
		}
		if c != v {
			run = append(run, c)
		}
	}
	return run
}

// handleRightCurves is phase 5: every non-vertical subcurve
// starting here enters the status line, then newly-adjacent pairs are
// probed for a future crossing (and for one curve starting in
// another's interior, a T-junction). A vertical curve is never given
// a status-line slot of its own: it has no meaningful "y just right of
// here" to sort by (yAt degenerates to its bottom endpoint for any x),
// and its crossings are already found in full by the dedicated
// vertical phases walking the status line along its span.
func (s *Sweeper[P, C, X]) handleRightCurves(ev *event.Event[P, C, X]) {
	p := ev.Point()
	s.status.SetReference(p)

	if !ev.HasRightCurves() {
		// Nothing starts here: the newly-adjacent pairs left behind
		// by phase 3's erasures are the only thing that can still
		// cross.
		s.probeEndNeighbors()
		return
	}

	var inserted []*xcurve.SubCurve[P, C]
	for _, sc := range ev.RightCurves() {
		if s.tr.IsVertical(sc.Curve()) {
			continue
		}
		s.status.Insert(sc)
		inserted = append(inserted, sc)
	}

	switch len(inserted) {
	case 0:
		// Every right-curve was vertical, so no neighbor probe happens
		// below; the pairs phase 3 made adjacent are still handled.
	case 1:
		sc := inserted[0]
		above, below := s.status.Neighbors(sc)
		s.probeNeighbor(ev, sc, above)
		s.probeNeighbor(ev, sc, below)
		s.probeOverlapChain(sc, above, true)
		s.probeOverlapChain(sc, below, false)
	default:
		// ev.RightCurves() is already sorted ascending by
		// AddCurveToRight, so the first and last elements are the
		// lowest and highest of the bundle inserted here; only they
		// can have a neighbor outside the bundle.
		lowest, highest := inserted[0], inserted[len(inserted)-1]
		_, below := s.status.Neighbors(lowest)
		s.probeNeighbor(ev, lowest, below)
		s.probeOverlapChain(lowest, below, false)
		above, _ := s.status.Neighbors(highest)
		s.probeNeighbor(ev, highest, above)
		s.probeOverlapChain(highest, above, true)
		for i := 0; i+1 < len(inserted); i++ {
			s.intersect(inserted[i], inserted[i+1])
		}
	}

	s.probeEndNeighbors()
}

// probeEndNeighbors probes the pairs phase 3 made adjacent by erasing
// whatever used to sit between them. Re-probing a pair an insertion
// already covered is harmless: intersect just asks the oracle for the
// next crossing of the two curves named, independent of current
// status-line adjacency.
func (s *Sweeper[P, C, X]) probeEndNeighbors() {
	for _, pair := range s.endNeighbors {
		s.intersect(pair[0], pair[1])
	}
}

func (s *Sweeper[P, C, X]) probeNeighbor(ev *event.Event[P, C, X], sc, neighbor *xcurve.SubCurve[P, C]) {
	if neighbor == nil {
		return
	}
	if s.curveStartsAtCurve(ev, sc, neighbor) {
		s.applyCurveStartsAtCurve(ev, neighbor)
	}
	s.intersect(sc, neighbor)
}

// probeOverlapChain extends a neighbor probe through a whole run of
// curves that overlap-coincide with firstNeighbor, so an overlap run
// longer than two curves gets every pair inside it probed, not just
// the immediate neighbor.
func (s *Sweeper[P, C, X]) probeOverlapChain(sc, firstNeighbor *xcurve.SubCurve[P, C], upward bool) {
	if firstNeighbor == nil || !s.tr.CurvesOverlap(sc.Curve(), firstNeighbor.Curve()) {
		return
	}
	cur := firstNeighbor
	for {
		var next *xcurve.SubCurve[P, C]
		var ok bool
		if upward {
			next, ok = s.status.Next(cur)
		} else {
			next, ok = s.status.Prev(cur)
		}
		if !ok || !s.tr.CurvesOverlap(firstNeighbor.Curve(), next.Curve()) {
			return
		}
		s.intersect(sc, next)
		cur = next
	}
}

// curveStartsAtCurve reports a T-junction:
// one begins exactly at this event, two does not also begin here
// (that's an ordinary shared start, not a T-junction), this event
// isn't already two's own endpoint, and one's start lies on two's
// interior.
func (s *Sweeper[P, C, X]) curveStartsAtCurve(ev *event.Event[P, C, X], one, two *xcurve.SubCurve[P, C]) bool {
	p := ev.Point()
	if !one.IsLeftEnd(s.tr, p) {
		return false
	}
	if s.tr.PointEqual(one.Left(), two.Left()) {
		return false
	}
	if s.tr.PointEqual(p, two.Right()) {
		return false
	}
	if !two.IsPointInRange(s.tr, p) {
		return false
	}
	return s.tr.CompareYAtX(p, two.Curve()) == traits.Equal
}

// applyCurveStartsAtCurve splits the host curve at the junction,
// emitting its already-swept piece now, and marks the point an
// interior intersection so it is reported even when endpoint
// reporting is off (the typical case: a vertical's foot landing on a
// horizontal's interior).
func (s *Sweeper[P, C, X]) applyCurveStartsAtCurve(ev *event.Event[P, C, X], host *xcurve.SubCurve[P, C]) {
	p := ev.Point()
	if !s.tr.PointEqual(host.LastPoint(), p) {
		s.emitPieceUpTo(host, p)
	}
	ev.MarkInternalIntersectionPoint()
}

// intersect asks the oracle for the next crossing of two curves
// currently adjacent in the status line, strictly to the right of the
// sweep position, and queues an event for it. n == 2 is a
// positive-length overlap: only its rightmost point is queued, since
// that's where the curves' relative status-line order can next
// change.
func (s *Sweeper[P, C, X]) intersect(sc1, sc2 *xcurve.SubCurve[P, C]) {
	q1, q2, n := s.tr.NearestIntersectionToRight(sc1.Curve(), sc2.Curve(), s.sweepLinePos)
	switch n {
	case 0:
		return
	case 1:
		ev := s.addIntersectionEvent(q1, sc1, sc2)
		// A point where both curves merely start or end is a shared
		// endpoint, not an interior intersection.
		if s.isInteriorTo(q1, sc1) || s.isInteriorTo(q1, sc2) {
			ev.MarkInternalIntersectionPoint()
		}
	case 2:
		// A positive-length overlap has interior contact regardless of
		// what its right end coincides with.
		ev := s.addIntersectionEvent(q2, sc1, sc2)
		ev.MarkInternalIntersectionPoint()
	}
}

func (s *Sweeper[P, C, X]) isInteriorTo(q P, sc *xcurve.SubCurve[P, C]) bool {
	return !s.tr.PointEqual(q, sc.Left()) && !s.tr.PointEqual(q, sc.Right())
}

// addIntersectionEvent merges a detected crossing into the Event at q,
// adding each curve to q's left- and right-lists, except where q
// happens to coincide with one of the curve's own original endpoints,
// which is already correctly registered from Init and must not be
// re-added as if the curve were splitting there.
func (s *Sweeper[P, C, X]) addIntersectionEvent(q P, sc1, sc2 *xcurve.SubCurve[P, C]) *event.Event[P, C, X] {
	ev, _ := s.eq.FindOrCreate(q)
	for _, sc := range [2]*xcurve.SubCurve[P, C]{sc1, sc2} {
		if !s.tr.PointEqual(q, sc.Left()) {
			ev.AddCurveToLeft(sc, s.sweepLinePos, s.tr)
		}
		if !s.tr.PointEqual(q, sc.Right()) {
			ev.AddCurveToRight(sc, s.tr)
		}
	}
	return ev
}

// addVerticalCrossing queues the event where a vertical curve crosses
// host's interior. Only the host is registered on it: the vertical has
// no status-line slot, and its own slicing happens at its top-end
// event from the crossing list recorded there.
func (s *Sweeper[P, C, X]) addVerticalCrossing(q P, host *xcurve.SubCurve[P, C]) {
	ev, _ := s.eq.FindOrCreate(q)
	if !s.tr.PointEqual(q, host.Left()) {
		ev.AddCurveToLeft(host, s.sweepLinePos, s.tr)
	}
	if !s.tr.PointEqual(q, host.Right()) {
		ev.AddCurveToRight(host, s.tr)
	}
	ev.MarkInternalIntersectionPoint()
}

// emitPieceUpTo advances sc's emitted/remaining boundary to at,
// emitting the piece between its old boundary and at when the run is
// in sub-curves mode. It always advances the boundary, regardless of
// mode, since later phases (or a later event on the same subcurve)
// depend on Remaining/LastPoint being current.
func (s *Sweeper[P, C, X]) emitPieceUpTo(sc *xcurve.SubCurve[P, C], at P) {
	var piece C
	if s.tr.PointEqual(at, sc.Right()) {
		piece = sc.Remaining()
	} else {
		emitted, newRemaining := s.splitRemaining(sc, at)
		piece = emitted
		sc.SetRemaining(newRemaining)
	}
	sc.SetLastPoint(at)
	if s.runMode == modeSubCurves {
		s.emitCurve(piece)
	}
}

// splitRemaining splits sc's unemitted suffix at at, and returns
// (piece ending at at, new suffix starting at at) in sweep order.
// tr.Split(c, at) always returns (piece ending at at, piece starting
// at at) in c's original source-to-target orientation, and sc.Remaining()
// is always kept in that same orientation relative to sc's own
// original source/target, so which of the two results continues
// toward sc.Right() is fixed for this subcurve's whole lifetime by
// sc.LeftToRight(), not something to re-derive per split: when the
// original curve's source is the sweep-left endpoint, tr.Split's
// second ("starting at") result is always the one that still reaches
// sc.Right(); when the source is the sweep-right endpoint, the first
// ("ending at") result is.
func (s *Sweeper[P, C, X]) splitRemaining(sc *xcurve.SubCurve[P, C], at P) (piece, newRemaining C) {
	left, right := s.tr.Split(sc.Remaining(), at)
	if sc.LeftToRight() {
		return left, right
	}
	return right, left
}

func (s *Sweeper[P, C, X]) emitCurve(piece C) {
	if !s.cfg.Overlapping && s.haveLastEmittedCurve && s.tr.CurveEqual(piece, s.lastEmittedCurve) {
		return
	}
	s.curveSink(piece)
	s.lastEmittedCurve = piece
	s.haveLastEmittedCurve = true
}

// emitPointForEvent is the points/boolean-mode output step, run once
// per event after all five phases (so any internal-intersection
// marking those phases perform on this same event is already in
// place). A point qualifies for reporting if it is an interior
// intersection (a crossing, overlap, or T-junction) or, when
// include_endpoints is set, an original curve endpoint.
func (s *Sweeper[P, C, X]) emitPointForEvent(ev *event.Event[P, C, X]) {
	if s.runMode != modePoints && s.runMode != modeBoolean {
		return
	}
	p := ev.Point()
	internal := ev.IsInternalIntersectionPoint()
	if !internal && !(s.cfg.IncludeEndpoints && s.eventHasTrueEndpoint(ev)) {
		return
	}
	if s.runMode == modeBoolean {
		if internal {
			s.foundIntersection = true
		}
		return
	}
	if s.haveLastEmittedPoint && s.tr.PointEqual(p, s.lastEmittedPoint) {
		return
	}
	s.pointSink(p)
	s.lastEmittedPoint = p
	s.haveLastEmittedPoint = true
}

func (s *Sweeper[P, C, X]) eventHasTrueEndpoint(ev *event.Event[P, C, X]) bool {
	p := ev.Point()
	for _, sc := range ev.LeftCurves() {
		if sc.IsEndPoint(s.tr, p) {
			return true
		}
	}
	for _, sc := range ev.RightCurves() {
		if sc.IsEndPoint(s.tr, p) {
			return true
		}
	}
	return false
}

// sortAscending insertion-sorts pts by sweep order. Lists here are the
// handful of crossings recorded against one vertical's span, never
// large enough to want more than the simplest correct sort.
func (s *Sweeper[P, C, X]) sortAscending(pts []P) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && s.tr.ComparePoints(pts[j], pts[j-1]) == traits.Less; j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}
