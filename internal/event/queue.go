package event

import (
	"github.com/google/btree"

	"github.com/arrangements/planesweep/traits"
)

// queueItem is the value the underlying tree orders. Only point
// participates in ordering; event carries the payload.
type queueItem[P any, C any, X any] struct {
	point P
	event *Event[P, C, X]
}

// Queue is the sweep's event queue: a balanced ordered map from Point
// to Event under the sweep comparator. A binary heap would be enough
// for a strict pop-the-minimum loop, but not for by-key find/amend:
// two intersection events discovered for the same point must merge
// into one Event, not coexist. A google/btree generic B-tree gives
// the ordered-map shape a heap doesn't, at the same asymptotic cost.
type Queue[P any, C any, X any] struct {
	tree *btree.BTreeG[queueItem[P, C, X]]
}

// NewQueue constructs an empty Queue ordered by tr's sweep comparator.
func NewQueue[P any, C any, X any](tr traits.GeometricTraits[P, C]) *Queue[P, C, X] {
	less := func(a, b queueItem[P, C, X]) bool {
		return tr.ComparePoints(a.point, b.point) == traits.Less
	}
	return &Queue[P, C, X]{tree: btree.NewG(32, less)}
}

func (q *Queue[P, C, X]) Len() int { return q.tree.Len() }

// Find returns the Event at p, if one is already queued.
func (q *Queue[P, C, X]) Find(p P) (*Event[P, C, X], bool) {
	item, ok := q.tree.Get(queueItem[P, C, X]{point: p})
	if !ok {
		return nil, false
	}
	return item.event, true
}

// Insert adds ev at p. The queue never holds two Events for the same
// Point: callers must Find first and merge incident curves
// into the existing Event rather than calling Insert again for a
// point already present. FindOrCreate below is the usual way to get
// that guarantee without a separate Find/Insert pair at call sites.
func (q *Queue[P, C, X]) Insert(p P, ev *Event[P, C, X]) {
	q.tree.ReplaceOrInsert(queueItem[P, C, X]{point: p, event: ev})
}

// FindOrCreate returns the Event already queued at p, or creates,
// inserts, and returns a fresh one. The bool reports whether an
// existing Event was found (false means the caller owns a brand-new
// Event with no incident curves yet).
func (q *Queue[P, C, X]) FindOrCreate(p P) (*Event[P, C, X], bool) {
	if ev, ok := q.Find(p); ok {
		return ev, true
	}
	ev := New[P, C, X](p)
	q.Insert(p, ev)
	return ev, false
}

// Erase removes the event queued at p, if any.
func (q *Queue[P, C, X]) Erase(p P) {
	q.tree.Delete(queueItem[P, C, X]{point: p})
}

// PopFront removes and returns the leftmost queued event.
func (q *Queue[P, C, X]) PopFront() (*Event[P, C, X], bool) {
	item, ok := q.tree.DeleteMin()
	if !ok {
		return nil, false
	}
	return item.event, true
}

