// Package status implements StatusLine, the sweep's ordered container
// of subcurves currently crossing the sweep line.
package status

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/arrangements/planesweep/internal/xcurve"
	"github.com/arrangements/planesweep/traits"
)

// StatusLine is the totally ordered sequence of subcurves crossing a
// vertical line placed just left of the current sweep event, backed
// by a red-black tree (github.com/emirpasic/gods/trees/redblacktree)
// keyed by *xcurve.SubCurve[P, C].
//
// The order between two subcurves depends on the sweep's current
// x-reference. Rather than a hidden comparator global mutated from
// afar, the reference is an explicit part of the container's state:
// SetReference must be called once per event, before any
// insert/erase/lower-bound call for that event, by the Sweeper, and
// never interleaved mid-operation.
type StatusLine[P any, C any] struct {
	tree *rbt.Tree
	tr   traits.GeometricTraits[P, C]
	ref  P

	// Erase-in-progress guidance, see Erase.
	erasingID int
	erasePath map[int]int
	guided    bool
}

// New constructs an empty StatusLine ordered by tr.
func New[P any, C any](tr traits.GeometricTraits[P, C]) *StatusLine[P, C] {
	sl := &StatusLine[P, C]{tr: tr}
	sl.tree = rbt.NewWith(sl.compare)
	return sl
}

// SetReference installs the x-reference point used by subsequent
// comparisons, conceptually a vertical line placed just left of the
// current event.
func (sl *StatusLine[P, C]) SetReference(p P) { sl.ref = p }

func (sl *StatusLine[P, C]) compare(a, b any) int {
	sa := a.(*xcurve.SubCurve[P, C])
	sb := b.(*xcurve.SubCurve[P, C])
	if sa.ID() == sb.ID() {
		return 0
	}
	if sl.guided && sa.ID() == sl.erasingID {
		if dir, ok := sl.erasePath[sb.ID()]; ok {
			return dir
		}
	}
	ord := sl.tr.CompareCurvesYAtX(sa.Curve(), sb.Curve(), sl.ref)
	if ord == traits.Equal {
		ord = sl.tr.CompareCurvesYAtXRight(sa.Curve(), sb.Curve(), sl.ref)
	}
	if ord != traits.Equal {
		return int(ord)
	}
	// Coincident curves (an overlap run) compare equal by the
	// geometric order alone; the subcurve id is the stable secondary
	// key that lets the tree hold them side by side.
	if sa.ID() < sb.ID() {
		return -1
	}
	return 1
}

// Insert adds sc to the status line and caches its tree position on
// sc as an erase/neighbor-lookup hint. gods' redblacktree has no
// insert-with-hint primitive, so insertion is always O(log n); the
// hint only lets neighbor lookups and erase skip a second descent.
func (sl *StatusLine[P, C]) Insert(sc *xcurve.SubCurve[P, C]) {
	sl.tree.Put(sc, true)
	if node := sl.tree.GetNode(sc); node != nil {
		sc.SetHint(node)
	}
}

// Erase removes sc from the status line, locating it through the
// cached hint node rather than a fresh comparator descent. At the
// event where two curves cross, the comparator (referenced at the
// event point) already reports their post-crossing order while the
// tree still stores the pre-crossing one, so a plain key lookup could
// descend the wrong way past the crossing partner and miss the node
// entirely. Recording the root-to-node directions from the hint and
// replaying them during the removal's internal lookup gives
// erase-by-iterator semantics against a tree whose API only removes
// by key.
func (sl *StatusLine[P, C]) Erase(sc *xcurve.SubCurve[P, C]) {
	node := sl.node(sc)
	if node == nil {
		sc.SetHint(nil)
		return
	}

	sl.erasePath = make(map[int]int)
	for cur := node; cur.Parent != nil; cur = cur.Parent {
		dir := 1
		if cur == cur.Parent.Left {
			dir = -1
		}
		sl.erasePath[cur.Parent.Key.(*xcurve.SubCurve[P, C]).ID()] = dir
	}
	sl.erasingID = sc.ID()
	sl.guided = true

	// The tree splices a two-child node out by moving its in-order
	// predecessor's key into it; that subcurve's cached hint must be
	// repointed at its new node afterwards.
	var moved *xcurve.SubCurve[P, C]
	if node.Left != nil && node.Right != nil {
		if pred := findPredecessor(node); pred != nil {
			moved = pred.Key.(*xcurve.SubCurve[P, C])
		}
	}

	sl.tree.Remove(sc)
	sl.guided = false
	sl.erasePath = nil
	sc.SetHint(nil)
	if moved != nil && moved != sc {
		moved.SetHint(node)
	}
}

func (sl *StatusLine[P, C]) Size() int { return sl.tree.Size() }

// All returns every subcurve currently crossing the sweep line, in
// status-line order. A full snapshot is never needed on the sweep's
// hot path; tests use it to check the container's whole ordering at
// once.
func (sl *StatusLine[P, C]) All() []*xcurve.SubCurve[P, C] {
	keys := sl.tree.Keys()
	out := make([]*xcurve.SubCurve[P, C], 0, len(keys))
	for _, k := range keys {
		out = append(out, k.(*xcurve.SubCurve[P, C]))
	}
	return out
}

func (sl *StatusLine[P, C]) node(sc *xcurve.SubCurve[P, C]) *rbt.Node {
	if h := sc.Hint(); h != nil {
		if n, ok := h.(*rbt.Node); ok && n != nil {
			// A removal elsewhere in the tree may have moved another
			// key into this node; trust the hint only if it still
			// holds sc.
			if k, ok := n.Key.(*xcurve.SubCurve[P, C]); ok && k == sc {
				return n
			}
		}
	}
	return sl.tree.GetNode(sc)
}

// findSuccessor finds the in-order successor of a node.
func findSuccessor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Right {
		curr = p
		p = p.Parent
	}
	return p
}

// findPredecessor finds the in-order predecessor of a node.
func findPredecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Left {
		curr = p
		p = p.Parent
	}
	return p
}

// Neighbors returns the subcurves immediately above and below sc.
func (sl *StatusLine[P, C]) Neighbors(sc *xcurve.SubCurve[P, C]) (above, below *xcurve.SubCurve[P, C]) {
	node := sl.node(sc)
	if node == nil {
		return nil, nil
	}
	if pred := findPredecessor(node); pred != nil {
		below = pred.Key.(*xcurve.SubCurve[P, C])
	}
	if succ := findSuccessor(node); succ != nil {
		above = succ.Key.(*xcurve.SubCurve[P, C])
	}
	return above, below
}

// Next returns the subcurve immediately above sc, if any.
func (sl *StatusLine[P, C]) Next(sc *xcurve.SubCurve[P, C]) (*xcurve.SubCurve[P, C], bool) {
	node := sl.node(sc)
	if node == nil {
		return nil, false
	}
	succ := findSuccessor(node)
	if succ == nil {
		return nil, false
	}
	return succ.Key.(*xcurve.SubCurve[P, C]), true
}

// Prev returns the subcurve immediately below sc, if any.
func (sl *StatusLine[P, C]) Prev(sc *xcurve.SubCurve[P, C]) (*xcurve.SubCurve[P, C], bool) {
	node := sl.node(sc)
	if node == nil {
		return nil, false
	}
	pred := findPredecessor(node)
	if pred == nil {
		return nil, false
	}
	return pred.Key.(*xcurve.SubCurve[P, C]), true
}

// LowerBound returns the lowest subcurve in the status line ordered at
// or above sc under the current reference (gods' Ceiling gives exactly
// this: the smallest key >= the given key). The vertical-handling
// phases use it to anchor their upward walk along a vertical's span.
func (sl *StatusLine[P, C]) LowerBound(sc *xcurve.SubCurve[P, C]) (*xcurve.SubCurve[P, C], bool) {
	node, found := sl.tree.Ceiling(sc)
	if !found || node == nil {
		return nil, false
	}
	return node.Key.(*xcurve.SubCurve[P, C]), true
}

// Max returns the topmost subcurve on the status line, if any. It is
// the fallback start for a lower-bound walk whose probe key sorts
// above every stored curve.
func (sl *StatusLine[P, C]) Max() (*xcurve.SubCurve[P, C], bool) {
	node := sl.tree.Right()
	if node == nil {
		return nil, false
	}
	return node.Key.(*xcurve.SubCurve[P, C]), true
}
