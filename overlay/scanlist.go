package overlay

import "sort"

// ==============================================================================
// Scan-list abstraction
// ==============================================================================
//
// The split solver, fill solver, and hole binder all need an ordered
// working set that supports insert, delete, and in-order ascent by some
// per-subsystem key (segment start point in the split solver, y at the
// sweep x in the fill solver, hull left edge in the hole binder). Rather
// than one global key type, scanList is a
// small generic ordered-set interface; each subsystem supplies its own
// item type and less-than comparator, and picks a List or Tree backend
// independently via SolverType.

// autoSolverThreshold is the item count below which SolverAuto picks the
// List backend and at or above which it picks Tree, reused uniformly across
// split, fill, and bind.
const autoSolverThreshold = 32

// scanList is an ordered multiset over T, ordered by a comparator fixed at
// construction time. The comparator must be a strict total order unique
// per logical item (ties broken by a sequence number or similar) - both
// backends treat "neither less than the other" as "same key": Insert keeps
// such items as duplicates, and Delete removes whichever one it meets first.
type scanList[T any] interface {
	Insert(item T)
	Delete(item T)
	Ascend(visit func(item T) bool)
	Len() int
}

// newScanList picks a scanList backend for n expected items according to
// solver. SolverFrag selects the same sorted-slice backend as SolverList.
func newScanList[T any](solver SolverType, n int, less func(a, b T) bool) scanList[T] {
	switch solver {
	case SolverTree:
		return newTreeScanList(less)
	case SolverList, SolverFrag:
		return newListScanList(less)
	default: // SolverAuto
		if n >= autoSolverThreshold {
			return newTreeScanList(less)
		}
		return newListScanList(less)
	}
}

// listScanList is a sorted-slice scanList: O(n) insert/delete, cache
// friendly for small n. The insert binary-searches for the sorted
// position and then shifts the tail, the same shape as a hand-rolled
// active-edge-list insert.
type listScanList[T any] struct {
	items []T
	less  func(a, b T) bool
}

func newListScanList[T any](less func(a, b T) bool) *listScanList[T] {
	return &listScanList[T]{less: less}
}

func (l *listScanList[T]) Insert(item T) {
	i := sort.Search(len(l.items), func(i int) bool { return l.less(item, l.items[i]) })
	l.items = append(l.items, item)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
}

func (l *listScanList[T]) Delete(item T) {
	for i, it := range l.items {
		if !l.less(it, item) && !l.less(item, it) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *listScanList[T]) Ascend(visit func(item T) bool) {
	for _, it := range l.items {
		if !visit(it) {
			return
		}
	}
}

func (l *listScanList[T]) Len() int {
	return len(l.items)
}
