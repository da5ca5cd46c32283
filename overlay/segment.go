package overlay

import "sort"

// ==============================================================================
// Segment model
// ==============================================================================
//
// A Segment is the immutable oriented-pair-plus-winding-counter building
// block the rest of the pipeline operates on (split solver, fill solver,
// link/filter). Generalized over the winding-count representation so the
// same canonicalization/merge machinery serves both Boolean overlay mode
// (a signed (subj, clip) pair) and string/slice mode (a signed subject
// count plus a union-combined clip direction mask).

// WindCount is the constraint every per-segment winding counter must
// satisfy: addable (for same-segment merging), negatable (for canonical
// reorientation), and zero-testable (for discarding cancelled segments).
type WindCount[T any] interface {
	Add(T) T
	Negate() T
	IsZero() bool
}

// BooleanCount is the winding counter used by the overlay (Boolean) mode:
// how many subject contours and how many clip contours pass through a
// half-plane, signed by traversal direction.
type BooleanCount struct {
	Subj, Clip int32
}

func (c BooleanCount) Add(o BooleanCount) BooleanCount {
	return BooleanCount{Subj: c.Subj + o.Subj, Clip: c.Clip + o.Clip}
}

func (c BooleanCount) Negate() BooleanCount {
	return BooleanCount{Subj: -c.Subj, Clip: -c.Clip}
}

func (c BooleanCount) IsZero() bool {
	return c.Subj == 0 && c.Clip == 0
}

// StringCount is the winding counter used by string/slice mode: Subj is
// summed like BooleanCount's subject field, but Clip is a 2-bit mask of
// {forward, backward} polyline traversal directions, which is
// union-combined rather than summed.
type StringCount struct {
	Subj int32
	Clip uint8
}

const (
	ClipForward  uint8 = 1 << 0
	ClipBackward uint8 = 1 << 1
)

func (c StringCount) Add(o StringCount) StringCount {
	return StringCount{Subj: c.Subj + o.Subj, Clip: c.Clip | o.Clip}
}

func (c StringCount) Negate() StringCount {
	// Direction mask is a set of traversal directions already seen, not a
	// magnitude; negating orientation does not negate which directions
	// have been observed.
	return StringCount{Subj: -c.Subj, Clip: c.Clip}
}

func (c StringCount) IsZero() bool {
	return c.Subj == 0 && c.Clip == 0
}

// Segment is a canonical oriented edge: A < B lexicographically (the
// "direct" orientation), with the original orientation folded entirely
// into the sign of Count.
type Segment[C WindCount[C]] struct {
	A, B  Point
	Count C
}

// Direct reports whether the segment endpoints are already in canonical
// (A < B) order - true by construction for every Segment produced by
// newSegment, but used as a sanity check and by callers re-deriving
// orientation from raw (a, b) pairs.
func (s Segment[C]) Direct() bool {
	return s.A.Less(s.B)
}

// newSegment canonicalizes a raw (a, b, count) triple: if a > b
// lexicographically, the endpoints are swapped and count is negated so the
// sign of Count always carries the original direction. Returns ok=false for
// a degenerate (zero-length) input, which the caller drops silently rather
// than treating as an error.
func newSegment[C WindCount[C]](a, b Point, count C) (Segment[C], bool) {
	if a == b {
		return Segment[C]{}, false
	}
	if !a.Less(b) {
		a, b = b, a
		count = count.Negate()
	}
	return Segment[C]{A: a, B: b, Count: count}, true
}

// sortSegments orders segments by the split solver's event key: a.X, a.Y,
// b.X, b.Y ascending.
func sortSegments[C WindCount[C]](segs []Segment[C]) {
	sort.Slice(segs, func(i, j int) bool {
		return segmentLess(segs[i], segs[j])
	})
}

func segmentLess[C WindCount[C]](a, b Segment[C]) bool {
	if a.A.X != b.A.X {
		return a.A.X < b.A.X
	}
	if a.A.Y != b.A.Y {
		return a.A.Y < b.A.Y
	}
	if a.B.X != b.B.X {
		return a.B.X < b.B.X
	}
	return a.B.Y < b.B.Y
}

// mergeSegments merges segments sharing identical (A, B) endpoints by
// adding their counts; a pair whose summed count is zero cancels out and
// is dropped. The input need not be pre-sorted; this sorts as a side
// effect so the result is also in split solver event order.
func mergeSegments[C WindCount[C]](segs []Segment[C]) []Segment[C] {
	if len(segs) == 0 {
		return segs
	}
	sortSegments(segs)
	out := segs[:0:0]
	i := 0
	for i < len(segs) {
		a, b := segs[i].A, segs[i].B
		count := segs[i].Count
		j := i + 1
		for j < len(segs) && segs[j].A == a && segs[j].B == b {
			count = count.Add(segs[j].Count)
			j++
		}
		if !count.IsZero() {
			out = append(out, Segment[C]{A: a, B: b, Count: count})
		}
		i = j
	}
	return out
}

// contourToSegments converts one closed contour into canonical segments
// with a BooleanCount of ±1 in the role's slot; closure is implicit (the
// last point always has an inferred edge back to the first). When
// preserveCollinear is false, three consecutive collinear input vertices
// fold into a single segment.
func contourToSegments(path Path, role Role, preserveCollinear bool) []Segment[BooleanCount] {
	pts := path
	if !preserveCollinear {
		pts = dropCollinearClosed(path)
	}
	n := len(pts)
	if n < 2 {
		return nil
	}
	segs := make([]Segment[BooleanCount], 0, n)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		count := BooleanCount{}
		if role == Subject {
			count.Subj = 1
		} else {
			count.Clip = 1
		}
		if seg, ok := newSegment(a, b, count); ok {
			segs = append(segs, seg)
		}
	}
	return segs
}

// stringToSegments converts an open polyline into canonical segments with
// a StringCount, tagging each edge's traversal direction into the 2-bit
// Clip mask.
func stringToSegments(path Path, preserveCollinear bool) []Segment[StringCount] {
	pts := path
	if !preserveCollinear {
		pts = dropCollinearOpen(path)
	}
	n := len(pts)
	if n < 2 {
		return nil
	}
	segs := make([]Segment[StringCount], 0, n-1)
	for i := 0; i < n-1; i++ {
		a, b := pts[i], pts[i+1]
		mask := ClipForward
		if !a.Less(b) {
			mask = ClipBackward
		}
		if seg, ok := newSegment(a, b, StringCount{Clip: mask}); ok {
			segs = append(segs, seg)
		}
	}
	return segs
}

// dropCollinearClosed removes vertices whose neighbors on both sides are
// collinear with it, treating the path as closed (wrap-around).
func dropCollinearClosed(path Path) Path {
	n := len(path)
	if n < 3 {
		return path
	}
	keep := make(Path, 0, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		next := path[(i+1)%n]
		if prev == cur || cur == next {
			continue
		}
		if IsCollinear(prev, cur, next) && isBetween(prev, cur, next) {
			continue
		}
		keep = append(keep, cur)
	}
	if len(keep) < 3 {
		return keep
	}
	return keep
}

// dropCollinearOpen removes interior collinear vertices from an open path,
// always preserving the first and last points.
func dropCollinearOpen(path Path) Path {
	n := len(path)
	if n < 3 {
		return path
	}
	keep := make(Path, 0, n)
	keep = append(keep, path[0])
	for i := 1; i < n-1; i++ {
		prev, cur, next := path[i-1], path[i], path[i+1]
		if prev == cur || cur == next {
			continue
		}
		if IsCollinear(prev, cur, next) && isBetween(prev, cur, next) {
			continue
		}
		keep = append(keep, cur)
	}
	keep = append(keep, path[n-1])
	return keep
}

// isBetween reports whether cur lies between prev and next on their common
// line (as opposed to being collinear but a reflex spike outside the run).
func isBetween(prev, cur, next Point) bool {
	return DotProduct(cur, prev, next) <= 0
}
