package overlay

// ==============================================================================
// Split solver
// ==============================================================================
//
// Subdivides an arbitrary set of (possibly crossing, possibly overlapping)
// segments into a planar-subdivision edge set: a set of segments that
// pairwise either share nothing, share only an endpoint, or are identical.
// New vertices introduced by a proper crossing are rounded to the nearest
// integer point, since all geometry after split stays integer-coordinate.
//
// The core loop repeatedly pulls the next segment in ascending-A order
// into an active scan list keyed by x-range, cross-checks it against
// every other active segment, splits both halves of any crossing or
// T-touch pair, and requeues the pieces until no active pair crosses.

type splitKind uint8

const (
	splitNone splitKind = iota
	splitCross
	splitTouch
)

// splitSolve repeatedly finds a crossing or touching pair among segs and
// subdivides both at the intersection, until no pair remains that isn't
// already non-crossing. The solver parameter selects the scan-list
// backend used to prune candidate pairs by active x-range.
func splitSolve[C WindCount[C]](segs []Segment[C], solver SolverType) []Segment[C] {
	if len(segs) == 0 {
		return nil
	}

	queue := make([]Segment[C], len(segs))
	copy(queue, segs)
	sortSegments(queue)

	finalized := make([]Segment[C], 0, len(segs)*2)
	removed := make([]bool, 0, len(segs)*2)

	type activeItem struct {
		idx int
		seg Segment[C]
	}
	less := func(a, b activeItem) bool {
		if a.seg.A.X != b.seg.A.X {
			return a.seg.A.X < b.seg.A.X
		}
		if a.seg.A.Y != b.seg.A.Y {
			return a.seg.A.Y < b.seg.A.Y
		}
		return a.idx < b.idx
	}
	active := newScanList[activeItem](solver, len(segs), less)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var hit activeItem
		found := false
		active.Ascend(func(item activeItem) bool {
			if removed[item.idx] {
				return true
			}
			if item.seg.B.X < cur.A.X {
				return true
			}
			if !boundingBoxesOverlap(item.seg, cur) {
				return true
			}
			if splitSegmentPair(item.seg, cur) {
				hit = item
				found = true
				return false
			}
			return true
		})

		if found {
			removed[hit.idx] = true
			active.Delete(hit)
			queue = appendSplitPieces(queue, hit.seg, cur)
			continue
		}

		idx := len(finalized)
		finalized = append(finalized, cur)
		removed = append(removed, false)
		active.Insert(activeItem{idx: idx, seg: cur})
	}

	out := make([]Segment[C], 0, len(finalized))
	for i, seg := range finalized {
		if !removed[i] {
			out = append(out, seg)
		}
	}
	return mergeSegments(out)
}

// boundingBoxesOverlap reports whether the bounding boxes of two segments
// intersect, a cheap prune before exact intersection testing.
func boundingBoxesOverlap[C WindCount[C]](a, b Segment[C]) bool {
	aMinX, aMaxX := minMax32(a.A.X, a.B.X)
	aMinY, aMaxY := minMax32(a.A.Y, a.B.Y)
	bMinX, bMaxX := minMax32(b.A.X, b.B.X)
	bMinY, bMaxY := minMax32(b.A.Y, b.B.Y)
	return aMinX <= bMaxX && bMinX <= aMaxX && aMinY <= bMaxY && bMinY <= aMaxY
}

// splitSegmentPair reports whether a and b cross or touch in a way that
// requires subdivision (a proper interior crossing, or one segment's
// endpoint landing on the other's open interior). Identical segments and
// segments sharing only an endpoint already in common are left alone.
func splitSegmentPair[C WindCount[C]](a, b Segment[C]) bool {
	if a.A == b.A && a.B == b.B {
		return false
	}
	kind, _ := classifyIntersection(a.A, a.B, b.A, b.B)
	return kind != splitNone
}

// classifyIntersection determines how segment p1-p2 relates to segment
// p3-p4 and, for splitCross, the rounded integer crossing point.
func classifyIntersection(p1, p2, p3, p4 Point) (splitKind, Point) {
	d1 := CrossProduct(p3, p4, p1)
	d2 := CrossProduct(p3, p4, p2)
	d3 := CrossProduct(p1, p2, p3)
	d4 := CrossProduct(p1, p2, p4)

	properCross := ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
	if properCross {
		pt, ok := intersectionPoint(p1, p2, p3, p4)
		if ok && pt != p1 && pt != p2 && pt != p3 && pt != p4 {
			return splitCross, pt
		}
	}

	// T-touch: an endpoint of one segment lies in the open interior of the
	// other.
	if d1 == 0 && isStrictlyBetween(p3, p4, p1) {
		return splitTouch, p1
	}
	if d2 == 0 && isStrictlyBetween(p3, p4, p2) {
		return splitTouch, p2
	}
	if d3 == 0 && isStrictlyBetween(p1, p2, p3) {
		return splitTouch, p3
	}
	if d4 == 0 && isStrictlyBetween(p1, p2, p4) {
		return splitTouch, p4
	}
	return splitNone, Point{}
}

// isStrictlyBetween reports whether point lies on segment a-b strictly
// between the two endpoints (excludes the endpoints themselves).
func isStrictlyBetween(a, b, point Point) bool {
	if point == a || point == b {
		return false
	}
	return isPointOnSegment(point, a, b)
}

// intersectionPoint computes the intersection of lines p1-p2 and p3-p4,
// rounding each coordinate to the nearest integer lattice point. The
// parametric ratio between p1 and p2 is built from CrossProduct's exact
// int64 arithmetic rather than an independently reconstructed
// floating-point determinant, so only the final division and position -
// not the crossing geometry itself - are approximated in float64.
func intersectionPoint(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := CrossProduct(p3, p4, p1)
	d2 := CrossProduct(p3, p4, p2)
	denom := d1 - d2
	if denom == 0 {
		return Point{}, false
	}
	t := float64(d1) / float64(denom)
	px := float64(p1.X) + t*float64(p2.X-p1.X)
	py := float64(p1.Y) + t*float64(p2.Y-p1.Y)
	return Point{X: roundToInt32(px), Y: roundToInt32(py)}, true
}

func roundToInt32(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}

// appendSplitPieces subdivides both a and b at their intersection/touch
// point and appends the resulting sub-segments (degenerate zero-length
// pieces dropped) back onto queue for re-processing.
func appendSplitPieces[C WindCount[C]](queue []Segment[C], a, b Segment[C]) []Segment[C] {
	kind, pt := classifyIntersection(a.A, a.B, b.A, b.B)
	if kind == splitNone {
		return append(queue, a, b)
	}
	queue = appendSubdivided(queue, a, pt)
	queue = appendSubdivided(queue, b, pt)
	sortSegments(queue)
	return queue
}

// appendSubdivided splits seg at pt (if pt lies strictly inside it) into
// two sub-segments carrying the same Count, and appends whichever pieces
// are non-degenerate. If pt coincides with one of seg's own endpoints,
// seg is passed through unchanged.
func appendSubdivided[C WindCount[C]](queue []Segment[C], seg Segment[C], pt Point) []Segment[C] {
	if pt == seg.A || pt == seg.B {
		return append(queue, seg)
	}
	if s1, ok := newSegment(seg.A, pt, seg.Count); ok {
		queue = append(queue, s1)
	}
	if s2, ok := newSegment(pt, seg.B, seg.Count); ok {
		queue = append(queue, s2)
	}
	return queue
}
