package overlay

// ==============================================================================
// Nearest-vector rotation rule
// ==============================================================================
//
// At a Cross node, several outgoing arcs share the vertex the extractor
// just arrived at; the next arc must be picked deterministically so that
// a self-intersecting union of loops decomposes into simple, non-crossing
// output contours. The rule: continue along the arc that turns the least
// clockwise relative to the direction the extractor arrived from -
// equivalently, the first arc met when sweeping clockwise from straight
// ahead (straight on, then gentle right turns, then sharp ones, then left
// turns) - which keeps the composed
// region's interior consistently on one side of travel. Computed without
// trigonometry, using only the integer cross/dot products this package
// already has in geometry.go.

// nearestVector selects, among candidates (outgoing arc endpoints from
// origin), the one that continues most consistently from the direction of
// travel arriving at origin from prev. Candidates must be non-empty.
func nearestVector(prev, origin Point, candidates []Point) Point {
	refDX := int64(origin.X) - int64(prev.X)
	refDY := int64(origin.Y) - int64(prev.Y)

	best := candidates[0]
	for _, c := range candidates[1:] {
		if isMoreClockwise(origin, refDX, refDY, best, c) {
			best = c
		}
	}
	return best
}

// isMoreClockwise reports whether candidate c represents a smaller
// clockwise rotation away from the reference direction (refDX, refDY)
// than candidate best does, when both are measured as the turn taken at
// origin.
func isMoreClockwise(origin Point, refDX, refDY int64, best, c Point) bool {
	bestDX := int64(best.X) - int64(origin.X)
	bestDY := int64(best.Y) - int64(origin.Y)
	cDX := int64(c.X) - int64(origin.X)
	cDY := int64(c.Y) - int64(origin.Y)

	bestHalf := halfPlane(refDX, refDY, bestDX, bestDY)
	cHalf := halfPlane(refDX, refDY, cDX, cDY)
	if bestHalf != cHalf {
		return cHalf < bestHalf
	}

	// Within the same half (both rotating clockwise from ref by <= 180deg,
	// or both >180deg), c is the smaller clockwise rotation exactly when
	// it lies counter-clockwise of best, i.e. when best x c is positive.
	cross := cross2(bestDX, bestDY, cDX, cDY)
	if cross != 0 {
		return cross > 0
	}
	// Collinear with best: prefer whichever continuation is strictly
	// further along (the shorter segment is a degenerate duplicate arc).
	return cDX*cDX+cDY*cDY > bestDX*bestDX+bestDY*bestDY
}

// halfPlane buckets direction (dx, dy) into 0 (clockwise side of ref,
// within the first 180deg) or 1 (the remaining 180deg), relative to ref.
// This gives isMoreClockwise a coarse ordering before the precise
// cross-product tiebreak.
func halfPlane(refDX, refDY, dx, dy int64) int {
	cross := cross2(refDX, refDY, dx, dy)
	switch {
	case cross < 0:
		return 0
	case cross > 0:
		return 1
	default:
		if dx*refDX+dy*refDY > 0 {
			return 0
		}
		return 1
	}
}

func cross2(ax, ay, bx, by int64) int64 {
	return ax*by - ay*bx
}
