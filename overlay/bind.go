package overlay

// ==============================================================================
// Hole binder
// ==============================================================================
//
// Groups extracted contours into Shapes (one outer hull plus the holes
// nested directly inside it). A hole's parent hull is found via its
// left-bottom anchor point: the leftmost (then bottommost) vertex of the
// hole, scanned against the hulls whose bounding box could contain it,
// picking the smallest-area hull that actually contains the anchor (the
// innermost candidate, so a hole nested two hulls deep binds to its
// immediate parent and not the outermost ancestor).

// Shape is one output hull together with the holes bound inside it.
type Shape struct {
	Hull  Path
	Holes Paths
}

// bindHoles partitions paths into Shapes. direction indicates which
// winding sign the extractor used for outer hulls (holes carry the
// opposite sign).
func bindHoles(paths Paths, direction Direction, solver SolverType) []Shape {
	hullsPositive := direction == CounterClockwise

	var hullIdx []int
	var holes Paths
	shapes := make([]Shape, 0, len(paths))
	for _, p := range paths {
		if IsPositive(p) == hullsPositive {
			shapes = append(shapes, Shape{Hull: p})
			hullIdx = append(hullIdx, len(shapes)-1)
		} else {
			holes = append(holes, p)
		}
	}
	if len(holes) == 0 || len(shapes) == 0 {
		return shapes
	}

	type hullItem struct {
		shapeIdx int
		bounds   Rect
	}
	less := func(a, b hullItem) bool {
		if a.bounds.Left != b.bounds.Left {
			return a.bounds.Left < b.bounds.Left
		}
		return a.shapeIdx < b.shapeIdx
	}
	active := newScanList[hullItem](solver, len(shapes), less)
	for _, idx := range hullIdx {
		active.Insert(hullItem{shapeIdx: idx, bounds: Bounds(shapes[idx].Hull)})
	}

	for _, hole := range holes {
		anchor := leftBottomAnchor(hole)
		best := -1
		var bestArea float64

		active.Ascend(func(item hullItem) bool {
			if anchor.X > item.bounds.Right {
				return true
			}
			if anchor.X < item.bounds.Left || anchor.Y < item.bounds.Top || anchor.Y > item.bounds.Bottom {
				return true
			}
			if WindingNumber(anchor, shapes[item.shapeIdx].Hull) == 0 {
				return true
			}
			area := abs64(Area(shapes[item.shapeIdx].Hull))
			if best == -1 || area < bestArea {
				best = item.shapeIdx
				bestArea = area
			}
			return true
		})

		if best >= 0 {
			shapes[best].Holes = append(shapes[best].Holes, hole)
		}
		// An orphan hole (no enclosing hull, which should not arise from a
		// well-formed link/filter pass) is dropped rather than surfaced as
		// its own shape.
	}

	return shapes
}

// leftBottomAnchor returns the leftmost vertex of path, breaking ties by
// smallest Y.
func leftBottomAnchor(path Path) Point {
	best := path[0]
	for _, p := range path[1:] {
		if p.Less(best) {
			best = p
		}
	}
	return best
}
