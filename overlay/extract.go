package overlay

// ==============================================================================
// Contour extractor
// ==============================================================================
//
// Walks a rule-filtered planar graph's unused arcs into closed output
// contours. Each pass starts from the leftmost (then lowest-Y) point that
// still has an unused outgoing arc - a deterministic seed choice so
// re-running extraction on the same graph always produces contours in the
// same order. At a Bridge node there is only one way to continue; at a
// Cross node the nearest-vector rule (nearestvector.go) picks the
// continuation that decomposes the shared vertex into separate simple
// loops.

// Graph is the precomputed result of running the split and fill solvers
// over a set of accumulated contours: every segment labeled with which
// sides of Subject and Clip it bounds, but not yet filtered to any one
// OverlayRule's boundary. Extract can be called repeatedly on the same
// Graph under different rules without re-running split or fill.
type Graph struct {
	labels []FillLabel
	built  bool
}

// BuildGraph packages labels (the fill solver's output) into a Graph
// ready for repeated Extract calls, one per OverlayRule.
func BuildGraph(labels []FillLabel) *Graph {
	return &Graph{labels: labels, built: true}
}

// Extract filters g's fill labels down to rule's boundary Links and walks
// the resulting planar graph into output contours. buf may be nil, in
// which case a fresh ExtractionBuffer is used.
func (g *Graph) Extract(rule OverlayRule, buf *ExtractionBuffer, direction Direction, minOutputArea float64, outputCollinear, ocg bool) (Paths, error) {
	if !g.built {
		return nil, ErrGraphNotBuilt
	}
	if err := validateOverlayRule(rule); err != nil {
		return nil, err
	}
	links := linkSolve(g.labels, rule)
	return buildLinkGraph(links).extract(buf, direction, minOutputArea, outputCollinear, ocg)
}

// extract walks g into a set of closed output contours oriented per
// direction, dropping any contour whose area is smaller in magnitude than
// minOutputArea, and collapsing collinear points unless outputCollinear
// is set. buf may be nil, in which case a fresh ExtractionBuffer is used.
func (g *linkGraph) extract(buf *ExtractionBuffer, direction Direction, minOutputArea float64, outputCollinear, ocg bool) (Paths, error) {
	if buf == nil {
		buf = NewExtractionBuffer()
	}
	buf.reset()

	var result Paths
	for {
		start, ok := g.nextSeed(buf)
		if !ok {
			break
		}
		traced := g.traceFrom(buf, start)

		var candidates Paths
		if ocg {
			candidates = decomposeSelfIntersecting(traced)
		} else {
			candidates = Paths{traced}
		}

		for _, path := range candidates {
			if !outputCollinear {
				path = dropCollinearClosed(path)
			}
			if len(path) < 3 {
				continue
			}
			area := Area(path)
			if abs64(area) < minOutputArea {
				continue
			}
			// The link/filter stage orients every arc with the composed
			// region's interior to its left, so a hull always traces out
			// naturally positive (CCW) and a hole always traces out
			// naturally negative (CW), independent of direction. Classify
			// by that natural sign before normalizing to direction, so a
			// hole never gets normalized onto the same sign as a hull.
			isHull := area > 0
			wantPositive := isHull == (direction == CounterClockwise)
			if IsPositive(path) != wantPositive {
				path = Reverse(path)
			}
			result = append(result, path)
		}
	}
	return result, nil
}

// nextSeed returns the leftmost, then lowest-Y, point (the smallest by
// Point.Less) that still has at least one outgoing arc unconsumed in buf.
func (g *linkGraph) nextSeed(buf *ExtractionBuffer) (Point, bool) {
	var best Point
	found := false
	for _, p := range g.order {
		n := g.nodes[p]
		hasUnused := false
		for _, a := range n.Out {
			if !buf.visited[arcKey{From: p, To: a.To}] {
				hasUnused = true
				break
			}
		}
		if !hasUnused {
			continue
		}
		if !found || p.Less(best) {
			best = p
			found = true
		}
	}
	return best, found
}

// traceFrom walks a single closed contour starting at start, marking each
// consumed arc in buf.visited as it goes. The returned Path's backing
// array is carved out of buf.points, which grows across the whole Extract
// call rather than being reallocated per contour.
func (g *linkGraph) traceFrom(buf *ExtractionBuffer, start Point) Path {
	base := len(buf.points)
	buf.points = append(buf.points, start)
	current := start
	prev := start // first step has no real incoming direction; see firstStep below.
	firstStep := true

	for {
		n := g.nodes[current]
		var next Point
		found := false
		switch {
		case len(n.Out) == 0:
			return buf.points[base:len(buf.points):len(buf.points)]
		case n.Kind == NodeBridge || countUnused(n, buf, current) == 1:
			for _, a := range n.Out {
				if !buf.visited[arcKey{From: current, To: a.To}] {
					next, found = a.To, true
					break
				}
			}
		case firstStep:
			// No meaningful incoming direction yet: take the first unused
			// arc in the node's pre-sorted angular order.
			for _, a := range n.Out {
				if !buf.visited[arcKey{From: current, To: a.To}] {
					next, found = a.To, true
					break
				}
			}
		default:
			candidates := make([]Point, 0, len(n.Out))
			for _, a := range n.Out {
				if !buf.visited[arcKey{From: current, To: a.To}] {
					candidates = append(candidates, a.To)
				}
			}
			next, found = nearestVector(prev, current, candidates), true
		}

		end := len(buf.points)
		if !found {
			return buf.points[base:end:end]
		}
		buf.visited[arcKey{From: current, To: next}] = true
		firstStep = false

		if next == start {
			return buf.points[base:end:end]
		}
		buf.points = append(buf.points, next)
		prev = current
		current = next
	}
}

func countUnused(n *Node, buf *ExtractionBuffer, at Point) int {
	c := 0
	for _, a := range n.Out {
		if !buf.visited[arcKey{From: at, To: a.To}] {
			c++
		}
	}
	return c
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
