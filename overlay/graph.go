package overlay

import "sort"

// ==============================================================================
// Planar graph
// ==============================================================================
//
// Assembles one rule's filtered Links into a point-indexed adjacency
// structure ready for contour extraction. Every point with fewer than two
// outgoing Links is a Bridge (a pass-through on some output contour);
// every point with two or more outgoing Links is a Cross node, where
// extraction must choose among several continuations using the
// nearest-vector rule (nearestvector.go). Built fresh inside each
// (*Graph).Extract call, since different OverlayRules filter the shared
// fill labels down to different Links.

// NodeKind classifies a graph vertex by how many Links leave it.
type NodeKind uint8

const (
	// NodeBridge is a vertex with at most one outgoing Link: extraction
	// simply continues through it.
	NodeBridge NodeKind = iota
	// NodeCross is a vertex with two or more outgoing Links: extraction
	// must pick a continuation via the nearest-vector rotation rule.
	NodeCross
)

// Node is one vertex of the assembled planar graph.
type Node struct {
	Point Point
	Kind  NodeKind
	// Out holds, for each outgoing Link from Point, the Link's other
	// endpoint. Consumption during extraction is tracked by the caller's
	// ExtractionBuffer, not here, so the same linkGraph could in principle
	// be walked more than once without rebuilding it.
	Out []arcState
}

type arcState struct {
	To Point
}

// linkGraph is the planar-subdivision adjacency structure built from one
// rule's filtered Links, ready for contour extraction.
type linkGraph struct {
	nodes map[Point]*Node
	order []Point // insertion order, for deterministic leftmost-then-lowest-Y seed scans
}

// buildLinkGraph assembles links into a linkGraph. Each Link contributes
// exactly one outgoing arc at its A endpoint, since Links are already
// oriented with the result interior to the left of travel.
func buildLinkGraph(links []Link) *linkGraph {
	g := &linkGraph{nodes: make(map[Point]*Node, len(links))}
	for _, l := range links {
		g.nodeFor(l.A)
		g.nodeFor(l.B)
		n := g.nodes[l.A]
		n.Out = append(n.Out, arcState{To: l.B})
	}
	for _, p := range g.order {
		n := g.nodes[p]
		if len(n.Out) >= 2 {
			n.Kind = NodeCross
		} else {
			n.Kind = NodeBridge
		}
		// Sort outgoing arcs by angle for deterministic nearest-vector scans
		// (nearestvector.go consults this order directly at Cross nodes).
		sort.Slice(n.Out, func(i, j int) bool {
			return arcAngleLess(p, n.Out[i].To, n.Out[j].To)
		})
	}
	return g
}

func (g *linkGraph) nodeFor(p Point) *Node {
	n, ok := g.nodes[p]
	if !ok {
		n = &Node{Point: p}
		g.nodes[p] = n
		g.order = append(g.order, p)
	}
	return n
}

// NodeCount returns the number of distinct vertices in the graph.
func (g *linkGraph) NodeCount() int {
	return len(g.nodes)
}

// arcAngleLess orders two arcs leaving origin by polar angle, used only to
// give Cross node fan-out a stable starting order before nearest-vector
// selection narrows it at traversal time.
func arcAngleLess(origin, a, b Point) bool {
	qa := quadrant(origin, a)
	qb := quadrant(origin, b)
	if qa != qb {
		return qa < qb
	}
	return CrossProduct(origin, a, b) > 0
}

// quadrant buckets the direction origin->p into one of four quadrants for
// a coarse angular pre-sort (0: +x/+y octant pair ... 3), consistent with
// the nearest-vector rule's own origin-relative comparisons.
func quadrant(origin, p Point) int {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	switch {
	case dx >= 0 && dy >= 0:
		return 0
	case dx < 0 && dy >= 0:
		return 1
	case dx < 0 && dy < 0:
		return 2
	default:
		return 3
	}
}
