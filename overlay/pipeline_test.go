package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSolveSubdividesCrossingSegments(t *testing.T) {
	// Two segments crossing at (5,5): (0,0)-(10,10) and (0,10)-(10,0).
	segs := []Segment[BooleanCount]{
		mustSegment(t, Point{0, 0}, Point{10, 10}, BooleanCount{Subj: 1}),
		mustSegment(t, Point{0, 10}, Point{10, 0}, BooleanCount{Subj: 1}),
	}

	out := splitSolve(segs, SolverAuto)

	// Every output segment's endpoints must include (5,5) as a shared
	// vertex, and no segment may span the crossing point in its interior.
	var touchesCross int
	for _, s := range out {
		if s.A == (Point{5, 5}) || s.B == (Point{5, 5}) {
			touchesCross++
		}
	}
	assert.Equal(t, 4, touchesCross, "all four half-segments should end at the crossing point")
	assert.Len(t, out, 4)
}

func TestSplitSolveLeavesNonCrossingSegmentsAlone(t *testing.T) {
	segs := []Segment[BooleanCount]{
		mustSegment(t, Point{0, 0}, Point{10, 0}, BooleanCount{Subj: 1}),
		mustSegment(t, Point{0, 5}, Point{10, 5}, BooleanCount{Subj: 1}),
	}
	out := splitSolve(segs, SolverAuto)
	assert.Len(t, out, 2)
}

func TestFillSolveSquareEvenOdd(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	segs := contourToSegments(square, Subject, false)
	split := splitSolve(segs, SolverAuto)
	labels := fillSolve(split, EvenOdd, SolverAuto)

	require.Len(t, labels, 4)
	for _, l := range labels {
		// Every edge of a simple CCW square has fill on exactly one side
		// (the interior) and none on the other.
		subjBits := l.Label & (SubjTop | SubjBottom)
		assert.NotEqual(t, uint8(0), subjBits)
		assert.NotEqual(t, SubjTop|SubjBottom, subjBits)
		assert.Equal(t, uint8(0), l.Label&(ClipTop|ClipBottom))
	}
}

func TestFillRuleFilled(t *testing.T) {
	assert.True(t, EvenOdd.filled(1))
	assert.False(t, EvenOdd.filled(2))
	assert.True(t, NonZero.filled(-3))
	assert.False(t, NonZero.filled(0))
	assert.True(t, Positive.filled(1))
	assert.False(t, Positive.filled(-1))
	assert.True(t, Negative.filled(-1))
	assert.False(t, Negative.filled(1))
}

func TestLinkSolveUnionKeepsOuterBoundaryOnly(t *testing.T) {
	a, b := overlappingSquares()
	segs := append(
		contourToSegments(a, Subject, false),
		contourToSegments(b, Clip, false)...,
	)
	split := splitSolve(segs, SolverAuto)
	labels := fillSolve(split, EvenOdd, SolverAuto)

	g := BuildGraph(labels)
	buf := NewExtractionBuffer()
	paths, err := g.Extract(RuleUnion, buf, CounterClockwise, 0, false, false)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.InDelta(t, 175, abs64(Area(paths[0])), 1e-6)

	// The same Graph, built once from split+fill, can be re-extracted
	// under a different rule without rebuilding.
	paths, err = g.Extract(RuleIntersect, buf, CounterClockwise, 0, false, false)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.InDelta(t, 25, abs64(Area(paths[0])), 1e-6)
}

func TestResultFilledPerRule(t *testing.T) {
	// resultFilled(subjFilled, clipFilled, rule) answers whether a side
	// with that fill pattern is inside the rule's composed region.
	assert.True(t, resultFilled(true, false, RuleSubject))
	assert.False(t, resultFilled(false, true, RuleSubject))

	assert.True(t, resultFilled(false, true, RuleClip))
	assert.False(t, resultFilled(true, false, RuleClip))

	assert.True(t, resultFilled(true, true, RuleIntersect))
	assert.False(t, resultFilled(true, false, RuleIntersect))

	assert.True(t, resultFilled(true, false, RuleUnion))
	assert.True(t, resultFilled(false, true, RuleUnion))
	assert.False(t, resultFilled(false, false, RuleUnion))

	assert.True(t, resultFilled(true, false, RuleDifference))
	assert.False(t, resultFilled(true, true, RuleDifference))
	assert.False(t, resultFilled(false, false, RuleDifference))

	assert.True(t, resultFilled(false, true, RuleXor))
	assert.True(t, resultFilled(true, false, RuleXor))
	assert.False(t, resultFilled(true, true, RuleXor))
	assert.False(t, resultFilled(false, false, RuleXor))
}

func TestNearestVectorPicksClockwiseTurn(t *testing.T) {
	origin := Point{0, 0}
	prev := Point{-10, 0} // incoming direction: +X
	candidates := []Point{{0, 10}, {0, -10}, {10, 0}}

	chosen := nearestVector(prev, origin, candidates)
	assert.Contains(t, candidates, chosen)
	// The smallest clockwise turn from +X is no turn at all: straight on.
	assert.Equal(t, Point{10, 0}, chosen)
}

func TestBuildLinkGraphClassifiesBridgeAndCross(t *testing.T) {
	links := []Link{
		{A: Point{0, 0}, B: Point{1, 0}},
		{A: Point{1, 0}, B: Point{2, 0}},
		{A: Point{1, 0}, B: Point{1, 1}},
	}
	g := buildLinkGraph(links)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, NodeCross, g.nodes[Point{1, 0}].Kind)
	assert.Equal(t, NodeBridge, g.nodes[Point{0, 0}].Kind)
}

func mustSegment(t *testing.T, a, b Point, c BooleanCount) Segment[BooleanCount] {
	t.Helper()
	seg, ok := newSegment(a, b, c)
	require.True(t, ok)
	return seg
}
