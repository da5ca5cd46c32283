package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlappingSquares() (Path, Path) {
	a := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := Path{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	return a, b
}

func totalArea(shapes []Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += abs64(Area(s.Hull))
		for _, h := range s.Holes {
			total -= abs64(Area(h))
		}
	}
	return total
}

func newTestOverlay(t *testing.T, rule OverlayRule, solver SolverType) *Overlay {
	t.Helper()
	opts := DefaultOptions()
	opts.OverlayRule = rule
	opts.Solver = solver
	ov, err := New(opts)
	require.NoError(t, err)
	return ov
}

func TestOverlayUnionArea(t *testing.T) {
	a, b := overlappingSquares()
	ov := newTestOverlay(t, RuleUnion, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	shapes, err := ov.Overlay()
	require.NoError(t, err)
	require.NotEmpty(t, shapes)

	// Two 10x10 squares overlapping in a 5x5 corner: union area is
	// 100 + 100 - 25 = 175.
	assert.InDelta(t, 175, totalArea(shapes), 1e-6)
}

func TestOverlayIntersectArea(t *testing.T) {
	a, b := overlappingSquares()
	ov := newTestOverlay(t, RuleIntersect, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	shapes, err := ov.Overlay()
	require.NoError(t, err)
	require.NotEmpty(t, shapes)
	assert.InDelta(t, 25, totalArea(shapes), 1e-6)
}

func TestOverlayDifferenceArea(t *testing.T) {
	a, b := overlappingSquares()
	ov := newTestOverlay(t, RuleDifference, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	shapes, err := ov.Overlay()
	require.NoError(t, err)
	assert.InDelta(t, 75, totalArea(shapes), 1e-6)
}

func TestOverlayXorArea(t *testing.T) {
	a, b := overlappingSquares()
	ov := newTestOverlay(t, RuleXor, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	shapes, err := ov.Overlay()
	require.NoError(t, err)
	// Union minus intersection: 175 - 25 = 150.
	assert.InDelta(t, 150, totalArea(shapes), 1e-6)
}

func TestOverlayListAndTreeSolversAgree(t *testing.T) {
	a, b := overlappingSquares()

	ovList := newTestOverlay(t, RuleUnion, SolverList)
	ovList.AddContour(Subject, a)
	ovList.AddContour(Clip, b)
	listShapes, err := ovList.Overlay()
	require.NoError(t, err)

	ovTree := newTestOverlay(t, RuleUnion, SolverTree)
	ovTree.AddContour(Subject, a)
	ovTree.AddContour(Clip, b)
	treeShapes, err := ovTree.Overlay()
	require.NoError(t, err)

	assert.InDelta(t, totalArea(listShapes), totalArea(treeShapes), 1e-6)
}

func TestOverlayDisjointShapesBothKept(t *testing.T) {
	a := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := Path{{20, 20}, {30, 20}, {30, 30}, {20, 30}}

	ov := newTestOverlay(t, RuleUnion, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	shapes, err := ov.Overlay()
	require.NoError(t, err)
	assert.Len(t, shapes, 2)
}

func TestOverlayHoleBinding(t *testing.T) {
	outer := Path{{0, 0}, {20, 0}, {20, 20}, {0, 20}}
	hole := Path{{5, 5}, {5, 15}, {15, 15}, {15, 5}} // opposite winding from outer

	ov := newTestOverlay(t, RuleDifference, SolverAuto)
	ov.AddContour(Subject, outer)
	ov.AddContour(Clip, Reverse(hole))

	shapes, err := ov.Overlay()
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.InDelta(t, 300, abs64(Area(shapes[0].Hull))-sumHoleAreas(shapes[0]), 1e-6)
}

func sumHoleAreas(s Shape) float64 {
	var total float64
	for _, h := range s.Holes {
		total += abs64(Area(h))
	}
	return total
}

func TestPredicateIntersectsAndDisjoint(t *testing.T) {
	a, b := overlappingSquares()
	ov := newTestOverlay(t, RuleUnion, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	intersects, err := ov.Predicate(PredIntersects)
	require.NoError(t, err)
	assert.True(t, intersects)

	disjoint, err := ov.Predicate(PredDisjoint)
	require.NoError(t, err)
	assert.False(t, disjoint)
}

func TestPredicateDisjointShapes(t *testing.T) {
	a := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := Path{{100, 100}, {110, 100}, {110, 110}, {100, 110}}
	ov := newTestOverlay(t, RuleUnion, SolverAuto)
	ov.AddContour(Subject, a)
	ov.AddContour(Clip, b)

	disjoint, err := ov.Predicate(PredDisjoint)
	require.NoError(t, err)
	assert.True(t, disjoint)
}

func TestSliceByPartitionsSquare(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	cutter := Path{{-1, 5}, {11, 5}}

	opts := DefaultOptions()
	shapes, err := SliceBy(Paths{square}, cutter, opts)
	require.NoError(t, err)
	assert.Len(t, shapes, 2)
	assert.InDelta(t, 100, totalArea(shapes), 1e-6)
}

func TestClipByKeepsOneSide(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	cutter := Path{{-1, 5}, {11, 5}}

	opts := DefaultOptions()
	top, err := ClipBy(Paths{square}, cutter, ClipRule{}, opts)
	require.NoError(t, err)
	require.Len(t, top, 1)

	bottom, err := ClipBy(Paths{square}, cutter, ClipRule{Invert: true}, opts)
	require.NoError(t, err)
	require.Len(t, bottom, 1)

	assert.InDelta(t, 50, abs64(Area(top[0].Hull)), 1e-6)
	assert.InDelta(t, 50, abs64(Area(bottom[0].Hull)), 1e-6)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.FillRule = FillRule(99)
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrInvalidFillRule)
}
