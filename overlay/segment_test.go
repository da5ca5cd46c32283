package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSegmentCanonicalizes(t *testing.T) {
	seg, ok := newSegment(Point{10, 0}, Point{0, 0}, BooleanCount{Subj: 1})
	assert.True(t, ok)
	assert.Equal(t, Point{0, 0}, seg.A)
	assert.Equal(t, Point{10, 0}, seg.B)
	assert.Equal(t, BooleanCount{Subj: -1}, seg.Count)
}

func TestNewSegmentRejectsDegenerate(t *testing.T) {
	_, ok := newSegment(Point{1, 1}, Point{1, 1}, BooleanCount{Subj: 1})
	assert.False(t, ok)
}

func TestMergeSegmentsCancelsOpposingCounts(t *testing.T) {
	segs := []Segment[BooleanCount]{
		{A: Point{0, 0}, B: Point{10, 0}, Count: BooleanCount{Subj: 1}},
		{A: Point{0, 0}, B: Point{10, 0}, Count: BooleanCount{Subj: -1}},
	}
	merged := mergeSegments(segs)
	assert.Empty(t, merged)
}

func TestMergeSegmentsSumsSameDirection(t *testing.T) {
	segs := []Segment[BooleanCount]{
		{A: Point{0, 0}, B: Point{10, 0}, Count: BooleanCount{Subj: 1}},
		{A: Point{0, 0}, B: Point{10, 0}, Count: BooleanCount{Subj: 1}},
	}
	merged := mergeSegments(segs)
	assert.Len(t, merged, 1)
	assert.Equal(t, int32(2), merged[0].Count.Subj)
}

func TestContourToSegmentsClosesLoop(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	segs := contourToSegments(square, Subject, true)
	assert.Len(t, segs, 4)

	var totalSubj int32
	for _, s := range segs {
		totalSubj += s.Count.Subj
	}
	// Canonicalizing each edge independently negates count for edges whose
	// raw direction runs "backwards" lexicographically - the sum is not
	// meaningful on its own, but every edge must carry a nonzero count.
	for _, s := range segs {
		assert.NotZero(t, s.Count.Subj)
	}
}

func TestContourToSegmentsDropsCollinear(t *testing.T) {
	// A square with a redundant collinear midpoint on the bottom edge.
	square := Path{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
	segs := contourToSegments(square, Subject, false)
	assert.Len(t, segs, 4)
}

func TestStringToSegmentsDirectionMask(t *testing.T) {
	line := Path{{10, 0}, {0, 0}}
	segs := stringToSegments(line, true)
	assert.Len(t, segs, 1)
	assert.Equal(t, ClipBackward, segs[0].Count.Clip)
}
