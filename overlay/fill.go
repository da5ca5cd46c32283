package overlay

// ==============================================================================
// Fill solver
// ==============================================================================
//
// Assigns each split segment a 4-bit side-fill label: whether the area
// immediately above and immediately below the segment is "inside" the
// subject and the clip shape, under the active FillRule. This is the
// sweep-line heart of the engine: a y-ordered active-segment sweep that
// tracks independent subject and clip winding sums and derives each
// segment's 4-bit label from the running count before and after it joins
// the sweep.

// Fill label bits.
const (
	SubjTop    uint8 = 1
	SubjBottom uint8 = 2
	ClipTop    uint8 = 4
	ClipBottom uint8 = 8
)

// FillLabel pairs a split segment with its computed 4-bit side-fill label.
type FillLabel struct {
	Segment Segment[BooleanCount]
	Label   uint8
}

// fillSolve sweeps segs (assumed already split into a non-crossing edge
// set) left to right, maintaining a y-ordered active list so each
// segment's "winding below" can be read off as the running sum of the
// active segments beneath it. The result restates fillRule's filled/empty
// classification as four bits per segment.
func fillSolve(segs []Segment[BooleanCount], fillRule FillRule, solver SolverType) []FillLabel {
	if len(segs) == 0 {
		return nil
	}

	queue := make([]Segment[BooleanCount], len(segs))
	copy(queue, segs)
	sortSegments(queue)

	sweepX := queue[0].A.X

	type activeItem struct {
		idx        int
		seg        Segment[BooleanCount]
		belowSubj  int32
		belowClip  int32
	}
	less := func(a, b activeItem) bool {
		ay := yAt(a.seg, sweepX)
		by := yAt(b.seg, sweepX)
		if ay != by {
			return ay < by
		}
		return a.idx < b.idx
	}
	active := newScanList[activeItem](solver, len(segs), less)

	labels := make([]uint8, len(queue))

	// Events: a segment becomes active at its A.X and is retired at its B.X.
	// Segments are processed in A.X order; retirement is handled lazily by
	// skipping items whose B.X <= sweepX when re-scanning (the active list
	// is small in any one sweep column relative to the full input, so a
	// linear prune per column is acceptable).
	activeItems := make([]activeItem, 0, len(segs))

	for i, seg := range queue {
		sweepX = seg.A.X

		// Retire segments whose span has fully passed.
		for j := 0; j < len(activeItems); {
			if activeItems[j].seg.B.X <= sweepX && activeItems[j].seg.B.X < seg.A.X {
				active.Delete(activeItems[j])
				activeItems = append(activeItems[:j], activeItems[j+1:]...)
				continue
			}
			j++
		}

		var belowSubj, belowClip int32
		active.Ascend(func(item activeItem) bool {
			if yAt(item.seg, sweepX) < yAt(seg, sweepX) {
				belowSubj += item.seg.Count.Subj
				belowClip += item.seg.Count.Clip
			}
			return true
		})

		item := activeItem{idx: i, seg: seg, belowSubj: belowSubj, belowClip: belowClip}
		active.Insert(item)
		activeItems = append(activeItems, item)

		aboveSubj := belowSubj + seg.Count.Subj
		aboveClip := belowClip + seg.Count.Clip

		var label uint8
		if fillRule.filled(belowSubj) {
			label |= SubjBottom
		}
		if fillRule.filled(aboveSubj) {
			label |= SubjTop
		}
		if fillRule.filled(belowClip) {
			label |= ClipBottom
		}
		if fillRule.filled(aboveClip) {
			label |= ClipTop
		}
		labels[i] = label
	}

	out := make([]FillLabel, len(queue))
	for i, seg := range queue {
		out[i] = FillLabel{Segment: seg, Label: labels[i]}
	}
	return out
}

// filled applies r to a raw winding count.
func (r FillRule) filled(wind int32) bool {
	switch r {
	case EvenOdd:
		return wind&1 != 0
	case NonZero:
		return wind != 0
	case Positive:
		return wind > 0
	case Negative:
		return wind < 0
	default:
		return false
	}
}

// yAt evaluates the line through seg at the vertical line x = atX, clamped
// to seg's own x-range endpoints for x values outside its domain (which
// only occurs transiently during active-list maintenance). Vertical
// segments (seg.A.X == seg.B.X) return their lower endpoint's Y.
func yAt(seg Segment[BooleanCount], atX int32) float64 {
	if seg.A.X == seg.B.X {
		return float64(min32(seg.A.Y, seg.B.Y))
	}
	if atX <= seg.A.X {
		return float64(seg.A.Y)
	}
	if atX >= seg.B.X {
		return float64(seg.B.Y)
	}
	t := float64(atX-seg.A.X) / float64(seg.B.X-seg.A.X)
	return float64(seg.A.Y) + t*float64(seg.B.Y-seg.A.Y)
}
