package overlay

// ==============================================================================
// Predicate mode
// ==============================================================================
//
// Answers a single spatial-relationship question (Intersects, Touches,
// Within, ...) without materializing the fill solver's full label set or
// running link/filter and extraction: the same y-ordered active sweep as
// fill.go, but the loop returns the moment the answer is decided rather
// than building the whole result.

// evaluatePredicate runs the early-exit sweep for op over subj and clip
// segment sets (already converted from Paths, not yet split against each
// other) under fillRule.
func evaluatePredicate(subj, clip []Segment[BooleanCount], op PredicateOp, fillRule FillRule, solver SolverType) bool {
	all := make([]Segment[BooleanCount], 0, len(subj)+len(clip))
	all = append(all, subj...)
	all = append(all, clip...)
	split := splitSolve(all, solver)
	if len(split) == 0 {
		return op == PredDisjoint
	}

	sortSegments(split)
	sweepX := split[0].A.X

	type activeItem struct {
		idx int
		seg Segment[BooleanCount]
	}
	less := func(a, b activeItem) bool {
		ay := yAt(a.seg, sweepX)
		by := yAt(b.seg, sweepX)
		if ay != by {
			return ay < by
		}
		return a.idx < b.idx
	}
	active := newScanList[activeItem](solver, len(split), less)
	activeItems := make([]activeItem, 0, len(split))

	sawBothFilled := false
	sawBoundaryTouch := false
	sawSubjOutsideClip := false
	sawClipOutsideSubj := false
	sawAnyFill := false

	for i, seg := range split {
		sweepX = seg.A.X

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
		aboveSubj := belowSubj + seg.Count.Subj
		aboveClip := belowClip + seg.Count.Clip

		subjFilled := fillRule.filled(belowSubj) || fillRule.filled(aboveSubj)
		clipFilled := fillRule.filled(belowClip) || fillRule.filled(aboveClip)

		if subjFilled && clipFilled {
			sawBothFilled = true
		}
		if subjFilled || clipFilled {
			sawAnyFill = true
		}
		if seg.Count.Subj != 0 && seg.Count.Clip != 0 {
			sawBoundaryTouch = true
		}
		if subjFilled && !clipFilled {
			sawClipOutsideSubj = true
		}
		if clipFilled && !subjFilled {
			sawSubjOutsideClip = true
		}

		switch op {
		case PredIntersects:
			if sawBothFilled || sawBoundaryTouch {
				return true
			}
		case PredInteriorsIntersect:
			if sawBothFilled {
				return true
			}
		case PredTouches:
			if sawBothFilled {
				return false
			}
		case PredCovers:
			if sawSubjOutsideClip {
				return false
			}
		case PredWithin:
			if sawClipOutsideSubj {
				return false
			}
		case PredDisjoint:
			if sawBothFilled || sawBoundaryTouch {
				return false
			}
		}

		item := activeItem{idx: i, seg: seg}
		active.Insert(item)
		activeItems = append(activeItems, item)
	}

	switch op {
	case PredIntersects:
		return false
	case PredInteriorsIntersect:
		return false
	case PredTouches:
		return sawBoundaryTouch
	case PredCovers:
		return sawAnyFill
	case PredWithin:
		return sawAnyFill
	case PredDisjoint:
		return true
	default:
		return false
	}
}
