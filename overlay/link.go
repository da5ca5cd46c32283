package overlay

// ==============================================================================
// Link / filter
// ==============================================================================
//
// Converts fill-labeled segments into oriented Links: segments that
// straddle the result boundary (one side belongs to the composed shape,
// the other doesn't) under the active OverlayRule, oriented so the result
// interior lies to the left of travel from Link.A to Link.B. Segments
// whose both sides agree (both in or both out) are interior/exterior
// noise and dropped, since an edge with identical fill on both sides
// never bounds anything under any rule.

// Link is an oriented boundary edge produced by the link/filter stage:
// the composed shape's interior lies to the left of A->B.
type Link struct {
	A, B Point
}

// resultFilled applies rule to a (subject-filled, clip-filled) pair,
// deciding whether an edge with that fill pattern bounds the rule's
// composed region.
func resultFilled(subjFilled, clipFilled bool, rule OverlayRule) bool {
	switch rule {
	case RuleSubject:
		return subjFilled
	case RuleClip:
		return clipFilled
	case RuleIntersect:
		return subjFilled && clipFilled
	case RuleUnion:
		return subjFilled || clipFilled
	case RuleDifference:
		return subjFilled && !clipFilled
	case RuleInverseDifference:
		return clipFilled && !subjFilled
	case RuleXor:
		return subjFilled != clipFilled
	default:
		return false
	}
}

// linkSolve filters labels down to the Links bounding the rule's composed
// region.
func linkSolve(labels []FillLabel, rule OverlayRule) []Link {
	links := make([]Link, 0, len(labels))
	for _, fl := range labels {
		bottomSubj := fl.Label&SubjBottom != 0
		topSubj := fl.Label&SubjTop != 0
		bottomClip := fl.Label&ClipBottom != 0
		topClip := fl.Label&ClipTop != 0

		bottomFilled := resultFilled(bottomSubj, bottomClip, rule)
		topFilled := resultFilled(topSubj, topClip, rule)
		if bottomFilled == topFilled {
			continue // both sides agree: not a boundary edge of the result
		}

		if topFilled {
			links = append(links, Link{A: fl.Segment.A, B: fl.Segment.B})
		} else {
			links = append(links, Link{A: fl.Segment.B, B: fl.Segment.A})
		}
	}
	return links
}
