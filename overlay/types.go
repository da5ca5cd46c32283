package overlay

// ==============================================================================
// Core Types
// ==============================================================================

// Point is an integer 2D coordinate. Ordering is lexicographic: X first,
// then Y. Cross and dot products promote to signed 64-bit intermediates.
type Point struct {
	X, Y int32
}

// Less reports whether p is lexicographically before q (X then Y).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Path is a sequence of points forming a contour. Closure is implicit: the
// edge from the last point back to the first is always inferred.
type Path []Point

// Paths is a collection of Path values.
type Paths []Path

// Role distinguishes which input set a contour belongs to.
type Role uint8

const (
	Subject Role = iota
	Clip
)

// FillRule determines which winding counts are considered "filled".
type FillRule uint8

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "FillRule(invalid)"
	}
}

// OverlayRule selects the Boolean composition computed by the link/filter
// stage and the extractor.
type OverlayRule uint8

const (
	RuleSubject OverlayRule = iota
	RuleClip
	RuleIntersect
	RuleUnion
	RuleDifference
	RuleInverseDifference
	RuleXor
)

func (r OverlayRule) String() string {
	switch r {
	case RuleSubject:
		return "Subject"
	case RuleClip:
		return "Clip"
	case RuleIntersect:
		return "Intersect"
	case RuleUnion:
		return "Union"
	case RuleDifference:
		return "Difference"
	case RuleInverseDifference:
		return "InverseDifference"
	case RuleXor:
		return "Xor"
	default:
		return "OverlayRule(invalid)"
	}
}

// Direction is the orientation convention applied to output contours.
type Direction uint8

const (
	CounterClockwise Direction = iota
	Clockwise
)

// SolverType selects the scan-list implementation used by the split solver,
// fill solver, and hole binder.
type SolverType uint8

const (
	// SolverAuto picks List or Tree by input size (see autoSolverThreshold).
	SolverAuto SolverType = iota
	// SolverList is a sorted-slice scan, best for small inputs.
	SolverList
	// SolverTree is a binary-search-tree scan for large inputs; the tree
	// is not rebalanced (see treeScanList).
	SolverTree
	// SolverFrag selects the same sorted-slice scan as SolverList.
	SolverFrag
)

// PredicateOp selects a spatial-relationship query run in early-exit mode
// by the fill solver (see predicate.go).
type PredicateOp uint8

const (
	PredIntersects PredicateOp = iota
	PredInteriorsIntersect
	PredTouches
	PredWithin
	PredDisjoint
	PredCovers
)

// ClipRule configures the string/slice ClipBy operation.
type ClipRule struct {
	Invert           bool
	BoundaryIncluded bool
}
