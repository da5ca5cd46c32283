package overlay

import "errors"

// Sentinel errors. The core is total over well-formed geometric input (see
// package doc); these are the programmer-error cases that are detected
// rather than silently normalized away.
var (
	// ErrInvalidFillRule is returned when a FillRule value is out of range.
	ErrInvalidFillRule = errors.New("overlay: invalid fill rule")

	// ErrInvalidOverlayRule is returned when an OverlayRule value is out of range.
	ErrInvalidOverlayRule = errors.New("overlay: invalid overlay rule")

	// ErrInvalidSolverType is returned when a SolverType value is out of range.
	ErrInvalidSolverType = errors.New("overlay: invalid solver type")

	// ErrInvalidPredicateOp is returned when a PredicateOp value is out of range.
	ErrInvalidPredicateOp = errors.New("overlay: invalid predicate operation")

	// ErrEmptyPath is returned by SliceBy and ClipBy when the cutter
	// polyline has fewer than two points.
	ErrEmptyPath = errors.New("overlay: empty path")

	// ErrGraphNotBuilt is returned by (*Graph).Extract when called on a
	// Graph value that was never constructed by BuildGraph.
	ErrGraphNotBuilt = errors.New("overlay: graph has not been built")
)
