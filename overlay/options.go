package overlay

// Options aggregates every Configure-stage knob: which fill and overlay
// rule to apply, how output contours are oriented and filtered, and
// which solver backend runs the split/fill/bind sweeps.
type Options struct {
	FillRule    FillRule
	OverlayRule OverlayRule

	// OutputDirection selects the winding direction of output hulls
	// (holes always carry the opposite winding).
	OutputDirection Direction

	// MinOutputArea drops any extracted contour whose absolute area is
	// smaller than this threshold. Zero keeps every non-degenerate
	// contour.
	MinOutputArea float64

	// PreserveInputCollinear keeps collinear runs in the input contours
	// instead of collapsing them to a single vertex before splitting.
	PreserveInputCollinear bool

	// PreserveOutputCollinear keeps collinear runs in extracted output
	// contours instead of collapsing them after extraction.
	PreserveOutputCollinear bool

	// OCG enables self-intersecting trace decomposition in the extractor
	// (extract_ocg.go), splitting a walk that revisits a vertex into its
	// constituent simple loops.
	OCG bool

	// Solver selects the scan-list backend used by the split solver, fill
	// solver, and hole binder.
	Solver SolverType
}

// DefaultOptions returns the engine's default configuration: even-odd
// fill, union overlay, counter-clockwise output, no area filtering,
// collinear points collapsed on both input and output, OCG off, and an
// automatically chosen solver.
func DefaultOptions() Options {
	return Options{
		FillRule:        EvenOdd,
		OverlayRule:     RuleUnion,
		OutputDirection: CounterClockwise,
		Solver:          SolverAuto,
	}
}

// validate checks that every enum field of o holds a defined value.
func (o Options) validate() error {
	if err := validateFillRule(o.FillRule); err != nil {
		return err
	}
	if err := validateOverlayRule(o.OverlayRule); err != nil {
		return err
	}
	if err := validateSolverType(o.Solver); err != nil {
		return err
	}
	return nil
}
