package overlay

// ==============================================================================
// Orchestration
// ==============================================================================
//
// Overlay is the public entry point: accumulate subject and clip
// contours, then run the full split -> fill -> link -> graph -> extract
// -> bind pipeline, run a single early-exit predicate, or run
// string/slice mode.
type Overlay struct {
	subject Paths
	clip    Paths
	opts    Options
}

// New creates an Overlay configured by opts. Returns an error if opts
// holds an undefined enum value.
func New(opts Options) (*Overlay, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Overlay{opts: opts}, nil
}

// AddContour appends a single contour under role.
func (o *Overlay) AddContour(role Role, path Path) {
	o.AddContours(role, Paths{path})
}

// AddContours appends multiple contours under role.
func (o *Overlay) AddContours(role Role, paths Paths) {
	if role == Subject {
		o.subject = append(o.subject, paths...)
	} else {
		o.clip = append(o.clip, paths...)
	}
}

// AddShape appends a shape's hull and holes under role, as independent
// contours (holes carry the opposite winding from the hull, which the
// fill solver will reconstruct as nested winding automatically).
func (o *Overlay) AddShape(role Role, shape Shape) {
	o.AddContour(role, shape.Hull)
	o.AddContours(role, shape.Holes)
}

// AddShapes appends multiple shapes under role.
func (o *Overlay) AddShapes(role Role, shapes []Shape) {
	for _, s := range shapes {
		o.AddShape(role, s)
	}
}

// segments converts the accumulated subject and clip contours into the
// combined canonical segment set the split solver consumes.
func (o *Overlay) segments() []Segment[BooleanCount] {
	segs := make([]Segment[BooleanCount], 0, len(o.subject)+len(o.clip))
	for _, p := range o.subject {
		segs = append(segs, contourToSegments(p, Subject, o.opts.PreserveInputCollinear)...)
	}
	for _, p := range o.clip {
		segs = append(segs, contourToSegments(p, Clip, o.opts.PreserveInputCollinear)...)
	}
	return segs
}

// BuildGraph runs split and fill over the accumulated contours, returning
// the fill-labeled Graph ready for Extract. Exposed separately from
// Overlay so callers can reuse the same split+fill pass across multiple
// Extract calls under different OverlayRules, rather than re-running
// split and fill once per rule.
func (o *Overlay) BuildGraph() (*Graph, error) {
	segs := o.segments()
	debugLogStage("split", len(segs))
	split := splitSolve(segs, o.opts.Solver)
	debugLogStage("fill", len(split))
	labels := fillSolve(split, o.opts.FillRule, o.opts.Solver)
	debugLog("graph built from %d fill-labeled segments", len(labels))
	return BuildGraph(labels), nil
}

// Overlay runs the full pipeline and returns the composed shapes.
func (o *Overlay) Overlay() ([]Shape, error) {
	g, err := o.BuildGraph()
	if err != nil {
		return nil, err
	}
	paths, err := g.Extract(o.opts.OverlayRule, nil, o.opts.OutputDirection, o.opts.MinOutputArea, o.opts.PreserveOutputCollinear, o.opts.OCG)
	if err != nil {
		return nil, err
	}
	return bindHoles(paths, o.opts.OutputDirection, o.opts.Solver), nil
}

// Predicate answers a single spatial-relationship question about the
// accumulated subject and clip contours without building the full graph.
func (o *Overlay) Predicate(op PredicateOp) (bool, error) {
	if err := validatePredicateOp(op); err != nil {
		return false, err
	}
	var subjSegs, clipSegs []Segment[BooleanCount]
	for _, p := range o.subject {
		subjSegs = append(subjSegs, contourToSegments(p, Subject, o.opts.PreserveInputCollinear)...)
	}
	for _, p := range o.clip {
		clipSegs = append(clipSegs, contourToSegments(p, Clip, o.opts.PreserveInputCollinear)...)
	}
	return evaluatePredicate(subjSegs, clipSegs, op, o.opts.FillRule, o.opts.Solver), nil
}

// SliceBy partitions the accumulated subject contours by cutter and
// returns every daughter shape the cut produces. Clip-role contours, if
// any were added, are ignored by string mode.
func (o *Overlay) SliceBy(cutter Path) ([]Shape, error) {
	return SliceBy(o.subject, cutter, o.opts)
}

// ClipBy partitions the accumulated subject contours by cutter and keeps
// only the shapes selected by rule.
func (o *Overlay) ClipBy(cutter Path, rule ClipRule) ([]Shape, error) {
	return ClipBy(o.subject, cutter, rule, o.opts)
}
