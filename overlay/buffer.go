package overlay

// arcKey identifies a directed arc by its two endpoints, used by
// ExtractionBuffer to record which arcs a given extraction pass has
// already consumed. The graph itself carries no per-arc used flags, so
// the same Graph can be extracted more than once, e.g. once per
// OverlayRule.
type arcKey struct {
	From, To Point
}

// ExtractionBuffer is reusable scratch state for contour extraction: the
// consumed-arc set and the point backing array both grow across one
// Extract call and are cleared (not reallocated) for the next. Passing
// one in across repeated Extract calls (e.g. scanning many scenes from a
// config file) avoids reallocating either per call.
type ExtractionBuffer struct {
	points  []Point
	visited map[arcKey]bool
}

// NewExtractionBuffer allocates an empty ExtractionBuffer ready for use.
func NewExtractionBuffer() *ExtractionBuffer {
	return &ExtractionBuffer{visited: make(map[arcKey]bool)}
}

// reset clears the buffer for a new Extract call while keeping the
// underlying allocations.
func (b *ExtractionBuffer) reset() {
	b.points = b.points[:0]
	for k := range b.visited {
		delete(b.visited, k)
	}
}
