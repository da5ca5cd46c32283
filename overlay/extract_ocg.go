package overlay

// ==============================================================================
// OCG self-intersecting trace decomposition
// ==============================================================================
//
// A single extractor pass over a graph with Cross nodes can trace a loop
// that revisits a vertex (the nearest-vector rule resolves which arc to
// take next, but a single traced walk may still legitimately pass through
// the same point twice when two simple loops are tangent at a vertex).
// OCG mode splits such a walk into its constituent simple loops using a
// hash-bin point lookup: a map from point to its position in the
// in-progress path lets a revisit be detected in O(1) and the loop
// between the two visits spliced out immediately, rather than needing an
// O(n^2) scan.

// decomposeSelfIntersecting splits a possibly self-touching closed walk
// into simple (non-repeating) closed sub-loops.
func decomposeSelfIntersecting(path Path) Paths {
	if len(path) < 3 {
		return Paths{path}
	}

	seen := make(map[Point]int, len(path))
	working := make(Path, 0, len(path))
	var out Paths

	for _, p := range path {
		if idx, ok := seen[p]; ok {
			loop := make(Path, len(working)-idx)
			copy(loop, working[idx:])
			if len(loop) >= 3 {
				out = append(out, loop)
			}
			for k, v := range seen {
				if v >= idx {
					delete(seen, k)
				}
			}
			working = working[:idx]
		}
		seen[p] = len(working)
		working = append(working, p)
	}

	if len(working) >= 3 {
		out = append(out, working)
	}
	return out
}
