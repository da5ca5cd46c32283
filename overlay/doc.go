// Package overlay implements a robust 2D polygon Boolean/overlay engine
// operating on integer-coordinate contours.
//
// # Overview
//
// Given a subject set and a clip set of closed polygons, the engine computes
// the standard Boolean results (union, intersection, difference, inverse
// difference, symmetric difference, subject-only, clip-only) under a choice
// of fill rule (even-odd, non-zero, positive, negative) and returns the
// result as a set of oriented, topologically well-formed polygons-with-holes.
// A secondary string mode partitions a polygonal subject by an open
// polyline.
//
// The pipeline is five strictly ordered stages:
//
//  1. Split solver  - pairwise edge intersection, producing a planar
//     subdivision edge set with no crossing interiors.
//  2. Fill solver    - sweep-line assignment of a 4-bit side-fill label to
//     every post-split segment.
//  3. Link/filter    - per-rule inclusion of segments, assembled into a
//     planar graph of nodes and directed links.
//  4. Contour extractor - walks the graph emitting oriented hull/hole
//     contours.
//  5. Hole binder    - associates every hole contour with its parent hull.
//
// # Error handling
//
// The engine is total over well-formed integer input: degenerate geometry
// (duplicate points, zero-length edges, collinear triples) is silently
// normalized away, and an overlay with no surviving geometry returns an
// empty shape list rather than an error. The only returned errors are
// programmer errors - invalid enum values, a cutter polyline with fewer
// than two points, or extracting from a graph that was never built -
// enumerated in errors.go.
//
// # Coordinate system
//
// Points use 32-bit signed integer coordinates; cross and dot products are
// computed with 64-bit signed intermediates. Positive Y is whatever the
// caller's convention is - the engine works with either screen or Cartesian
// orientation as long as it is applied consistently.
package overlay
