package overlay

// ==============================================================================
// Geometric primitives
// ==============================================================================
//
// Cross and dot products use signed 64-bit intermediates, per the data
// model. They multiply coordinate differences, so results are exact while
// coordinates stay within about +/-2^30; inputs spanning the full int32
// range can overflow int64.

// CrossProduct returns the Z component of (b-o) x (c-o).
// Positive means c is to the left of the directed line o->b.
func CrossProduct(o, b, c Point) int64 {
	bx := int64(b.X) - int64(o.X)
	by := int64(b.Y) - int64(o.Y)
	cx := int64(c.X) - int64(o.X)
	cy := int64(c.Y) - int64(o.Y)
	return bx*cy - by*cx
}

// DotProduct returns (b-o) . (c-o).
func DotProduct(o, b, c Point) int64 {
	bx := int64(b.X) - int64(o.X)
	by := int64(b.Y) - int64(o.Y)
	cx := int64(c.X) - int64(o.X)
	cy := int64(c.Y) - int64(o.Y)
	return bx*cx + by*cy
}

// IsCollinear reports whether p1, p2, p3 lie on a common line.
func IsCollinear(p1, p2, p3 Point) bool {
	return CrossProduct(p1, p2, p3) == 0
}

// isLeftOrOn reports whether point lies to the left of the directed line
// p1->p2 or on it.
func isLeftOrOn(p1, p2, point Point) bool {
	return CrossProduct(p1, p2, point) >= 0
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minMax32(a, b int32) (int32, int32) {
	if a < b {
		return a, b
	}
	return b, a
}

// isPointOnSegment reports whether point lies on the closed segment [a, b].
func isPointOnSegment(point, a, b Point) bool {
	if !IsCollinear(a, b, point) {
		return false
	}
	return point.X >= min32(a.X, b.X) && point.X <= max32(a.X, b.X) &&
		point.Y >= min32(a.Y, b.Y) && point.Y <= max32(a.Y, b.Y)
}

// Area computes the shoelace area of a closed path using a 64-bit
// accumulator, then halves it. Positive area means counter-clockwise
// orientation (in a Y-up coordinate system).
func Area(path Path) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	var acc int64
	prev := path[n-1]
	for _, p := range path {
		acc += int64(prev.X)*int64(p.Y) - int64(p.X)*int64(prev.Y)
		prev = p
	}
	return float64(acc) / 2
}

// IsPositive reports whether path has positive (counter-clockwise) area.
func IsPositive(path Path) bool {
	return Area(path) > 0
}

// Reverse returns a new path with points in reverse order.
func Reverse(path Path) Path {
	out := make(Path, len(path))
	for i, j := 0, len(path)-1; i < len(path); i, j = i+1, j-1 {
		out[i] = path[j]
	}
	return out
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Bounds computes the bounding rectangle of path. Returns the zero Rect for
// an empty path.
func Bounds(path Path) Rect {
	if len(path) == 0 {
		return Rect{}
	}
	r := Rect{Left: path[0].X, Right: path[0].X, Top: path[0].Y, Bottom: path[0].Y}
	for _, p := range path[1:] {
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.Y > r.Bottom {
			r.Bottom = p.Y
		}
	}
	return r
}

// BoundsPaths computes the bounding rectangle of multiple paths.
func BoundsPaths(paths Paths) Rect {
	if len(paths) == 0 {
		return Rect{}
	}
	r := Bounds(paths[0])
	for _, p := range paths[1:] {
		pb := Bounds(p)
		if pb.Left < r.Left {
			r.Left = pb.Left
		}
		if pb.Top < r.Top {
			r.Top = pb.Top
		}
		if pb.Right > r.Right {
			r.Right = pb.Right
		}
		if pb.Bottom > r.Bottom {
			r.Bottom = pb.Bottom
		}
	}
	return r
}

// PolygonLocation is the result of PointInPolygon.
type PolygonLocation uint8

const (
	Outside PolygonLocation = iota
	Inside
	OnBoundary
)

// WindingNumber computes the signed winding number of point with respect
// to polygon by counting upward edge crossings to the point's right as +1
// and downward ones as -1.
func WindingNumber(point Point, polygon Path) int {
	n := len(polygon)
	if n < 3 {
		return 0
	}
	wn := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := polygon[i], polygon[j]
		if a.Y <= point.Y {
			if b.Y > point.Y && CrossProduct(a, b, point) > 0 {
				wn++
			}
		} else {
			if b.Y <= point.Y && CrossProduct(a, b, point) < 0 {
				wn--
			}
		}
	}
	return wn
}

// PointInPolygon classifies point relative to polygon under fillRule.
func PointInPolygon(point Point, polygon Path, fillRule FillRule) PolygonLocation {
	if len(polygon) < 3 {
		return Outside
	}
	n := len(polygon)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if isPointOnSegment(point, polygon[i], polygon[j]) {
			return OnBoundary
		}
	}
	wn := WindingNumber(point, polygon)
	filled := false
	switch fillRule {
	case EvenOdd:
		filled = (wn & 1) != 0
	case NonZero:
		filled = wn != 0
	case Positive:
		filled = wn > 0
	case Negative:
		filled = wn < 0
	}
	if filled {
		return Inside
	}
	return Outside
}
