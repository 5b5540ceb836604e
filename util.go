package planar

import "math"

// machineEpsilon is the gap between 1.0 and the next representable float64.
// It is the collinearity threshold for the parallel-segment tests: a cross
// product smaller than this cannot be distinguished from zero after the
// subtractions that produced it.
var machineEpsilon = math.Nextafter(1, 2) - 1

// between reports whether q lies within the axis-aligned span of p and r.
// The three points are assumed already known to be collinear, which reduces
// the on-segment test to a coordinate range check. The comparison is exact;
// an endpoint exactly touching the span counts as between.
func between(q, p, r Point) bool {
	return math.Min(p.X, r.X) <= q.X && q.X <= math.Max(p.X, r.X) &&
		math.Min(p.Y, r.Y) <= q.Y && q.Y <= math.Max(p.Y, r.Y)
}
