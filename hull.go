package planar

import "sort"

// ConvexHull computes the convex hull of a point set as a closed clockwise
// Ring. Exact duplicates and points interior to a hull edge are removed, so
// every ring vertex is a corner. Degenerate inputs still produce a
// well-formed ring: a single distinct point yields {p, p}, and two distinct
// points (or any fully collinear set) yield the extreme segment traversed
// out and back.
//
// This is the monotone-chain construction: sort by (x, y), then build the
// two hull chains by scanning and popping the last retained point whenever
// the next candidate fails to keep turning right.
func ConvexHull(points []Point) Ring {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Drop exact duplicates; the chains assume strictly distinct points.
	distinct := sorted[:1]
	for _, p := range sorted[1:] {
		if !p.Equals(distinct[len(distinct)-1]) {
			distinct = append(distinct, p)
		}
	}

	if len(distinct) == 1 {
		return Ring{distinct[0], distinct[0]}
	}

	// First chain walks left to right, second walks back. Popping on
	// anything but a strict right turn removes collinear interior points as
	// a side effect and makes the assembled ring clockwise.
	chain := func(pts []Point) []Point {
		var h []Point
		for _, p := range pts {
			for len(h) >= 2 && TurnDirection(h[len(h)-2], h[len(h)-1], p) != TurnRight {
				h = h[:len(h)-1]
			}
			h = append(h, p)
		}
		return h
	}

	upper := chain(distinct)
	reversed := make([]Point, len(distinct))
	for i, p := range distinct {
		reversed[len(distinct)-1-i] = p
	}
	lower := chain(reversed)

	// Concatenating the chains repeats the rightmost point at the seam and
	// the leftmost point at the close, which is exactly the closure the
	// Ring type wants.
	hull := make(Ring, 0, len(upper)+len(lower)-1)
	hull = append(hull, upper...)
	hull = append(hull, lower[1:]...)
	return hull
}
