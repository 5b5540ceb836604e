package planar

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// BoundsCriterion selects what MinimumBounds minimizes.
type BoundsCriterion int

const (
	MinimizeArea BoundsCriterion = iota
	MinimizePerimeter
)

// MinimumBounds computes the minimal oriented rectangle enclosing the point
// set, by area or by perimeter. The four corners come back in a consistent
// winding order: the distance from corner 0 to 1 and from 1 to 2 are the
// rectangle's two side lengths, so consumers take the min as the short axis
// and the max as the long axis.
//
// Rotating calipers over the convex hull: the minimal rectangle of a convex
// polygon always has a side flush with some hull edge, so each hull edge
// direction is tried as the rectangle orientation and the extents of the
// hull's projection onto that frame give the candidate. The first
// orientation achieving the minimum wins ties. Empty input is
// ErrDegenerateInput; a single distinct point yields four coincident
// corners, and a collinear set yields a zero-width rectangle along the
// segment.
func MinimumBounds(points []Point, criterion BoundsCriterion) ([4]Point, error) {
	hull := ConvexHull(points)
	if hull == nil {
		return [4]Point{}, errors.Wrap(ErrDegenerateInput, "minimum bounds of empty point set")
	}

	vertices := hull[:len(hull)-1]
	if len(vertices) == 1 {
		p := vertices[0]
		return [4]Point{p, p, p, p}, nil
	}

	along := make([]float64, len(vertices))
	across := make([]float64, len(vertices))

	best := math.Inf(1)
	var corners [4]Point
	for i := 0; i < len(vertices); i++ {
		edge := hull[i+1].Sub(hull[i])
		length := edge.Magnitude()
		if length == 0 {
			continue
		}
		dir := edge.Scale(1 / length)
		perp := Point{-dir.Y, dir.X}

		for j, v := range vertices {
			along[j] = v.Dot(dir)
			across[j] = v.Dot(perp)
		}
		minU, maxU := floats.Min(along), floats.Max(along)
		minW, maxW := floats.Min(across), floats.Max(across)
		width := maxU - minU
		height := maxW - minW

		var cost float64
		switch criterion {
		case MinimizePerimeter:
			cost = 2 * (width + height)
		default:
			cost = width * height
		}
		if cost >= best {
			continue
		}
		best = cost
		corners = [4]Point{
			dir.Scale(minU).Add(perp.Scale(minW)),
			dir.Scale(maxU).Add(perp.Scale(minW)),
			dir.Scale(maxU).Add(perp.Scale(maxW)),
			dir.Scale(minU).Add(perp.Scale(maxW)),
		}
	}
	return corners, nil
}

// BoxAxisLengths reports the short and long side lengths of a rectangle
// returned by MinimumBounds. Tools derive elongation ratios from these.
func BoxAxisLengths(corners [4]Point) (short, long float64) {
	a := corners[0].DistanceTo(corners[1])
	b := corners[1].DistanceTo(corners[2])
	return math.Min(a, b), math.Max(a, b)
}
