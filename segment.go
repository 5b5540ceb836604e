package planar

import (
	"math"

	"github.com/pkg/errors"
)

// Segment is a directed line segment. The direction matters for how an
// intersection is reported, but a segment is not required to have extent:
// P1 == P2 is legal and stands for a point.
type Segment struct {
	P1, P2 Point
}

func NewSegment(p1, p2 Point) Segment {
	return Segment{P1: p1, P2: p2}
}

// Bounds is the axis-aligned box spanning the two endpoints.
func (s Segment) Bounds() Bounds {
	return NewBounds(s.P1, s.P2)
}

func (s Segment) Length() float64 {
	return s.P1.DistanceTo(s.P2)
}

func (s Segment) IsDegenerate() bool {
	return s.P1.Equals(s.P2)
}

// Intersect computes the intersection of two segments. The second return is
// false when they do not meet. When they meet at a single point, the result
// has P1 == P2. When the segments are coincident and overlap along a
// sub-segment, the result spans that overlap with distinct endpoints.
//
// The in-range checks on the parametric coordinates are exact, with no
// epsilon, so an endpoint exactly touching the other segment is reported as
// a boundary intersection rather than lost to a tolerance.
//
// A collinear overlap whose endpoints cannot be resolved indicates
// malformed input geometry and comes back as ErrDegenerateInput.
func (s Segment) Intersect(o Segment) (Segment, bool, error) {
	// Cheap rejection before any arithmetic. Touching boxes still pass, so
	// endpoint-on-endpoint contacts survive the filter.
	if !s.Bounds().Overlaps(o.Bounds()) {
		return Segment{}, false, nil
	}

	d1 := s.P2.Sub(s.P1)
	d2 := o.P2.Sub(o.P1)
	denom := d1.Cross(d2)

	if denom != 0 {
		// The infinite lines cross at exactly one point. Solve for the
		// parametric coordinate along each segment; the crossing lies on
		// both segments iff both coordinates are in [0, 1].
		w := o.P1.Sub(s.P1)
		t := w.Cross(d2) / denom
		u := w.Cross(d1) / denom
		if t < 0 || t > 1 || u < 0 || u > 1 {
			return Segment{}, false, nil
		}
		at := s.P1.Add(d1.Scale(t))
		return Segment{P1: at, P2: at}, true, nil
	}

	// Parallel directions. Unless the segments lie on the same infinite
	// line, they cannot meet.
	if math.Abs(o.P1.Sub(s.P1).Cross(d1)) >= machineEpsilon {
		return Segment{}, false, nil
	}

	// Coincident lines. The overlap, if any, is bounded by the endpoints of
	// one segment that fall within the other. The candidate order is fixed:
	// scanning it forward finds the first overlap endpoint, scanning it
	// backward finds the second.
	candidates := [4]Point{s.P1, o.P1, s.P2, o.P2}
	within := [4]bool{
		between(s.P1, o.P1, o.P2),
		between(o.P1, s.P1, s.P2),
		between(s.P2, o.P1, o.P2),
		between(o.P2, s.P1, s.P2),
	}

	first, last := -1, -1
	for i := 0; i < len(within); i++ {
		if within[i] {
			first = i
			break
		}
	}
	for i := len(within) - 1; i >= 0; i-- {
		if within[i] {
			last = i
			break
		}
	}
	if first < 0 || last < 0 {
		return Segment{}, false, errors.Wrapf(ErrDegenerateInput,
			"coincident segments with unresolvable overlap: %v and %v", s, o)
	}
	return Segment{P1: candidates[first], P2: candidates[last]}, true, nil
}
