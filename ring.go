package planar

import (
	"math"

	"github.com/pkg/errors"
)

// Ring is a closed polygon boundary: the first vertex is repeated, exactly,
// as the last. The predicates here never auto-close input; the tools decode
// their vector records into already-closed rings, and an unclosed one is a
// caller bug reported as ErrMalformedRing.
//
// Vertex order carries meaning: a ring whose vertices run clockwise is an
// outer shell, and one running counterclockwise is a hole.
type Ring []Point

// Closed reports whether the ring's first and last vertices are exactly
// equal. There is no tolerance; a ring closed to within round-off is not
// closed.
func (r Ring) Closed() bool {
	return len(r) >= 2 && r[0].Equals(r[len(r)-1])
}

func (r Ring) validate() error {
	if !r.Closed() {
		return errors.Wrapf(ErrMalformedRing, "%d vertices", len(r))
	}
	return nil
}

func (r Ring) Bounds() Bounds {
	return BoundsOf(r)
}

// WindingNumber is the signed count of how many times the ring wraps around
// p. Each edge crossing the horizontal through p contributes +1 (upward
// crossing with p left of the edge) or -1 (downward crossing with p right of
// it). Self-intersecting or multiply-wound rings can produce values beyond
// ±1. A point exactly on an edge contributes no crossing there.
func (r Ring) WindingNumber(p Point) (int, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	wn := 0
	for i := 0; i < len(r)-1; i++ {
		a, b := r[i], r[i+1]
		if a.Y <= p.Y {
			if b.Y > p.Y && TurnDirection(a, b, p) == TurnLeft {
				wn++
			}
		} else {
			if b.Y <= p.Y && TurnDirection(a, b, p) == TurnRight {
				wn--
			}
		}
	}
	return wn, nil
}

// ContainsPoint applies the nonzero-winding rule: p is inside iff the ring
// winds around it a net nonzero number of times. This is the only
// containment rule this package exposes; callers wanting even-odd semantics
// can take the parity of WindingNumber themselves. A point exactly on an
// edge is outside by this convention.
func (r Ring) ContainsPoint(p Point) (bool, error) {
	if err := r.validate(); err != nil {
		return false, err
	}
	if !r.Bounds().ContainsPoint(p) {
		return false, nil
	}
	wn, err := r.WindingNumber(p)
	if err != nil {
		return false, err
	}
	return wn != 0, nil
}

// ContainsRing reports whether every vertex of inner lies inside r. It
// short-circuits on the first vertex that falls outside, so disjoint rings
// reject after a single test on average.
func (r Ring) ContainsRing(inner Ring) (bool, error) {
	if err := r.validate(); err != nil {
		return false, err
	}
	if err := inner.validate(); err != nil {
		return false, err
	}
	if !r.Bounds().Overlaps(inner.Bounds()) {
		return false, nil
	}
	for i := 0; i < len(inner)-1; i++ {
		in, err := r.ContainsPoint(inner[i])
		if err != nil {
			return false, err
		}
		if !in {
			return false, nil
		}
	}
	return true, nil
}

// IsConvex reports whether every turn around the ring bends the same way.
// Collinear vertex triples contribute a zero cross product and are ignored;
// a fully collinear (zero-area) ring is trivially convex.
func (r Ring) IsConvex() (bool, error) {
	if err := r.validate(); err != nil {
		return false, err
	}
	sign := 0.0
	n := len(r) - 1 // distinct vertices
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]
		c := r[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false, nil
		}
	}
	return true, nil
}

// SignedArea is the shoelace-formula area: positive for counterclockwise
// rings, negative for clockwise, zero for degenerate ones.
func (r Ring) SignedArea() (float64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < len(r)-1; i++ {
		sum += r[i].Cross(r[i+1])
	}
	return sum / 2, nil
}

// Area is the absolute enclosed area.
func (r Ring) Area() (float64, error) {
	signed, err := r.SignedArea()
	if err != nil {
		return 0, err
	}
	return math.Abs(signed), nil
}

// Perimeter is the total edge length around the ring.
func (r Ring) Perimeter() (float64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	total := 0.0
	for i := 0; i < len(r)-1; i++ {
		total += r[i].DistanceTo(r[i+1])
	}
	return total, nil
}

// IsHole classifies the ring by orientation: counterclockwise rings are
// holes, clockwise rings are shells. A convex ring is classified by the
// sign of its first nonzero turn, which is cheaper than the shoelace sum a
// concave ring needs.
func (r Ring) IsHole() (bool, error) {
	convex, err := r.IsConvex()
	if err != nil {
		return false, err
	}
	if convex {
		n := len(r) - 1
		for i := 0; i < n; i++ {
			a := r[i]
			b := r[(i+1)%n]
			c := r[(i+2)%n]
			cross := b.Sub(a).Cross(c.Sub(b))
			if cross != 0 {
				return cross > 0, nil
			}
		}
		// Zero-area ring; orientation is meaningless, call it a shell.
		return false, nil
	}
	signed, err := r.SignedArea()
	if err != nil {
		return false, err
	}
	return signed > 0, nil
}

// Reverse returns the ring traversed the other way, flipping its
// orientation between shell and hole.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}
