package planar

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// SmallestEnclosingCircle computes the unique minimal circle containing all
// of the points, by Welzl's randomized-incremental construction: shuffle,
// then grow a circle defined by at most three support points, recomputing
// the two- or three-point circumscribing circle whenever a later point
// falls outside the current one. Expected linear time.
//
// The result is the same for every input order; only the running time is
// random. Pass a seeded rng to make runs byte-for-byte reproducible; nil
// uses a time-seeded source. Empty input is ErrDegenerateInput, and a
// single point yields a zero-radius circle.
func SmallestEnclosingCircle(points []Point, rng *rand.Rand) (Circle, error) {
	if len(points) == 0 {
		return Circle{}, errors.Wrap(ErrDegenerateInput, "enclosing circle of empty point set")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	rng.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})

	c := Circle{Center: pts[0]}
	for i := 1; i < len(pts); i++ {
		if c.Contains(pts[i]) {
			continue
		}
		// pts[i] must be on the boundary of the minimal circle of the
		// prefix. Restart with it as a support point.
		c = Circle{Center: pts[i]}
		for j := 0; j < i; j++ {
			if c.Contains(pts[j]) {
				continue
			}
			c = CircleFrom2(pts[i], pts[j])
			for k := 0; k < j; k++ {
				if !c.Contains(pts[k]) {
					c = CircleFrom3(pts[i], pts[j], pts[k])
				}
			}
		}
	}
	return c, nil
}
