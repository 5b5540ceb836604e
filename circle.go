package planar

import "math"

// circleSlack inflates the containment radius multiplicatively. After the
// circumcenter arithmetic, a defining point can land a few ulps outside its
// own circle; without the slack the enclosing-circle construction would
// chase its own support points forever.
const circleSlack = 1e-14

// Circle is a center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p is inside the circle, with the radius inflated
// by (1 + 1e-14) so that boundary points survive round-off.
func (c Circle) Contains(p Point) bool {
	return c.Center.DistanceTo(p) <= c.Radius*(1+circleSlack)
}

func (c Circle) Bounds() Bounds {
	return Bounds{
		MinX: c.Center.X - c.Radius,
		MaxX: c.Center.X + c.Radius,
		MinY: c.Center.Y - c.Radius,
		MaxY: c.Center.Y + c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// CircleFrom2 is the smallest circle through two points: centered at their
// midpoint with the points diametrically opposed.
func CircleFrom2(a, b Point) Circle {
	center := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	return Circle{Center: center, Radius: center.DistanceTo(a)}
}

// CircleFrom3 is the circumscribing circle of three points. Collinear
// points have no circumcircle; the smallest two-point circle covering all
// three is returned instead.
func CircleFrom3(a, b, c Point) Circle {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		best := Circle{Radius: math.Inf(1)}
		for _, cand := range []Circle{CircleFrom2(a, b), CircleFrom2(a, c), CircleFrom2(b, c)} {
			if cand.Radius < best.Radius && cand.Contains(a) && cand.Contains(b) && cand.Contains(c) {
				best = cand
			}
		}
		return best
	}
	aa := a.Dot(a)
	bb := b.Dot(b)
	cc := c.Dot(c)
	center := Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	return Circle{Center: center, Radius: center.DistanceTo(a)}
}
