package planar

import "math"

// Point is a position on the plane. It is a plain value with no identity
// beyond its coordinates: equality is exact coordinate equality, with no
// tolerance. Coordinates are not validated; NaN and Inf propagate through
// the arithmetic the way IEEE-754 says they should.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross is the z component of the 3-D cross product of the two vectors. Its
// sign is the basis for every orientation test in this package.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

// Rotate rotates the point about the origin by the given angle in radians,
// counterclockwise for positive angles.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

func (p Point) Translate(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// Turn classifies the direction swept out when walking three points in
// order: which way the path bends at the middle point.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
	TurnAhead
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case TurnAhead:
		return "ahead"
	}
	return "unknown"
}

// TurnDirection classifies the turn taken at b when traveling a, b, c. A
// zero cross product means the three points are collinear and the path
// continues ahead (or doubles back; the two are not distinguished).
func TurnDirection(a, b, c Point) Turn {
	cross := b.Sub(a).Cross(c.Sub(b))
	switch {
	case cross > 0:
		return TurnLeft
	case cross < 0:
		return TurnRight
	}
	return TurnAhead
}

// Point3D carries a third coordinate for the point-cloud tools that have
// one. It is a plain data holder; all the geometry in this package is
// planar, and nothing here interprets Z.
type Point3D struct {
	X, Y, Z float64
}

func (p Point3D) Equals(o Point3D) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}
