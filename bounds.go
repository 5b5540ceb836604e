package planar

import "math"

// Bounds is an axis-aligned bounding box. The invariant min <= max holds on
// both axes for any box built through NewBounds or grown from EmptyBounds;
// every pairwise exact test in this package first rejects on a Bounds
// overlap check, so these comparisons have to be cheap and total.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// NewBounds builds the box spanning two corners, which may be given in any
// order; the constructor reorders them per axis.
func NewBounds(a, b Point) Bounds {
	return Bounds{
		MinX: math.Min(a.X, b.X),
		MaxX: math.Max(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// EmptyBounds is the identity for union: min at +Inf and max at -Inf, so
// extending it with any point yields that point's box.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
}

// BoundsOf is the box spanning a point sequence; empty input gives
// EmptyBounds.
func BoundsOf(points []Point) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b.ExtendPoint(p)
	}
	return b
}

// ExtendPoint grows the box to include p.
func (b *Bounds) ExtendPoint(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// ExtendBounds grows the box to include all of o.
func (b *Bounds) ExtendBounds(o Bounds) {
	b.MinX = math.Min(b.MinX, o.MinX)
	b.MaxX = math.Max(b.MaxX, o.MaxX)
	b.MinY = math.Min(b.MinY, o.MinY)
	b.MaxY = math.Max(b.MaxY, o.MaxY)
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	b.ExtendBounds(o)
	return b
}

// Overlaps reports whether the boxes share any point. Boxes that merely
// touch on an edge or corner count as overlapping; only strict separation
// on some axis rejects.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// NearlyOverlaps is Overlaps with each box inflated by tol, for callers
// whose coordinates went through lossy arithmetic before the test.
func (b Bounds) NearlyOverlaps(o Bounds, tol float64) bool {
	return b.Expand(tol).Overlaps(o)
}

// ContainsBounds reports whether o lies entirely within b. Shared edges
// count as contained.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return b.MinX <= o.MinX && b.MaxX >= o.MaxX &&
		b.MinY <= o.MinY && b.MaxY >= o.MaxY
}

// ContainsBoundsStrictly reports whether o lies in the interior of b, with
// no shared edges.
func (b Bounds) ContainsBoundsStrictly(o Bounds) bool {
	return b.MinX < o.MinX && b.MaxX > o.MaxX &&
		b.MinY < o.MinY && b.MaxY > o.MaxY
}

// ContainsPoint reports whether p lies within the box, boundary included.
func (b Bounds) ContainsPoint(p Point) bool {
	return b.MinX <= p.X && p.X <= b.MaxX && b.MinY <= p.Y && p.Y <= b.MaxY
}

// Intersect clips b to o. The second return is false when the boxes do not
// overlap at all, in which case the box result is meaningless.
func (b Bounds) Intersect(o Bounds) (Bounds, bool) {
	if !b.Overlaps(o) {
		return EmptyBounds(), false
	}
	return Bounds{
		MinX: math.Max(b.MinX, o.MinX),
		MaxX: math.Min(b.MaxX, o.MaxX),
		MinY: math.Max(b.MinY, o.MinY),
		MaxY: math.Min(b.MaxY, o.MaxY),
	}, true
}

// IntersectsEdgeOf reports whether o's boundary passes through b: at least
// one of o's corners is inside b and at least one is outside. This detects
// partial, non-nested overlap, as opposed to one box swallowing the other.
func (b Bounds) IntersectsEdgeOf(o Bounds) bool {
	inside := 0
	for _, corner := range o.Corners() {
		if b.ContainsPoint(corner) {
			inside++
		}
	}
	return inside > 0 && inside < 4
}

// Expand grows the box symmetrically by margin on every side. A negative
// margin contracts instead.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// Contract shrinks the box symmetrically by margin on every side.
func (b Bounds) Contract(margin float64) Bounds {
	return b.Expand(-margin)
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

func (b Bounds) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Corners lists the four corners counterclockwise from (MinX, MinY).
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
}
