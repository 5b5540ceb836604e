package planar

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Polyline is an open chain of vertices decoded from a vector or LiDAR
// record, carrying the record's id. Pending split points accumulate on the
// polyline and are consumed, all at once, by Split.
type Polyline struct {
	vertices []Point
	id       int
	splits   []splitPoint
}

// A split point sits at a fractional index into the vertex sequence: 2.5 is
// the midpoint of the segment from vertex 2 to vertex 3. Integral positions
// name an existing vertex and are discouraged, since splitting there leaves
// a zero-length segment behind.
type splitPoint struct {
	position float64
	point    Point
}

// NewPolyline copies the vertex sequence; the polyline never aliases a
// caller-owned buffer.
func NewPolyline(vertices []Point, id int) *Polyline {
	v := make([]Point, len(vertices))
	copy(v, vertices)
	return &Polyline{vertices: v, id: id}
}

func (l *Polyline) ID() int {
	return l.id
}

func (l *Polyline) Len() int {
	return len(l.vertices)
}

// Get is the bounds-checked vertex accessor.
func (l *Polyline) Get(i int) (Point, error) {
	if i < 0 || i >= len(l.vertices) {
		return Point{}, errors.Wrapf(ErrIndexOutOfRange, "vertex %d of %d", i, len(l.vertices))
	}
	return l.vertices[i], nil
}

// Vertices returns a copy of the vertex sequence.
func (l *Polyline) Vertices() []Point {
	v := make([]Point, len(l.vertices))
	copy(v, l.vertices)
	return v
}

func (l *Polyline) Bounds() Bounds {
	return BoundsOf(l.vertices)
}

// Length is the total length along the chain.
func (l *Polyline) Length() float64 {
	total := 0.0
	for i := 0; i+1 < len(l.vertices); i++ {
		total += l.vertices[i].DistanceTo(l.vertices[i+1])
	}
	return total
}

// PendingSplits is the number of split points recorded so far.
func (l *Polyline) PendingSplits() int {
	return len(l.splits)
}

// InsertSplitPoint records a pending cut at the given fractional position.
// Positions at or beyond the last real segment are silently ignored.
func (l *Polyline) InsertSplitPoint(position float64, p Point) {
	if position >= float64(len(l.vertices)-1) {
		return
	}
	l.splits = append(l.splits, splitPoint{position: position, point: p})
}

// Split cuts the polyline at every pending split point, sorted by position,
// and returns the pieces in order. Adjacent pieces share their boundary
// vertex: each new polyline begins with the split point that ended the
// previous one, and all pieces keep the original id. With nothing pending,
// the result is the original vertex sequence as a single piece.
//
// Split consumes the pending list; cut an output piece further by recording
// new split points on it, not by reusing the original.
func (l *Polyline) Split() []*Polyline {
	if len(l.splits) == 0 {
		return []*Polyline{NewPolyline(l.vertices, l.id)}
	}

	splits := make([]splitPoint, len(l.splits))
	copy(splits, l.splits)
	l.splits = nil
	sort.Slice(splits, func(i, j int) bool {
		return splits[i].position < splits[j].position
	})

	var parts []*Polyline
	var current []Point
	si := 0
	for i, v := range l.vertices {
		current = append(current, v)
		// Every split landing in the segment that starts at vertex i cuts
		// here, in position order.
		for si < len(splits) && splits[si].position < float64(i+1) {
			current = append(current, splits[si].point)
			parts = append(parts, NewPolyline(current, l.id))
			current = []Point{splits[si].point}
			si++
		}
	}
	parts = append(parts, NewPolyline(current, l.id))
	return parts
}

func (l *Polyline) String() string {
	return fmt.Sprintf("Polyline %d (%d vertices, %d pending splits)", l.id, len(l.vertices), len(l.splits))
}
