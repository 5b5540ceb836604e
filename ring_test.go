package planar

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clockwise 5x5 square shell, closed.
func squareRing() Ring {
	return Ring{{0, 0}, {0, 5}, {5, 5}, {5, 0}, {0, 0}}
}

// Counterclockwise unit square, closed.
func unitSquareCCW() Ring {
	return Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
}

func TestRingClosedValidation(t *testing.T) {
	open := Ring{{0, 0}, {5, 0}, {5, 5}}
	_, err := open.WindingNumber(Point{1, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRing))

	_, err = open.ContainsPoint(Point{1, 1})
	assert.True(t, errors.Is(err, ErrMalformedRing))
	_, err = open.IsConvex()
	assert.True(t, errors.Is(err, ErrMalformedRing))
	_, err = open.SignedArea()
	assert.True(t, errors.Is(err, ErrMalformedRing))

	// Nearly closed is not closed; equality is exact.
	nearly := Ring{{0, 0}, {5, 0}, {5, 5}, {1e-12, 0}}
	_, err = nearly.WindingNumber(Point{1, 1})
	assert.True(t, errors.Is(err, ErrMalformedRing))
}

func TestPointInPolygon(t *testing.T) {
	square := squareRing()

	t.Run("interior point", func(t *testing.T) {
		in, err := square.ContainsPoint(Point{2, 2})
		require.NoError(t, err)
		assert.True(t, in)
	})

	t.Run("exterior point", func(t *testing.T) {
		in, err := square.ContainsPoint(Point{12, 12})
		require.NoError(t, err)
		assert.False(t, in)
	})

	t.Run("boundary point is outside", func(t *testing.T) {
		wn, err := square.WindingNumber(Point{5, 2})
		require.NoError(t, err)
		assert.Equal(t, 0, wn)

		in, err := square.ContainsPoint(Point{5, 2})
		require.NoError(t, err)
		assert.False(t, in)
	})

	t.Run("winding sign follows orientation", func(t *testing.T) {
		ccw := unitSquareCCW()
		wn, err := ccw.WindingNumber(Point{0.5, 0.5})
		require.NoError(t, err)
		assert.Equal(t, 1, wn)

		wn, err = ccw.Reverse().WindingNumber(Point{0.5, 0.5})
		require.NoError(t, err)
		assert.Equal(t, -1, wn)
	})

	t.Run("doubly wound ring winds twice", func(t *testing.T) {
		ccw := unitSquareCCW()
		doubled := append(append(Ring{}, ccw[:len(ccw)-1]...), ccw...)
		wn, err := doubled.WindingNumber(Point{0.5, 0.5})
		require.NoError(t, err)
		assert.Equal(t, 2, wn)
	})
}

func TestPolygonInPolygon(t *testing.T) {
	outer := squareRing()

	inner := Ring{{1, 1}, {1, 4}, {4, 4}, {4, 1}, {1, 1}}
	in, err := outer.ContainsRing(inner)
	require.NoError(t, err)
	assert.True(t, in)

	straddling := Ring{{3, 3}, {3, 8}, {8, 8}, {8, 3}, {3, 3}}
	in, err = outer.ContainsRing(straddling)
	require.NoError(t, err)
	assert.False(t, in)

	disjoint := Ring{{20, 20}, {20, 25}, {25, 25}, {25, 20}, {20, 20}}
	in, err = outer.ContainsRing(disjoint)
	require.NoError(t, err)
	assert.False(t, in)

	// Containment is not symmetric
	in, err = inner.ContainsRing(outer)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestPolygonConvexity(t *testing.T) {
	t.Run("square is convex", func(t *testing.T) {
		convex, err := unitSquareCCW().IsConvex()
		require.NoError(t, err)
		assert.True(t, convex)
	})

	t.Run("dented square is not convex", func(t *testing.T) {
		// The 5x5 square with its top edge broken by a vertex pulled
		// inward to (2.5, 3.0).
		dented := Ring{{0, 0}, {5, 0}, {5, 5}, {2.5, 3.0}, {0, 5}, {0, 0}}
		convex, err := dented.IsConvex()
		require.NoError(t, err)
		assert.False(t, convex)
	})

	t.Run("collinear vertices do not break convexity", func(t *testing.T) {
		withMidpoints := Ring{{0, 0}, {0.5, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
		convex, err := withMidpoints.IsConvex()
		require.NoError(t, err)
		assert.True(t, convex)
	})

	t.Run("zero-area ring is trivially convex", func(t *testing.T) {
		flat := Ring{{0, 0}, {2, 2}, {0, 0}}
		convex, err := flat.IsConvex()
		require.NoError(t, err)
		assert.True(t, convex)
	})
}

func TestRingOrientation(t *testing.T) {
	ccw := unitSquareCCW()
	cw := ccw.Reverse()

	t.Run("signed area", func(t *testing.T) {
		area, err := ccw.SignedArea()
		require.NoError(t, err)
		assert.InDelta(t, 1, area, testDelta)

		area, err = cw.SignedArea()
		require.NoError(t, err)
		assert.InDelta(t, -1, area, testDelta)
	})

	t.Run("convex rings classify by first turn", func(t *testing.T) {
		hole, err := ccw.IsHole()
		require.NoError(t, err)
		assert.True(t, hole)

		hole, err = cw.IsHole()
		require.NoError(t, err)
		assert.False(t, hole)
	})

	t.Run("concave rings classify by shoelace area", func(t *testing.T) {
		dented := Ring{{0, 0}, {5, 0}, {5, 5}, {2.5, 3.0}, {0, 5}, {0, 0}}
		hole, err := dented.IsHole()
		require.NoError(t, err)
		assert.True(t, hole) // counterclockwise

		hole, err = dented.Reverse().IsHole()
		require.NoError(t, err)
		assert.False(t, hole)
	})

	t.Run("area and perimeter", func(t *testing.T) {
		area, err := cw.Area()
		require.NoError(t, err)
		assert.InDelta(t, 1, area, testDelta)

		perimeter, err := cw.Perimeter()
		require.NoError(t, err)
		assert.InDelta(t, 4, perimeter, testDelta)
	})
}

func TestRingFixtures(t *testing.T) {
	star := loadFixture("star")
	hex := loadFixture("hexblob")

	t.Run("star is concave, hexblob is convex", func(t *testing.T) {
		convex, err := star.IsConvex()
		require.NoError(t, err)
		assert.False(t, convex)

		convex, err = hex.IsConvex()
		require.NoError(t, err)
		assert.True(t, convex)
	})

	t.Run("loaded rings are shells", func(t *testing.T) {
		for _, ring := range []Ring{star, hex} {
			hole, err := ring.IsHole()
			require.NoError(t, err)
			assert.False(t, hole)
		}
	})

	t.Run("center of the star is enclosed", func(t *testing.T) {
		wn, err := star.WindingNumber(star.Bounds().Center())
		require.NoError(t, err)
		assert.NotZero(t, wn)
	})
}
