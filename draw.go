package planar

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Scene collects geometry to render together: the input points plus any
// derived rings (hulls, minimum boxes) and circles.
type Scene struct {
	Points  []Point
	Rings   []Ring
	Circles []Circle
}

func (sc Scene) bounds() Bounds {
	b := BoundsOf(sc.Points)
	for _, r := range sc.Rings {
		b.ExtendBounds(r.Bounds())
	}
	for _, c := range sc.Circles {
		b.ExtendBounds(c.Bounds())
	}
	return b
}

// Render draws the scene to a PNG at the given scale. Derived geometry is
// stroked over the input points so a bad hull or box is obvious at a
// glance.
func (sc Scene) Render(path string, scale float64) error {
	b := sc.bounds()
	width := int(scale*b.Width()) + dbgDrawPadding*2
	height := int(scale*b.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-b.MinX, -b.MinY)

	c.SetRGB(1, 1, 1)
	for _, p := range sc.Points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, ring := range sc.Rings {
		if len(ring) == 0 {
			continue
		}
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}

	c.SetRGB(1, 0.5, 0)
	for _, circle := range sc.Circles {
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// dbgDraw renders the scene to the terminal (iTerm only).
func (sc Scene) dbgDraw(scale float64) {
	const path = "/tmp/planar_scene.png"
	if err := sc.Render(path, scale); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
