package geometry

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/pixelcoll/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders the variants to a PNG and dumps it to the terminal, with
// each variant's readable name printed for cross-referencing against other
// debug output.
func dbgDraw(scale float64, polygons ...ConvexCCWPolygon) {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly.Points() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX { // Nothing but empties
		return
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range polygons {
		points := poly.Points()
		if len(points) == 0 {
			continue
		}

		switch len(points) {
		case 1:
			c.DrawCircle(points[0].X, points[0].Y, 3/scale)
			c.SetRGB(1, 1, 0)
			c.Fill()
		default:
			c.MoveTo(points[0].X, points[0].Y)
			for _, p := range points[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.ClosePath()
			c.SetRGB(0, 0.5, 0)
			c.FillPreserve()
			c.SetRGB(0, 1, 1)
			c.Stroke()
		}

		c.SetRGB(1, 1, 1)
		middle := poly.(Nonempty).MiddlePoint()
		c.DrawString(dbg.Name(&points[0]), middle.X, middle.Y)
	}

	c.SavePNG("/tmp/pixelcoll_polygons.png")
	imgcat.CatFile("/tmp/pixelcoll_polygons.png", os.Stdout)
}
