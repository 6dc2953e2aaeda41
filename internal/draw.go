package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the drawing so that hull edges aren't flush with the border
const drawPadding = 20

// Render a 2D hull over the points it was built from. The hull is filled and
// stroked, and the input points are drawn as dots on top, so points outside the
// hull are easy to spot. Scale is pixels per unit.
func DrawHull2D(points, hull []Point, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, list := range [][]Point{points, hull} {
		for _, p := range list {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	if len(hull) > 0 {
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}
	return c
}

func SaveHull2D(path string, points, hull []Point, scale float64) error {
	return DrawHull2D(points, hull, scale).SavePNG(path)
}

// Print the rendered hull to the terminal (iTerm only) for debugging.
func DbgDraw(points, hull []Point, scale float64) error {
	const path = "/tmp/convexhull.png"
	if err := SaveHull2D(path, points, hull, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
