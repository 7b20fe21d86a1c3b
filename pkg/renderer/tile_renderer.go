package renderer

import (
	"image"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Scene is the part of a scene the renderer drives
type Scene interface {
	GenerateRay(x, y float64, width, height int) core.Ray
	TraceRay(ray core.Ray, depth int) (core.Color, bool)
}

// TileRenderer traces the pixels of a tile
type TileRenderer struct {
	scene         Scene
	width, height int
	offsets       []Offset
}

// NewTileRenderer creates a tile renderer for a width x height image
func NewTileRenderer(scene Scene, width, height int, aa AAPattern) *TileRenderer {
	return &TileRenderer{
		scene:   scene,
		width:   width,
		height:  height,
		offsets: aa.Offsets(),
	}
}

// RenderTileBounds writes the color of every pixel in bounds into pixels,
// indexed [y][x] in image coordinates
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixels [][]core.Color) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels[y][x] = tr.renderPixel(x, y)
			stats.TotalSamples += len(tr.offsets)
		}
	}

	return stats
}

// renderPixel averages the samples of one pixel. Each sample is clamped
// before averaging.
func (tr *TileRenderer) renderPixel(x, y int) core.Color {
	var sum core.Color
	for _, o := range tr.offsets {
		ray := tr.scene.GenerateRay(float64(x)+o.X, float64(y)+o.Y, tr.width, tr.height)
		c, ok := tr.scene.TraceRay(ray, 0)
		if !ok {
			c = core.Black
		}
		sum = sum.Add(c.Regularize())
	}
	return sum.Multiply(1 / float64(len(tr.offsets)))
}
