package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ChessBoard is an infinite plane shaded in alternating square cells
type ChessBoard struct {
	Plane    core.Plane
	CellSize float64
	Black    core.Shader
	White    core.Shader

	primary, secondary core.Vec3
}

// NewChessBoard creates a chessboard on plane with cells of the given size
func NewChessBoard(plane core.Plane, cellSize float64, black, white core.Shader) *ChessBoard {
	return &ChessBoard{
		Plane:     plane,
		CellSize:  cellSize,
		Black:     black,
		White:     white,
		primary:   plane.PrimaryAxis(),
		secondary: plane.SecondaryAxis(),
	}
}

// Intersect hits the board plane from either side
func (c *ChessBoard) Intersect(ray core.Ray) (core.Hit, bool) {
	pos, ok := c.Plane.Intersect(ray)
	if !ok {
		return core.Hit{}, false
	}
	return core.Hit{Pos: pos, Norm: c.Plane.N}, true
}

// ConstNormal reports none so the board is never culled
func (c *ChessBoard) ConstNormal() (core.Vec3, bool) {
	return core.Vec3{}, false
}

// Bound reports none for the infinite plane
func (c *ChessBoard) Bound() (core.Bound, bool) {
	return nil, false
}

// IsBlack reports which cell pos falls in
func (c *ChessBoard) IsBlack(pos core.Vec3) bool {
	local := pos.Subtract(c.Plane.R0)
	u := math.Floor(local.Dot(c.primary) / c.CellSize)
	v := math.Floor(local.Dot(c.secondary) / c.CellSize)
	return math.Mod(u+v, 2) == 0
}

// Render delegates to the shader of the cell containing the hit
func (c *ChessBoard) Render(t core.Tracer, i core.Incidence) (core.Color, bool) {
	if c.IsBlack(i.Hit.Pos) {
		return c.Black.Render(t, i)
	}
	return c.White.Render(t, i)
}
