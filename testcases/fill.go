package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Shape:  Polygons([]vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Shape:  fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Shape:  Polygons(rectPoly(10, 10, 44, 44)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "octagon",
		Shape:  Polygons(regularPolygon(32, 32, 24, 8)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "open_triangle",
		Shape:  openTriangle(8, 56, 32, 4, 56, 56),
		Width:  64,
		Height: 64,
	},
}

// fivePointStar builds a five-pointed star (self-intersecting).
// With the even-odd rule the central pentagon is left unfilled.
func fivePointStar(cx, cy, r float64) path.Path {
	corners := regularPolygon(cx, cy, r, 5)

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	pts := make([]vec.Vec2, len(order))
	for i, j := range order {
		pts[i] = corners[j]
	}
	return Polygons(pts)
}

// openTriangle builds a triangle without a final ClosePath command.
func openTriangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}
