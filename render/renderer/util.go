package renderer

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/vmath"
)

func vec(x, y float64) vmath.Vec2 { return vmath.Vec2{X: x, Y: y} }

// plot draws r at a world point when visible
func plot(ctx render.Context, buf *render.Buffer, p vmath.Vec2, r rune, style tcell.Style) {
	if x, y, ok := ctx.WorldToCell(p); ok {
		buf.Overlay(x, y, r, style)
	}
}

// ring traces a world-space circle, step count follows the on-screen circumference
func ring(ctx render.Context, buf *render.Buffer, center vmath.Vec2, radius float64, r rune, style tcell.Style) {
	steps := max(8, int(2*math.Pi*radius/parameter.CellWorldX))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		plot(ctx, buf, center.Add(vmath.FromAngle(a).Scale(radius)), r, style)
	}
}

// segment draws a world-space line clipped by the buffer
func segment(ctx render.Context, buf *render.Buffer, from, to vmath.Vec2, r rune, style tcell.Style) {
	x0, y0, _ := ctx.WorldToCell(from)
	x1, y1, _ := ctx.WorldToCell(to)
	buf.Line(x0, y0, x1, y1, r, style)
}
