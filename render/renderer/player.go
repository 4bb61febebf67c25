package renderer

import (
	"math"

	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/system"
)

// Ship glyphs by facing octant, starting east and turning clockwise in screen space
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// PlayerRenderer draws the ship, its shield and the Mirror Plate
type PlayerRenderer struct{}

func NewPlayerRenderer() *PlayerRenderer { return &PlayerRenderer{} }

func (r *PlayerRenderer) Render(ctx render.Context, buf *render.Buffer) {
	run := ctx.Run
	p := run.Player

	if p.Shield > 0 {
		ring(ctx, buf, p.Pos, p.Radius*2, '·', render.Fg(render.ColorShield))
	}
	if run.Overlock.PlateArmed && run.Overlock.PlateReady {
		ring(ctx, buf, p.Pos, system.PlateRadius(run), '□', render.Fg(render.ColorOrbit))
	}
	plot(ctx, buf, p.Pos, ShipGlyph(p.Dir.Angle()), render.Fg(render.ColorShip).Bold(true))
}

// ShipGlyph picks the arrow closest to angle
func ShipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}
