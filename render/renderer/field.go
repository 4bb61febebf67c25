package renderer

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/system"
)

// FieldRenderer draws area effects under bodies: wells, pulses and beams
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer { return &FieldRenderer{} }

func (r *FieldRenderer) Render(ctx render.Context, buf *render.Buffer) {
	run := ctx.Run

	for _, w := range run.Wells {
		ring(ctx, buf, w.Pos, w.Radius, '∘', render.Fg(render.ColorWell))
		plot(ctx, buf, w.Pos, '@', render.Fg(render.ColorWell))
	}

	for _, p := range run.Pulses {
		color := render.ColorPulse
		if p.Kind == component.PulseHeal {
			color = render.ColorHeal
		}
		ring(ctx, buf, p.Pos, p.Radius, '○', render.Fg(color))
	}

	for _, w := range run.Weapons {
		if w.ID != content.CuttingBeam || w.Beam == nil {
			continue
		}
		if w.Beam.Ring {
			ring(ctx, buf, run.Player.Pos, system.RingRadius(run), '*', render.Fg(render.ColorBeam))
			continue
		}
		end := run.Player.Pos.Add(run.Player.Dir.Scale(w.Beam.Range))
		segment(ctx, buf, run.Player.Pos, end, '░', render.Fg(render.ColorBeam))
	}
}
