package renderer

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/render"
)

// EffectRenderer draws transient lightning arcs and vacuum tethers
type EffectRenderer struct{}

func NewEffectRenderer() *EffectRenderer { return &EffectRenderer{} }

func (r *EffectRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for _, fx := range ctx.Run.Effects {
		switch fx.Kind {
		case component.EffectLightning:
			from := fx.From
			for _, to := range fx.Targets {
				segment(ctx, buf, from, to, '≈', render.Fg(render.ColorLightning))
				from = to
			}
		case component.EffectVacuum:
			for _, o := range ctx.Run.Orbs {
				if o.Pulled && !o.Collected {
					segment(ctx, buf, o.Pos, ctx.Run.Player.Pos, '·', render.Fg(render.ColorWell))
				}
			}
		}
	}
}
