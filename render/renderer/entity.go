package renderer

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/physics"
	"github.com/lixenwraith/stardrift/render"
)

// Enemy glyph by radius band
const (
	glyphEnemySmall = 'x'
	glyphEnemy      = 'X'
	glyphEnemyLarge = 'W'
	glyphMarked     = '¤'
)

// EntityRenderer draws loot, enemies, projectiles and escorts
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer { return &EntityRenderer{} }

func (r *EntityRenderer) Render(ctx render.Context, buf *render.Buffer) {
	run := ctx.Run

	for _, o := range run.Orbs {
		if !o.Collected {
			plot(ctx, buf, o.Pos, '•', render.Fg(render.ColorXP))
		}
	}

	for _, e := range run.Enemies {
		if !e.Alive() {
			continue
		}
		style := render.Fg(render.HexColor(e.Color, render.ColorEnemy))
		if e.Stun > 0 {
			style = style.Dim(true)
		}
		glyph := enemyGlyph(e)
		if e.Mark > 0 {
			glyph = glyphMarked
		}
		plot(ctx, buf, e.Pos, glyph, style.Bold(e.Slow > 0))
	}

	for _, b := range run.Bullets {
		plot(ctx, buf, b.Pos, '∙', render.Fg(render.ColorBullet))
	}
	for _, m := range run.Missiles {
		plot(ctx, buf, m.Pos, '↟', render.Fg(render.ColorMissile))
	}

	for _, w := range run.Weapons {
		switch w.ID {
		case content.OrbitOrbs:
			if w.Has(component.FlagPlate) {
				continue
			}
			for i := 0; i < w.OrbCount; i++ {
				body := physics.OrbitPoint(run.Player.Pos, w.OrbitRadius, physics.SpreadAngle(w.OrbitAngle, i, w.OrbCount))
				plot(ctx, buf, body, 'o', render.Fg(render.ColorOrbit))
			}
		case content.KamikazeDrones:
			for _, d := range w.Drones {
				glyph := '^'
				if d.State == component.DroneDive {
					glyph = '»'
				}
				plot(ctx, buf, d.Pos, glyph, render.Fg(render.ColorDrone))
			}
		}
	}
}

func enemyGlyph(e *component.Enemy) rune {
	switch {
	case e.Radius >= 13:
		return glyphEnemyLarge
	case e.Radius >= 10:
		return glyphEnemy
	}
	return glyphEnemySmall
}
