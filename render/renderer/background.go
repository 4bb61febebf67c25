// Package renderer holds the run's SystemRenderer implementations
package renderer

import (
	"math"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
)

// StarfieldRenderer paints the zone palette and a world-anchored star grid so movement reads on an unbounded plane
type StarfieldRenderer struct{}

func NewStarfieldRenderer() *StarfieldRenderer { return &StarfieldRenderer{} }

func (r *StarfieldRenderer) Render(ctx render.Context, buf *render.Buffer) {
	pal := ctx.Run.Zone.Palette
	bg := render.StyleBackground.Background(render.HexColor(pal.BG, render.ColorBackground))
	far := bg.Foreground(render.HexColor(pal.StarsFar, render.ColorStar))
	near := bg.Foreground(render.HexColor(pal.StarsNear, render.ColorStar))

	buf.Fill(0, ctx.ViewportY, ctx.ScreenWidth, ctx.ViewportHeight, ' ', bg)

	topLeft := ctx.CellToWorld(0, ctx.ViewportY)
	bottomRight := ctx.CellToWorld(ctx.ScreenWidth-1, ctx.ViewportY+ctx.ViewportHeight-1)
	startX := math.Floor(topLeft.X/parameter.StarSpacing) * parameter.StarSpacing
	startY := math.Floor(topLeft.Y/parameter.StarSpacing) * parameter.StarSpacing
	for wy := startY; wy <= bottomRight.Y; wy += parameter.StarSpacing {
		for wx := startX; wx <= bottomRight.X; wx += parameter.StarSpacing {
			x, y, ok := ctx.WorldToCell(vec(wx, wy))
			if !ok {
				continue
			}
			// Checkerboard of near and far stars
			if int(math.Abs(wx+wy)/parameter.StarSpacing)%2 == 0 {
				buf.Set(x, y, '·', far)
			} else {
				buf.Set(x, y, '✦', near)
			}
		}
	}
}
