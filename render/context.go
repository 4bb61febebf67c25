package render

import (
	"math"

	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Context provides frame state for renderers, passed by value
// Renderers read the run and never mutate it
type Context struct {
	Run *engine.Run

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Arena viewport below the HUD line
	ViewportY      int
	ViewportHeight int

	// Camera is the world point at the viewport center, shake included
	Camera vmath.Vec2
}

// NewContext centers the camera on the ship and applies screen shake
// Shake jitter is drawn from jitter, nil disables it
func NewContext(run *engine.Run, width, height int, jitter *vmath.FastRand) Context {
	ctx := Context{
		Run:            run,
		ScreenWidth:    width,
		ScreenHeight:   height,
		ViewportY:      parameter.TopMargin,
		ViewportHeight: max(0, height-parameter.TopMargin-parameter.BottomMargin),
		Camera:         run.Player.Pos,
	}
	if run.Settings.ScreenShake && run.Shake.Time > 0 && jitter != nil {
		ctx.Camera = ctx.Camera.Add(vmath.Vec2{
			X: jitter.Range(-1, 1) * run.Shake.Magnitude,
			Y: jitter.Range(-1, 1) * run.Shake.Magnitude,
		})
	}
	return ctx
}

// WorldToCell maps a world point to a screen cell, ok is false outside the viewport
func (c Context) WorldToCell(p vmath.Vec2) (x, y int, ok bool) {
	d := p.Sub(c.Camera)
	x = c.ScreenWidth/2 + int(math.Floor(d.X/parameter.CellWorldX+0.5))
	y = c.ViewportY + c.ViewportHeight/2 + int(math.Floor(d.Y/parameter.CellWorldY+0.5))
	ok = x >= 0 && x < c.ScreenWidth && y >= c.ViewportY && y < c.ViewportY+c.ViewportHeight
	return x, y, ok
}

// CellToWorld maps a viewport cell center back to the world
func (c Context) CellToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: c.Camera.X + float64(x-c.ScreenWidth/2)*parameter.CellWorldX,
		Y: c.Camera.Y + float64(y-c.ViewportY-c.ViewportHeight/2)*parameter.CellWorldY,
	}
}
