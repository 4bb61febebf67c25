package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/status"
)

const (
	barWidth = 12
	keyHints = " wasd/hjkl/arrows move  1-9 choose  esc abandon  ^S sfx  ^G music  ^K shake  ^Q quit"
)

// HUDRenderer draws the status line and the key hint line
type HUDRenderer struct {
	// Cached metric pointers (zero-lock reads)
	statLive  *atomic.Int64
	statRate  *status.AtomicFloat
	statSFX   *atomic.Bool
	statMusic *atomic.Bool
}

// NewHUDRenderer caches counters from reg
func NewHUDRenderer(reg *status.Registry) *HUDRenderer {
	return &HUDRenderer{
		statLive:  reg.Ints.Get("enemy.live"),
		statRate:  reg.Floats.Get("spawn.rate"),
		statSFX:   reg.Bools.Get("audio.sfx"),
		statMusic: reg.Bools.Get("audio.music"),
	}
}

func (r *HUDRenderer) Render(ctx render.Context, buf *render.Buffer) {
	run := ctx.Run
	p := run.Player

	buf.Fill(0, 0, ctx.ScreenWidth, parameter.TopMargin, ' ', render.StylePanel)
	x := buf.Text(1, 0, "HP ", render.StylePanel)
	x = bar(buf, x, 0, p.HP/p.MaxHP, render.StylePanel.Foreground(render.ColorHPBar))
	x = buf.Text(x+1, 0, fmt.Sprintf("%.0f/%.0f", p.HP, p.MaxHP), render.StylePanel)
	if p.ShieldMax > 0 {
		x = buf.Text(x+1, 0, fmt.Sprintf("+%.0f", p.Shield), render.StylePanel.Foreground(render.ColorShield))
	}

	x = buf.Text(x+2, 0, fmt.Sprintf("LV %d ", run.Level), render.StylePanel.Foreground(render.ColorAccent))
	x = bar(buf, x, 0, run.XP/float64(max(1, run.XPToNext)), render.StylePanel.Foreground(render.ColorXPBar))

	x = buf.Text(x+2, 0, Clock(run.Time), render.StylePanel)
	x = buf.Text(x+2, 0, fmt.Sprintf("kills %d", run.Kills), render.StylePanel)
	x = buf.Text(x+2, 0, fmt.Sprintf("✦ %d", run.CurrencyEarned), render.StylePanel.Foreground(render.ColorAccent))
	buf.Text(x+2, 0, fmt.Sprintf("enemies %d  rate %.2fs", r.statLive.Load(), r.statRate.Get()), render.StylePanel.Foreground(render.ColorDim))

	zone := run.Zone.Name
	if r.statMusic.Load() {
		zone = "♫ " + zone
	}
	if !r.statSFX.Load() {
		zone = "sfx off  " + zone
	}
	buf.Text(ctx.ScreenWidth-len([]rune(zone))-1, 0, zone, render.StylePanel.Foreground(render.ColorDim))

	hintY := ctx.ScreenHeight - parameter.BottomMargin
	buf.Fill(0, hintY, ctx.ScreenWidth, parameter.BottomMargin, ' ', render.StylePanel)
	buf.Text(0, hintY, keyHints, render.StylePanel.Foreground(render.ColorDim))
}

// Clock formats seconds as mm:ss
func Clock(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// bar draws a fill gauge, returns the column after it
func bar(buf *render.Buffer, x, y int, frac float64, style tcell.Style) int {
	frac = max(0, min(1, frac))
	filled := int(frac*barWidth + 0.5)
	for i := 0; i < barWidth; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		buf.Set(x+i, y, r, style)
	}
	return x + barWidth
}
