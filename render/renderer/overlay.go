package renderer

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
)

// OverlayRenderer draws the pending decision panel
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer { return &OverlayRenderer{} }

func (r *OverlayRenderer) Render(ctx render.Context, buf *render.Buffer) {
	ov := ctx.Run.Overlay
	if ov == nil {
		return
	}

	lines := overlayLines(ctx.Run, ov)
	w := min(parameter.OverlayWidth, ctx.ScreenWidth)
	h := len(lines) + 2
	x0 := (ctx.ScreenWidth - w) / 2
	y0 := max(parameter.TopMargin, (ctx.ScreenHeight-h)/2)

	buf.Fill(x0, y0, w, h, ' ', render.StylePanel)
	for i, l := range lines {
		buf.Text(x0+2, y0+1+i, clip(l.text, w-4), l.style)
	}
}

type line struct {
	text  string
	style tcell.Style
}

func overlayLines(run *engine.Run, ov *engine.Overlay) []line {
	title := render.StylePanel.Foreground(render.ColorAccent).Bold(true)
	text := render.StylePanel
	dim := render.StylePanel.Foreground(render.ColorDim)

	lines := []line{{ov.Title, title}, {"", text}}
	if ov.Kind == engine.OverlaySummary {
		lines = append(lines,
			line{fmt.Sprintf("Time      %s", Clock(run.Time)), text},
			line{fmt.Sprintf("Kills     %d", run.Kills), text},
			line{fmt.Sprintf("Level     %d", run.Level), text},
			line{fmt.Sprintf("Starbits  +%d", run.CurrencyEarned), text.Foreground(render.ColorAccent)},
			line{"", text},
		)
	}
	for i, c := range ov.Choices {
		lines = append(lines, line{fmt.Sprintf("[%d] %s", i+1, c.Label), text})
		if c.Desc != "" {
			lines = append(lines, line{"    " + c.Desc, dim})
		}
	}
	return lines
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
