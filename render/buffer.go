package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

// Buffer is a frame compositor flushed to the screen once per frame
type Buffer struct {
	cells  []cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to background
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{r: ' ', style: StyleBackground}
	}
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Set writes r at x,y, out of bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

// Overlay writes r at x,y keeping the cell's current background
func (b *Buffer) Overlay(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i := y*b.width + x
	_, bg, _ := b.cells[i].style.Decompose()
	b.cells[i] = cell{r: r, style: style.Background(bg)}
}

// Get returns the rune and style at x,y
func (b *Buffer) Get(x, y int) (rune, tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, StyleBackground
	}
	c := b.cells[y*b.width+x]
	return c.r, c.style
}

// Text writes s left to right from x, returns the column after the last rune
func (b *Buffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// TextCenter writes s centered on the row
func (b *Buffer) TextCenter(y int, s string, style tcell.Style) {
	b.Text((b.width-utf8.RuneCountInString(s))/2, y, s, style)
}

// Fill paints a rectangle
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// FlushToScreen copies the frame to screen and shows it
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
	screen.Show()
}

// Line overlays r along the cells from x0,y0 to x1,y1
func (b *Buffer) Line(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	err := dx + dy
	for {
		b.Overlay(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
