// Package ui provides the drawing primitives shared by the shell and the
// engines: a clipped canvas over a tcell screen, the color theme, and the
// help overlay.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/vat/internal/textutil"
)

// Canvas is a rectangular draw target. All coordinates are relative to the
// rectangle and every write is clipped to it, so an engine handed a canvas
// can never draw outside its area. A zero-height canvas absorbs all writes.
type Canvas struct {
	screen tcell.Screen
	x, y   int
	w, h   int
}

// NewCanvas creates a canvas covering the given rectangle of screen.
func NewCanvas(screen tcell.Screen, x, y, w, h int) Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Canvas{screen: screen, x: x, y: y, w: w, h: h}
}

// Size returns the canvas dimensions in character cells.
func (c Canvas) Size() (int, int) { return c.w, c.h }

// Width returns the canvas width.
func (c Canvas) Width() int { return c.w }

// Height returns the canvas height.
func (c Canvas) Height() int { return c.h }

// Sub returns a canvas for a rectangle inside this one, clipped to it.
func (c Canvas) Sub(x, y, w, h int) Canvas {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+w > c.w {
		w = c.w - x
	}
	if y+h > c.h {
		h = c.h - y
	}
	return NewCanvas(c.screen, c.x+x, c.y+y, w, h)
}

// SetCell writes one rune at (x, y) if it lies within the canvas.
func (c Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if c.screen == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.screen.SetContent(c.x+x, c.y+y, r, nil, style)
}

// DrawText draws text starting at (x, y), sanitized and clipped to the
// canvas width, and returns the x position after the last cell written.
// Wide runes that would straddle the right edge are dropped.
func (c Canvas) DrawText(x, y int, text string, style tcell.Style) int {
	if c.screen == nil || y < 0 || y >= c.h {
		return x
	}
	for _, ru := range textutil.Sanitize(text) {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		if x+w > c.w {
			break
		}
		if x >= 0 {
			c.screen.SetContent(c.x+x, c.y+y, ru, nil, style)
			// Pad the shadow cell of a wide rune so stale content never
			// shows through.
			for i := 1; i < w; i++ {
				c.screen.SetContent(c.x+x+i, c.y+y, ' ', nil, style)
			}
		}
		x += w
	}
	return x
}

// FillRow paints every remaining cell of row y from column x with spaces.
func (c Canvas) FillRow(x, y int, style tcell.Style) {
	if c.screen == nil || y < 0 || y >= c.h {
		return
	}
	for ; x < c.w; x++ {
		if x < 0 {
			continue
		}
		c.screen.SetContent(c.x+x, c.y+y, ' ', nil, style)
	}
}
