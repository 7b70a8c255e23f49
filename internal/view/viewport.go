// Package view holds the coordinate machinery shared by every engine:
// scroll/selection state, the filter projection from display space to
// actual line indices, wrap-around search and the visual-mode line range.
//
// Three index spaces are in play. An actual index is a line's position in
// the file. A display index is its position in the possibly filtered view.
// The viewport's selection and scroll both live in display space.
package view

import "github.com/gdamore/tcell/v2"

// Viewport tracks the selected display row and the first visible display
// row, plus the height of the last rendered window.
type Viewport struct {
	selection  int
	scroll     int
	lastHeight int
	pendingG   bool
}

// Selection returns the current selection in display space.
func (v *Viewport) Selection() int { return v.selection }

// Scroll returns the first visible display row.
func (v *Viewport) Scroll() int { return v.scroll }

// LastHeight returns the height recorded by the most recent Clamp.
func (v *Viewport) LastHeight() int { return v.lastHeight }

// SetSelection moves the selection, clamping into [0, displayCount).
func (v *Viewport) SetSelection(idx, displayCount int) {
	if displayCount <= 0 {
		v.selection = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= displayCount {
		idx = displayCount - 1
	}
	v.selection = idx
}

// Reset returns the viewport to the top. Used whenever the display space
// changes size underneath it (filter applied or cleared).
func (v *Viewport) Reset() {
	v.selection = 0
	v.scroll = 0
}

// Clamp re-establishes the render invariant for the given display count and
// window height: selection < displayCount and scroll <= selection <
// scroll+height. Called at the top of every render.
func (v *Viewport) Clamp(displayCount, height int) {
	v.lastHeight = height
	if displayCount <= 0 {
		v.selection = 0
		v.scroll = 0
		return
	}
	if v.selection >= displayCount {
		v.selection = displayCount - 1
	}
	if v.selection < 0 {
		v.selection = 0
	}
	if height <= 0 {
		return
	}
	if v.selection < v.scroll {
		v.scroll = v.selection
	} else if v.selection >= v.scroll+height {
		v.scroll = v.selection - (height - 1)
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

// halfPage is the jump distance for Ctrl+u / Ctrl+d.
func (v *Viewport) halfPage() int {
	half := v.lastHeight / 2
	if half < 1 {
		return 1
	}
	return half
}

// HandleKey applies a navigation key to the viewport and reports whether
// the key was consumed. The gg chord is an explicit flag: a first 'g' arms
// it, a second jumps to the top, and any other key disarms it.
func (v *Viewport) HandleKey(ev *tcell.EventKey, displayCount int) bool {
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'g' && ev.Modifiers()&tcell.ModCtrl == 0 {
		if v.pendingG {
			v.pendingG = false
			v.SetSelection(0, displayCount)
		} else {
			v.pendingG = true
		}
		return true
	}
	v.pendingG = false

	switch ev.Key() {
	case tcell.KeyDown:
		v.SetSelection(v.selection+1, displayCount)
		return true
	case tcell.KeyUp:
		v.SetSelection(v.selection-1, displayCount)
		return true
	case tcell.KeyCtrlD:
		v.SetSelection(v.selection+v.halfPage(), displayCount)
		return true
	case tcell.KeyCtrlU:
		v.SetSelection(v.selection-v.halfPage(), displayCount)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			v.SetSelection(v.selection+1, displayCount)
			return true
		case 'k':
			v.SetSelection(v.selection-1, displayCount)
			return true
		case 'G':
			v.SetSelection(displayCount-1, displayCount)
			return true
		}
	}
	return false
}
