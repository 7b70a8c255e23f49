package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/textutil"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

func helpSections() []helpSection {
	return []helpSection{
		{
			title: "Navigation",
			entries: []helpEntry{
				{keys: "j/k, ↑/↓", desc: "Move up/down"},
				{keys: "gg", desc: "Jump to top"},
				{keys: "G", desc: "Jump to bottom"},
				{keys: "Ctrl+u/d", desc: "Half-page up/down"},
			},
		},
		{
			title: "Search & Filter",
			entries: []helpEntry{
				{keys: "/", desc: "Search"},
				{keys: "f", desc: "Filter (show only matches)"},
				{keys: "F", desc: "Clear filter"},
				{keys: "n/N", desc: "Next/previous match"},
			},
		},
		{
			title: "Actions",
			entries: []helpEntry{
				{keys: "yy", desc: "Copy current line"},
				{keys: "v", desc: "Visual line mode"},
				{keys: "Enter", desc: "Expand/collapse (jsonl)"},
			},
		},
		{
			title: "General",
			entries: []helpEntry{
				{keys: "?", desc: "Show/hide this help"},
				{keys: "q", desc: "Quit"},
			},
		},
	}
}

// HelpLines returns the formatted body of the help overlay.
func HelpLines() []string {
	lines := make([]string, 0, 24)
	for i, section := range helpSections() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			key := textutil.Sanitize(entry.keys)
			desc := textutil.Sanitize(entry.desc)
			lines = append(lines, fmt.Sprintf("  %-12s %s", key, desc))
		}
	}
	lines = append(lines, "", "Press ? or Esc to close")
	return lines
}

// DrawHelpOverlay renders the help box centered on the canvas.
func DrawHelpOverlay(c Canvas, theme Theme) {
	lines := HelpLines()

	boxW := 0
	for _, line := range lines {
		if w := textutil.DisplayWidth(line); w > boxW {
			boxW = w
		}
	}
	boxW += 4
	boxH := len(lines) + 2
	cw, ch := c.Size()
	if boxW > cw {
		boxW = cw
	}
	if boxH > ch {
		boxH = ch
	}
	if boxW < 2 || boxH < 2 {
		return
	}

	x0 := (cw - boxW) / 2
	y0 := (ch - boxH) / 2
	box := c.Sub(x0, y0, boxW, boxH)

	for y := 0; y < boxH; y++ {
		box.FillRow(0, y, theme.Content)
	}
	drawBoxBorder(box, boxW, boxH, theme.Border)
	box.DrawText(2, 0, " Help ", theme.Header)

	for i, line := range lines {
		if i+1 >= boxH-1 {
			break
		}
		style := theme.Content
		if isHelpTitle(i, lines) {
			style = theme.Header
		}
		box.DrawText(2, i+1, textutil.Truncate(line, boxW-4), style)
	}
}

func isHelpTitle(i int, lines []string) bool {
	if lines[i] == "" {
		return false
	}
	return i == 0 || lines[i-1] == ""
}

func drawBoxBorder(c Canvas, w, h int, style tcell.Style) {
	for x := 1; x < w-1; x++ {
		c.SetCell(x, 0, '─', style)
		c.SetCell(x, h-1, '─', style)
	}
	for y := 1; y < h-1; y++ {
		c.SetCell(0, y, '│', style)
		c.SetCell(w-1, y, '│', style)
	}
	c.SetCell(0, 0, '┌', style)
	c.SetCell(w-1, 0, '┐', style)
	c.SetCell(0, h-1, '└', style)
	c.SetCell(w-1, h-1, '┘', style)
}
