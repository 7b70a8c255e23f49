package engine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
)

// lineNumberer lets a source override the gutter number for a row. A false
// return leaves the gutter blank, used for continuation rows that have no
// file line of their own.
type lineNumberer interface {
	lineNumber(actual int) (int, bool)
}

// rowNumber resolves the gutter number for an actual row.
func rowNumber(src lineSource, actual int) (int, bool) {
	if n, ok := src.(lineNumberer); ok {
		return n.lineNumber(actual)
	}
	return actual + 1, true
}

// gutterWidth returns the line-number column width for a file with total
// actual lines, including the trailing space.
func gutterWidth(total int) int {
	digits := 1
	for total >= 10 {
		digits++
		total /= 10
	}
	return digits + 1
}

// renderInto draws the visible window of the line view: actual line numbers
// in the gutter, the selection and visual rows highlighted, and matches of
// the last search query marked on unselected rows.
func (lv *lineView) renderInto(c ui.Canvas, theme ui.Theme, tabWidth int) {
	count := lv.displayCount()
	height := c.Height()
	lv.vp.Clamp(count, height)

	total := lv.src.lineCount()
	gutter := gutterWidth(total)
	lowered := strings.ToLower(lv.lastQuery)

	for row := 0; row < height; row++ {
		display := lv.vp.Scroll() + row
		if display >= count {
			c.FillRow(0, row, theme.Content)
			continue
		}
		actual, ok := lv.toActual(display)
		if !ok {
			c.FillRow(0, row, theme.Content)
			continue
		}
		text, _ := lv.src.lineText(actual)
		text = textutil.ExpandTabs(text, tabWidth)

		style := theme.Content
		selected := display == lv.vp.Selection()
		switch {
		case selected:
			style = theme.Selection
		case lv.inVisualRange(display):
			style = theme.Visual
		}

		if num, numbered := rowNumber(lv.src, actual); numbered {
			c.DrawText(0, row, fmt.Sprintf("%*d ", gutter-1, num), theme.LineNumber)
		} else {
			c.DrawText(0, row, strings.Repeat(" ", gutter), theme.LineNumber)
		}
		end := c.DrawText(gutter, row, text, style)
		c.FillRow(end, row, style)

		if lowered != "" && !selected {
			markMatches(c, row, gutter, text, lowered, theme.Match)
		}
	}
}

// markMatches overlays every occurrence of the lowered query in text with
// the match style. Matching runs over a case-folded copy whose byte
// positions are mapped back to the original through an offset table, since
// folding can change a rune's byte length and offsets into the folded
// string must never slice the original directly. Columns are measured in
// display cells so tabs and wide runes line up with the base draw.
func markMatches(c ui.Canvas, row, x int, text, lowered string, matchStyle tcell.Style) {
	var buf [utf8.UTFMax]byte
	folded := make([]byte, 0, len(text))
	// One original-byte offset per folded byte, plus the final boundary.
	back := make([]int, 0, len(text)+1)
	for i, r := range text {
		n := utf8.EncodeRune(buf[:], unicode.ToLower(r))
		for j := 0; j < n; j++ {
			back = append(back, i)
		}
		folded = append(folded, buf[:n]...)
	}
	back = append(back, len(text))

	haystack := string(folded)
	from := 0
	for {
		idx := strings.Index(haystack[from:], lowered)
		if idx < 0 {
			return
		}
		foldStart := from + idx
		foldEnd := foldStart + len(lowered)
		start, end := back[foldStart], back[foldEnd]
		col := x + textutil.DisplayWidth(text[:start])
		c.DrawText(col, row, text[start:end], matchStyle)
		from = foldEnd
	}
}

// plainLines renders the whole display content as numbered text rows for
// non-interactive output.
func (lv *lineView) plainLines(width, tabWidth int) []string {
	count := lv.displayCount()
	total := lv.src.lineCount()
	gutter := gutterWidth(total)
	out := make([]string, 0, count)
	for display := 0; display < count; display++ {
		actual, ok := lv.toActual(display)
		if !ok {
			continue
		}
		text, _ := lv.src.lineText(actual)
		text = textutil.ExpandTabs(text, tabWidth)
		var row string
		if num, numbered := rowNumber(lv.src, actual); numbered {
			row = fmt.Sprintf("%*d %s", gutter-1, num, text)
		} else {
			row = strings.Repeat(" ", gutter) + text
		}
		if width > 0 {
			row = textutil.Truncate(row, width)
		}
		out = append(out, row)
	}
	return out
}
