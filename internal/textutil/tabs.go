// Package textutil prepares raw line text for terminal display: tab
// expansion, width measurement and truncation, and neutralization of
// control characters that could otherwise inject escape sequences.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is used when no configured width applies.
const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces respecting terminal column
// width, so tab stops line up regardless of preceding wide runes.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
			continue
		}
		b.WriteRune(ru)
		column += runeColumns(ru)
	}
	return b.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeColumns(ru)
	}
	return width
}

// Truncate fits text into width columns, appending an ellipsis when
// anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = '…'
	ellipsisWidth := runewidth.RuneWidth(ellipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if width <= ellipsisWidth {
		return string(ellipsis)
	}

	target := width - ellipsisWidth
	var b strings.Builder
	used := 0
	for _, ru := range text {
		w := runeColumns(ru)
		if used+w > target {
			break
		}
		b.WriteRune(ru)
		used += w
	}
	b.WriteRune(ellipsis)
	return b.String()
}

func runeColumns(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		return 1
	}
	return w
}
