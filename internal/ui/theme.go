package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the viewer colors. The zero theme is unusable; start from
// DefaultTheme and apply config overrides.
type Theme struct {
	Header     tcell.Style
	Border     tcell.Style
	LineNumber tcell.Style
	Content    tcell.Style
	Selection  tcell.Style
	Visual     tcell.Style
	Match      tcell.Style
	Footer     tcell.Style
	Prompt     tcell.Style
	Banner     tcell.Style
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Header:     tcell.StyleDefault.Bold(true),
		Border:     tcell.StyleDefault.Foreground(tcell.Color33),
		LineNumber: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Content:    tcell.StyleDefault,
		Selection:  tcell.StyleDefault.Background(tcell.Color33).Foreground(tcell.ColorWhite),
		Visual:     tcell.StyleDefault.Background(tcell.Color99).Foreground(tcell.ColorWhite),
		Match:      tcell.StyleDefault.Foreground(tcell.Color208).Bold(true),
		Footer:     tcell.StyleDefault.Foreground(tcell.ColorGray),
		Prompt:     tcell.StyleDefault.Background(tcell.Color39).Foreground(tcell.ColorBlack).Bold(true),
		Banner:     tcell.StyleDefault.Background(tcell.Color170).Foreground(tcell.ColorBlack).Bold(true),
	}
}

// ParseColor converts a "#rrggbb" hex string into a tcell color. The bool
// reports whether the string parsed.
func ParseColor(hex string) (tcell.Color, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, false
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
}
