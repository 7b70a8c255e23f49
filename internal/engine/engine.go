// Package engine defines the uniform navigation contract every format
// engine implements, plus the engines themselves. The shell holds a single
// Engine value and never inspects which concrete engine it is.
package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/ui"
	"github.com/kk-code-lab/vat/internal/view"
)

// Engine is the contract between the shell and a format engine. No method
// may panic on out-of-range input; index arithmetic saturates or reports
// failure through the bool returns.
type Engine interface {
	// Name identifies the engine in the header.
	Name() string

	// HandleKey mutates internal state for one key event.
	HandleKey(ev *tcell.EventKey)

	// Render draws the visible window into the canvas. Implementations
	// re-establish the viewport invariant before reading any line.
	Render(c ui.Canvas, theme ui.Theme)

	// ContentHeight is the total display line count, used by the shell to
	// decide whether the content fits on one screen.
	ContentHeight() int

	// SupportsSearch lets the shell suppress the search prompt for engines
	// with no meaningful text search.
	SupportsSearch() bool

	ApplySearch(query string)
	ApplyFilter(query string)
	ClearFilter()

	// Selection is the current display index.
	Selection() int

	// SetVisualRange installs (or with nil clears) the display-index range
	// highlighted in visual mode.
	SetVisualRange(r *view.LineRange)

	// SelectedLine returns the plain text of the selected line for yanking.
	SelectedLine() (string, bool)

	// LinesRange joins the inclusive display-index range by newlines. The
	// order of a and b does not matter.
	LinesRange(a, b int) (string, bool)

	// Breadcrumbs summarizes position for the header.
	Breadcrumbs() string

	// StatusLine lists the engine's key hints for the footer.
	StatusLine() string

	// PlainLines renders the whole content as numbered plain text for
	// non-interactive paging.
	PlainLines(width int) []string

	// Close releases the engine's file mapping.
	Close() error
}
