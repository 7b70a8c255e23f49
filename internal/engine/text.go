package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/source"
	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
	"github.com/kk-code-lab/vat/internal/view"
)

// TextEngine views any text file line by line over a mapped byte source.
type TextEngine struct {
	lineView
	src      *source.ByteSource
	index    *source.LineIndex
	tabWidth int
}

// NewTextEngine builds the line index over the source bytes. The engine
// takes ownership of src and releases it on Close.
func NewTextEngine(src *source.ByteSource, tabWidth int) *TextEngine {
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}
	e := &TextEngine{
		src:      src,
		index:    source.NewLineIndex(src.Bytes()),
		tabWidth: tabWidth,
	}
	e.lineView.src = e
	return e
}

func (e *TextEngine) lineCount() int { return e.index.Len() }

func (e *TextEngine) lineText(actual int) (string, bool) { return e.index.Line(actual) }

func (e *TextEngine) Name() string { return "text" }

func (e *TextEngine) HandleKey(ev *tcell.EventKey) {
	e.lineView.handleKey(ev)
}

func (e *TextEngine) Render(c ui.Canvas, theme ui.Theme) {
	e.renderInto(c, theme, e.tabWidth)
}

func (e *TextEngine) ContentHeight() int { return e.displayCount() }

func (e *TextEngine) SupportsSearch() bool { return true }

func (e *TextEngine) ApplySearch(query string) { e.applySearch(query) }

func (e *TextEngine) ApplyFilter(query string) { e.applyFilter(query) }

func (e *TextEngine) ClearFilter() { e.clearFilter() }

func (e *TextEngine) Selection() int { return e.vp.Selection() }

func (e *TextEngine) SetVisualRange(r *view.LineRange) { e.setVisualRange(r) }

func (e *TextEngine) SelectedLine() (string, bool) { return e.selectedLine() }

func (e *TextEngine) LinesRange(a, b int) (string, bool) { return e.linesRange(a, b) }

func (e *TextEngine) Breadcrumbs() string {
	count := e.displayCount()
	pos := fmt.Sprintf("Ln %d/%d", e.vp.Selection()+1, count)
	if e.filterActive() {
		return pos + fmt.Sprintf(" (filtered from %d)", e.lineCount())
	}
	return pos
}

func (e *TextEngine) StatusLine() string {
	return "j/k move  g/G top/bottom  / search  f filter  v visual  y yank  ? help  q quit"
}

func (e *TextEngine) PlainLines(width int) []string {
	return e.plainLines(width, e.tabWidth)
}

func (e *TextEngine) Close() error { return e.src.Close() }
