package engine

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/source"
	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
	"github.com/kk-code-lab/vat/internal/view"
)

// hexRowBytes is the number of source bytes rendered per row.
const hexRowBytes = 16

// HexEngine views binary files as a classic offset / hex / ASCII dump. Rows
// are synthesized from the byte source on demand, so the engine carries no
// index beyond the mapping itself.
type HexEngine struct {
	lineView
	src *source.ByteSource
}

// NewHexEngine wraps src in a hex dump view. The engine takes ownership of
// src.
func NewHexEngine(src *source.ByteSource) *HexEngine {
	e := &HexEngine{src: src}
	e.lineView.src = e
	return e
}

func (e *HexEngine) lineCount() int {
	n := e.src.Len()
	if n == 0 {
		return 1
	}
	return (n + hexRowBytes - 1) / hexRowBytes
}

func (e *HexEngine) lineText(actual int) (string, bool) {
	if actual < 0 || actual >= e.lineCount() {
		return "", false
	}
	data := e.src.Bytes()
	start := actual * hexRowBytes
	end := start + hexRowBytes
	if end > len(data) {
		end = len(data)
	}

	var hexCol, asciiCol strings.Builder
	for i := start; i < start+hexRowBytes; i++ {
		if i == start+hexRowBytes/2 {
			hexCol.WriteByte(' ')
		}
		if i >= end {
			hexCol.WriteString("   ")
			continue
		}
		b := data[i]
		fmt.Fprintf(&hexCol, "%02x ", b)
		if b >= 0x20 && b < 0x7f {
			asciiCol.WriteByte(b)
		} else {
			asciiCol.WriteByte('.')
		}
	}
	return fmt.Sprintf("%08x  %s |%s|", start, hexCol.String(), asciiCol.String()), true
}

// lineNumber blanks the gutter; rows already carry their byte offset.
func (e *HexEngine) lineNumber(actual int) (int, bool) { return 0, false }

func (e *HexEngine) Name() string { return "hex" }

func (e *HexEngine) HandleKey(ev *tcell.EventKey) {
	e.lineView.handleKey(ev)
}

func (e *HexEngine) Render(c ui.Canvas, theme ui.Theme) {
	e.renderInto(c, theme, textutil.DefaultTabWidth)
}

func (e *HexEngine) ContentHeight() int { return e.displayCount() }

// SupportsSearch matches against the rendered rows, so both hex pairs and
// printable ASCII runs are findable.
func (e *HexEngine) SupportsSearch() bool { return true }

func (e *HexEngine) ApplySearch(query string) { e.applySearch(query) }

func (e *HexEngine) ApplyFilter(query string) { e.applyFilter(query) }

func (e *HexEngine) ClearFilter() { e.clearFilter() }

func (e *HexEngine) Selection() int { return e.vp.Selection() }

func (e *HexEngine) SetVisualRange(r *view.LineRange) { e.setVisualRange(r) }

func (e *HexEngine) SelectedLine() (string, bool) { return e.selectedLine() }

func (e *HexEngine) LinesRange(a, b int) (string, bool) { return e.linesRange(a, b) }

func (e *HexEngine) Breadcrumbs() string {
	actual, ok := e.toActual(e.vp.Selection())
	offset := 0
	if ok {
		offset = actual * hexRowBytes
	}
	return fmt.Sprintf("0x%08x / %d bytes", offset, e.src.Len())
}

func (e *HexEngine) StatusLine() string {
	return "j/k move  g/G top/bottom  / search  v visual  y yank  ? help  q quit"
}

func (e *HexEngine) PlainLines(width int) []string {
	return e.plainLines(width, textutil.DefaultTabWidth)
}

func (e *HexEngine) Close() error { return e.src.Close() }
