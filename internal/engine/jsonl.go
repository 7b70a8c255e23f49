package engine

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/kk-code-lab/vat/internal/source"
	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
	"github.com/kk-code-lab/vat/internal/view"
)

// previewFields caps how many top-level fields a collapsed entry shows.
const previewFields = 5

// jsonlRow is one display row of the JSONL engine. A collapsed entry is a
// single preview row whose text is computed on first access; an expanded
// entry contributes one row per line of its pretty-printed form. Only the
// first row of an entry carries a file line.
type jsonlRow struct {
	entry   int
	file    int // actual file line, -1 for continuation rows
	text    string
	preview bool // text is derived lazily from the entry's raw line
}

// JSONLEngine views newline-delimited JSON as one entry per non-blank
// line, with collapsed field previews and per-entry expansion.
type JSONLEngine struct {
	lineView
	src        *source.ByteSource
	index      *source.LineIndex
	entries    []int // actual file line per entry
	invalid    int   // entries that failed to parse
	expanded   map[int]bool
	rows       []jsonlRow
	previews   map[int]string // memoized per entry
	lastFilter string
}

// NewJSONLEngine indexes the non-blank lines of src as entries. The engine
// takes ownership of src.
func NewJSONLEngine(src *source.ByteSource) *JSONLEngine {
	index := source.NewLineIndex(src.Bytes())
	e := &JSONLEngine{
		src:      src,
		index:    index,
		expanded: make(map[int]bool),
		previews: make(map[int]string),
	}
	for i := 0; i < index.Len(); i++ {
		line, ok := index.Line(i)
		if !ok || strings.TrimSpace(line) == "" {
			continue
		}
		e.entries = append(e.entries, i)
		if !gjson.Valid(line) {
			e.invalid++
		}
	}
	e.lineView.src = e
	e.rebuildRows()
	return e
}

// rebuildRows regenerates the display rows from the entry list and current
// expansion set, then re-applies any active filter.
func (e *JSONLEngine) rebuildRows() {
	e.rows = e.rows[:0]
	for entry, file := range e.entries {
		line, ok := e.index.Line(file)
		if !ok {
			continue
		}
		if e.expanded[entry] && gjson.Valid(line) {
			block := strings.TrimRight(string(pretty.Pretty([]byte(line))), "\n")
			for i, text := range strings.Split(block, "\n") {
				row := jsonlRow{entry: entry, file: -1, text: text}
				if i == 0 {
					row.file = file
				}
				e.rows = append(e.rows, row)
			}
			continue
		}
		e.rows = append(e.rows, jsonlRow{entry: entry, file: file, preview: true})
	}
	if e.lastFilter != "" {
		e.applyEntryFilter()
	}
}

// applyEntryFilter projects by matching the raw line of each row's entry,
// so an expanded entry is kept or dropped as a whole.
func (e *JSONLEngine) applyEntryFilter() {
	lowered := strings.ToLower(e.lastFilter)
	indices := view.BuildProjection(len(e.rows), func(row int) bool {
		line, ok := e.index.Line(e.entries[e.rows[row].entry])
		return ok && strings.Contains(strings.ToLower(line), lowered)
	})
	e.proj.Apply(indices)
	e.vp.Reset()
}

// entryPreview flattens a JSON value into a one-line field summary. Values
// that are not objects, including unparsable lines, show verbatim.
func entryPreview(line string) string {
	parsed := gjson.Parse(line)
	if !parsed.IsObject() {
		return line
	}
	var parts []string
	more := false
	parsed.ForEach(func(key, value gjson.Result) bool {
		if len(parts) >= previewFields {
			more = true
			return false
		}
		parts = append(parts, fmt.Sprintf("%s: %s", key.String(), value.String()))
		return true
	})
	summary := strings.Join(parts, "  ")
	if more {
		summary += "  …"
	}
	return summary
}

func (e *JSONLEngine) lineCount() int { return len(e.rows) }

// lineText resolves preview rows lazily so opening a huge file never
// parses entries the user does not scroll to, search or filter over.
func (e *JSONLEngine) lineText(actual int) (string, bool) {
	if actual < 0 || actual >= len(e.rows) {
		return "", false
	}
	row := e.rows[actual]
	if !row.preview {
		return row.text, true
	}
	if text, ok := e.previews[row.entry]; ok {
		return text, true
	}
	line, ok := e.index.Line(e.entries[row.entry])
	if !ok {
		return "", false
	}
	text := entryPreview(line)
	e.previews[row.entry] = text
	return text, true
}

func (e *JSONLEngine) lineNumber(actual int) (int, bool) {
	if actual < 0 || actual >= len(e.rows) || e.rows[actual].file < 0 {
		return 0, false
	}
	return e.rows[actual].file + 1, true
}

func (e *JSONLEngine) Name() string { return "jsonl" }

func (e *JSONLEngine) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter {
		e.toggleSelected()
		return
	}
	e.lineView.handleKey(ev)
}

// toggleSelected flips the expansion of the entry under the cursor and
// keeps the cursor on that entry's first row.
func (e *JSONLEngine) toggleSelected() {
	actual, ok := e.toActual(e.vp.Selection())
	if !ok {
		return
	}
	entry := e.rows[actual].entry
	line, ok := e.index.Line(e.entries[entry])
	if !ok || !gjson.Valid(line) {
		return
	}
	e.expanded[entry] = !e.expanded[entry]
	if !e.expanded[entry] {
		delete(e.expanded, entry)
	}
	e.rebuildRows()
	e.selectEntry(entry)
}

// selectEntry moves the cursor to the first display row of an entry, or
// leaves it clamped in place when the filter hides the entry.
func (e *JSONLEngine) selectEntry(entry int) {
	count := e.displayCount()
	for display := 0; display < count; display++ {
		actual, ok := e.toActual(display)
		if !ok {
			continue
		}
		if e.rows[actual].entry == entry && e.rows[actual].file >= 0 {
			e.vp.SetSelection(display, count)
			return
		}
	}
	e.vp.SetSelection(e.vp.Selection(), count)
}

func (e *JSONLEngine) Render(c ui.Canvas, theme ui.Theme) {
	e.renderInto(c, theme, textutil.DefaultTabWidth)
}

func (e *JSONLEngine) ContentHeight() int { return e.displayCount() }

func (e *JSONLEngine) SupportsSearch() bool { return true }

func (e *JSONLEngine) ApplySearch(query string) { e.applySearch(query) }

func (e *JSONLEngine) ApplyFilter(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	e.lastFilter = query
	e.applyEntryFilter()
}

func (e *JSONLEngine) ClearFilter() {
	e.lastFilter = ""
	e.clearFilter()
}

func (e *JSONLEngine) Selection() int { return e.vp.Selection() }

func (e *JSONLEngine) SetVisualRange(r *view.LineRange) { e.setVisualRange(r) }

// SelectedLine yanks the raw file line of the selected entry, not the
// preview, so yanked JSON stays valid.
func (e *JSONLEngine) SelectedLine() (string, bool) {
	actual, ok := e.toActual(e.vp.Selection())
	if !ok {
		return "", false
	}
	return e.index.Line(e.entries[e.rows[actual].entry])
}

// LinesRange yanks the raw file lines of the entries the display range
// touches. Like SelectedLine it bypasses previews and pretty-printed rows,
// and an expanded entry contributes its raw line once no matter how many
// of its rows the range covers.
func (e *JSONLEngine) LinesRange(a, b int) (string, bool) {
	r := view.LineRange{Anchor: a, Head: b}
	lo, hi := r.Normalized()
	count := e.displayCount()
	if lo >= count || count == 0 {
		return "", false
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= count {
		hi = count - 1
	}
	var lines []string
	lastEntry := -1
	for display := lo; display <= hi; display++ {
		actual, ok := e.toActual(display)
		if !ok {
			continue
		}
		entry := e.rows[actual].entry
		if entry == lastEntry {
			continue
		}
		lastEntry = entry
		if line, ok := e.index.Line(e.entries[entry]); ok {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func (e *JSONLEngine) Breadcrumbs() string {
	actual, ok := e.toActual(e.vp.Selection())
	entry := 0
	if ok {
		entry = e.rows[actual].entry + 1
	}
	crumb := fmt.Sprintf("Entry %d/%d", entry, len(e.entries))
	if e.invalid > 0 {
		crumb += fmt.Sprintf("  %d invalid", e.invalid)
	}
	if e.filterActive() {
		crumb += " (filtered)"
	}
	return crumb
}

func (e *JSONLEngine) StatusLine() string {
	return "j/k move  Enter expand  / search  f filter  v visual  y yank  ? help  q quit"
}

func (e *JSONLEngine) PlainLines(width int) []string {
	return e.plainLines(width, textutil.DefaultTabWidth)
}

func (e *JSONLEngine) Close() error { return e.src.Close() }
