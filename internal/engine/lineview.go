package engine

import (
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/view"
)

// lineSource is the minimal surface an engine exposes to the shared
// viewport core: a line count and plain text per actual line. The text is
// what search, filter and yank operate on.
type lineSource interface {
	lineCount() int
	lineText(actual int) (string, bool)
}

// lineView bundles the viewport, filter projection, search state and
// visual range every line-oriented engine shares. Engines embed it and
// delegate the contract methods to it.
type lineView struct {
	src       lineSource
	vp        view.Viewport
	proj      view.Projection
	lastQuery string
	visual    *view.LineRange
}

func (lv *lineView) displayCount() int {
	return lv.proj.Count(lv.src.lineCount())
}

func (lv *lineView) toActual(display int) (int, bool) {
	return lv.proj.ToActual(display, lv.src.lineCount())
}

// displayText resolves a display row to its line text.
func (lv *lineView) displayText(display int) (string, bool) {
	actual, ok := lv.toActual(display)
	if !ok {
		return "", false
	}
	return lv.src.lineText(actual)
}

func (lv *lineView) matchesQuery(display int, lowered string) bool {
	text, ok := lv.displayText(display)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(text), lowered)
}

// applySearch stores the query and advances to the first match after the
// current selection. A query with no matches leaves the selection alone.
func (lv *lineView) applySearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	lv.lastQuery = query
	lv.searchNext(true)
}

// searchNext repeats the stored query in the given direction.
func (lv *lineView) searchNext(forward bool) {
	if lv.lastQuery == "" {
		return
	}
	lowered := strings.ToLower(lv.lastQuery)
	count := lv.displayCount()
	idx, ok := view.FindMatch(count, lv.vp.Selection(), forward, func(display int) bool {
		return lv.matchesQuery(display, lowered)
	})
	if !ok {
		slog.Debug("search found no match", "query", lv.lastQuery)
		return
	}
	lv.vp.SetSelection(idx, count)
}

// applyFilter replaces the projection with the lines containing query,
// case-insensitively, and resets the viewport to the top.
func (lv *lineView) applyFilter(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	lowered := strings.ToLower(query)
	total := lv.src.lineCount()
	indices := view.BuildProjection(total, func(actual int) bool {
		text, ok := lv.src.lineText(actual)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(text), lowered)
	})
	slog.Debug("filter applied", "query", query, "matches", len(indices), "total", total)
	lv.proj.Apply(indices)
	lv.vp.Reset()
}

func (lv *lineView) clearFilter() {
	if !lv.proj.Active() {
		return
	}
	lv.proj.Clear()
	lv.vp.Reset()
}

// handleKey covers the navigation keys shared by all line engines,
// including repeat search. Returns false for keys the engine must handle
// itself.
func (lv *lineView) handleKey(ev *tcell.EventKey) bool {
	if lv.vp.HandleKey(ev, lv.displayCount()) {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'n':
			lv.searchNext(true)
			return true
		case 'N':
			lv.searchNext(false)
			return true
		}
	}
	return false
}

func (lv *lineView) selectedLine() (string, bool) {
	return lv.displayText(lv.vp.Selection())
}

// linesRange joins the inclusive display range [a, b] (in either order) by
// newlines. Rows that fail to resolve are skipped; an empty result reports
// false.
func (lv *lineView) linesRange(a, b int) (string, bool) {
	r := view.LineRange{Anchor: a, Head: b}
	lo, hi := r.Normalized()
	count := lv.displayCount()
	if lo >= count || count == 0 {
		return "", false
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= count {
		hi = count - 1
	}
	lines := make([]string, 0, hi-lo+1)
	for display := lo; display <= hi; display++ {
		if text, ok := lv.displayText(display); ok {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func (lv *lineView) setVisualRange(r *view.LineRange) {
	lv.visual = r
}

// inVisualRange reports whether a display row is highlighted.
func (lv *lineView) inVisualRange(display int) bool {
	return lv.visual != nil && lv.visual.Contains(display)
}

func (lv *lineView) filterActive() bool {
	return lv.proj.Active()
}
