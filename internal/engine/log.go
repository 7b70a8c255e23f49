package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/source"
	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
	"github.com/kk-code-lab/vat/internal/view"
)

// Severity levels in increasing verbosity. Threshold n keeps lines at
// levels [0, n].
const (
	levelError = iota
	levelWarn
	levelInfo
	levelDebug
	levelUnknown = -1
)

var levelPattern = regexp.MustCompile(`(?i)\b(ERROR|ERR|FATAL|PANIC|WARNING|WARN|INFO|DEBUG|TRACE)\b`)

var levelNames = []string{"error", "warn", "info", "debug"}

// LogEngine views log files with level-aware filtering: number keys set a
// severity threshold, 'e' jumps to the next error.
type LogEngine struct {
	lineView
	src        *source.ByteSource
	index      *source.LineIndex
	levels     []int // per actual line, carried forward over unleveled lines
	counts     [4]int
	threshold  int // -1 when no threshold filter is active
	lastFilter string
}

// NewLogEngine classifies every line of src by severity. Lines without a
// recognizable level inherit the previous line's, so stack traces and
// wrapped messages stay with the entry that produced them.
func NewLogEngine(src *source.ByteSource) *LogEngine {
	index := source.NewLineIndex(src.Bytes())
	e := &LogEngine{
		src:       src,
		index:     index,
		levels:    make([]int, index.Len()),
		threshold: -1,
	}
	carried := levelUnknown
	for i := 0; i < index.Len(); i++ {
		line, ok := index.Line(i)
		if !ok {
			e.levels[i] = carried
			continue
		}
		if lvl, found := classifyLevel(line); found {
			carried = lvl
			e.counts[lvl]++
		}
		e.levels[i] = carried
	}
	e.lineView.src = e
	return e
}

func classifyLevel(line string) (int, bool) {
	m := levelPattern.FindString(line)
	if m == "" {
		return levelUnknown, false
	}
	switch strings.ToUpper(m) {
	case "ERROR", "ERR", "FATAL", "PANIC":
		return levelError, true
	case "WARN", "WARNING":
		return levelWarn, true
	case "INFO":
		return levelInfo, true
	default:
		return levelDebug, true
	}
}

func (e *LogEngine) lineCount() int { return e.index.Len() }

func (e *LogEngine) lineText(actual int) (string, bool) { return e.index.Line(actual) }

func (e *LogEngine) Name() string { return "log" }

func (e *LogEngine) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case '1', '2', '3', '4':
			e.setThreshold(int(ev.Rune() - '1'))
			return
		case '0':
			e.ClearFilter()
			return
		case 'e':
			e.nextError()
			return
		}
	}
	e.lineView.handleKey(ev)
}

// setThreshold installs a projection keeping lines at or above the given
// severity. A text filter applied afterwards replaces it, and vice versa.
func (e *LogEngine) setThreshold(threshold int) {
	e.threshold = threshold
	e.lastFilter = ""
	indices := view.BuildProjection(e.lineCount(), func(actual int) bool {
		lvl := e.levels[actual]
		return lvl != levelUnknown && lvl <= threshold
	})
	e.proj.Apply(indices)
	e.vp.Reset()
}

// nextError advances the cursor to the next error-level line, wrapping.
func (e *LogEngine) nextError() {
	count := e.displayCount()
	idx, ok := view.FindMatch(count, e.vp.Selection(), true, func(display int) bool {
		actual, ok := e.toActual(display)
		return ok && e.levels[actual] == levelError
	})
	if ok {
		e.vp.SetSelection(idx, count)
	}
}

func (e *LogEngine) Render(c ui.Canvas, theme ui.Theme) {
	e.renderInto(c, theme, textutil.DefaultTabWidth)
}

func (e *LogEngine) ContentHeight() int { return e.displayCount() }

func (e *LogEngine) SupportsSearch() bool { return true }

func (e *LogEngine) ApplySearch(query string) { e.applySearch(query) }

func (e *LogEngine) ApplyFilter(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	e.threshold = -1
	e.lastFilter = query
	e.applyFilter(query)
}

func (e *LogEngine) ClearFilter() {
	e.threshold = -1
	e.lastFilter = ""
	e.clearFilter()
}

func (e *LogEngine) Selection() int { return e.vp.Selection() }

func (e *LogEngine) SetVisualRange(r *view.LineRange) { e.setVisualRange(r) }

func (e *LogEngine) SelectedLine() (string, bool) { return e.selectedLine() }

func (e *LogEngine) LinesRange(a, b int) (string, bool) { return e.linesRange(a, b) }

func (e *LogEngine) Breadcrumbs() string {
	crumb := fmt.Sprintf("Ln %d/%d", e.vp.Selection()+1, e.displayCount())
	if e.counts[levelError] > 0 {
		crumb += fmt.Sprintf("  %d errors", e.counts[levelError])
	}
	if e.counts[levelWarn] > 0 {
		crumb += fmt.Sprintf("  %d warnings", e.counts[levelWarn])
	}
	switch {
	case e.threshold >= 0:
		crumb += fmt.Sprintf(" [%s+]", levelNames[e.threshold])
	case e.filterActive():
		crumb += " (filtered)"
	}
	return crumb
}

func (e *LogEngine) StatusLine() string {
	return "j/k move  1-4 level filter  0 all  e next error  / search  f filter  y yank  q quit"
}

func (e *LogEngine) PlainLines(width int) []string {
	return e.plainLines(width, textutil.DefaultTabWidth)
}

func (e *LogEngine) Close() error { return e.src.Close() }
