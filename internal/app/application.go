// Package app is the interactive shell: it owns the terminal, routes keys
// between its own modes (prompt, visual, help) and the engine, and talks to
// the system clipboard.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/vat/internal/config"
	"github.com/kk-code-lab/vat/internal/engine"
	"github.com/kk-code-lab/vat/internal/ui"
	"github.com/kk-code-lab/vat/internal/view"
)

const bannerDuration = 2 * time.Second

type promptKind int

const (
	promptSearch promptKind = iota
	promptFilter
)

type prompt struct {
	kind   promptKind
	buffer []rune
}

// Application drives one viewing session over a single engine.
type Application struct {
	screen tcell.Screen
	eng    engine.Engine
	theme  ui.Theme
	path   string

	prompt       *prompt
	visualAnchor int // -1 when visual mode is off
	pendingY     bool
	showHelp     bool

	banner      string
	bannerUntil time.Time

	// copyText is swappable for tests; the default shells out to the
	// detected clipboard command. Nil means no clipboard is available.
	copyText func(string) error

	quit bool
}

// NewApplication initializes the terminal and wires the engine in. The
// caller hands over ownership of eng; Close happens when Run returns.
func NewApplication(path string, eng engine.Engine, cfg config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	app := newApplication(screen, path, eng, cfg)
	if cmd, ok := detectClipboard(); ok {
		app.copyText = func(text string) error { return runClipboard(cmd, text) }
	}
	return app, nil
}

func newApplication(screen tcell.Screen, path string, eng engine.Engine, cfg config.Config) *Application {
	return &Application{
		screen:       screen,
		eng:          eng,
		theme:        cfg.Theme.ApplyTheme(ui.DefaultTheme()),
		path:         path,
		visualAnchor: -1,
	}
}

func (app *Application) setBanner(msg string) {
	app.banner = msg
	app.bannerUntil = time.Now().Add(bannerDuration)
}

func (app *Application) bannerText() string {
	if app.banner == "" || time.Now().After(app.bannerUntil) {
		return ""
	}
	return app.banner
}

func (app *Application) title() string {
	return filepath.Base(app.path)
}

// enterVisual anchors visual mode at the current selection.
func (app *Application) enterVisual() {
	app.visualAnchor = app.eng.Selection()
	app.syncVisual()
}

func (app *Application) exitVisual() {
	app.visualAnchor = -1
	app.eng.SetVisualRange(nil)
}

func (app *Application) inVisual() bool { return app.visualAnchor >= 0 }

// syncVisual pushes the anchor-to-cursor range into the engine after every
// movement while visual mode is on.
func (app *Application) syncVisual() {
	if !app.inVisual() {
		return
	}
	r := view.LineRange{Anchor: app.visualAnchor, Head: app.eng.Selection()}
	app.eng.SetVisualRange(&r)
}

func (app *Application) yankSelection() {
	text, ok := app.eng.SelectedLine()
	if !ok {
		app.setBanner("Nothing to yank")
		return
	}
	app.copyToClipboard(text, 1)
}

func (app *Application) yankVisual() {
	r := view.LineRange{Anchor: app.visualAnchor, Head: app.eng.Selection()}
	text, ok := app.eng.LinesRange(r.Anchor, r.Head)
	app.exitVisual()
	if !ok {
		app.setBanner("Nothing to yank")
		return
	}
	app.copyToClipboard(text, r.Len())
}

func (app *Application) copyToClipboard(text string, lines int) {
	if app.copyText == nil {
		app.setBanner("No clipboard command found")
		return
	}
	if err := app.copyText(text); err != nil {
		app.setBanner("Clipboard error: " + err.Error())
		return
	}
	if lines == 1 {
		app.setBanner("Yanked 1 line")
	} else {
		app.setBanner(fmt.Sprintf("Yanked %d lines", lines))
	}
}
