package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// redrawInterval bounds how stale the banner and clock-driven chrome can
// get between input events.
const redrawInterval = 200 * time.Millisecond

// Run enters the event loop and blocks until the user quits. The screen
// and the engine are both released before returning.
func (app *Application) Run() error {
	defer app.screen.Fini()
	defer func() { _ = app.eng.Close() }()

	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	app.render()
	for !app.quit {
		select {
		case ev := <-events:
			app.handleEvent(ev)
		case <-ticker.C:
		}
		app.render()
	}
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		app.handleKey(ev)
	case *tcell.EventResize:
		app.screen.Sync()
	}
}

// handleKey routes one key through the mode stack: help overlay, then the
// prompt, then shell chords, then the engine.
func (app *Application) handleKey(ev *tcell.EventKey) {
	if app.showHelp {
		app.showHelp = false
		return
	}
	if app.prompt != nil {
		app.handlePromptKey(ev)
		return
	}

	// A pending 'y' either completes the yy chord or is dropped.
	if app.pendingY {
		app.pendingY = false
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'y' {
			app.yankSelection()
			return
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		switch {
		case app.inVisual():
			app.exitVisual()
		default:
			app.eng.ClearFilter()
		}
		return
	case tcell.KeyCtrlC:
		app.quit = true
		return
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			app.quit = true
			return
		case '?':
			app.showHelp = true
			return
		case '/':
			if app.eng.SupportsSearch() {
				app.prompt = &prompt{kind: promptSearch}
			}
			return
		case 'f':
			app.prompt = &prompt{kind: promptFilter}
			return
		case 'F':
			app.eng.ClearFilter()
			app.setBanner("Filter cleared")
			return
		case 'v':
			if app.inVisual() {
				app.exitVisual()
			} else {
				app.enterVisual()
			}
			return
		case 'y':
			if app.inVisual() {
				app.yankVisual()
			} else {
				app.pendingY = true
			}
			return
		}
	}

	app.eng.HandleKey(ev)
	app.syncVisual()
}

func (app *Application) handlePromptKey(ev *tcell.EventKey) {
	p := app.prompt
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.prompt = nil
	case tcell.KeyCtrlU:
		p.buffer = p.buffer[:0]
	case tcell.KeyEnter:
		query := string(p.buffer)
		app.prompt = nil
		if p.kind == promptSearch {
			app.eng.ApplySearch(query)
		} else {
			app.eng.ApplyFilter(query)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.buffer) > 0 {
			p.buffer = p.buffer[:len(p.buffer)-1]
		}
	case tcell.KeyRune:
		p.buffer = append(p.buffer, ev.Rune())
	}
}
