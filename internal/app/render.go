package app

import (
	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
)

// render draws one full frame: header, engine content, footer, and on top
// of everything the help overlay when open.
func (app *Application) render() {
	w, h := app.screen.Size()
	root := ui.NewCanvas(app.screen, 0, 0, w, h)

	app.drawHeader(root)
	if h > 4 {
		app.drawBorder(root.Sub(0, 1, w, h-2))
		app.eng.Render(root.Sub(1, 2, w-2, h-4), app.theme)
	} else if h > 2 {
		app.eng.Render(root.Sub(0, 1, w, h-2), app.theme)
	}
	app.drawFooter(root)

	if app.showHelp {
		ui.DrawHelpOverlay(root, app.theme)
	}
	app.screen.Show()
}

// drawBorder frames the content area.
func (app *Application) drawBorder(c ui.Canvas) {
	w, h := c.Size()
	if w < 2 || h < 2 {
		return
	}
	style := app.theme.Border
	for x := 1; x < w-1; x++ {
		c.SetCell(x, 0, '─', style)
		c.SetCell(x, h-1, '─', style)
	}
	for y := 1; y < h-1; y++ {
		c.SetCell(0, y, '│', style)
		c.SetCell(w-1, y, '│', style)
	}
	c.SetCell(0, 0, '┌', style)
	c.SetCell(w-1, 0, '┐', style)
	c.SetCell(0, h-1, '└', style)
	c.SetCell(w-1, h-1, '┘', style)
}

func (app *Application) drawHeader(root ui.Canvas) {
	w := root.Width()
	title := app.title() + "  [" + app.eng.Name() + "]"
	end := root.DrawText(0, 0, textutil.Truncate(title, w), app.theme.Header)
	root.FillRow(end, 0, app.theme.Header)

	crumbs := app.eng.Breadcrumbs()
	if x := w - textutil.DisplayWidth(crumbs); x > end+2 {
		root.DrawText(x, 0, crumbs, app.theme.Header)
	}
}

func (app *Application) drawFooter(root ui.Canvas) {
	w, h := root.Size()
	if h < 2 {
		return
	}
	y := h - 1

	if app.prompt != nil {
		label := "/"
		if app.prompt.kind == promptFilter {
			label = "filter: "
		}
		end := root.DrawText(0, y, label+string(app.prompt.buffer), app.theme.Prompt)
		root.FillRow(end, y, app.theme.Prompt)
		return
	}
	if msg := app.bannerText(); msg != "" {
		end := root.DrawText(0, y, msg, app.theme.Banner)
		root.FillRow(end, y, app.theme.Banner)
		return
	}

	status := app.eng.StatusLine()
	if app.inVisual() {
		status = "VISUAL  y yank  v/Esc exit  " + status
	}
	end := root.DrawText(0, y, textutil.Truncate(status, w), app.theme.Footer)
	root.FillRow(end, y, app.theme.Footer)
}
