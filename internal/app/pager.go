package app

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/kk-code-lab/vat/internal/engine"
	"github.com/kk-code-lab/vat/internal/source"
)

// chromeRows is what the interactive layout spends on the header, the
// footer and the top and bottom border rows.
const chromeRows = 4

// Interactive decides whether to take over the terminal. "never" and a
// non-TTY stdout always print; "auto" prints when the content fits the
// terminal, the way git paging behaves.
func Interactive(paging string, eng engine.Engine) bool {
	if paging == "never" {
		return false
	}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	if paging == "always" {
		return true
	}
	_, height, err := term.GetSize(fd)
	if err != nil {
		return true
	}
	return !fitsWindow(eng.ContentHeight(), height)
}

// fitsWindow reports whether content lines fit in a window of the given
// height once the chrome has taken its share.
func fitsWindow(contentHeight, height int) bool {
	return contentHeight <= height-chromeRows
}

// WriteRaw streams the file's bytes to w untouched, the behavior for a
// piped stdout.
func WriteRaw(w io.Writer, path string) error {
	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	_, err = w.Write(src.Bytes())
	return err
}

// WritePlain prints the engine's numbered content to w, used for the
// non-interactive paths. A width of 0 leaves lines untruncated.
func WritePlain(w io.Writer, eng engine.Engine, width int) error {
	bw := bufio.NewWriter(w)
	for _, line := range eng.PlainLines(width) {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
