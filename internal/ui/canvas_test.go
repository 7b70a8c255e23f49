package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func row(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range cells[y*w+x].Runes {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawTextClipsToCanvas(t *testing.T) {
	sim := newSim(t, 10, 3)
	c := NewCanvas(sim, 0, 0, 5, 3)

	c.DrawText(0, 0, "abcdefgh", tcell.StyleDefault)
	sim.Show()
	if got := row(sim, 0); got != "abcde" {
		t.Errorf("row = %q, want %q", got, "abcde")
	}
}

func TestDrawTextReturnsNextColumn(t *testing.T) {
	sim := newSim(t, 20, 3)
	c := NewCanvas(sim, 0, 0, 20, 3)

	if got := c.DrawText(2, 0, "abc", tcell.StyleDefault); got != 5 {
		t.Errorf("next x = %d, want 5", got)
	}
	// Wide runes advance two columns.
	if got := c.DrawText(0, 1, "日本", tcell.StyleDefault); got != 4 {
		t.Errorf("next x after wide runes = %d, want 4", got)
	}
}

func TestDrawTextSanitizesControlBytes(t *testing.T) {
	sim := newSim(t, 20, 2)
	c := NewCanvas(sim, 0, 0, 20, 2)

	c.DrawText(0, 0, "a\x1b[31mb", tcell.StyleDefault)
	sim.Show()
	if got := row(sim, 0); strings.ContainsRune(got, '\x1b') {
		t.Errorf("escape byte reached the screen: %q", got)
	}
}

func TestSubCanvasOffsetsAndClips(t *testing.T) {
	sim := newSim(t, 10, 4)
	c := NewCanvas(sim, 0, 0, 10, 4)
	sub := c.Sub(2, 1, 50, 50)

	if w, h := sub.Size(); w != 8 || h != 3 {
		t.Fatalf("sub size = %dx%d, want 8x3", w, h)
	}
	sub.DrawText(0, 0, "hi", tcell.StyleDefault)
	sim.Show()
	if got := row(sim, 1); got != "  hi" {
		t.Errorf("row 1 = %q, want %q", got, "  hi")
	}
}

func TestZeroHeightCanvasAbsorbsWrites(t *testing.T) {
	sim := newSim(t, 10, 2)
	c := NewCanvas(sim, 0, 0, 10, 0)

	c.DrawText(0, 0, "nope", tcell.StyleDefault)
	c.FillRow(0, 0, tcell.StyleDefault)
	sim.Show()
	if got := row(sim, 0); got != "" {
		t.Errorf("row 0 = %q, want empty", got)
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#ff0080")
	if !ok || c != tcell.NewRGBColor(0xff, 0x00, 0x80) {
		t.Errorf("ParseColor = %v, %v", c, ok)
	}
	if _, ok := ParseColor("red"); ok {
		t.Error("non-hex string should not parse")
	}
	if _, ok := ParseColor(""); ok {
		t.Error("empty string should not parse")
	}
}

func TestHelpLinesCoverSections(t *testing.T) {
	body := strings.Join(HelpLines(), "\n")
	for _, want := range []string{"Navigation", "Search & Filter", "Actions", "General", "yy", "gg"} {
		if !strings.Contains(body, want) {
			t.Errorf("help body missing %q", want)
		}
	}
}
