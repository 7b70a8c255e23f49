package view

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestClampInvariant(t *testing.T) {
	tests := []struct {
		name          string
		selection     int
		scroll        int
		displayCount  int
		height        int
		wantSelection int
		wantScroll    int
	}{
		{name: "in window unchanged", selection: 5, scroll: 3, displayCount: 100, height: 10, wantSelection: 5, wantScroll: 3},
		{name: "selection beyond count", selection: 50, scroll: 45, displayCount: 20, height: 10, wantSelection: 19, wantScroll: 19},
		{name: "selection above window", selection: 2, scroll: 5, displayCount: 100, height: 10, wantSelection: 2, wantScroll: 2},
		{name: "selection below window", selection: 30, scroll: 5, displayCount: 100, height: 10, wantSelection: 30, wantScroll: 21},
		{name: "empty display", selection: 7, scroll: 3, displayCount: 0, height: 10, wantSelection: 0, wantScroll: 0},
		{name: "single row window", selection: 4, scroll: 0, displayCount: 10, height: 1, wantSelection: 4, wantScroll: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{selection: tt.selection, scroll: tt.scroll}
			v.Clamp(tt.displayCount, tt.height)
			if v.Selection() != tt.wantSelection {
				t.Fatalf("selection = %d, want %d", v.Selection(), tt.wantSelection)
			}
			if v.Scroll() != tt.wantScroll {
				t.Fatalf("scroll = %d, want %d", v.Scroll(), tt.wantScroll)
			}
			if tt.displayCount > 0 && tt.height > 0 {
				if v.Selection() < v.Scroll() || v.Selection() >= v.Scroll()+tt.height {
					t.Fatalf("invariant violated: scroll=%d selection=%d height=%d",
						v.Scroll(), v.Selection(), tt.height)
				}
			}
		})
	}
}

func TestClampInvariantExhaustive(t *testing.T) {
	// Sweep small state spaces; after Clamp the window invariant must hold.
	for displayCount := 0; displayCount <= 8; displayCount++ {
		for height := 1; height <= 5; height++ {
			for selection := 0; selection <= 10; selection++ {
				for scroll := 0; scroll <= 10; scroll++ {
					v := Viewport{selection: selection, scroll: scroll}
					v.Clamp(displayCount, height)
					if displayCount == 0 {
						continue
					}
					if v.Selection() >= displayCount {
						t.Fatalf("selection %d >= displayCount %d", v.Selection(), displayCount)
					}
					if v.Selection() < v.Scroll() || v.Selection() >= v.Scroll()+height {
						t.Fatalf("window invariant violated: count=%d height=%d sel=%d scroll=%d",
							displayCount, height, v.Selection(), v.Scroll())
					}
				}
			}
		}
	}
}

func TestViewportLineMovement(t *testing.T) {
	var v Viewport
	v.Clamp(10, 5)

	v.HandleKey(keyRune('j'), 10)
	if v.Selection() != 1 {
		t.Fatalf("after j: selection = %d, want 1", v.Selection())
	}
	v.HandleKey(keyRune('k'), 10)
	v.HandleKey(keyRune('k'), 10)
	if v.Selection() != 0 {
		t.Fatalf("k saturates at top, got %d", v.Selection())
	}

	v.HandleKey(keyRune('G'), 10)
	if v.Selection() != 9 {
		t.Fatalf("after G: selection = %d, want 9", v.Selection())
	}
	v.HandleKey(keyRune('j'), 10)
	if v.Selection() != 9 {
		t.Fatalf("j saturates at bottom, got %d", v.Selection())
	}
}

func TestViewportHalfPage(t *testing.T) {
	var v Viewport
	v.Clamp(100, 20)

	v.HandleKey(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), 100)
	if v.Selection() != 10 {
		t.Fatalf("half page down = %d, want 10", v.Selection())
	}
	v.HandleKey(tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), 100)
	if v.Selection() != 0 {
		t.Fatalf("half page up = %d, want 0", v.Selection())
	}

	// Height 1 still jumps at least one line.
	v = Viewport{}
	v.Clamp(10, 1)
	v.HandleKey(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), 10)
	if v.Selection() != 1 {
		t.Fatalf("minimum jump = %d, want 1", v.Selection())
	}
}

func TestViewportGGChord(t *testing.T) {
	var v Viewport
	v.Clamp(50, 10)
	v.HandleKey(keyRune('G'), 50)
	if v.Selection() != 49 {
		t.Fatalf("setup: selection = %d", v.Selection())
	}

	// gg jumps to top.
	v.HandleKey(keyRune('g'), 50)
	if v.Selection() != 49 {
		t.Fatalf("first g must not move, got %d", v.Selection())
	}
	v.HandleKey(keyRune('g'), 50)
	if v.Selection() != 0 {
		t.Fatalf("gg should jump to top, got %d", v.Selection())
	}

	// An intervening key disarms the chord.
	v.HandleKey(keyRune('G'), 50)
	v.HandleKey(keyRune('g'), 50)
	v.HandleKey(keyRune('j'), 50)
	v.HandleKey(keyRune('g'), 50)
	if v.Selection() == 0 {
		t.Fatal("g after disarm must not jump to top")
	}
}
