package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kk-code-lab/vat/internal/engine"
)

func openEngine(t *testing.T, name, content string) engine.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	eng, err := engine.Open(path, 4)
	if err != nil {
		t.Fatalf("open engine: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return eng
}

func TestInteractiveNever(t *testing.T) {
	eng := openEngine(t, "a.txt", "one\ntwo\n")
	if Interactive("never", eng) {
		t.Error(`paging "never" must not go interactive`)
	}
}

func TestFitsWindowBudgetsChrome(t *testing.T) {
	// A 10-row window leaves 6 content rows after the header, footer and
	// the two border rows.
	tests := []struct {
		content, height int
		want            bool
	}{
		{6, 10, true},
		{7, 10, false},
		{1, 5, true},
		{1, 4, false},
	}
	for _, tt := range tests {
		if got := fitsWindow(tt.content, tt.height); got != tt.want {
			t.Errorf("fitsWindow(%d, %d) = %v, want %v", tt.content, tt.height, got, tt.want)
		}
	}
}

func TestWritePlain(t *testing.T) {
	eng := openEngine(t, "a.txt", "one\ntwo\nthree\n")

	var b strings.Builder
	if err := WritePlain(&b, eng, 0); err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	want := "1 one\n2 two\n3 three\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

func TestWritePlainTruncates(t *testing.T) {
	eng := openEngine(t, "a.txt", "abcdefghij\n")

	var b strings.Builder
	if err := WritePlain(&b, eng, 6); err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	line := strings.TrimRight(b.String(), "\n")
	if len([]rune(line)) > 6 {
		t.Errorf("line %q exceeds width 6", line)
	}
	if !strings.HasSuffix(line, "…") {
		t.Errorf("truncated line %q should end with ellipsis", line)
	}
}
