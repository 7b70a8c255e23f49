package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func openPath(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestOpenUTF8BOMFile(t *testing.T) {
	// The BOM file is transcoded and the original mapping released, so
	// every read afterwards must work off the transcoded copy.
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello\nworld\n")...)
	e, err := Open(openPath(t, "bom.txt", content), 4)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	if got := e.ContentHeight(); got != 2 {
		t.Fatalf("height = %d, want 2", got)
	}
	if line, ok := e.SelectedLine(); !ok || line != "hello" {
		t.Errorf("selected line = %q, %v, want %q", line, ok, "hello")
	}
	if text, ok := e.LinesRange(0, 1); !ok || text != "hello\nworld" {
		t.Errorf("range = %q, %v", text, ok)
	}
}

func TestOpenUTF16LEFile(t *testing.T) {
	content := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0, 'y', 0, 'o', 0}
	e, err := Open(openPath(t, "wide.txt", content), 4)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	if got := e.ContentHeight(); got != 2 {
		t.Fatalf("height = %d, want 2", got)
	}
	if line, ok := e.SelectedLine(); !ok || line != "hi" {
		t.Errorf("selected line = %q, %v, want %q", line, ok, "hi")
	}
}

func TestOpenPicksEngineByExtension(t *testing.T) {
	tests := []struct {
		file    string
		content string
		want    string
	}{
		{"events.jsonl", `{"a":1}` + "\n", "jsonl"},
		{"server.log", "2026-01-02 10:00:00 ERROR down\n", "log"},
		{"notes.txt", "plain\n", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e, err := Open(openPath(t, tt.file, []byte(tt.content)), 4)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer e.Close()
			if e.Name() != tt.want {
				t.Errorf("engine = %q, want %q", e.Name(), tt.want)
			}
		})
	}
}

func TestOpenBinaryFallsBackToHex(t *testing.T) {
	e, err := Open(openPath(t, "blob", []byte{0x00, 0x01, 0x02, 0xFF}), 4)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()
	if e.Name() != "hex" {
		t.Errorf("engine = %q, want %q", e.Name(), "hex")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent"), 4); err == nil {
		t.Error("want error for missing file")
	}
}
