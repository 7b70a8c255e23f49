package analyzer

import "testing"

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Kind
	}{
		{"jsonl", "events.jsonl", KindJSONL},
		{"ndjson", "stream.ndjson", KindJSONL},
		{"log", "server.log", KindLog},
		{"binary ext", "archive.zip", KindHex},
		{"plain", "notes.txt", KindText},
		{"uppercase ext", "SERVER.LOG", KindLog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.path, []byte("hello\n")); got.Kind != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.path, got.Kind, tt.want)
			}
		})
	}
}

func TestDetectByContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Kind
	}{
		{"empty", "", KindText},
		{"plain prose", "once upon a time\nthe end\n", KindText},
		{"nul bytes", "MZ\x00\x01\x02\x03", KindHex},
		{
			"json lines",
			`{"a":1}` + "\n" + `{"b":2}` + "\n" + `{"c":3}` + "\n",
			KindJSONL,
		},
		{
			"log lines",
			"2026-01-02 10:00:00 INFO up\n2026-01-02 10:00:01 ERROR down\n",
			KindLog,
		},
		{
			"mostly prose with one brace",
			"{\nnot json\nstill not\n",
			KindText,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect("noext", []byte(tt.content)); got.Kind != tt.want {
				t.Errorf("Detect = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestDetectEncoding(t *testing.T) {
	utf16le := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	res := Detect("noext", utf16le)
	if res.Kind != KindText || res.Encoding != EncodingUTF16LE {
		t.Errorf("utf16le result = %+v", res)
	}

	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	res = Detect("noext", bom)
	if res.Encoding != EncodingUTF8BOM {
		t.Errorf("utf8 bom result = %+v", res)
	}
}

func TestNormalize(t *testing.T) {
	utf16le := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	if got := string(Normalize(utf16le, EncodingUTF16LE)); got != "hi" {
		t.Errorf("utf16le normalized = %q, want %q", got, "hi")
	}

	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	if got := string(Normalize(bom, EncodingUTF8BOM)); got != "hi" {
		t.Errorf("utf8 bom normalized = %q, want %q", got, "hi")
	}

	plain := []byte("hi")
	if got := string(Normalize(plain, EncodingPlain)); got != "hi" {
		t.Errorf("plain normalized = %q", got)
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	// Callers unmap the original buffer after normalizing, so the result
	// must be backed by fresh memory for every non-plain encoding.
	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	got := Normalize(bom, EncodingUTF8BOM)
	bom[3] = 'X'
	if string(got) != "hi" {
		t.Errorf("normalized content aliased its input: %q", got)
	}

	missingBOM := []byte{'h', 'i'} // decode fails, fallback path
	got = Normalize(missingBOM, EncodingUTF16LE)
	missingBOM[0] = 'X'
	if len(got) != 2 || got[0] != 'h' {
		t.Errorf("fallback content aliased its input: %v", got)
	}
}
