package source

import (
	"bytes"
	"unicode/utf8"
)

// LineIndex records the byte offset of every line start in a buffer. It is
// built with a single forward pass and afterwards answers line lookups in
// O(1) by slicing between consecutive offsets, without copying line bytes.
//
// An empty buffer indexes as exactly one zero-length line, so every open
// file has at least one addressable line.
type LineIndex struct {
	data    []byte
	offsets []int
}

// NewLineIndex scans data once and records offset 0 plus the offset
// following every newline that is not the final byte.
func NewLineIndex(data []byte) *LineIndex {
	offsets := make([]int, 1, 64)
	offsets[0] = 0

	pos := 0
	for {
		rel := bytes.IndexByte(data[pos:], '\n')
		if rel < 0 {
			break
		}
		next := pos + rel + 1
		if next >= len(data) {
			break
		}
		offsets = append(offsets, next)
		pos = next
	}

	return &LineIndex{data: data, offsets: offsets}
}

// Len reports the total number of lines.
func (ix *LineIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.offsets)
}

// Line returns the text of line idx with the trailing newline (and any
// preceding carriage return) stripped. The second return is false when idx
// is out of range or the line bytes are not valid UTF-8; callers treat such
// lines as unrenderable, never as a session-ending error.
func (ix *LineIndex) Line(idx int) (string, bool) {
	raw, ok := ix.lineBytes(idx)
	if !ok {
		return "", false
	}
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// LineBytes returns the raw bytes of line idx, terminator stripped, without
// UTF-8 validation. The slice aliases the underlying buffer.
func (ix *LineIndex) LineBytes(idx int) ([]byte, bool) {
	return ix.lineBytes(idx)
}

func (ix *LineIndex) lineBytes(idx int) ([]byte, bool) {
	if ix == nil || idx < 0 || idx >= len(ix.offsets) {
		return nil, false
	}
	start := ix.offsets[idx]
	end := len(ix.data)
	if idx+1 < len(ix.offsets) {
		end = ix.offsets[idx+1]
	}
	if end > start && ix.data[end-1] == '\n' {
		end--
	}
	if end > start && ix.data[end-1] == '\r' {
		end--
	}
	return ix.data[start:end], true
}
