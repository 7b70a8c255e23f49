// Package source provides read-only, zero-copy access to file contents and
// a byte-offset line index built once at open time.
package source

import (
	"fmt"
	"os"
)

// ByteSource owns a read-only view of a file's bytes for the lifetime of a
// viewing session. On Unix the bytes are memory-mapped so arbitrarily large
// files never get copied into the heap. The view is immutable after Open.
type ByteSource struct {
	data   []byte
	file   *os.File
	mapped bool
}

// Open maps the file at path. Missing or unreadable paths fail immediately.
func Open(path string) (*ByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}

	src, err := mapFile(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return src, nil
}

// FromBytes wraps an in-memory buffer as a source. Used when content had
// to be transcoded and the mapping no longer reflects what is displayed.
func FromBytes(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// Bytes returns the underlying buffer. The slice is only valid until Close.
func (s *ByteSource) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data
}

// Len reports the size of the buffer in bytes.
func (s *ByteSource) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Close releases the mapping and the file handle. Line slices handed out
// earlier must not be used afterwards.
func (s *ByteSource) Close() error {
	if s == nil {
		return nil
	}
	err := s.unmap()
	s.data = nil
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	return err
}
