//go:build windows

package source

import (
	"io"
	"os"
)

// Windows has no unix.Mmap; read the file once instead. The ByteSource
// contract (immutable bytes for the session) is the same either way.
func mapFile(f *os.File, size int64) (*ByteSource, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &ByteSource{data: data, file: f}, nil
}

func (s *ByteSource) unmap() error {
	return nil
}
