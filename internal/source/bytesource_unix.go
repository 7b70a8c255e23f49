//go:build !windows

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapFile(f *os.File, size int64) (*ByteSource, error) {
	if size == 0 {
		// Zero-length mappings are rejected by the kernel.
		return &ByteSource{file: f}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &ByteSource{data: data, file: f, mapped: true}, nil
}

func (s *ByteSource) unmap() error {
	if !s.mapped || s.data == nil {
		return nil
	}
	s.mapped = false
	return unix.Munmap(s.data)
}
