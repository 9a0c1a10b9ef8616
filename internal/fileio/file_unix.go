//go:build unix

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

// LoadFile memory-maps path read-only and hands back the mapped bytes
// directly -- Import copies data, reloc_targets, root_info, extern_info and
// symbols out of it immediately, so the mapping only needs to survive the
// one Import call. close unmaps it.
func LoadFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() error { return unix.Munmap(data) }
	return data, closeFn, nil
}
