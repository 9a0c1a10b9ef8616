//go:build !unix

package fileio

import "os"

// LoadFile falls back to a plain read on platforms without an mmap
// implementation wired up here. close is a no-op.
func LoadFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
