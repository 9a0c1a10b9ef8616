// Package fileio loads a DAT file into memory for dat.Import and writes an
// exported buffer back out, memory-mapping the backing file where the
// platform supports it instead of copying it onto the heap up front.
package fileio

import "os"

// LoadFile reads path and returns its bytes along with a close func to
// release any resources the platform-specific loader took out (an mmap on
// unix, a no-op elsewhere). close is always safe to call exactly once.
// Implemented per-platform in file_unix.go / file_other.go.

// WriteFile writes buf to path, replacing any existing file, matching the
// file mode the extraction CLI expects its output to carry.
func WriteFile(path string, buf []byte) error {
	return os.WriteFile(path, buf, 0o644)
}
