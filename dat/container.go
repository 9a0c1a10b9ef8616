package dat

// New returns an empty container: no allocations, no roots, no externs.
func New() *Container {
	return &Container{}
}

// Destroy releases every buffer owned by the container and resets it to
// the empty state. Safe to call more than once -- a second call re-zeros
// an already-zeroed container.
func (c *Container) Destroy() {
	c.data = nil
	c.relocTargets = nil
	c.rootInfo = nil
	c.externInfo = nil
	c.symbols = nil
	c.objects = nil
}

// DataSize returns the current size of the object heap in bytes.
func (c *Container) DataSize() uint32 {
	return uint32(len(c.data))
}

// RelocCount returns the number of recorded relocations.
func (c *Container) RelocCount() int {
	return len(c.relocTargets)
}

// RootCount returns the number of named roots.
func (c *Container) RootCount() int {
	return len(c.rootInfo)
}

// ExternCount returns the number of extern entries read from the file.
func (c *Container) ExternCount() int {
	return len(c.externInfo)
}

// ObjectCount returns the size of the derived object index.
func (c *Container) ObjectCount() int {
	return len(c.objects)
}

// Root returns the root entry at index, and false if index is out of range.
func (c *Container) Root(index int) (RootInfo, bool) {
	if index < 0 || index >= len(c.rootInfo) {
		return RootInfo{}, false
	}
	return c.rootInfo[index], true
}

// Extern returns the extern entry at index, and false if index is out of
// range. The core never resolves extern values; this is read-only access
// to what Import populated.
func (c *Container) Extern(index int) (ExternInfo, bool) {
	if index < 0 || index >= len(c.externInfo) {
		return ExternInfo{}, false
	}
	return c.externInfo[index], true
}

// Symbol returns the NUL-terminated string starting at off within the
// symbol pool, not including the terminator.
func (c *Container) Symbol(off SymbolRef) (string, error) {
	if int(off) > len(c.symbols) {
		return "", ErrOutOfBounds
	}
	end := off
	for end < uint32(len(c.symbols)) && c.symbols[end] != 0 {
		end++
	}
	if end == uint32(len(c.symbols)) {
		return "", ErrOutOfBounds
	}
	return string(c.symbols[off:end]), nil
}

// Objects returns the derived object-index snapshot. This index is rebuilt
// on Import from relocated pointer values plus root/extern offsets -- an
// object that is allocated but never referenced by a relocation, root, or
// extern will not reappear here after an Export/Import round trip. Callers
// needing a durable enumeration of every allocation should not rely on
// Objects surviving a round trip.
func (c *Container) Objects() []Ref {
	out := make([]Ref, len(c.objects))
	copy(out, c.objects)
	return out
}
