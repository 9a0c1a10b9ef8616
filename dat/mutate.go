package dat

// lowerBound returns the index of the first element in refs that is >=
// target, or len(refs) if none is. Ordinary halving binary search.
func lowerBound(refs []Ref, target Ref) int {
	lo, hi := 0, len(refs)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if refs[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// RelocIdx returns the index of offset within the relocation table, or the
// index at which it would be inserted to keep the table sorted.
func (c *Container) RelocIdx(offset Ref) int {
	return lowerBound(c.relocTargets, offset)
}

// IsRelocSite reports whether offset is currently recorded as a
// relocation site.
func (c *Container) IsRelocSite(offset Ref) bool {
	if c == nil {
		return false
	}
	idx := c.RelocIdx(offset)
	return idx < len(c.relocTargets) && c.relocTargets[idx] == offset
}

// ReadU8 reads an unsigned byte at offset.
func (c *Container) ReadU8(offset Ref) (uint8, error) {
	if c == nil {
		return 0, ErrNullParam
	}
	if offset+1 > c.DataSize() {
		return 0, ErrOutOfBounds
	}
	return beReadU8(c.data, offset), nil
}

// ReadU16 reads a big-endian unsigned 16-bit value at offset. offset must
// be 2-byte aligned.
func (c *Container) ReadU16(offset Ref) (uint16, error) {
	if c == nil {
		return 0, ErrNullParam
	}
	if offset&1 != 0 {
		return 0, ErrInvalidAlignment
	}
	if offset+2 > c.DataSize() {
		return 0, ErrOutOfBounds
	}
	return beReadU16(c.data, offset), nil
}

// ReadU32 reads a big-endian unsigned 32-bit value at offset. offset must
// be 4-byte aligned.
func (c *Container) ReadU32(offset Ref) (uint32, error) {
	if c == nil {
		return 0, ErrNullParam
	}
	if offset&3 != 0 {
		return 0, ErrInvalidAlignment
	}
	if offset+4 > c.DataSize() {
		return 0, ErrOutOfBounds
	}
	return beReadU32(c.data, offset), nil
}

// ReadI16 and ReadI32 are the signed counterparts of ReadU16/ReadU32, used
// by the field accessor layer on top of this package.
func (c *Container) ReadI16(offset Ref) (int16, error) {
	if c == nil {
		return 0, ErrNullParam
	}
	if offset&1 != 0 {
		return 0, ErrInvalidAlignment
	}
	if offset+2 > c.DataSize() {
		return 0, ErrOutOfBounds
	}
	return beReadI16(c.data, offset), nil
}

func (c *Container) ReadI32(offset Ref) (int32, error) {
	if c == nil {
		return 0, ErrNullParam
	}
	if offset&3 != 0 {
		return 0, ErrInvalidAlignment
	}
	if offset+4 > c.DataSize() {
		return 0, ErrOutOfBounds
	}
	return beReadI32(c.data, offset), nil
}

// WriteU8 writes an unsigned byte at offset.
func (c *Container) WriteU8(offset Ref, v uint8) error {
	if c == nil {
		return ErrNullParam
	}
	if offset+1 > c.DataSize() {
		return ErrOutOfBounds
	}
	beWriteU8(c.data, offset, v)
	return nil
}

// WriteU16 writes a big-endian unsigned 16-bit value at offset. offset
// must be 2-byte aligned.
func (c *Container) WriteU16(offset Ref, v uint16) error {
	if c == nil {
		return ErrNullParam
	}
	if offset&1 != 0 {
		return ErrInvalidAlignment
	}
	if offset+2 > c.DataSize() {
		return ErrOutOfBounds
	}
	beWriteU16(c.data, offset, v)
	return nil
}

// WriteU32 writes a big-endian unsigned 32-bit value at offset. offset
// must be 4-byte aligned.
func (c *Container) WriteU32(offset Ref, v uint32) error {
	if c == nil {
		return ErrNullParam
	}
	if offset&3 != 0 {
		return ErrInvalidAlignment
	}
	if offset+4 > c.DataSize() {
		return ErrOutOfBounds
	}
	beWriteU32(c.data, offset, v)
	return nil
}

func (c *Container) WriteI16(offset Ref, v int16) error {
	if c == nil {
		return ErrNullParam
	}
	if offset&1 != 0 {
		return ErrInvalidAlignment
	}
	if offset+2 > c.DataSize() {
		return ErrOutOfBounds
	}
	beWriteI16(c.data, offset, v)
	return nil
}

func (c *Container) WriteI32(offset Ref, v int32) error {
	if c == nil {
		return ErrNullParam
	}
	if offset&3 != 0 {
		return ErrInvalidAlignment
	}
	if offset+4 > c.DataSize() {
		return ErrOutOfBounds
	}
	beWriteI32(c.data, offset, v)
	return nil
}

// ReadRef reads a pointer field -- the offset value stored at ptr -- as a
// plain ReadU32 with the same alignment/bounds rules.
func (c *Container) ReadRef(ptr Ref) (Ref, error) {
	return c.ReadU32(ptr)
}

// SetRef writes to at data[from] (big-endian) and records from as a
// relocation site if it wasn't already one. from must be 4-byte aligned
// and fit within the heap; to must be a valid offset within the heap.
// Idempotent when called repeatedly with the same arguments.
func (c *Container) SetRef(from, to Ref) error {
	if c == nil {
		return ErrNullParam
	}
	if from&3 != 0 {
		return ErrInvalidAlignment
	}
	if from+4 > c.DataSize() {
		return ErrOutOfBounds
	}
	if to >= c.DataSize() {
		return ErrOutOfBounds
	}

	idx := c.RelocIdx(from)
	if idx == len(c.relocTargets) || c.relocTargets[idx] != from {
		c.relocTargets = append(c.relocTargets, 0)
		copy(c.relocTargets[idx+1:], c.relocTargets[idx:])
		c.relocTargets[idx] = from
	}

	beWriteU32(c.data, from, to)
	return nil
}

// RemoveRef removes from from the relocation table if present. The bytes
// at data[from] are left untouched.
func (c *Container) RemoveRef(from Ref) error {
	if c == nil {
		return ErrNullParam
	}

	idx := c.RelocIdx(from)
	if idx < len(c.relocTargets) && c.relocTargets[idx] == from {
		c.relocTargets = append(c.relocTargets[:idx], c.relocTargets[idx+1:]...)
	}
	return nil
}

// ObjLocation returns the start offset and size of the object containing
// offset, found via binary search over the derived objects index. Fails
// with NotFound when offset precedes the first known object.
func (c *Container) ObjLocation(offset Ref) (start Ref, size uint32, err error) {
	if c == nil {
		return 0, 0, ErrNullParam
	}
	if len(c.objects) == 0 {
		return 0, 0, NotFound
	}

	idx := lowerBound(c.objects, offset)
	if idx == len(c.objects) {
		idx--
	}
	if c.objects[idx] > offset {
		if idx == 0 {
			return 0, 0, NotFound
		}
		idx--
	}
	if c.objects[idx] > offset {
		return 0, 0, NotFound
	}

	start = c.objects[idx]
	var end Ref
	if idx+1 < len(c.objects) {
		end = c.objects[idx+1]
	} else {
		end = c.DataSize()
	}

	return start, end - start, nil
}
