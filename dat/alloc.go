package dat

func alignUp(x, align uint32) uint32 {
	mod := x & (align - 1)
	if mod != 0 {
		x += align - mod
	}
	return x
}

// growData ensures c.data can hold newSize bytes without reallocating
// again immediately, doubling from the current capacity (or a policy
// floor, on the first grow) until it is large enough. The actual make()
// is guarded with recover() so a request so large the runtime can't
// satisfy it becomes ErrAllocationFailure instead of a crash.
func (c *Container) growData(newSize uint32, floor uint32) (err error) {
	if uint32(cap(c.data)) >= newSize {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = ErrAllocationFailure
		}
	}()

	newCap := uint32(cap(c.data))
	if newCap == 0 {
		newCap = floor
	}
	for newCap < newSize {
		if newCap >= 1<<31 {
			newCap = newSize
			break
		}
		newCap *= 2
	}

	grown := make([]byte, len(c.data), newCap)
	copy(grown, c.data)
	c.data = grown

	return nil
}

// Alloc reserves size bytes within the data heap, 4-byte-aligning the
// current end of data first, and returns the offset of the new object.
// Contents are uninitialized (zeroed, as Go slices always are). size == 0
// is permitted and yields a zero-length object -- two such allocations
// may share an offset, which is why objects is allowed duplicates.
func (c *Container) Alloc(size uint32) (Ref, error) {
	if c == nil {
		return 0, ErrNullParam
	}

	objOffset := alignUp(uint32(len(c.data)), 4)
	newSize := objOffset + size
	if newSize < objOffset {
		return 0, ErrAllocationFailure
	}

	if err := c.growData(newSize, dataCapMutationFloor); err != nil {
		return 0, err
	}

	c.data = c.data[:newSize]
	c.objects = append(c.objects, objOffset)

	return objOffset, nil
}
