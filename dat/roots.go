package dat

// RootAdd inserts a new root at index (index == RootCount() appends),
// shifting subsequent roots right. The symbol's bytes plus a NUL
// terminator are appended to the symbol pool; dataOffset must be 4-byte
// aligned.
func (c *Container) RootAdd(index int, dataOffset Ref, symbol string) error {
	if c == nil {
		return ErrNullParam
	}
	if dataOffset&3 != 0 {
		return ErrInvalidAlignment
	}
	if index < 0 || index > len(c.rootInfo) {
		return ErrOutOfBounds
	}

	symOff := uint32(len(c.symbols))
	c.symbols = append(c.symbols, symbol...)
	c.symbols = append(c.symbols, 0)

	entry := RootInfo{DataOffset: dataOffset, SymbolOffset: symOff}
	c.rootInfo = append(c.rootInfo, RootInfo{})
	copy(c.rootInfo[index+1:], c.rootInfo[index:])
	c.rootInfo[index] = entry

	return nil
}

// RootRemove deletes the root at index, shifting subsequent roots left.
// The symbol bytes it referenced are left in place in the symbol pool --
// DAT files are small and roots are rare, so no compaction pass runs here.
func (c *Container) RootRemove(index int) error {
	if c == nil {
		return ErrNullParam
	}
	if index < 0 || index >= len(c.rootInfo) {
		return ErrOutOfBounds
	}

	c.rootInfo = append(c.rootInfo[:index], c.rootInfo[index+1:]...)
	return nil
}

// RootFind returns the data offset of the root named name, or NotFound if
// no root has that name.
func (c *Container) RootFind(name string) (Ref, error) {
	if c == nil {
		return 0, ErrNullParam
	}

	for _, root := range c.rootInfo {
		sym, err := c.Symbol(root.SymbolOffset)
		if err != nil {
			continue
		}
		if sym == name {
			return root.DataOffset, nil
		}
	}

	return 0, NotFound
}
