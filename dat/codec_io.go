package dat

import "sort"

// Import parses a DAT file buffer into a fresh Container. data, the three
// side-tables, and the symbol pool are copied out of file; the three
// tables are byte-swapped to host-endian and sorted (reloc_targets
// ascending, root_info/extern_info by DataOffset); the derived objects
// index is computed from the union of relocated pointer values and every
// root/extern data offset.
//
// Fails with ErrInvalidSize if file is shorter than its own declared
// file_size header field.
func Import(file []byte) (*Container, error) {
	if file == nil {
		return nil, ErrNullParam
	}
	if uint32(len(file)) < headerSize {
		return nil, ErrInvalidSize
	}

	fileSize := beReadU32(file, headerFileSizeOff)
	if fileSize > uint32(len(file)) {
		return nil, ErrInvalidSize
	}

	dataSize := beReadU32(file, headerDataSizeOff)
	relocCount := beReadU32(file, headerRelocCntOff)
	rootCount := beReadU32(file, headerRootCntOff)
	externCount := beReadU32(file, headerExternCntOff)

	dataOff := uint32(headerSize)
	relocOff := dataOff + dataSize
	relocSize := relocCount * refSize
	rootOff := relocOff + relocSize
	rootSize := rootCount * rootInfoSize
	externOff := rootOff + rootSize
	externSize := externCount * rootInfoSize
	symOff := externOff + externSize

	if symOff > fileSize {
		return nil, ErrInvalidSize
	}
	symSize := fileSize - symOff

	c := New()

	dataCap := uint32(dataCapImportFloor)
	if dataSize > dataCap {
		dataCap = dataSize
	}
	c.data = make([]byte, dataSize, dataCap)
	copy(c.data, file[dataOff:dataOff+dataSize])

	c.relocTargets = make([]Ref, relocCount, relocCount*2)
	for i := uint32(0); i < relocCount; i++ {
		c.relocTargets[i] = beReadU32(file, relocOff+i*refSize)
	}
	sort.Slice(c.relocTargets, func(i, j int) bool { return c.relocTargets[i] < c.relocTargets[j] })

	c.rootInfo = make([]RootInfo, rootCount)
	for i := uint32(0); i < rootCount; i++ {
		base := rootOff + i*rootInfoSize
		c.rootInfo[i] = RootInfo{
			DataOffset:   beReadU32(file, base),
			SymbolOffset: beReadU32(file, base+4),
		}
	}
	sort.Slice(c.rootInfo, func(i, j int) bool { return c.rootInfo[i].DataOffset < c.rootInfo[j].DataOffset })

	c.externInfo = make([]ExternInfo, externCount)
	for i := uint32(0); i < externCount; i++ {
		base := externOff + i*rootInfoSize
		c.externInfo[i] = ExternInfo{
			DataOffset:   beReadU32(file, base),
			SymbolOffset: beReadU32(file, base+4),
		}
	}
	sort.Slice(c.externInfo, func(i, j int) bool { return c.externInfo[i].DataOffset < c.externInfo[j].DataOffset })

	c.symbols = make([]byte, symSize, symSize*2)
	copy(c.symbols, file[symOff:symOff+symSize])

	objs := make([]Ref, 0, relocCount+rootCount+externCount)
	for _, r := range c.relocTargets {
		if r+4 > dataSize {
			continue
		}
		objs = append(objs, beReadU32(c.data, r))
	}
	for _, r := range c.rootInfo {
		objs = append(objs, r.DataOffset)
	}
	for _, r := range c.externInfo {
		objs = append(objs, r.DataOffset)
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i] < objs[j] })
	c.objects = dedupSorted(objs)

	return c, nil
}

func dedupSorted(sorted []Ref) []Ref {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// ExportMaxSize returns the exact byte size the serialized form of c will
// occupy -- header, data, the three side-tables, and the symbol pool.
func (c *Container) ExportMaxSize() uint32 {
	if c == nil {
		return 0
	}
	size := uint32(headerSize)
	size += c.DataSize()
	size += uint32(len(c.relocTargets)) * refSize
	size += uint32(len(c.rootInfo)) * rootInfoSize
	size += uint32(len(c.externInfo)) * rootInfoSize
	size += uint32(len(c.symbols))
	return size
}

// Export serializes c to the on-disk layout: header, data, reloc_targets,
// root_info, extern_info, symbols, contiguously, with every multi-byte
// value big-endian. The version/padding header bytes are always zero.
func (c *Container) Export() ([]byte, error) {
	if c == nil {
		return nil, ErrNullParam
	}

	out := make([]byte, c.ExportMaxSize())

	beWriteU32(out, headerDataSizeOff, c.DataSize())
	beWriteU32(out, headerRelocCntOff, uint32(len(c.relocTargets)))
	beWriteU32(out, headerRootCntOff, uint32(len(c.rootInfo)))
	beWriteU32(out, headerExternCntOff, uint32(len(c.externInfo)))

	cursor := uint32(headerSize)
	copy(out[cursor:], c.data)
	cursor += c.DataSize()

	for _, r := range c.relocTargets {
		beWriteU32(out, cursor, r)
		cursor += refSize
	}

	for _, r := range c.rootInfo {
		beWriteU32(out, cursor, r.DataOffset)
		beWriteU32(out, cursor+4, r.SymbolOffset)
		cursor += rootInfoSize
	}

	for _, r := range c.externInfo {
		beWriteU32(out, cursor, r.DataOffset)
		beWriteU32(out, cursor+4, r.SymbolOffset)
		cursor += rootInfoSize
	}

	copy(out[cursor:], c.symbols)
	cursor += uint32(len(c.symbols))

	beWriteU32(out, headerFileSizeOff, cursor)

	return out[:cursor], nil
}
