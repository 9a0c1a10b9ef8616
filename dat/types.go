package dat

// Ref is a 32-bit offset into a Container's data blob -- the format's
// substitute for a pointer. SymbolRef is the same shape but indexes into
// the symbol pool instead.
type Ref = uint32
type SymbolRef = uint32

// RootInfo and ExternInfo name an offset inside data and a human-readable
// symbol for it. Roots are the file's externally addressable entry points;
// externs name offsets that should resolve against symbols defined outside
// this file. The core treats extern values as opaque.
type RootInfo struct {
	DataOffset   Ref
	SymbolOffset SymbolRef
}

type ExternInfo struct {
	DataOffset   Ref
	SymbolOffset SymbolRef
}

// Container is the in-memory representation of a DAT file: a byte-addressed
// heap plus the side-tables that describe every intra-heap pointer, every
// named root, and every external symbol reference.
//
// A zero-value Container is the empty container -- no allocations, no
// roots, no externs -- matching the semantics of New().
type Container struct {
	// data is the object heap. Offsets recorded everywhere else in the
	// container are byte indices into this slice. Always big-endian, so
	// exported bytes are a direct copy.
	data []byte

	// relocTargets holds offsets into data that each hold a 32-bit
	// big-endian pointer to another offset in data. Kept sorted ascending;
	// each offset appears at most once.
	relocTargets []Ref

	// rootInfo and externInfo name offsets inside data. rootInfo order is
	// user-visible (index-addressable); on import both are sorted by
	// DataOffset, but the mutation API is free to produce any order.
	rootInfo   []RootInfo
	externInfo []ExternInfo

	// symbols is a packed blob of NUL-terminated names, indexed by the
	// SymbolOffset fields above.
	symbols []byte

	// objects is a derived, sorted list of offsets identifying the start of
	// each allocated object in data. Zero-sized allocations that share an
	// offset leave duplicate entries. Not part of the serialized format --
	// reconstructed (deduplicated) on import, maintained eagerly on Alloc.
	objects []Ref
}

// On-disk header layout. All multi-byte header fields are big-endian.
const (
	headerSize         = 0x20
	headerFileSizeOff  = 0x00
	headerDataSizeOff  = 0x04
	headerRelocCntOff  = 0x08
	headerRootCntOff   = 0x0C
	headerExternCntOff = 0x10
	headerPaddingOff   = 0x14
	headerPaddingSize  = 12
)

const (
	refSize      = 4 // sizeof(Ref) on disk
	rootInfoSize = 8 // DataOffset + SymbolOffset, both u32
)

// Growth policy: doubling, with a floor that avoids many small
// reallocations during initial population. Import starts larger
// since a freshly-imported file is typically close to its final size;
// mutation-built containers start smaller since they're usually grown
// incrementally from empty.
const (
	dataCapMutationFloor = 4 * 1024
	dataCapImportFloor   = 256 * 1024
)
