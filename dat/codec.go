package dat

import "encoding/binary"

// Big-endian byte primitives. These are the only functions in the package
// that know about endianness -- every other layer works in host-endian
// uint32/uint16/uint8 values and leaves translation to these helpers.
// Callers are responsible for bounds and alignment checking; these assume
// the slice is already large enough for the access requested.

func beReadU8(b []byte, off uint32) uint8 {
	return b[off]
}

func beReadU16(b []byte, off uint32) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

func beReadU32(b []byte, off uint32) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

func beReadI16(b []byte, off uint32) int16 {
	return int16(beReadU16(b, off))
}

func beReadI32(b []byte, off uint32) int32 {
	return int32(beReadU32(b, off))
}

func beWriteU8(b []byte, off uint32, v uint8) {
	b[off] = v
}

func beWriteU16(b []byte, off uint32, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

func beWriteU32(b []byte, off uint32, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

func beWriteI16(b []byte, off uint32, v int16) {
	beWriteU16(b, off, uint16(v))
}

func beWriteI32(b []byte, off uint32, v int32) {
	beWriteU32(b, off, uint32(v))
}
