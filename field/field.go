// Package field provides typed accessors on top of a dat.Container for
// code that knows the layout of a particular game struct: generic
// big-endian scalar and pointer primitives, without any of the
// game-specific struct declarations built on top of them.
package field

import (
	"math"

	"github.com/AlexanderHarrison/cdat/dat"
)

// Ref is a typed offset into a Container's data heap -- the field-layer
// equivalent of the core's dat.Ref, kept distinct so a misused raw offset
// doesn't typecheck as a field reference by accident.
type Ref uint32

// NullRef is the conventional zero-value "no object" reference.
const NullRef Ref = 0

// IsNull reports whether r is the null reference.
func (r Ref) IsNull() bool { return r == NullRef }

// IsNonNull reports whether r refers to an object.
func (r Ref) IsNonNull() bool { return r != NullRef }

// ReadU8 reads an unsigned byte field at off within obj.
func ReadU8(c *dat.Container, obj Ref, off uint32) (uint8, error) {
	return c.ReadU8(uint32(obj) + off)
}

// ReadU16 reads a big-endian u16 field at off within obj.
func ReadU16(c *dat.Container, obj Ref, off uint32) (uint16, error) {
	return c.ReadU16(uint32(obj) + off)
}

// ReadU32 reads a big-endian u32 field at off within obj.
func ReadU32(c *dat.Container, obj Ref, off uint32) (uint32, error) {
	return c.ReadU32(uint32(obj) + off)
}

// ReadI16 reads a big-endian signed 16-bit field at off within obj.
func ReadI16(c *dat.Container, obj Ref, off uint32) (int16, error) {
	return c.ReadI16(uint32(obj) + off)
}

// ReadI32 reads a big-endian signed 32-bit field at off within obj.
func ReadI32(c *dat.Container, obj Ref, off uint32) (int32, error) {
	return c.ReadI32(uint32(obj) + off)
}

// ReadF32 reads a big-endian IEEE-754 float field at off within obj. The
// format has no distinct float encoding -- it is the bit pattern of a u32,
// read with the same alignment and bounds rules.
func ReadF32(c *dat.Container, obj Ref, off uint32) (float32, error) {
	bits, err := c.ReadU32(uint32(obj) + off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// WriteU8 writes an unsigned byte field at off within obj.
func WriteU8(c *dat.Container, obj Ref, off uint32, v uint8) error {
	return c.WriteU8(uint32(obj)+off, v)
}

// WriteU16 writes a big-endian u16 field at off within obj.
func WriteU16(c *dat.Container, obj Ref, off uint32, v uint16) error {
	return c.WriteU16(uint32(obj)+off, v)
}

// WriteU32 writes a big-endian u32 field at off within obj.
func WriteU32(c *dat.Container, obj Ref, off uint32, v uint32) error {
	return c.WriteU32(uint32(obj)+off, v)
}

// WriteF32 writes a big-endian IEEE-754 float field at off within obj.
func WriteF32(c *dat.Container, obj Ref, off uint32, v float32) error {
	return c.WriteU32(uint32(obj)+off, math.Float32bits(v))
}

// ReadRef reads a pointer field at off within obj and returns it as a field
// Ref, ready to be passed to any accessor above as the next obj.
func ReadRef(c *dat.Container, obj Ref, off uint32) (Ref, error) {
	v, err := c.ReadRef(uint32(obj) + off)
	return Ref(v), err
}

// SetRef installs a pointer field at off within obj, pointing to target,
// registering the relocation the same way dat.Container.SetRef does.
func SetRef(c *dat.Container, obj Ref, off uint32, target Ref) error {
	return c.SetRef(uint32(obj)+off, uint32(target))
}
