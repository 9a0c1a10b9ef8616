package dat_test

import (
	"testing"

	"github.com/AlexanderHarrison/cdat/dat"
)

// Installing three pointers across two source objects keeps reloc_targets
// sorted and readable; removing one drops it cleanly.
func TestPointerInstallAndRemove(t *testing.T) {
	c := dat.New()

	r1, err := c.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc r1: %v", err)
	}
	r2, err := c.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc r2: %v", err)
	}
	r3, err := c.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc r3: %v", err)
	}
	r4, err := c.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc r4: %v", err)
	}

	if err := c.SetRef(r1+0, r2); err != nil {
		t.Fatalf("SetRef r1: %v", err)
	}
	if err := c.SetRef(r2+4, r3); err != nil {
		t.Fatalf("SetRef r2+4: %v", err)
	}
	if err := c.SetRef(r2+8, r4); err != nil {
		t.Fatalf("SetRef r2+8: %v", err)
	}

	if c.RelocCount() != 3 {
		t.Fatalf("RelocCount() = %d, want 3", c.RelocCount())
	}

	for _, pair := range []struct {
		from dat.Ref
		want dat.Ref
	}{
		{r1 + 0, r2},
		{r2 + 4, r3},
		{r2 + 8, r4},
	} {
		got, err := c.ReadRef(pair.from)
		if err != nil {
			t.Fatalf("ReadRef(%d): %v", pair.from, err)
		}
		if got != pair.want {
			t.Errorf("ReadRef(%d) = %d, want %d", pair.from, got, pair.want)
		}
	}

	if err := c.RemoveRef(r2 + 4); err != nil {
		t.Fatalf("RemoveRef: %v", err)
	}
	if c.RelocCount() != 2 {
		t.Fatalf("RelocCount() after RemoveRef = %d, want 2", c.RelocCount())
	}
}

// Multi-byte writes land in big-endian byte order regardless of host
// architecture.
func TestWriteU32BigEndian(t *testing.T) {
	c := dat.New()
	r, err := c.Alloc(64)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if err := c.WriteU32(r, 0x12345678); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}

	want := [4]byte{0x12, 0x34, 0x56, 0x78}
	for i, w := range want {
		b, err := c.ReadU8(r + dat.Ref(i))
		if err != nil {
			t.Fatalf("ReadU8(%d): %v", i, err)
		}
		if b != w {
			t.Errorf("data[%d] = %#x, want %#x", i, b, w)
		}
	}

	got, err := c.ReadU32(r)
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if got != 0x12345678 {
		t.Errorf("ReadU32() = %#x, want %#x", got, 0x12345678)
	}
}

func TestAlignmentAndBoundsErrors(t *testing.T) {
	c := dat.New()
	r, err := c.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	if _, err := c.ReadU16(r + 1); err != dat.ErrInvalidAlignment {
		t.Errorf("ReadU16 at odd offset = %v, want ErrInvalidAlignment", err)
	}
	if _, err := c.ReadU32(r + 2); err != dat.ErrInvalidAlignment {
		t.Errorf("ReadU32 at non-4-aligned offset = %v, want ErrInvalidAlignment", err)
	}
	if _, err := c.ReadU32(r + 16); err != dat.ErrOutOfBounds {
		t.Errorf("ReadU32 past data_size = %v, want ErrOutOfBounds", err)
	}
	if err := c.SetRef(r+1, 0); err != dat.ErrInvalidAlignment {
		t.Errorf("SetRef misaligned from = %v, want ErrInvalidAlignment", err)
	}
	if err := c.SetRef(r, 1000); err != dat.ErrOutOfBounds {
		t.Errorf("SetRef out-of-range to = %v, want ErrOutOfBounds", err)
	}
}

func TestSetRefIsIdempotent(t *testing.T) {
	c := dat.New()
	r1, _ := c.Alloc(16)
	r2, _ := c.Alloc(16)

	if err := c.SetRef(r1, r2); err != nil {
		t.Fatalf("SetRef: %v", err)
	}
	if err := c.SetRef(r1, r2); err != nil {
		t.Fatalf("SetRef (repeat): %v", err)
	}
	if c.RelocCount() != 1 {
		t.Fatalf("RelocCount() = %d, want 1", c.RelocCount())
	}
}

func TestIsRelocSite(t *testing.T) {
	c := dat.New()
	r1, _ := c.Alloc(16)
	r2, _ := c.Alloc(16)

	if c.IsRelocSite(r1) {
		t.Fatalf("IsRelocSite(r1) = true before any SetRef")
	}
	if err := c.SetRef(r1, r2); err != nil {
		t.Fatalf("SetRef: %v", err)
	}
	if !c.IsRelocSite(r1) {
		t.Fatalf("IsRelocSite(r1) = false after SetRef")
	}
	if c.IsRelocSite(r1 + 4) {
		t.Fatalf("IsRelocSite(r1+4) = true, want false")
	}
}

func TestObjLocationNotFoundBeforeFirstObject(t *testing.T) {
	c := dat.New()
	if _, _, err := c.ObjLocation(0); err != dat.NotFound {
		t.Fatalf("ObjLocation on empty container = %v, want NotFound", err)
	}
}
