package dat_test

import (
	"testing"

	"github.com/AlexanderHarrison/cdat/dat"
)

// r1 -> r2, r2 -> r2 (self), r2 -> r3, r2 -> r4, r4 -> r1: copying from r1
// must produce 4 destination objects and 5 relocations, with every cycle
// reproduced at the destination offsets.
func TestObjCopyReproducesCycles(t *testing.T) {
	s := dat.New()
	r1, _ := s.Alloc(16)
	r2, _ := s.Alloc(16)
	r3, _ := s.Alloc(16)
	r4, _ := s.Alloc(16)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("SetRef: %v", err)
		}
	}
	must(s.SetRef(r1+0, r2))
	must(s.SetRef(r2+0, r2))
	must(s.SetRef(r2+4, r3))
	must(s.SetRef(r2+8, r4))
	must(s.SetRef(r4+0, r1))

	d := dat.New()
	droot, err := dat.ObjCopy(d, s, r1)
	if err != nil {
		t.Fatalf("ObjCopy: %v", err)
	}

	if d.ObjectCount() != 4 {
		t.Fatalf("ObjectCount() = %d, want 4", d.ObjectCount())
	}
	if d.RelocCount() != 5 {
		t.Fatalf("RelocCount() = %d, want 5", d.RelocCount())
	}

	dr2, err := d.ReadRef(droot + 0)
	if err != nil {
		t.Fatalf("ReadRef(droot): %v", err)
	}
	self, err := d.ReadRef(dr2 + 0)
	if err != nil {
		t.Fatalf("ReadRef(dr2 self): %v", err)
	}
	if self != dr2 {
		t.Errorf("dr2 self-reference = %d, want %d (itself)", self, dr2)
	}

	dr3, err := d.ReadRef(dr2 + 4)
	if err != nil {
		t.Fatalf("ReadRef(dr2+4): %v", err)
	}
	dr4, err := d.ReadRef(dr2 + 8)
	if err != nil {
		t.Fatalf("ReadRef(dr2+8): %v", err)
	}
	if dr3 == dr4 {
		t.Fatalf("r3 and r4 copies collided at %d", dr3)
	}

	back, err := d.ReadRef(dr4 + 0)
	if err != nil {
		t.Fatalf("ReadRef(dr4+0): %v", err)
	}
	if back != droot {
		t.Errorf("dr4 -> %d, want %d (droot, closing the cycle)", back, droot)
	}
}

func TestObjCopyLeavesSourceUntouched(t *testing.T) {
	s := dat.New()
	r1, _ := s.Alloc(16)
	s.SetRef(r1, r1)

	d := dat.New()
	if _, err := dat.ObjCopy(d, s, r1); err != nil {
		t.Fatalf("ObjCopy: %v", err)
	}

	if s.ObjectCount() != 1 || s.RelocCount() != 1 {
		t.Fatalf("source mutated by ObjCopy: objects=%d relocs=%d", s.ObjectCount(), s.RelocCount())
	}
}

func TestObjCopyPreservesExistingDestinationContent(t *testing.T) {
	d := dat.New()
	existing, err := d.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if err := d.WriteU32(existing, 0xAABBCCDD); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}

	s := dat.New()
	sr, _ := s.Alloc(16)

	if _, err := dat.ObjCopy(d, s, sr); err != nil {
		t.Fatalf("ObjCopy: %v", err)
	}

	v, err := d.ReadU32(existing)
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if v != 0xAABBCCDD {
		t.Errorf("existing destination content clobbered: got %#x", v)
	}
	if d.ObjectCount() != 2 {
		t.Fatalf("ObjectCount() = %d, want 2 (1 existing + 1 copied)", d.ObjectCount())
	}
}

func TestObjCopyNullParam(t *testing.T) {
	c := dat.New()
	if _, err := dat.ObjCopy(nil, c, 0); err != dat.ErrNullParam {
		t.Errorf("ObjCopy(nil dst) = %v, want ErrNullParam", err)
	}
	if _, err := dat.ObjCopy(c, nil, 0); err != dat.ErrNullParam {
		t.Errorf("ObjCopy(nil src) = %v, want ErrNullParam", err)
	}
}
