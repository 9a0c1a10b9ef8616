package dat

// copyFrame tracks one object's progress through ObjCopy's worklist: the
// object's extent in src, where it landed in dst, and how far the pointer
// scan over src.relocTargets has gotten.
type copyFrame struct {
	srcStart Ref
	srcEnd   Ref
	dstStart Ref
	relocIdx int
}

// ObjCopy duplicates the object graph reachable from srcRef (an offset
// into src's heap) into dst, returning the offset of the copy. Objects are
// copied depth-first using an explicit worklist rather than native
// recursion, since an adversarial or merely deep object graph must not be
// able to overflow the call stack. Already-copied objects are recorded in
// a source-offset-to-destination-offset map *before* their children are
// visited, so a cycle back to an ancestor (or to the object itself)
// resolves to the same destination object instead of copying it again.
func ObjCopy(dst, src *Container, srcRef Ref) (Ref, error) {
	if dst == nil || src == nil {
		return 0, ErrNullParam
	}

	mapping := make(map[Ref]Ref)

	pushObj := func(s Ref) (*copyFrame, error) {
		start, size, err := src.ObjLocation(s)
		if err != nil {
			return nil, err
		}

		d, err := dst.Alloc(size)
		if err != nil {
			return nil, err
		}
		copy(dst.data[d:d+size], src.data[start:start+size])
		mapping[s] = d

		return &copyFrame{
			srcStart: start,
			srcEnd:   start + size,
			dstStart: d,
			relocIdx: src.RelocIdx(start),
		}, nil
	}

	root, err := pushObj(srcRef)
	if err != nil {
		return 0, err
	}
	rootDst := mapping[srcRef]

	stack := []*copyFrame{root}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.relocIdx >= len(src.relocTargets) || src.relocTargets[top.relocIdx] >= top.srcEnd {
			stack = stack[:len(stack)-1]
			continue
		}

		ps := src.relocTargets[top.relocIdx]

		sc, err := src.ReadRef(ps)
		if err != nil {
			return 0, err
		}

		dc, ok := mapping[sc]
		if !ok {
			child, err := pushObj(sc)
			if err != nil {
				return 0, err
			}
			stack = append(stack, child)
			continue
		}

		pd := top.dstStart + (ps - top.srcStart)
		if err := dst.SetRef(pd, dc); err != nil {
			return 0, err
		}
		top.relocIdx++
	}

	return rootDst, nil
}
