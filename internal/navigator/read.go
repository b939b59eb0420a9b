package navigator

// Read follows path from doc and returns the value it reaches. It stops with
// false as soon as a step has nothing to index: a missing key, an index out
// of range, or a key applied to something that is not an object. Index
// segments applied to an object look up their decimal key, mirroring Replace.
func Read(doc *Value, path Path) (*Value, bool) {
	cur := doc
	for _, seg := range path {
		var ok bool
		switch {
		case seg.isIndex && cur.Kind() == KindArray:
			cur, ok = cur.Index(seg.index)
		case cur.Kind() == KindObject:
			cur, ok = cur.Get(seg.Key())
		}
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return Null(), true
	}
	return cur, true
}
