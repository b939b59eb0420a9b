package navigator

// Replace returns a document equal to doc except that the node at path is v.
// doc is not modified: every container on the way from the root to the node
// is copied, everything else is shared with doc.
//
// Steps that have nothing to descend into start from an empty object. A
// segment that does not fit the container it meets is not an error: an index
// applied to an object binds the index's decimal key, an index up to
// MaxIndexGap past the end of an array pads it with nulls, and any other
// segment replaces the value it meets with a new object holding the
// segment's key.
func Replace(doc *Value, path Path, v *Value) *Value {
	spine := make([]*Value, len(path))
	cur := doc
	for i, seg := range path {
		if cur == nil {
			cur = emptyObject
		}
		spine[i] = cur
		cur = child(cur, seg)
	}

	out := v
	for i := len(path) - 1; i >= 0; i-- {
		out = rebind(spine[i], path[i], out)
	}
	return out
}

var emptyObject = &Value{kind: KindObject}

// MaxIndexGap bounds how many nulls Replace adds to reach an index past the
// end of an array. A farther index is treated like an index on a non-array.
const MaxIndexGap = 1024

// indexesArray reports whether seg addresses an item of parent, existing or
// within padding reach.
func indexesArray(parent *Value, seg Segment) bool {
	return seg.isIndex && parent.kind == KindArray &&
		seg.index >= 0 && seg.index-len(parent.items) <= MaxIndexGap
}

func child(parent *Value, seg Segment) *Value {
	var c *Value
	switch {
	case indexesArray(parent, seg):
		c, _ = parent.Index(seg.index)
	case parent.kind == KindObject:
		c, _ = parent.Get(seg.Key())
	}
	return c
}

func rebind(parent *Value, seg Segment, c *Value) *Value {
	switch {
	case indexesArray(parent, seg):
		return parent.withItem(seg.index, c)
	case parent.kind == KindObject:
		return parent.withMember(seg.Key(), c)
	default:
		return emptyObject.withMember(seg.Key(), c)
	}
}
