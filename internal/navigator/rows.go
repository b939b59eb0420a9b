package navigator

import "strconv"

// NodeRow is one flattened field of a displayed node. Rows for array and
// object fields carry no value: their contents are nodes of their own.
type NodeRow struct {
	Key    string
	HasKey bool
	Value  *Value
	Type   Kind
}

// KeyedRow builds the row for a field named key.
func KeyedRow(key string, v *Value) NodeRow {
	row := ValueRow(v)
	row.Key, row.HasKey = key, true
	return row
}

// ValueRow builds the single unkeyed row of a scalar node.
func ValueRow(v *Value) NodeRow {
	row := NodeRow{Type: v.Kind()}
	if row.Type.IsScalar() {
		row.Value = v
		if v == nil {
			row.Value = Null()
		}
	}
	return row
}

// Node describes a selected node: where it is and what it shows.
type Node struct {
	Path Path
	Rows []NodeRow
}

// NodeToRows flattens v into display rows. Objects yield one row per member
// in source order, arrays one row per item keyed by its index, and scalars a
// single unkeyed row. Empty containers yield no rows.
func NodeToRows(v *Value) []NodeRow {
	switch v.Kind() {
	case KindObject:
		rows := make([]NodeRow, 0, len(v.members))
		for _, m := range v.members {
			rows = append(rows, KeyedRow(m.Key, m.Value))
		}
		return rows
	case KindArray:
		rows := make([]NodeRow, 0, len(v.items))
		for i, item := range v.items {
			rows = append(rows, KeyedRow(strconv.Itoa(i), item))
		}
		return rows
	default:
		return []NodeRow{ValueRow(v)}
	}
}

// NodeAtPath selects the node at path in doc.
func NodeAtPath(doc *Value, path Path) (Node, bool) {
	v, ok := Read(doc, path)
	if !ok {
		return Node{}, false
	}
	return Node{Path: path, Rows: NodeToRows(v)}, true
}
