package formatter

import "github.com/OTrepse/jsoncrack.com/internal/navigator"

// RenderContent renders the content of a selected node from its rows.
//
// No rows render as "{}". A single unkeyed row is the value of a scalar node
// and renders as its plain text. Anything else renders as a two-space
// indented JSON object of the keyed scalar rows, in row order; array and
// object rows are left out because their contents are nodes of their own.
func RenderContent(rows []navigator.NodeRow) string {
	if len(rows) == 0 {
		return "{}"
	}
	if len(rows) == 1 && !rows[0].HasKey {
		return Stringify(rows[0].Value)
	}
	return navigator.EncodeIndent(contentObject(rows), navigator.DefaultIndent)
}

// contentObject rebuilds the object shown for rows. It is derived from the
// rows alone and is not the document tree.
func contentObject(rows []navigator.NodeRow) *navigator.Value {
	members := make([]navigator.Member, 0, len(rows))
	for _, row := range rows {
		if !row.HasKey || !row.Type.IsScalar() {
			continue
		}
		v := row.Value
		if v == nil {
			v = navigator.Null()
		}
		members = append(members, navigator.Member{Key: row.Key, Value: v})
	}
	return navigator.Object(members...)
}
