package navigator

import (
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsScalar reports whether k is one of string, number, boolean or null.
func (k Kind) IsScalar() bool {
	return k != KindArray && k != KindObject
}

// ParseKind maps a type name ("string", "number", ...) to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindNull, false
}

// Member is one key/value entry of an object. Members keep source order.
type Member struct {
	Key   string
	Value *Value
}

// Value is an immutable JSON value. Containers hold pointers to their
// children so that updates can share untouched subtrees.
//
// Numbers keep their JSON literal so that re-encoding a document does not
// disturb numbers that were never edited.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents or number literal
	items   []*Value
	members []Member
}

var nullValue = &Value{kind: KindNull}

// Null returns the null value.
func Null() *Value { return nullValue }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBoolean, boolean: b} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, text: s} }

// Number returns a number value from a JSON number literal. The literal is
// not validated; use NumberFromFloat or Decode for untrusted input.
func Number(literal string) *Value { return &Value{kind: KindNumber, text: literal} }

// NumberFromFloat returns a number value holding the shortest decimal form of f.
func NumberFromFloat(f float64) *Value {
	return Number(formatFloat(f))
}

// Array returns an array holding items. The slice is copied; the items are not.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: slices.Clone(items)}
}

// Object returns an object holding members in the given order. A repeated
// key keeps its first position and its last value.
func Object(members ...Member) *Value {
	out := &Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, m := range members {
		out.members = setMember(out.members, m.Key, m.Value)
	}
	return out
}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Boolean returns the boolean payload; false for any other kind.
func (v *Value) Boolean() bool {
	return v != nil && v.kind == KindBoolean && v.boolean
}

// Text returns the string contents of a string value or the literal of a number.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Float parses a number value.
func (v *Value) Float() (float64, error) {
	return strconv.ParseFloat(v.Text(), 64)
}

// Len is the number of items or members; 0 for scalars.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Index returns the i-th array item.
func (v *Value) Index(i int) (*Value, bool) {
	if v.Kind() != KindArray || i < 0 || i >= len(v.items) {
		return nil, false
	}
	return v.items[i], true
}

// Get returns the member value for key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Items returns a copy of the array items.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return slices.Clone(v.items)
}

// Members returns a copy of the object members in order.
func (v *Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return slices.Clone(v.members)
}

// Equal reports deep equality. Object member order is significant and
// numbers compare by literal.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBoolean:
		return v.boolean == o.boolean
	case KindNumber, KindString:
		return v.text == o.text
	case KindArray:
		return slices.EqualFunc(v.items, o.items, (*Value).Equal)
	default:
		return slices.EqualFunc(v.members, o.members, func(a, b Member) bool {
			return a.Key == b.Key && a.Value.Equal(b.Value)
		})
	}
}

// withItem returns a copy of the array with item i set to c, padding with
// nulls when i is past the end.
func (v *Value) withItem(i int, c *Value) *Value {
	n := max(len(v.items), i+1)
	items := make([]*Value, n)
	copy(items, v.items)
	for j := len(v.items); j < n; j++ {
		items[j] = nullValue
	}
	items[i] = c
	return &Value{kind: KindArray, items: items}
}

// withMember returns a copy of the object with key bound to c.
func (v *Value) withMember(key string, c *Value) *Value {
	members := make([]Member, len(v.members), len(v.members)+1)
	copy(members, v.members)
	return &Value{kind: KindObject, members: setMember(members, key, c)}
}

func setMember(members []Member, key string, c *Value) []Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = c
			return members
		}
	}
	return append(members, Member{Key: key, Value: c})
}

// formatFloat renders the shortest decimal form of f: plain
// decimals inside [1e-6, 1e21), exponent form outside ("1e-7", "1e+21").
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := f
	if abs < 0 {
		abs = -abs
	}
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if i := strings.IndexByte(s, 'e'); i >= 0 && i+3 < len(s) && s[i+2] == '0' {
			s = s[:i+2] + s[i+3:]
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
