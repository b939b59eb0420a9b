package navigator

import (
	"strings"
	"unicode/utf8"
)

// DefaultIndent is the indentation used for documents written back to the store.
const DefaultIndent = "  "

// Encode renders v as compact JSON.
func Encode(v *Value) string {
	return string(appendValue(nil, v, "", 0))
}

// EncodeIndent renders v as JSON with one line per item or member, each
// nesting level indented by indent. Empty containers stay on one line.
func EncodeIndent(v *Value, indent string) string {
	return string(appendValue(nil, v, indent, 0))
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	return appendValue(nil, v, "", 0), nil
}

func appendValue(b []byte, v *Value, indent string, depth int) []byte {
	switch v.Kind() {
	case KindNull:
		return append(b, "null"...)
	case KindBoolean:
		if v.boolean {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case KindNumber:
		return append(b, v.text...)
	case KindString:
		return appendQuoted(b, v.text)
	case KindArray:
		if len(v.items) == 0 {
			return append(b, "[]"...)
		}
		b = append(b, '[')
		for i, item := range v.items {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendNewline(b, indent, depth+1)
			b = appendValue(b, item, indent, depth+1)
		}
		b = appendNewline(b, indent, depth)
		return append(b, ']')
	default:
		if len(v.members) == 0 {
			return append(b, "{}"...)
		}
		b = append(b, '{')
		for i, m := range v.members {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendNewline(b, indent, depth+1)
			b = appendQuoted(b, m.Key)
			b = append(b, ':')
			if indent != "" {
				b = append(b, ' ')
			}
			b = appendValue(b, m.Value, indent, depth+1)
		}
		b = appendNewline(b, indent, depth)
		return append(b, '}')
	}
}

func appendNewline(b []byte, indent string, depth int) []byte {
	if indent == "" {
		return b
	}
	b = append(b, '\n')
	return append(b, strings.Repeat(indent, depth)...)
}

const hexDigits = "0123456789abcdef"

// appendQuoted writes s as a JSON string literal. Only the characters JSON
// requires are escaped; invalid UTF-8 becomes U+FFFD.
func appendQuoted(b []byte, s string) []byte {
	b = append(b, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				b = append(b, '\\', c)
			case c == '\n':
				b = append(b, '\\', 'n')
			case c == '\r':
				b = append(b, '\\', 'r')
			case c == '\t':
				b = append(b, '\\', 't')
			case c == '\b':
				b = append(b, '\\', 'b')
			case c == '\f':
				b = append(b, '\\', 'f')
			case c < 0x20:
				b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			default:
				b = append(b, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b = append(b, "\ufffd"...)
		} else {
			b = append(b, s[i:i+size]...)
		}
		i += size
	}
	return append(b, '"')
}
