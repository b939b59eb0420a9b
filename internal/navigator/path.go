package navigator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// ErrInvalidPath is returned when a path expression cannot be parsed.
var ErrInvalidPath = errors.New("invalid path")

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// Field returns a key segment.
func Field(name string) Segment { return Segment{name: name} }

// ArrayIndex returns an index segment.
func ArrayIndex(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether s addresses an array item.
func (s Segment) IsIndex() bool { return s.isIndex }

// Index returns the array index of an index segment.
func (s Segment) Index() int { return s.index }

// Key returns the object key s addresses. Index segments answer with their
// decimal form, which is the key they bind when applied to an object.
func (s Segment) Key() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.name
}

func (s Segment) String() string { return s.Key() }

// Path is a route from the document root to a node, root first.
// The empty path is the root itself.
type Path []Segment

// IsRoot reports whether p addresses the whole document.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Render returns the canonical display form of p:
//
//	[]                    -> $
//	["customer", 0, "id"] -> $["customer"][0]["id"]
func (p Path) Render() string {
	b := make([]byte, 0, 1+len(p)*8)
	b = append(b, '$')
	for _, seg := range p {
		b = append(b, '[')
		if seg.isIndex {
			b = strconv.AppendInt(b, int64(seg.index), 10)
		} else {
			b = appendQuoted(b, seg.name)
		}
		b = append(b, ']')
	}
	return string(b)
}

func (p Path) String() string { return p.Render() }

// Pointer returns p as an RFC 6901 JSON Pointer ("" for the root).
func (p Path) Pointer() string {
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(seg.Key()))
	}
	return b.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Append returns a new path with segs added; p is left untouched.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// ParsePath parses a user-typed path. It accepts the rendered form and the
// looser dotted form, mixed freely:
//
//	$["customer"][0]["id"]
//	customer.0.id
//	customer[0]["postal-code"]
//
// A leading '$' is optional. Numeric dotted segments are array indices.
func ParsePath(input string) (Path, error) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "$")
	path := Path{}
	i := 0
	for i < len(s) {
		switch ch := s[i]; {
		case ch == '[':
			seg, n, err := parseBracket(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w %q at offset %d: %v", ErrInvalidPath, input, i, err)
			}
			path = append(path, seg)
			i += n
		case ch == '.' || i == 0:
			if ch == '.' {
				i++
			}
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w %q at offset %d: empty key", ErrInvalidPath, input, i)
			}
			path = append(path, dottedSegment(s[i:j]))
			i = j
		default:
			return nil, fmt.Errorf("%w %q at offset %d: unexpected %q", ErrInvalidPath, input, i, ch)
		}
	}
	return path, nil
}

func dottedSegment(name string) Segment {
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && name[0] != '+' {
		return ArrayIndex(n)
	}
	return Field(name)
}

// parseBracket reads one [n] or ["key"] term from the front of s and returns
// the segment and the number of bytes consumed.
func parseBracket(s string) (Segment, int, error) {
	if len(s) > 1 && s[1] == '"' {
		end := closingQuote(s, 1)
		if end < 0 {
			return Segment{}, 0, errors.New("unterminated quoted key")
		}
		if end+1 >= len(s) || s[end+1] != ']' {
			return Segment{}, 0, errors.New("missing ']' after quoted key")
		}
		v, err := fastjson.Parse(s[1 : end+1])
		if err != nil {
			return Segment{}, 0, err
		}
		key, err := v.StringBytes()
		if err != nil {
			return Segment{}, 0, err
		}
		if len(key) == 0 {
			return Segment{}, 0, errors.New("empty key")
		}
		return Field(string(key)), end + 2, nil
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return Segment{}, 0, errors.New("unterminated bracket")
	}
	digits := s[1:end]
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || digits[0] == '+' || digits[0] == '-' {
		return Segment{}, 0, fmt.Errorf("bad array index %q", digits)
	}
	return ArrayIndex(n), end + 1, nil
}

// closingQuote returns the offset of the quote closing the string literal
// that opens at s[open], honoring backslash escapes.
func closingQuote(s string, open int) int {
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
