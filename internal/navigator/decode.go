package navigator

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/valyala/fastjson"
)

// numberLiteral is the JSON number grammar. fastjson is lenient about
// numbers (it takes "NaN", "inf" and "1.2.3"), so literals are checked again.
var numberLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

var errInvalidUTF8 = errors.New("document is not valid UTF-8")

// Decode parses JSON text into a Value, keeping object member order.
// Repeated keys keep their first position and their last value.
//
// The parser alone lets bad escapes and raw control characters through, so
// the text is validated first.
func Decode(text string) (*Value, error) {
	if !utf8.ValidString(text) {
		return nil, errInvalidUTF8
	}
	if err := fastjson.Validate(text); err != nil {
		return nil, err
	}
	var p fastjson.Parser
	fv, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	return convert(fv)
}

func convert(fv *fastjson.Value) (*Value, error) {
	switch fv.Type() {
	case fastjson.TypeNull:
		return Null(), nil
	case fastjson.TypeTrue:
		return Bool(true), nil
	case fastjson.TypeFalse:
		return Bool(false), nil
	case fastjson.TypeNumber:
		lit := fv.String()
		if !numberLiteral.MatchString(lit) {
			return nil, fmt.Errorf("invalid number literal %q", lit)
		}
		return Number(lit), nil
	case fastjson.TypeString:
		s, err := fv.StringBytes()
		if err != nil {
			return nil, err
		}
		return String(string(s)), nil
	case fastjson.TypeArray:
		arr, err := fv.Array()
		if err != nil {
			return nil, err
		}
		items := make([]*Value, len(arr))
		for i, el := range arr {
			if items[i], err = convert(el); err != nil {
				return nil, err
			}
		}
		return &Value{kind: KindArray, items: items}, nil
	case fastjson.TypeObject:
		obj, err := fv.Object()
		if err != nil {
			return nil, err
		}
		members := make([]Member, 0, obj.Len())
		var convErr error
		obj.Visit(func(key []byte, el *fastjson.Value) {
			if convErr != nil {
				return
			}
			var c *Value
			if c, convErr = convert(el); convErr == nil {
				members = setMember(members, string(key), c)
			}
		})
		if convErr != nil {
			return nil, convErr
		}
		return &Value{kind: KindObject, members: members}, nil
	default:
		return nil, fmt.Errorf("unsupported JSON type %s", fv.Type())
	}
}
