package editor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/OTrepse/jsoncrack.com/internal/navigator"
)

// EditableKinds are the kinds a draft may declare.
var EditableKinds = []navigator.Kind{
	navigator.KindString,
	navigator.KindNumber,
	navigator.KindBoolean,
	navigator.KindNull,
}

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	prefixedInt    = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// Coerce converts the raw text of a draft into a value of the declared kind.
//
// Strings are taken verbatim and null ignores the text. Booleans are true
// only for "true" in any letter case, with surrounding blanks allowed; every
// other text, malformed or not, is false. Numbers accept decimal literals
// and 0x/0o/0b integers and must be finite.
func Coerce(raw string, kind navigator.Kind) (*navigator.Value, error) {
	switch kind {
	case navigator.KindString:
		return navigator.String(raw), nil
	case navigator.KindBoolean:
		return navigator.Bool(strings.EqualFold(strings.TrimSpace(raw), "true")), nil
	case navigator.KindNumber:
		f, err := parseNumber(raw)
		if err != nil {
			return nil, err
		}
		return navigator.NumberFromFloat(f), nil
	case navigator.KindNull:
		return navigator.Null(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
}

func parseNumber(raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	switch {
	case decimalLiteral.MatchString(text):
		f, err := strconv.ParseFloat(text, 64)
		if err == nil && !math.IsInf(f, 0) {
			return f, nil
		}
	case prefixedInt.MatchString(text):
		n, err := strconv.ParseUint(text, 0, 64)
		if err == nil {
			return float64(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
}
