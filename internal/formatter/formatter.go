package formatter

import (
	"strings"

	"github.com/OTrepse/jsoncrack.com/internal/navigator"
)

// Stringify returns the plain text of a value: strings without quotes,
// numbers as their literal, booleans and null by name. Containers fall back
// to compact JSON.
func Stringify(v *navigator.Value) string {
	switch v.Kind() {
	case navigator.KindString, navigator.KindNumber:
		return v.Text()
	case navigator.KindBoolean:
		if v.Boolean() {
			return "true"
		}
		return "false"
	case navigator.KindNull:
		return "null"
	default:
		return navigator.Encode(v)
	}
}

// StringifySingleLine is Stringify with line breaks shown as literal "\n" so
// the result fits on one line (row listings, log fields).
func StringifySingleLine(v *navigator.Value) string {
	s := Stringify(v)
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}
