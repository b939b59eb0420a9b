package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OTrepse/jsoncrack.com/internal/navigator"
)

func TestCoerceBoolean(t *testing.T) {
	tests := map[string]bool{
		"true":    true,
		"TRUE":    true,
		"True":    true,
		" true\n": true,
		"false":   false,
		"yes":     false,
		"1":       false,
		"":        false,
		"truex":   false,
	}
	for raw, want := range tests {
		v, err := Coerce(raw, navigator.KindBoolean)
		require.NoError(t, err, raw)
		assert.Equal(t, navigator.KindBoolean, v.Kind(), raw)
		assert.Equal(t, want, v.Boolean(), "%q", raw)
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := map[string]string{
		"42":     "42",
		" 42 ":   "42",
		"-3.5":   "-3.5",
		"+7":     "7",
		"1e3":    "1000",
		".5":     "0.5",
		"5.":     "5",
		"0x1F":   "31",
		"0b101":  "5",
		"0o17":   "15",
		"1e21":   "1e+21",
		"0.0000": "0",
	}
	for raw, want := range tests {
		v, err := Coerce(raw, navigator.KindNumber)
		require.NoError(t, err, raw)
		assert.Equal(t, navigator.KindNumber, v.Kind(), raw)
		assert.Equal(t, want, v.Text(), "%q", raw)
	}
}

func TestCoerceInvalidNumber(t *testing.T) {
	for _, raw := range []string{"abc", "", "   ", "NaN", "Infinity", "inf", "1e400", "1,000", "12abc", "-0x10", "0x"} {
		_, err := Coerce(raw, navigator.KindNumber)
		assert.ErrorIs(t, err, ErrInvalidNumber, "%q", raw)
	}
}

func TestCoerceString(t *testing.T) {
	for _, raw := range []string{"", "  padded  ", "42", "true", "multi\nline"} {
		v, err := Coerce(raw, navigator.KindString)
		require.NoError(t, err)
		assert.Equal(t, navigator.KindString, v.Kind())
		assert.Equal(t, raw, v.Text())
	}
}

func TestCoerceNull(t *testing.T) {
	for _, raw := range []string{"", "anything", "42"} {
		v, err := Coerce(raw, navigator.KindNull)
		require.NoError(t, err)
		assert.Equal(t, navigator.KindNull, v.Kind())
	}
}

func TestCoerceUnsupportedKinds(t *testing.T) {
	for _, kind := range []navigator.Kind{navigator.KindArray, navigator.KindObject, navigator.Kind(99)} {
		_, err := Coerce("[]", kind)
		assert.ErrorIs(t, err, ErrUnsupportedType, kind.String())
	}
}
