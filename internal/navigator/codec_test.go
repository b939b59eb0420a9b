package navigator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, text string) *Value {
	t.Helper()
	v, err := Decode(text)
	require.NoError(t, err)
	return v
}

func TestDecodeKeepsMemberOrder(t *testing.T) {
	in := `{"zeta":1,"alpha":{"y":true,"b":null},"mid":[3,2,1]}`
	assert.Equal(t, in, Encode(mustDecode(t, in)))
}

func TestDecodeKeepsNumberLiterals(t *testing.T) {
	in := `{"big":12345678901234567890,"f":1.50,"e":-2E+3,"z":0}`
	assert.Equal(t, in, Encode(mustDecode(t, in)))
}

func TestDecodeRepeatedKeys(t *testing.T) {
	assert.Equal(t, `{"a":3,"b":2}`, Encode(mustDecode(t, `{"a":1,"b":2,"a":3}`)))
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		out  string
	}{
		{in: `"hié\n"`, kind: KindString, out: `"hié\n"`},
		{in: ` 42 `, kind: KindNumber, out: `42`},
		{in: `true`, kind: KindBoolean, out: `true`},
		{in: `false`, kind: KindBoolean, out: `false`},
		{in: `null`, kind: KindNull, out: `null`},
	}
	for _, tt := range tests {
		v := mustDecode(t, tt.in)
		assert.Equal(t, tt.kind, v.Kind(), tt.in)
		assert.Equal(t, tt.out, Encode(v), tt.in)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{
		``, `{"a":}`, `[1,2`, `NaN`, `[1.2.3]`, `{"a":1} x`, `01`,
		`{"a":"\q"}`, `{"a":"\u12"}`, "{\"a\":\"x\ty\"}", "{\"a\":\"\xff\"}", "[\"\x01\"]",
	} {
		_, err := Decode(in)
		assert.Error(t, err, in)
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := mustDecode(t, `{"customer":{"name":"Ada","tags":["x","y"],"empty":{},"none":[]}}`)
	want := `{
  "customer": {
    "name": "Ada",
    "tags": [
      "x",
      "y"
    ],
    "empty": {},
    "none": []
  }
}`
	assert.Equal(t, want, EncodeIndent(doc, DefaultIndent))
}

func TestEncodeEscapes(t *testing.T) {
	assert.Equal(t, `"a\"b\\c\n\t<>&\u0001é"`, Encode(String("a\"b\\c\n\t<>&\x01é")))
	assert.Equal(t, "\"\ufffd\"", Encode(String("\xff")))
}

func TestMarshalJSON(t *testing.T) {
	doc := mustDecode(t, `{"b":[1,{"c":"d"}],"a":null}`)
	out, err := json.Marshal(map[string]*Value{"doc": doc})
	require.NoError(t, err)
	assert.JSONEq(t, `{"doc":{"b":[1,{"c":"d"}],"a":null}}`, string(out))
}
