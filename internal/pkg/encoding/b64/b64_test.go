package b64

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "Empty", input: []byte{}, want: ""},
		{name: "One byte", input: []byte("f"), want: "Zg=="},
		{name: "Two bytes", input: []byte("fo"), want: "Zm8="},
		{name: "Three bytes", input: []byte("foo"), want: "Zm9v"},
		{name: "Four bytes", input: []byte("foob"), want: "Zm9vYg=="},
		{name: "Six bytes", input: []byte("foobar"), want: "Zm9vYmFy"},
		{name: "High bits use plus and slash", input: []byte{0xfb, 0xff, 0xbf}, want: "+/+/"},
		{name: "Zero bytes", input: []byte{0, 0}, want: "AAA="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, EncodedLen(len(tt.input)), len(got))
			assert.Zero(t, len(got)%4)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for n := 0; n <= 64; n++ {
		data := make([]byte, n)
		_, err := rand.Read(data)
		require.NoError(t, err)

		got, err := Decode(Encode(data))
		require.NoError(t, err, "length %d", n)
		assert.True(t, bytes.Equal(data, got), "length %d", n)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("Zm9v!")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to decode base64"))
}

func TestEncodedLen(t *testing.T) {
	// A single AES block always takes 24 characters.
	assert.Equal(t, 24, EncodedLen(16))
	assert.Equal(t, 44, EncodedLen(32))
	assert.Equal(t, 0, EncodedLen(0))
}

func TestNewEncoder_MatchesEncode(t *testing.T) {
	data := bytes.Repeat([]byte{0x01, 0x80, 0xff, 0x7e}, 257)

	var out bytes.Buffer
	w := NewEncoder(&out)
	for _, chunk := range [][]byte{data[:5], data[5:500], data[500:]} {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	assert.Equal(t, Encode(data), out.String())
}
