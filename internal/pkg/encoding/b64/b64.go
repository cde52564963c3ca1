// Package b64 encodes record ciphertext as padded standard base64.
package b64

import (
	"encoding/base64"
	"fmt"
	"io"
)

var enc = base64.StdEncoding

// Encode returns the padded standard base64 text of data. Empty input
// gives empty output.
func Encode(data []byte) string {
	return enc.EncodeToString(data)
}

func Decode(s string) ([]byte, error) {
	out, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return out, nil
}

// EncodedLen is the text length for n input bytes: 4 characters per
// started 3-byte group.
func EncodedLen(n int) int {
	return enc.EncodedLen(n)
}

// NewEncoder returns a streaming encoder. Close must be called to flush
// the final partial group and its padding.
func NewEncoder(w io.Writer) io.WriteCloser {
	return base64.NewEncoder(enc, w)
}
