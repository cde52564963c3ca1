// Package hexkey decodes the caller-supplied hexadecimal AES key and
// provides the fixed initialization vector used by every record.
package hexkey

import (
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16
	// MaxDigits is the number of hex digits of a full key.
	MaxDigits = 2 * KeySize

	// fixedIV is shared by every record. Records issued by the legacy
	// encrypter can only be read back with this exact IV.
	fixedIV = "0EDF25C93A28D7B5FF5E45DA42F8A1B8"
)

var (
	ErrNonHex   = errors.New("key must be in hexadecimal notation")
	ErrTooLong  = errors.New("key value is too long")
	ErrTooShort = errors.New("key must be exactly 32 hexadecimal digits")
)

// Decode converts a 32-digit hexadecimal string into a 16-byte key.
// Digits are case-insensitive and each pair forms one byte, high nibble
// first.
func Decode(s string) ([]byte, error) {
	out := make([]byte, KeySize)
	n := 0
	for n < len(s) && n < MaxDigits {
		v, ok := nibble(s[n])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrNonHex, s[n], n)
		}
		if n&1 == 0 {
			out[n/2] = v << 4
		} else {
			out[n/2] |= v
		}
		n++
	}
	if len(s) > MaxDigits {
		return nil, fmt.Errorf("%w: got %d digits, want %d", ErrTooLong, len(s), MaxDigits)
	}
	if n < MaxDigits {
		return nil, fmt.Errorf("%w: got %d digits", ErrTooShort, n)
	}
	return out, nil
}

// FixedIV returns a fresh copy of the constant IV.
func FixedIV() []byte {
	iv, err := Decode(fixedIV)
	if err != nil {
		panic("hexkey: malformed fixed IV: " + err.Error())
	}
	return iv
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// KeyMaterial is the key/IV pair for one encryption call.
type KeyMaterial struct {
	Key []byte
	IV  []byte
}

// Load decodes the caller key and pairs it with the fixed IV.
func Load(keyHex string) (*KeyMaterial, error) {
	key, err := Decode(keyHex)
	if err != nil {
		return nil, err
	}
	return &KeyMaterial{Key: key, IV: FixedIV()}, nil
}

// Wipe zeroes the key and IV.
func (m *KeyMaterial) Wipe() {
	if m == nil {
		return
	}
	for i := range m.Key {
		m.Key[i] = 0
	}
	for i := range m.IV {
		m.IV[i] = 0
	}
}
