// qrinv/internal/pkg/crypto/aes/aes.go
package aes

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"qrinv/internal/pkg/crypto/hexkey"
)

const (
	BlockSize = aes.BlockSize
	KeySize   = hexkey.KeySize

	Algorithm = "AES-128-CBC-PKCS7"
)

var ErrInvalidPadding = errors.New("invalid padding")

// CBCEncryptor encrypts with AES-128 in CBC mode and PKCS#7 padding.
// It holds no per-call state and is safe for concurrent use.
type CBCEncryptor struct{}

func NewCBCEncryptor() *CBCEncryptor {
	return &CBCEncryptor{}
}

func (e *CBCEncryptor) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// GenerateIV returns the fixed record IV. Records are only readable by
// scanners that use the same constant.
func (e *CBCEncryptor) GenerateIV() ([]byte, error) {
	return hexkey.FixedIV(), nil
}

func (e *CBCEncryptor) EncryptChunk(chunk []byte, key []byte, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := Pad(chunk, BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func (e *CBCEncryptor) DecryptChunk(encryptedChunk []byte, key []byte, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	if len(encryptedChunk) == 0 || len(encryptedChunk)%BlockSize != 0 {
		return nil, fmt.Errorf("invalid ciphertext size: %d is not a positive multiple of %d", len(encryptedChunk), BlockSize)
	}

	out := make([]byte, len(encryptedChunk))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, encryptedChunk)
	return Unpad(out, BlockSize)
}

func (e *CBCEncryptor) NewEncryptWriter(w io.Writer, key []byte, iv []byte) (io.WriteCloser, error) {
	sw, err := NewEncryptWriter(w, key, iv)
	if err != nil {
		return nil, err
	}
	return sw, nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: expected %d, got %d", KeySize, len(key))
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("invalid IV size: expected %d, got %d", BlockSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return block, nil
}

// Pad appends PKCS#7 padding. A block-aligned input gains a full block.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad strips and checks PKCS#7 padding.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidPadding, len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: pad value %d", ErrInvalidPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}

// EncryptedLen is the ciphertext length for n bytes of plaintext.
func EncryptedLen(n int) int {
	return (n/BlockSize + 1) * BlockSize
}
