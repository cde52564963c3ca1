package aes

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

var ErrClosed = errors.New("stream already closed")

// EncryptWriter is a streaming CBC encrypter. Writes of any size are
// accepted; whole blocks are chained and written to the underlying
// writer as soon as they are complete. Close pads the remaining bytes
// and writes the final block.
type EncryptWriter struct {
	w       io.Writer
	mode    cipher.BlockMode
	pending []byte
	closed  bool
}

func NewEncryptWriter(w io.Writer, key, iv []byte) (*EncryptWriter, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	return &EncryptWriter{
		w:       w,
		mode:    cipher.NewCBCEncrypter(block, iv),
		pending: make([]byte, 0, BlockSize),
	}, nil
}

func (s *EncryptWriter) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	total := len(p)

	if len(s.pending) > 0 {
		n := copy(s.pending[len(s.pending):BlockSize], p)
		s.pending = s.pending[:len(s.pending)+n]
		p = p[n:]
		if len(s.pending) < BlockSize {
			return total, nil
		}
		if err := s.emit(s.pending); err != nil {
			return 0, err
		}
		s.pending = s.pending[:0]
	}

	if full := len(p) - len(p)%BlockSize; full > 0 {
		if err := s.emit(p[:full]); err != nil {
			return 0, err
		}
		p = p[full:]
	}
	s.pending = append(s.pending, p...)
	return total, nil
}

// Close writes the padding block. It does not close the underlying writer.
func (s *EncryptWriter) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.emit(Pad(s.pending, BlockSize))
}

func (s *EncryptWriter) emit(plain []byte) error {
	out := make([]byte, len(plain))
	s.mode.CryptBlocks(out, plain)
	if _, err := s.w.Write(out); err != nil {
		return fmt.Errorf("failed to write encrypted block: %w", err)
	}
	return nil
}

// NewDecryptReader returns a reader yielding the plaintext of a CBC
// stream. The whole ciphertext is buffered since padding can only be
// checked on the last block.
func NewDecryptReader(r io.Reader, key, iv []byte) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read encrypted data: %w", err)
	}
	plain, err := NewCBCEncryptor().DecryptChunk(data, key, iv)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(plain), nil
}
