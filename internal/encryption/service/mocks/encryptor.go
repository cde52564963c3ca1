package mocks

import (
	"bytes"
	"io"
)

// MockEncryptor is a pass-through encryptor. Its writer pads the stream to
// a 16-byte boundary with zeros so size checks behave like the real one.
type MockEncryptor struct {
	GenerateKeyFunc      func() ([]byte, error)
	GenerateIVFunc       func() ([]byte, error)
	EncryptChunkFunc     func(chunk []byte, key []byte, iv []byte) ([]byte, error)
	DecryptChunkFunc     func(encryptedChunk []byte, key []byte, iv []byte) ([]byte, error)
	NewEncryptWriterFunc func(w io.Writer, key []byte, iv []byte) (io.WriteCloser, error)
}

func NewMockEncryptor() *MockEncryptor {
	return &MockEncryptor{
		GenerateKeyFunc: func() ([]byte, error) {
			return bytes.Repeat([]byte{1}, 16), nil
		},
		GenerateIVFunc: func() ([]byte, error) {
			return bytes.Repeat([]byte{2}, 16), nil
		},
		EncryptChunkFunc: func(chunk []byte, key []byte, iv []byte) ([]byte, error) {
			return chunk, nil
		},
		DecryptChunkFunc: func(encryptedChunk []byte, key []byte, iv []byte) ([]byte, error) {
			return bytes.TrimRight(encryptedChunk, "\x00"), nil
		},
		NewEncryptWriterFunc: func(w io.Writer, key []byte, iv []byte) (io.WriteCloser, error) {
			return &passThroughWriter{w: w}, nil
		},
	}
}

func (m *MockEncryptor) GenerateKey() ([]byte, error) {
	return m.GenerateKeyFunc()
}

func (m *MockEncryptor) GenerateIV() ([]byte, error) {
	return m.GenerateIVFunc()
}

func (m *MockEncryptor) EncryptChunk(chunk []byte, key []byte, iv []byte) ([]byte, error) {
	return m.EncryptChunkFunc(chunk, key, iv)
}

func (m *MockEncryptor) DecryptChunk(encryptedChunk []byte, key []byte, iv []byte) ([]byte, error) {
	return m.DecryptChunkFunc(encryptedChunk, key, iv)
}

func (m *MockEncryptor) NewEncryptWriter(w io.Writer, key []byte, iv []byte) (io.WriteCloser, error) {
	return m.NewEncryptWriterFunc(w, key, iv)
}

type passThroughWriter struct {
	w io.Writer
	n int
}

func (p *passThroughWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.n += n
	return n, err
}

func (p *passThroughWriter) Close() error {
	_, err := p.w.Write(make([]byte, 16-p.n%16))
	return err
}
