// qrinv/internal/core/ports/encryption.go
package ports

import (
	"context"
	"io"

	"qrinv/internal/core/domain"
)

type EncryptionService interface {
	Encrypt(ctx context.Context, input domain.EncryptionInput) (*domain.EncryptionOutput, error)
	EncryptBytes(ctx context.Context, plaintext, key, iv []byte) ([]byte, domain.EncryptionMetadata, error)
	Decrypt(ctx context.Context, encryptedData io.Reader, key []byte, iv []byte) (io.Reader, error)
}

type Encryptor interface {
	GenerateKey() ([]byte, error)
	GenerateIV() ([]byte, error)
	EncryptChunk(chunk []byte, key []byte, iv []byte) ([]byte, error)
	DecryptChunk(encryptedChunk []byte, key []byte, iv []byte) ([]byte, error)
	// NewEncryptWriter returns a streaming encrypter over w. Close flushes
	// the final padded block.
	NewEncryptWriter(w io.Writer, key []byte, iv []byte) (io.WriteCloser, error)
}
