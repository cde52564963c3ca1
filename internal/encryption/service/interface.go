package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"qrinv/internal/core/domain"
	"qrinv/internal/core/ports"
	"qrinv/internal/encryption/chunking"
)

type Service interface {
	Encrypt(ctx context.Context, input domain.EncryptionInput) (*domain.EncryptionOutput, error)
	EncryptBytes(ctx context.Context, plaintext, key, iv []byte) ([]byte, domain.EncryptionMetadata, error)
	Decrypt(ctx context.Context, encryptedData io.Reader, key []byte, iv []byte) (io.Reader, error)
}

var _ ports.EncryptionService = (*EncryptionService)(nil)

type EncryptionService struct {
	encryptor ports.Encryptor
	chunkSize int
	logger    zerolog.Logger
}

type Option func(*EncryptionService)

// WithChunkSize sets the logical chunk size used when the caller does not
// pass one in EncryptionOptions.
func WithChunkSize(size int) Option {
	return func(s *EncryptionService) {
		s.chunkSize = size
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *EncryptionService) {
		s.logger = logger
	}
}

func NewService(encryptor ports.Encryptor, opts ...Option) *EncryptionService {
	s := &EncryptionService{
		encryptor: encryptor,
		chunkSize: chunking.DefaultChunkSize,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
