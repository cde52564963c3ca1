package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"qrinv/internal/core/domain"
	"qrinv/internal/encryption/chunking"
	"qrinv/internal/pkg/crypto/aes"
)

// Encrypt streams input.Reader through the block cipher. The returned
// reader yields the ciphertext; Metadata is filled in once the reader
// reports io.EOF.
func (s *EncryptionService) Encrypt(ctx context.Context, input domain.EncryptionInput) (*domain.EncryptionOutput, error) {
	chunkSize := input.Options.ChunkSize
	if chunkSize == 0 {
		chunkSize = s.chunkSize
	}
	reader, err := chunking.NewChunkReader(input.Reader, chunkSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk reader: %w", err)
	}

	iv := input.IV
	if len(iv) == 0 {
		if iv, err = s.encryptor.GenerateIV(); err != nil {
			return nil, fmt.Errorf("failed to generate IV: %w", err)
		}
	}

	pr, pw := io.Pipe()
	hasher := sha256.New()
	counter := &countingWriter{w: io.MultiWriter(pw, hasher)}

	ew, err := s.encryptor.NewEncryptWriter(counter, input.Key, iv)
	if err != nil {
		pw.Close()
		return nil, fmt.Errorf("failed to create encrypt writer: %w", err)
	}

	metadata := &domain.EncryptionMetadata{
		Algorithm: aes.Algorithm,
		ChunkSize: chunkSize,
		CreatedAt: time.Now().UTC(),
	}

	go func() {
		buffer := make([]byte, chunkSize)
		var originalSize int64
		for {
			select {
			case <-ctx.Done():
				pw.CloseWithError(ctx.Err())
				return
			default:
			}

			n, err := reader.ReadChunk(buffer)
			if err == io.EOF {
				break
			}
			if err != nil {
				pw.CloseWithError(fmt.Errorf("failed to read chunk: %w", err))
				return
			}
			if _, err := ew.Write(buffer[:n]); err != nil {
				pw.CloseWithError(fmt.Errorf("failed to encrypt chunk: %w", err))
				return
			}
			originalSize += int64(n)
		}

		if err := ew.Close(); err != nil {
			pw.CloseWithError(fmt.Errorf("failed to flush final block: %w", err))
			return
		}

		metadata.Chunks = reader.Chunks()
		metadata.OriginalSize = originalSize
		metadata.EncryptedSize = counter.n
		metadata.Checksum = hex.EncodeToString(hasher.Sum(nil))

		s.logger.Debug().
			Int("chunks", metadata.Chunks).
			Int64("original_size", metadata.OriginalSize).
			Int64("encrypted_size", metadata.EncryptedSize).
			Msg("stream encrypted")
		pw.Close()
	}()

	return &domain.EncryptionOutput{
		EncryptedReader: pr,
		Metadata:        metadata,
	}, nil
}

// EncryptBytes encrypts plaintext in full and returns the ciphertext with
// its metadata.
func (s *EncryptionService) EncryptBytes(ctx context.Context, plaintext, key, iv []byte) ([]byte, domain.EncryptionMetadata, error) {
	output, err := s.Encrypt(ctx, domain.EncryptionInput{
		Reader: bytes.NewReader(plaintext),
		Key:    key,
		IV:     iv,
	})
	if err != nil {
		return nil, domain.EncryptionMetadata{}, err
	}

	encrypted, err := io.ReadAll(output.EncryptedReader)
	if err != nil {
		return nil, domain.EncryptionMetadata{}, fmt.Errorf("failed to read encrypted data: %w", err)
	}

	metadata := *output.Metadata
	if err := validateMetadata(metadata); err != nil {
		return nil, domain.EncryptionMetadata{}, fmt.Errorf("invalid metadata: %w", err)
	}
	if err := verifyChecksum(encrypted, metadata); err != nil {
		return nil, domain.EncryptionMetadata{}, err
	}
	return encrypted, metadata, nil
}
