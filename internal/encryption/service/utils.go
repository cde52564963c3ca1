package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"qrinv/internal/core/domain"
	"qrinv/internal/pkg/crypto/aes"
)

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func verifyChecksum(data []byte, metadata domain.EncryptionMetadata) error {
	if got := checksum(data); got != metadata.Checksum {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", metadata.Checksum, got)
	}
	return nil
}

func validateMetadata(metadata domain.EncryptionMetadata) error {
	if metadata.Algorithm == "" {
		return fmt.Errorf("missing algorithm in metadata")
	}
	if metadata.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk size in metadata: %d", metadata.ChunkSize)
	}
	if metadata.OriginalSize < 0 {
		return fmt.Errorf("invalid original size in metadata: %d", metadata.OriginalSize)
	}
	if metadata.EncryptedSize <= 0 || metadata.EncryptedSize%aes.BlockSize != 0 {
		return fmt.Errorf("invalid encrypted size in metadata: %d", metadata.EncryptedSize)
	}
	if metadata.Checksum == "" {
		return fmt.Errorf("missing checksum in metadata")
	}
	if metadata.CreatedAt.IsZero() {
		return fmt.Errorf("missing creation time in metadata")
	}
	return nil
}
