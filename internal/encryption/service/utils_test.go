package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"qrinv/internal/core/domain"
)

func TestValidateMetadata(t *testing.T) {
	valid := domain.EncryptionMetadata{
		Algorithm:     "AES-128-CBC-PKCS7",
		ChunkSize:     1024,
		Chunks:        1,
		OriginalSize:  14,
		EncryptedSize: 16,
		Checksum:      "abc",
		CreatedAt:     time.Now().UTC(),
	}

	tests := []struct {
		name     string
		metadata func(domain.EncryptionMetadata) domain.EncryptionMetadata
		wantErr  bool
	}{
		{
			name:     "Valid metadata",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata { return m },
		},
		{
			name: "Missing algorithm",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata {
				m.Algorithm = ""
				return m
			},
			wantErr: true,
		},
		{
			name: "Invalid chunk size",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata {
				m.ChunkSize = 0
				return m
			},
			wantErr: true,
		},
		{
			name: "Negative original size",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata {
				m.OriginalSize = -1
				return m
			},
			wantErr: true,
		},
		{
			name: "Encrypted size not block aligned",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata {
				m.EncryptedSize = 15
				return m
			},
			wantErr: true,
		},
		{
			name: "Missing checksum",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata {
				m.Checksum = ""
				return m
			},
			wantErr: true,
		},
		{
			name: "Missing creation time",
			metadata: func(m domain.EncryptionMetadata) domain.EncryptionMetadata {
				m.CreatedAt = time.Time{}
				return m
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMetadata(tt.metadata(valid))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("ciphertext")
	m := domain.EncryptionMetadata{Checksum: checksum(data)}

	assert.NoError(t, verifyChecksum(data, m))
	assert.Error(t, verifyChecksum([]byte("other"), m))
	// SHA-256 of the empty string.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", checksum(nil))
}
