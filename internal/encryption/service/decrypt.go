package service

import (
	"context"
	"fmt"
	"io"
)

func (s *EncryptionService) Decrypt(ctx context.Context, encryptedData io.Reader, key []byte, iv []byte) (io.Reader, error) {
	// Padding is only known after the last block, so the ciphertext is
	// buffered in full.
	data, err := io.ReadAll(encryptedData)
	if err != nil {
		return nil, fmt.Errorf("failed to read encrypted data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("encrypted data is empty")
	}

	if len(iv) == 0 {
		if iv, err = s.encryptor.GenerateIV(); err != nil {
			return nil, fmt.Errorf("failed to generate IV: %w", err)
		}
	}

	decrypted, err := s.encryptor.DecryptChunk(data, key, iv)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	pr, pw := io.Pipe()

	go func() {
		for len(decrypted) > 0 {
			select {
			case <-ctx.Done():
				pw.CloseWithError(ctx.Err())
				return
			default:
			}

			n := min(len(decrypted), s.chunkSize)
			if _, err := pw.Write(decrypted[:n]); err != nil {
				pw.CloseWithError(fmt.Errorf("failed to write decrypted data: %w", err))
				return
			}
			decrypted = decrypted[n:]
		}
		pw.Close()
	}()

	return pr, nil
}
