package record

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"qrinv/internal/core/domain"
	"qrinv/internal/core/ports"
	"qrinv/internal/pkg/crypto/hexkey"
	"qrinv/internal/pkg/encoding/b64"
)

// Verifier checks records the way a scanner does: the encrypted field must
// decrypt to the invoice number followed by the random number.
type Verifier struct {
	encryption ports.EncryptionService
	logger     zerolog.Logger
}

func NewVerifier(encryption ports.EncryptionService, opts ...Option) *Verifier {
	o := newOptions(opts)
	return &Verifier{
		encryption: encryption,
		logger:     o.logger,
	}
}

func (v *Verifier) Verify(ctx context.Context, record string, keyHex string) (*domain.ParsedRecord, error) {
	parsed, err := Parse(record)
	if err != nil {
		return nil, err
	}

	km, err := hexkey.Load(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	defer km.Wipe()

	ciphertext, err := b64.Decode(parsed.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}

	reader, err := v.encryption.Decrypt(ctx, bytes.NewReader(ciphertext), km.Key, km.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMismatch, err)
	}
	plain, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decrypted data: %w", err)
	}

	if string(plain) != parsed.InvoiceNumber+parsed.RandomNumber {
		v.logger.Debug().Str("invoice_number", parsed.InvoiceNumber).Msg("sub-record mismatch")
		return nil, fmt.Errorf("%w: encrypted field does not match invoice %s", domain.ErrMismatch, parsed.InvoiceNumber)
	}
	return parsed, nil
}
