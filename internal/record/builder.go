// Package record builds, parses and verifies invoice QR records.
package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"qrinv/internal/core/domain"
	"qrinv/internal/core/ports"
	"qrinv/internal/pkg/crypto/hexkey"
	"qrinv/internal/pkg/encoding/b64"
)

type options struct {
	logger zerolog.Logger
}

type Option func(*options)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Builder assembles invoice records. It holds no per-call state and is
// safe for concurrent use.
type Builder struct {
	encryption ports.EncryptionService
	logger     zerolog.Logger
}

func NewBuilder(encryption ports.EncryptionService, opts ...Option) *Builder {
	o := newOptions(opts)
	return &Builder{
		encryption: encryption,
		logger:     o.logger,
	}
}

// Build returns the record and a result code. The code is 0 on success;
// on failure the record is empty and the code is one of the domain codes.
func (b *Builder) Build(fields domain.InvoiceFields, keyHex string) (string, int) {
	rec, err := b.BuildRecord(context.Background(), fields, keyHex)
	if err != nil {
		return "", domain.CodeOf(err)
	}
	return rec.Value, domain.CodeOK
}

// BuildRecord validates fields, encrypts the invoice and random numbers
// with the key and returns the assembled record.
func (b *Builder) BuildRecord(ctx context.Context, fields domain.InvoiceFields, keyHex string) (*domain.InvoiceRecord, error) {
	if err := Validate(fields); err != nil {
		b.logger.Debug().Int("code", domain.CodeOf(err)).Err(err).Msg("invoice fields rejected")
		return nil, err
	}

	km, err := hexkey.Load(keyHex)
	if err != nil {
		b.logger.Debug().Int("code", domain.CodeInvalidKey).Msg("key rejected")
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	defer km.Wipe()

	sales, err := FormatAmount(fields.SalesAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to format sales amount: %w", err)
	}
	total, err := FormatAmount(fields.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to format total amount: %w", err)
	}

	ciphertext, metadata, err := b.encryption.EncryptBytes(ctx, fields.PlainSubRecord(), km.Key, km.IV)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt sub-record: %w", err)
	}

	var sb strings.Builder
	sb.Grow(domain.RecordLen)
	sb.WriteString(fields.InvoiceNumber)
	sb.WriteString(fields.InvoiceDate)
	sb.WriteString(fields.RandomNumber)
	sb.WriteString(sales)
	sb.WriteString(total)
	sb.WriteString(fields.BuyerIdentifier)
	sb.WriteString(fields.SellerIdentifier)

	enc := b64.NewEncoder(&sb)
	if _, err := enc.Write(ciphertext); err != nil {
		return nil, fmt.Errorf("failed to encode ciphertext: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode ciphertext: %w", err)
	}

	value := sb.String()
	if len(value) != domain.RecordLen {
		return nil, fmt.Errorf("record has length %d, expected %d", len(value), domain.RecordLen)
	}

	b.logger.Debug().
		Int("length", len(value)).
		Int("chunks", metadata.Chunks).
		Msg("record built")

	return &domain.InvoiceRecord{
		Value:         value,
		InvoiceNumber: fields.InvoiceNumber,
		Metadata:      metadata,
	}, nil
}
