// qrinv/internal/core/domain/types.go
package domain

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Fixed field widths of an invoice record.
const (
	InvoiceNumberLen = 10
	InvoiceDateLen   = 7
	RandomNumberLen  = 4
	IdentifierLen    = 8
	AmountHexLen     = 8

	// PlainSubRecordLen is the length of InvoiceNumber + RandomNumber.
	PlainSubRecordLen = InvoiceNumberLen + RandomNumberLen

	// CipherTextLen is the base64 length of the single AES block that a
	// 14-byte sub-record encrypts to.
	CipherTextLen = 24

	// RecordLen is the total length of an encoded record.
	RecordLen = InvoiceNumberLen + InvoiceDateLen + RandomNumberLen +
		2*AmountHexLen + 2*IdentifierLen + CipherTextLen
)

// Product is one line of the product list. It is accepted for interface
// compatibility and does not contribute to the record.
type Product struct {
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

type InvoiceFields struct {
	InvoiceNumber       string
	InvoiceDate         string
	InvoiceTime         string
	RandomNumber        string
	SalesAmount         decimal.Decimal
	TaxAmount           decimal.Decimal
	TotalAmount         decimal.Decimal
	BuyerIdentifier     string
	RepresentIdentifier string
	SellerIdentifier    string
	BusinessIdentifier  string
	Products            []Product
}

// PlainSubRecord returns the bytes that get encrypted into the record.
func (f InvoiceFields) PlainSubRecord() []byte {
	b := make([]byte, 0, len(f.InvoiceNumber)+len(f.RandomNumber))
	b = append(b, f.InvoiceNumber...)
	return append(b, f.RandomNumber...)
}

// InvoiceRecord is a built record ready for QR rendering.
type InvoiceRecord struct {
	Value         string
	InvoiceNumber string
	Metadata      EncryptionMetadata
}

func (r InvoiceRecord) String() string {
	return r.Value
}

// ParsedRecord is a record split back into its fields.
type ParsedRecord struct {
	InvoiceNumber    string
	InvoiceDate      string
	RandomNumber     string
	SalesAmount      int64
	TotalAmount      int64
	BuyerIdentifier  string
	SellerIdentifier string
	CipherText       string
}

type EncryptionOptions struct {
	ChunkSize int // 0 uses the service default
}

type EncryptionMetadata struct {
	Algorithm     string
	ChunkSize     int
	Chunks        int
	OriginalSize  int64
	EncryptedSize int64
	Checksum      string
	CreatedAt     time.Time
}

type EncryptionInput struct {
	Reader  io.Reader
	Key     []byte
	IV      []byte
	Options EncryptionOptions
}

type EncryptionOutput struct {
	EncryptedReader io.Reader
	// Metadata is closed over by the streaming goroutine and is complete
	// only once EncryptedReader has returned io.EOF.
	Metadata *EncryptionMetadata
}
