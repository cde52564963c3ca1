package record

import (
	"fmt"
	"strconv"

	"qrinv/internal/core/domain"
)

// Parse splits an encoded record into its fields. It does not decrypt.
func Parse(record string) (*domain.ParsedRecord, error) {
	if len(record) != domain.RecordLen {
		return nil, fmt.Errorf("%w: length %d, expected %d", domain.ErrInvalidRecord, len(record), domain.RecordLen)
	}

	off := 0
	next := func(n int) string {
		s := record[off : off+n]
		off += n
		return s
	}

	p := &domain.ParsedRecord{
		InvoiceNumber: next(domain.InvoiceNumberLen),
		InvoiceDate:   next(domain.InvoiceDateLen),
		RandomNumber:  next(domain.RandomNumberLen),
	}

	var err error
	if p.SalesAmount, err = parseAmount(next(domain.AmountHexLen)); err != nil {
		return nil, fmt.Errorf("%w: sales amount: %w", domain.ErrInvalidRecord, err)
	}
	if p.TotalAmount, err = parseAmount(next(domain.AmountHexLen)); err != nil {
		return nil, fmt.Errorf("%w: total amount: %w", domain.ErrInvalidRecord, err)
	}

	p.BuyerIdentifier = next(domain.IdentifierLen)
	p.SellerIdentifier = next(domain.IdentifierLen)
	p.CipherText = next(domain.CipherTextLen)
	return p, nil
}

func parseAmount(s string) (int64, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
