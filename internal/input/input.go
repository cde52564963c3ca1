// Package input reads invoice fields from the line-oriented input file
// consumed by the encode command.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"qrinv/internal/core/domain"
)

const (
	// Line limits of the legacy file format.
	maxTextLine   = 49
	maxAmountLine = 99
)

var ErrMalformed = errors.New("malformed input file")

type line struct {
	name   string
	amount bool
}

// lines lists the file layout, one field per line.
var lines = []line{
	{name: "invoice number"},
	{name: "invoice date"},
	{name: "invoice time"},
	{name: "random number"},
	{name: "sales amount", amount: true},
	{name: "tax amount", amount: true},
	{name: "total amount", amount: true},
	{name: "buyer identifier"},
	{name: "represent identifier"},
	{name: "seller identifier"},
	{name: "business identifier"},
	{name: "AES key"},
}

func ReadFile(path string) (domain.InvoiceFields, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.InvoiceFields{}, "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses the twelve input lines and returns the invoice fields and
// the hex key. Extra lines are ignored.
func Read(r io.Reader) (domain.InvoiceFields, string, error) {
	values := make([]string, 0, len(lines))
	sc := bufio.NewScanner(r)
	for len(values) < len(lines) && sc.Scan() {
		l := lines[len(values)]
		v := strings.TrimRight(sc.Text(), "\r\n")

		limit := maxTextLine
		if l.amount {
			limit = maxAmountLine
		}
		if len(v) > limit {
			return domain.InvoiceFields{}, "", fmt.Errorf("%w: %s is %d bytes, limit %d", ErrMalformed, l.name, len(v), limit)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return domain.InvoiceFields{}, "", fmt.Errorf("failed to read input: %w", err)
	}
	if len(values) < len(lines) {
		return domain.InvoiceFields{}, "", fmt.Errorf("%w: missing %s", ErrMalformed, lines[len(values)].name)
	}

	amounts := make([]decimal.Decimal, 3)
	for i := range amounts {
		idx := 4 + i
		d, err := decimal.NewFromString(strings.TrimSpace(values[idx]))
		if err != nil {
			return domain.InvoiceFields{}, "", fmt.Errorf("%w: %s: %w", ErrMalformed, lines[idx].name, err)
		}
		amounts[i] = d
	}

	fields := domain.InvoiceFields{
		InvoiceNumber:       values[0],
		InvoiceDate:         values[1],
		InvoiceTime:         values[2],
		RandomNumber:        values[3],
		SalesAmount:         amounts[0],
		TaxAmount:           amounts[1],
		TotalAmount:         amounts[2],
		BuyerIdentifier:     values[7],
		RepresentIdentifier: values[8],
		SellerIdentifier:    values[9],
		BusinessIdentifier:  values[10],
	}
	return fields, values[11], nil
}
