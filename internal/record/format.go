package record

import (
	"fmt"

	"github.com/shopspring/decimal"

	"qrinv/internal/core/domain"
)

// MaxAmount is the largest amount that fits the 8-digit hex field.
const MaxAmount = 0xffffffff

var maxAmount = decimal.NewFromInt(MaxAmount)

// FormatAmount truncates d toward zero and renders it as 8 lowercase hex
// digits, zero padded.
func FormatAmount(d decimal.Decimal) (string, error) {
	t := d.Truncate(0)
	if t.IsNegative() {
		return "", fmt.Errorf("amount %s is negative", d)
	}
	if t.GreaterThan(maxAmount) {
		return "", fmt.Errorf("amount %s does not fit in %d hex digits", d, domain.AmountHexLen)
	}
	return fmt.Sprintf("%0*x", domain.AmountHexLen, t.IntPart()), nil
}
