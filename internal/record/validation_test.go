package record

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrinv/internal/core/domain"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validFields()))

	fields := validFields()
	fields.SalesAmount = decimal.Zero
	fields.TaxAmount = decimal.Zero
	assert.NoError(t, Validate(fields), "zero sales and tax are allowed")

	fields = validFields()
	fields.BuyerIdentifier = "1234567"
	err := Validate(fields)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodeInvalidBuyerIdentifier, verr.Code)
	assert.Equal(t, "buyer identifier", verr.Field)
	assert.Contains(t, err.Error(), "code -8")
}

func TestValidate_LengthIsBytes(t *testing.T) {
	fields := validFields()
	// Ten runes, eleven bytes.
	fields.InvoiceNumber = "AB1234567é"
	assert.Equal(t, domain.CodeInvalidInvoiceNumber, domain.CodeOf(Validate(fields)))
}

func TestNonNegative_WrongType(t *testing.T) {
	assert.Error(t, nonNegative("100"))
	assert.Error(t, positive(100))
}
