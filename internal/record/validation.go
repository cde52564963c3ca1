package record

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"qrinv/internal/core/domain"
)

type fieldRule struct {
	code  int
	field string
	value func(domain.InvoiceFields) any
	rules []validation.Rule
}

// fieldRules are checked in order; the first failure decides the code.
var fieldRules = []fieldRule{
	{
		code:  domain.CodeInvalidInvoiceNumber,
		field: "invoice number",
		value: func(f domain.InvoiceFields) any { return f.InvoiceNumber },
		rules: exactLength(domain.InvoiceNumberLen),
	},
	{
		code:  domain.CodeInvalidInvoiceDate,
		field: "invoice date",
		value: func(f domain.InvoiceFields) any { return f.InvoiceDate },
		rules: exactLength(domain.InvoiceDateLen),
	},
	{
		code:  domain.CodeMissingInvoiceTime,
		field: "invoice time",
		value: func(f domain.InvoiceFields) any { return f.InvoiceTime },
		rules: []validation.Rule{validation.Required},
	},
	{
		code:  domain.CodeInvalidRandomNumber,
		field: "random number",
		value: func(f domain.InvoiceFields) any { return f.RandomNumber },
		rules: exactLength(domain.RandomNumberLen),
	},
	{
		code:  domain.CodeNegativeSalesAmount,
		field: "sales amount",
		value: func(f domain.InvoiceFields) any { return f.SalesAmount },
		rules: []validation.Rule{validation.By(nonNegative)},
	},
	{
		code:  domain.CodeNegativeTaxAmount,
		field: "tax amount",
		value: func(f domain.InvoiceFields) any { return f.TaxAmount },
		rules: []validation.Rule{validation.By(nonNegative)},
	},
	{
		code:  domain.CodeNonPositiveTotalAmount,
		field: "total amount",
		value: func(f domain.InvoiceFields) any { return f.TotalAmount },
		rules: []validation.Rule{validation.By(positive)},
	},
	{
		code:  domain.CodeInvalidBuyerIdentifier,
		field: "buyer identifier",
		value: func(f domain.InvoiceFields) any { return f.BuyerIdentifier },
		rules: exactLength(domain.IdentifierLen),
	},
	{
		code:  domain.CodeMissingRepresentIdentifier,
		field: "represent identifier",
		value: func(f domain.InvoiceFields) any { return f.RepresentIdentifier },
		rules: []validation.Rule{validation.Required},
	},
	{
		code:  domain.CodeInvalidSellerIdentifier,
		field: "seller identifier",
		value: func(f domain.InvoiceFields) any { return f.SellerIdentifier },
		rules: exactLength(domain.IdentifierLen),
	},
	{
		code:  domain.CodeMissingBusinessIdentifier,
		field: "business identifier",
		value: func(f domain.InvoiceFields) any { return f.BusinessIdentifier },
		rules: []validation.Rule{validation.Required},
	},
}

// Validate checks the invoice fields and returns a *domain.ValidationError
// for the first field that fails.
func Validate(fields domain.InvoiceFields) error {
	for _, r := range fieldRules {
		if err := validation.Validate(r.value(fields), r.rules...); err != nil {
			return &domain.ValidationError{Code: r.code, Field: r.field, Err: err}
		}
	}
	return nil
}

// Length skips empty values, so Required is what rejects "".
func exactLength(n int) []validation.Rule {
	return []validation.Rule{validation.Required, validation.Length(n, n)}
}

func nonNegative(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a decimal amount")
	}
	if d.IsNegative() {
		return validation.NewError("validation_amount_negative", "must not be negative")
	}
	return nil
}

func positive(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a decimal amount")
	}
	if !d.IsPositive() {
		return validation.NewError("validation_amount_not_positive", "must be greater than zero")
	}
	return nil
}
