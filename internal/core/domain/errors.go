package domain

import (
	"errors"
	"fmt"
)

// Result codes returned by record.Builder.Build. 0 is success; the
// validation codes follow the order in which fields are checked.
const (
	CodeOK                         = 0
	CodeInvalidInvoiceNumber       = -1
	CodeInvalidInvoiceDate         = -2
	CodeMissingInvoiceTime         = -3
	CodeInvalidRandomNumber        = -4
	CodeNegativeSalesAmount        = -5
	CodeNegativeTaxAmount          = -6
	CodeNonPositiveTotalAmount     = -7
	CodeInvalidBuyerIdentifier     = -8
	CodeMissingRepresentIdentifier = -9
	CodeInvalidSellerIdentifier    = -10
	CodeMissingBusinessIdentifier  = -11
	CodeInvalidKey                 = -12
	CodeInternal                   = -13
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidKey    = errors.New("invalid key")
	ErrInvalidRecord = errors.New("invalid record")
	ErrMismatch      = errors.New("record verification failed")
)

// ValidationError reports the first invoice field that failed validation.
type ValidationError struct {
	Code  int
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (code %d): %v", e.Field, e.Code, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

// CodeOf maps an error from the record builder to its result code.
func CodeOf(err error) int {
	if err == nil {
		return CodeOK
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Code
	}
	if errors.Is(err, ErrInvalidKey) {
		return CodeInvalidKey
	}
	return CodeInternal
}
