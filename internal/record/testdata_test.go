package record

import (
	"github.com/shopspring/decimal"

	"qrinv/internal/core/domain"
	"qrinv/internal/encryption/service"
	"qrinv/internal/pkg/crypto/aes"
)

const (
	testKey = "0123456789ABCDEF0123456789ABCDEF"
	// base64(AES-128-CBC-PKCS7(testKey, fixed IV, "AB123456781234")), from openssl.
	testCipherText = "bLYI0pOJSEfTByuslOJW2w=="
	testPrefix     = "AB123456781120101123400000064000000691234567887654321"
	testRecord     = testPrefix + testCipherText
)

func validFields() domain.InvoiceFields {
	return domain.InvoiceFields{
		InvoiceNumber:       "AB12345678",
		InvoiceDate:         "1120101",
		InvoiceTime:         "120000",
		RandomNumber:        "1234",
		SalesAmount:         decimal.NewFromInt(100),
		TaxAmount:           decimal.NewFromInt(5),
		TotalAmount:         decimal.NewFromInt(105),
		BuyerIdentifier:     "12345678",
		RepresentIdentifier: "X",
		SellerIdentifier:    "87654321",
		BusinessIdentifier:  "Y",
	}
}

func newTestService() *service.EncryptionService {
	return service.NewService(aes.NewCBCEncryptor())
}
