// Package render turns a record into the images handed to printers and
// scanners.
package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	ContentTypePNG = "image/png"
	ContentTypePDF = "application/pdf"
)

// EncodeQR returns the QR symbol of record at error correction level M.
func EncodeQR(record string) (barcode.Barcode, error) {
	code, err := qr.Encode(record, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return code, nil
}

// QRPNG renders record as a size x size PNG.
func QRPNG(record string, size int) ([]byte, error) {
	code, err := EncodeQR(record)
	if err != nil {
		return nil, err
	}

	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to scale QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
