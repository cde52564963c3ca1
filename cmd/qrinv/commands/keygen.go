package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"qrinv/internal/pkg/crypto/aes"
)

// RunKeygen prints a random key in the 32 hex digit form the encoder
// accepts. The key is not stored anywhere.
func RunKeygen(stdout io.Writer) error {
	key, err := aes.NewCBCEncryptor().GenerateKey()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, strings.ToUpper(hex.EncodeToString(key)))
	return nil
}
