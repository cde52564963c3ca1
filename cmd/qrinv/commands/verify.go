package commands

import (
	"context"
	"fmt"

	"qrinv/internal/record"
)

// RunVerify checks that record decrypts with keyHex and prints its fields.
func RunVerify(ctx context.Context, env Env, rec string, keyHex string) error {
	verifier := record.NewVerifier(env.encryptionService(), record.WithLogger(env.Logger))

	p, err := verifier.Verify(ctx, rec, keyHex)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "invoice number:    %s\n", p.InvoiceNumber)
	fmt.Fprintf(env.Stdout, "invoice date:      %s\n", p.InvoiceDate)
	fmt.Fprintf(env.Stdout, "random number:     %s\n", p.RandomNumber)
	fmt.Fprintf(env.Stdout, "sales amount:      %d\n", p.SalesAmount)
	fmt.Fprintf(env.Stdout, "total amount:      %d\n", p.TotalAmount)
	fmt.Fprintf(env.Stdout, "buyer identifier:  %s\n", p.BuyerIdentifier)
	fmt.Fprintf(env.Stdout, "seller identifier: %s\n", p.SellerIdentifier)
	return nil
}
