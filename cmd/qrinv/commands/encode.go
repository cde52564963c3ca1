package commands

import (
	"context"
	"fmt"
	"os"

	"qrinv/internal/core/domain"
	"qrinv/internal/input"
	"qrinv/internal/record"
	"qrinv/internal/render"
	"qrinv/internal/storage"
)

type EncodeOptions struct {
	Path    string
	PNGPath string
	PDFPath string
	Size    int // 0 uses the configured size
	Upload  bool
}

// RunEncode builds the record for the input file at opts.Path. The record
// goes to Stdout; on failure the result code goes to Stderr.
func RunEncode(ctx context.Context, env Env, opts EncodeOptions) error {
	fields, keyHex, err := input.ReadFile(opts.Path)
	if err != nil {
		return err
	}

	builder := record.NewBuilder(env.encryptionService(), record.WithLogger(env.Logger))
	rec, err := builder.BuildRecord(ctx, fields, keyHex)
	if err != nil {
		env.Logger.Debug().Err(err).Msg("record not built")
		fmt.Fprint(env.Stderr, domain.CodeOf(err))
		return ErrReported
	}
	fmt.Fprint(env.Stdout, rec.Value)

	if opts.PNGPath == "" && opts.PDFPath == "" && !opts.Upload {
		return nil
	}

	size := opts.Size
	if size == 0 {
		size = env.Config.Render.QRSize
	}

	var artifacts []storage.Artifact
	terminalID := ""
	if opts.Upload || opts.PDFPath != "" {
		terminalID = env.TerminalID()
	}
	meta := func(contentType string) storage.ArtifactMetadata {
		return storage.ArtifactMetadata{
			InvoiceNumber: rec.InvoiceNumber,
			Record:        rec.Value,
			ContentType:   contentType,
			TerminalID:    terminalID,
			Checksum:      rec.Metadata.Checksum,
		}
	}

	if opts.PNGPath != "" || opts.Upload {
		png, err := render.QRPNG(rec.Value, size)
		if err != nil {
			return err
		}
		if opts.PNGPath != "" {
			if err := os.WriteFile(opts.PNGPath, png, 0o644); err != nil {
				return fmt.Errorf("failed to write PNG: %w", err)
			}
		}
		artifacts = append(artifacts, storage.Artifact{Data: png, Metadata: meta(render.ContentTypePNG)})
	}

	if opts.PDFPath != "" {
		pdf, err := render.PDF(ctx, rec.Value, render.SheetInfo{
			InvoiceNumber: fields.InvoiceNumber,
			InvoiceDate:   fields.InvoiceDate,
			InvoiceTime:   fields.InvoiceTime,
			TerminalID:    terminalID,
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.PDFPath, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		artifacts = append(artifacts, storage.Artifact{Data: pdf, Metadata: meta(render.ContentTypePDF)})
	}

	if !opts.Upload {
		return nil
	}

	store, err := env.NewStore(ctx)
	if err != nil {
		return err
	}
	for _, a := range artifacts {
		id, err := store.StoreArtifact(ctx, a)
		if err != nil {
			return err
		}
		env.Logger.Info().
			Str("id", id).
			Str("invoice_number", rec.InvoiceNumber).
			Str("content_type", a.Metadata.ContentType).
			Msg("artifact uploaded")
	}
	return nil
}
