package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"qrinv/internal/storage"
)

// RunFetch downloads an uploaded artifact into outputDir.
func RunFetch(ctx context.Context, env Env, id string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	store, err := env.NewStore(ctx)
	if err != nil {
		return err
	}

	data, metadata, err := store.GetArtifact(ctx, id)
	if err != nil {
		return err
	}

	path := filepath.Join(outputDir, metadata.InvoiceNumber+"-"+id+storage.Extension(metadata.ContentType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}

	env.Logger.Info().Str("id", id).Str("path", path).Msg("artifact downloaded")
	fmt.Fprintln(env.Stdout, path)
	return nil
}
