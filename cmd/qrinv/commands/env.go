// Package commands implements the qrinv subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"

	"qrinv/internal/config"
	"qrinv/internal/device"
	"qrinv/internal/encryption/service"
	"qrinv/internal/pkg/crypto/aes"
	"qrinv/internal/storage"
	"qrinv/internal/storage/s3"
)

// ErrReported marks failures whose output was already written to Stderr.
var ErrReported = errors.New("failure already reported")

// Env carries what every command needs from main.
type Env struct {
	Config *config.Config
	Logger zerolog.Logger
	Stdout io.Writer
	Stderr io.Writer

	// NewStore opens the artifact store. It is only called when a command
	// needs it.
	NewStore   func(ctx context.Context) (storage.Store, error)
	TerminalID func() string
}

// NewEnv wires the production dependencies.
func NewEnv(cfg *config.Config, logger zerolog.Logger, stdout, stderr io.Writer) Env {
	return Env{
		Config: cfg,
		Logger: logger,
		Stdout: stdout,
		Stderr: stderr,
		NewStore: func(ctx context.Context) (storage.Store, error) {
			return newS3Store(ctx, cfg, logger)
		},
		TerminalID: device.New(logger).TerminalID,
	}
}

func (e Env) encryptionService() *service.EncryptionService {
	return service.NewService(aes.NewCBCEncryptor(),
		service.WithChunkSize(e.Config.Encryption.ChunkSize),
		service.WithLogger(e.Logger),
	)
}

func newS3Store(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (storage.Store, error) {
	if !cfg.UploadEnabled() {
		return nil, fmt.Errorf("QRINV_S3_BUCKET is not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	store, err := s3.NewClient(ctx, awsCfg, cfg.S3.Bucket, logger,
		storage.WithPrefixes(cfg.S3.QRPrefix, cfg.S3.MetadataPrefix),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return store, nil
}
